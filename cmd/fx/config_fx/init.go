package config_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"happy/internal/infra"
)

var Module = fx.Provide(
	provideConfig, provideLogger)

func provideConfig() (*infra.Config, error) {
	return infra.LoadConfig()
}

func provideLogger(lc fx.Lifecycle, cfg *infra.Config) *zap.Logger {
	logger := infra.NewLogger(cfg.Log).With(
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = logger.Sync()
			return nil
		},
	})
	return logger
}
