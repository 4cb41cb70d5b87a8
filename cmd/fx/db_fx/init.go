package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"happy/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(lc fx.Lifecycle, cfg *infra.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := infra.OpenDatabase(cfg.Database, cfg.Telemetry.Enabled, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseDatabase(db, logger)
			return nil
		},
	})
	return db, nil
}
