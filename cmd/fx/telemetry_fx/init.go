package telemetry_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"happy/internal/infra"
)

// Module installs the tracer provider before the router and database are built.
var Module = fx.Invoke(startTracing)

func startTracing(lc fx.Lifecycle, cfg *infra.Config, logger *zap.Logger) error {
	shutdown, err := infra.InitTracer(context.Background(), cfg.Telemetry, logger)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}
