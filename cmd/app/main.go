package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"happy/cmd/fx/config_fx"
	"happy/cmd/fx/controllers_fx"
	"happy/cmd/fx/db_fx"
	"happy/cmd/fx/orphanages_fx"
	"happy/cmd/fx/storage_fx"
	"happy/cmd/fx/telemetry_fx"
	"happy/internal/api"
	"happy/internal/infra"
)

func main() {
	app := fx.New(
		config_fx.Module,
		telemetry_fx.Module,
		db_fx.Module,
		storage_fx.Module,
		orphanages_fx.Module,
		controllers_fx.Module,

		fx.Provide(api.NewRouter),
		fx.Invoke(StartServer),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *infra.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("failed to serve HTTP", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			ctx, cancel := context.WithTimeout(ctx, cfg.HTTP.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}
