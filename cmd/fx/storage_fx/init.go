package storage_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"happy/internal/infra"
	"happy/internal/storage"
)

var Module = fx.Provide(provideImageStorage)

func provideImageStorage(cfg *infra.Config, logger *zap.Logger) (storage.ImageStorage, error) {
	return storage.NewDiskStorage(cfg.Uploads.Dir, logger)
}
