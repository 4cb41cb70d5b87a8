package orphanages_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"happy/internal/infra"
	"happy/internal/repositories"
	"happy/internal/services"
)

var Module = fx.Provide(
	provideOrphanageRepo, provideOrphanageService)

func provideOrphanageRepo(db *gorm.DB) repositories.OrphanageRepository {
	return repositories.NewOrphanageRepository(db)
}

func provideOrphanageService(repo repositories.OrphanageRepository, cfg *infra.Config, logger *zap.Logger) (services.OrphanageServiceInterface, error) {
	imageBaseURL, err := cfg.ImageBaseURL()
	if err != nil {
		return nil, err
	}
	return services.NewOrphanageService(repo, services.NewOrphanageValidator(), imageBaseURL, logger), nil
}
