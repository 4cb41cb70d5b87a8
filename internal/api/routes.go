package api

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"happy/internal/api/controllers"
	"happy/internal/infra"
	"happy/internal/storage"
	"happy/pkg/middleware"
)

func NewRouter(
	cfg *infra.Config,
	logger *zap.Logger,
	orphanagesController *controllers.OrphanagesController,
	healthController *controllers.HealthController,
	imageStorage storage.ImageStorage,
) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.MaxMultipartMemory = cfg.Uploads.MaxMemoryMB << 20
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger.Named("http")))
	r.Use(middleware.CORSMiddleware(cfg.HTTP.CORSAllowOrigins))
	r.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))

	RegisterRoutes(r, cfg, orphanagesController, healthController, imageStorage)

	return r
}

func RegisterRoutes(r *gin.Engine,
	cfg *infra.Config,
	orphanagesController *controllers.OrphanagesController,
	healthController *controllers.HealthController,
	imageStorage storage.ImageStorage) {

	r.GET("/health", healthController.Health)

	orphanagesGroup := r.Group("/orphanages")
	orphanagesGroup.GET("", orphanagesController.ListOrphanages)
	orphanagesGroup.GET("/:id", orphanagesController.GetOrphanageByID)
	orphanagesGroup.POST("", orphanagesController.CreateOrphanage)

	// uploads are served from the storage's own directory
	r.Static(cfg.Uploads.Route, imageStorage.Dir())
}
