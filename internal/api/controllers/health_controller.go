package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"happy/internal/infra"
	"happy/pkg/utils"
)

type HealthController struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewHealthController(db *gorm.DB, logger *zap.Logger) *HealthController {
	return &HealthController{db: db, logger: logger.Named("health")}
}

// Health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} utils.APIResponse
// @Router /health [get]
func (h *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := infra.PingDatabase(ctx, h.db); err != nil {
		h.logger.Warn("database ping failed", zap.Error(err))
		utils.RespondError(c, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{"status": "ok"})
}
