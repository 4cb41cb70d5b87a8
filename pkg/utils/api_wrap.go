package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const TraceIDKey = "trace_id"

type APIResponse struct {
	Status  string              `json:"status"`
	Code    int                 `json:"code"`
	Message string              `json:"message,omitempty"`
	TraceID string              `json:"trace_id,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// RespondJSON writes a successful body as is; clients read the views directly.
func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString(TraceIDKey),
	})
}

func RespondValidationError(c *gin.Context, verr *ValidationError) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: "Validation fails",
		TraceID: c.GetString(TraceIDKey),
		Errors:  verr.Fields(),
	})
}

func HandleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	var verr *ValidationError

	switch {
	case errors.As(err, &verr):
		RespondValidationError(c, verr)
	case errors.Is(err, ErrOrphanageNotFound):
		RespondError(c, http.StatusNotFound, "Orphanage not found")
	case errors.Is(err, ErrInvalidOrphanageID):
		RespondError(c, http.StatusBadRequest, "Orphanage ID must be a positive integer")
	case errors.Is(err, ErrInvalidForm):
		RespondError(c, http.StatusBadRequest, "Invalid form data")
	case errors.Is(err, ErrDatabaseError):
		logger.Error("database error", zap.String(TraceIDKey, c.GetString(TraceIDKey)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	case errors.Is(err, ErrStorageError):
		logger.Error("storage error", zap.String(TraceIDKey, c.GetString(TraceIDKey)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		logger.Error("unknown error", zap.String(TraceIDKey, c.GetString(TraceIDKey)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
