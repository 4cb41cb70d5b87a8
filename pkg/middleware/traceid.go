package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"happy/pkg/utils"
)

const TraceIDHeader = "X-Trace-ID"

// TraceIDMiddleware reuses a well-formed incoming X-Trace-ID and mints one otherwise.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceIDHeader)
		if _, err := uuid.Parse(traceID); err != nil {
			traceID = uuid.New().String()
		}
		c.Set(utils.TraceIDKey, traceID)
		c.Writer.Header().Set(TraceIDHeader, traceID)
		c.Next()
	}
}
