package handlers

import (
	"doctorsportal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger returns the global logger tagged with the request ID, if any.
func getLogger(c *gin.Context) *zap.Logger {
	logger := zap.L()
	if rid := c.GetString(middleware.ContextRequestID); rid != "" {
		logger = logger.With(zap.String("request_id", rid))
	}
	return logger
}
