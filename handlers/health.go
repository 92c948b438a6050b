package handlers

import (
	"net/http"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// HealthReporter exposes the latest dependency snapshot.
type HealthReporter interface {
	Status() utils.HealthStatus
}

// HealthHandler returns the last snapshot taken by the health monitor.
// It answers 503 while the store is unreachable.
func HealthHandler(monitor HealthReporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := monitor.Status()
		code := http.StatusOK
		if !status.Mongo {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	}
}
