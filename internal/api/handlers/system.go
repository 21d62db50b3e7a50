package handlers

import (
	"net/http"
	"time"

	"hardware-catalog/internal/api/interfaces"
	"hardware-catalog/internal/api/models"

	"github.com/gin-gonic/gin"
)

const version = "1.0.0"

var startTime = time.Now()

// HealthCheck reports service and database health
func HealthCheck(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		checks := map[string]models.HealthCheck{
			"server": {Status: "healthy"},
		}

		status := "healthy"
		httpStatus := http.StatusOK

		dbStart := time.Now()
		if services.IsHealthy() {
			checks["database"] = models.HealthCheck{
				Status:  "healthy",
				Latency: time.Since(dbStart).String(),
			}
		} else {
			checks["database"] = models.HealthCheck{
				Status:  "unhealthy",
				Message: "Database is unreachable",
			}
			status = "unhealthy"
			httpStatus = http.StatusServiceUnavailable
		}

		c.JSON(httpStatus, models.HealthCheckResponse{
			Status:    status,
			Timestamp: time.Now().Unix(),
			Version:   version,
			Uptime:    int64(time.Since(startTime).Seconds()),
			Checks:    checks,
		})
	}
}
