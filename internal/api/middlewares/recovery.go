package middlewares

import (
	"net/http"
	"time"

	"hardware-catalog/internal/api/models"

	"github.com/gin-gonic/gin"
)

// Recovery middleware recovers from panics
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.JSON(http.StatusInternalServerError, models.BaseResponse{
			Success: false,
			Error: &models.ErrorInfo{
				Code:    models.ErrCodeInternalError,
				Message: "Internal server error",
			},
			Timestamp: time.Now().Unix(),
		})
		c.Abort()
	})
}
