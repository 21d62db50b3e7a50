package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"hardware-catalog/internal/api/interfaces"
	"hardware-catalog/internal/api/models"

	"github.com/gin-gonic/gin"
)

// GetPublicConfig returns the configuration entries clients may read.
// Keys can be narrowed with ?keys=a,b,c.
func GetPublicConfig(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			entries interface{}
			err     error
		)

		if v := c.Query("keys"); v != "" {
			entries, err = services.ConfigRepository().GetByKeys(strings.Split(v, ","))
		} else {
			entries, err = services.ConfigRepository().GetAll()
		}
		if err != nil {
			services.GetLogger().Error("GetPublicConfig failed: %v", err)
			internalError(c, "Failed to load configuration")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: entries})
	}
}

// GetConfigByKey returns one configuration entry
func GetConfigByKey(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		if key == "" {
			badRequest(c, "Configuration key is required")
			return
		}

		entry, err := services.ConfigRepository().GetByKey(key)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				notFound(c, "Configuration key not found")
				return
			}
			services.GetLogger().Error("GetConfigByKey failed: %v", err)
			internalError(c, "Failed to load configuration")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: entry})
	}
}

// SaveConfig creates or updates a configuration entry (admin only)
func SaveConfig(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ConfigEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "key_name and value are required")
			return
		}

		entry, err := services.ConfigRepository().Save(req.KeyName, req.Value)
		if err != nil {
			services.GetLogger().Error("SaveConfig failed: %v", err)
			internalError(c, "Failed to save configuration")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{
			Success: true,
			Message: "Configuration saved",
			Data:    entry,
		})
	}
}

// DeleteConfig removes a configuration entry by key (admin only)
func DeleteConfig(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		if key == "" {
			badRequest(c, "Configuration key is required")
			return
		}

		deleted, err := services.ConfigRepository().DeleteByKey(key)
		if err != nil {
			services.GetLogger().Error("DeleteConfig failed: %v", err)
			internalError(c, "Failed to delete configuration")
			return
		}
		if !deleted {
			notFound(c, "Configuration key not found")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "Configuration deleted"})
	}
}
