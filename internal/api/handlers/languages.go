package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"hardware-catalog/internal/api/interfaces"
	"hardware-catalog/internal/api/models"
	"hardware-catalog/internal/database"

	"github.com/gin-gonic/gin"
)

// ListLanguages returns active languages
func ListLanguages(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		languages, err := services.LanguageRepository().GetActive()
		if err != nil {
			services.GetLogger().Error("ListLanguages failed: %v", err)
			internalError(c, "Failed to list languages")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: languages})
	}
}

// ListAllLanguages returns every language including inactive ones (admin only)
func ListAllLanguages(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		languages, err := services.LanguageRepository().GetAll()
		if err != nil {
			services.GetLogger().Error("ListAllLanguages failed: %v", err)
			internalError(c, "Failed to list languages")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: languages})
	}
}

// GetDefaultLanguage returns the active default language
func GetDefaultLanguage(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		language, err := services.LanguageRepository().GetDefault()
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				notFound(c, "No default language configured")
				return
			}
			services.GetLogger().Error("GetDefaultLanguage failed: %v", err)
			internalError(c, "Failed to load default language")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: language})
	}
}

// CreateLanguage registers a supported language (admin only)
func CreateLanguage(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LanguageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Language code and name are required")
			return
		}

		exists, err := services.LanguageRepository().ExistsByCode(req.Code)
		if err != nil {
			services.GetLogger().Error("CreateLanguage check failed: %v", err)
			internalError(c, "Failed to create language")
			return
		}
		if exists {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:   "duplicate_language",
				Code:    409,
				Message: "Language code is already registered",
			})
			return
		}

		language := &database.SupportedLanguage{
			Code:       req.Code,
			Name:       req.Name,
			NativeName: req.NativeName,
			IsActive:   true,
		}
		if req.IsActive != nil {
			language.IsActive = *req.IsActive
		}

		if err := services.LanguageRepository().Create(language); err != nil {
			services.GetLogger().Error("CreateLanguage failed: %v", err)
			internalError(c, "Failed to create language")
			return
		}

		// A new default displaces the previous one.
		if req.IsDefault {
			if _, err := services.LanguageRepository().SetDefaultByCode(language.Code); err != nil {
				services.GetLogger().Error("CreateLanguage set default failed: %v", err)
			} else {
				language.IsDefault = true
			}
		}

		c.JSON(http.StatusCreated, models.SuccessResponse{
			Success: true,
			Message: "Language created",
			Data:    language,
		})
	}
}

// UpdateLanguage updates a supported language (admin only)
func UpdateLanguage(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		var req models.LanguageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Language code and name are required")
			return
		}

		existing, err := services.LanguageRepository().GetByID(id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				notFound(c, "Language not found")
				return
			}
			services.GetLogger().Error("UpdateLanguage lookup failed: %v", err)
			internalError(c, "Failed to update language")
			return
		}

		existing.Code = req.Code
		existing.Name = req.Name
		existing.NativeName = req.NativeName
		if req.IsActive != nil {
			existing.IsActive = *req.IsActive
		}

		if _, err := services.LanguageRepository().Update(existing); err != nil {
			services.GetLogger().Error("UpdateLanguage failed: %v", err)
			internalError(c, "Failed to update language")
			return
		}

		if req.IsDefault && !existing.IsDefault {
			if _, err := services.LanguageRepository().SetDefaultByCode(existing.Code); err != nil {
				services.GetLogger().Error("UpdateLanguage set default failed: %v", err)
			} else {
				existing.IsDefault = true
			}
		}

		c.JSON(http.StatusOK, models.SuccessResponse{
			Success: true,
			Message: "Language updated",
			Data:    existing,
		})
	}
}

// SetDefaultLanguage makes one language the single default (admin only)
func SetDefaultLanguage(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		language, err := services.LanguageRepository().GetByID(id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				notFound(c, "Language not found")
				return
			}
			services.GetLogger().Error("SetDefaultLanguage lookup failed: %v", err)
			internalError(c, "Failed to set default language")
			return
		}

		updated, err := services.LanguageRepository().SetDefaultByCode(language.Code)
		if err != nil {
			services.GetLogger().Error("SetDefaultLanguage failed: %v", err)
			internalError(c, "Failed to set default language")
			return
		}
		if !updated {
			notFound(c, "Language not found")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "Default language updated"})
	}
}

// DeleteLanguage removes a supported language (admin only). The
// default language cannot be removed.
func DeleteLanguage(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		language, err := services.LanguageRepository().GetByID(id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				notFound(c, "Language not found")
				return
			}
			services.GetLogger().Error("DeleteLanguage lookup failed: %v", err)
			internalError(c, "Failed to delete language")
			return
		}

		if language.IsDefault {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:   "default_language",
				Code:    409,
				Message: "The default language cannot be deleted",
			})
			return
		}

		deleted, err := services.LanguageRepository().DeleteByID(id)
		if err != nil {
			services.GetLogger().Error("DeleteLanguage failed: %v", err)
			internalError(c, "Failed to delete language")
			return
		}
		if !deleted {
			notFound(c, "Language not found")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "Language deleted"})
	}
}
