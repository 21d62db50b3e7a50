package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"hardware-catalog/internal/api/interfaces"
	"hardware-catalog/internal/api/models"
	"hardware-catalog/internal/database"

	"github.com/gin-gonic/gin"
)

// fallbackLanguage is used when no template exists for the requested
// language.
const fallbackLanguage = "en"

// ListTemplates returns all message templates, optionally filtered by
// type or language
func ListTemplates(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			templates []database.MessageTemplate
			err       error
		)

		switch {
		case c.Query("type") != "":
			templates, err = services.TemplateRepository().GetByType(c.Query("type"))
		case c.Query("language") != "":
			templates, err = services.TemplateRepository().GetByLanguage(c.Query("language"))
		default:
			templates, err = services.TemplateRepository().GetAll()
		}
		if err != nil {
			services.GetLogger().Error("ListTemplates failed: %v", err)
			internalError(c, "Failed to list templates")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: templates})
	}
}

// ListTemplateTypes returns the distinct template types present
func ListTemplateTypes(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		types, err := services.TemplateRepository().GetDistinctTypes()
		if err != nil {
			services.GetLogger().Error("ListTemplateTypes failed: %v", err)
			internalError(c, "Failed to list template types")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: types})
	}
}

// GetTemplate returns the template for a type/language pair, falling
// back to English when the requested language has none
func GetTemplate(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		templateType := c.Param("type")
		languageCode := c.Param("language")

		template, err := lookupTemplate(services, templateType, languageCode)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				notFound(c, "Template not found")
				return
			}
			services.GetLogger().Error("GetTemplate failed: %v", err)
			internalError(c, "Failed to load template")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: template})
	}
}

// RenderTemplate substitutes {key} placeholders in a template with the
// supplied values and returns the rendered text. Placeholders with no
// value are left intact so missing data is visible to the operator.
func RenderTemplate(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RenderTemplateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "type and language_code are required")
			return
		}

		template, err := lookupTemplate(services, req.Type, req.LanguageCode)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				notFound(c, "Template not found")
				return
			}
			services.GetLogger().Error("RenderTemplate failed: %v", err)
			internalError(c, "Failed to render template")
			return
		}

		content := template.Template
		for key, value := range req.Values {
			content = strings.ReplaceAll(content, "{"+key+"}", value)
		}

		c.JSON(http.StatusOK, models.SuccessResponse{
			Success: true,
			Data: models.RenderedTemplateResponse{
				Type:         template.Type,
				LanguageCode: template.LanguageCode,
				Content:      content,
			},
		})
	}
}

// SaveTemplate creates or replaces the template for a type/language
// pair (admin only)
func SaveTemplate(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.TemplateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "type, language_code and template are required")
			return
		}

		template, err := services.TemplateRepository().Save(req.Type, req.LanguageCode, req.Template)
		if err != nil {
			services.GetLogger().Error("SaveTemplate failed: %v", err)
			internalError(c, "Failed to save template")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{
			Success: true,
			Message: "Template saved",
			Data:    template,
		})
	}
}

// DeleteTemplate removes the template for a type/language pair (admin only)
func DeleteTemplate(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		templateType := c.Param("type")
		languageCode := c.Param("language")

		deleted, err := services.TemplateRepository().DeleteByTypeAndLanguage(templateType, languageCode)
		if err != nil {
			services.GetLogger().Error("DeleteTemplate failed: %v", err)
			internalError(c, "Failed to delete template")
			return
		}
		if !deleted {
			notFound(c, "Template not found")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "Template deleted"})
	}
}

// lookupTemplate resolves a type/language pair, retrying in the
// fallback language when the requested one is absent.
func lookupTemplate(services interfaces.Services, templateType, languageCode string) (*database.MessageTemplate, error) {
	template, err := services.TemplateRepository().GetByTypeAndLanguage(templateType, languageCode)
	if err == nil {
		return template, nil
	}
	if errors.Is(err, sql.ErrNoRows) && languageCode != fallbackLanguage {
		return services.TemplateRepository().GetByTypeAndLanguage(templateType, fallbackLanguage)
	}
	return nil, err
}
