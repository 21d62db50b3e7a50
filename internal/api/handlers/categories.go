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

// ListCategories returns active categories in display order
func ListCategories(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := services.CategoryRepository().GetActiveOrdered()
		if err != nil {
			services.GetLogger().Error("ListCategories failed: %v", err)
			internalError(c, "Failed to list categories")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: categories})
	}
}

// ListAllCategories returns every category including inactive ones
func ListAllCategories(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := services.CategoryRepository().GetAll()
		if err != nil {
			services.GetLogger().Error("ListAllCategories failed: %v", err)
			internalError(c, "Failed to list categories")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: categories})
	}
}

// GetCategory returns one category by ID
func GetCategory(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		category, err := services.CategoryRepository().GetByID(id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				notFound(c, "Category not found")
				return
			}
			services.GetLogger().Error("GetCategory failed: %v", err)
			internalError(c, "Failed to load category")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: category})
	}
}

// CreateCategory creates a category (admin only)
func CreateCategory(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Category name is required")
			return
		}

		category := &database.Category{
			Name:      req.Name,
			ImageURL:  req.ImageURL,
			SortOrder: req.SortOrder,
			IsActive:  true,
		}
		if req.IsActive != nil {
			category.IsActive = *req.IsActive
		}

		if err := services.CategoryRepository().Create(category); err != nil {
			services.GetLogger().Error("CreateCategory failed: %v", err)
			internalError(c, "Failed to create category")
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse{
			Success: true,
			Message: "Category created",
			Data:    category,
		})
	}
}

// UpdateCategory updates a category (admin only)
func UpdateCategory(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		var req models.CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Category name is required")
			return
		}

		existing, err := services.CategoryRepository().GetByID(id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				notFound(c, "Category not found")
				return
			}
			services.GetLogger().Error("UpdateCategory lookup failed: %v", err)
			internalError(c, "Failed to update category")
			return
		}

		existing.Name = req.Name
		existing.ImageURL = req.ImageURL
		existing.SortOrder = req.SortOrder
		if req.IsActive != nil {
			existing.IsActive = *req.IsActive
		}

		updated, err := services.CategoryRepository().Update(existing)
		if err != nil {
			services.GetLogger().Error("UpdateCategory failed: %v", err)
			internalError(c, "Failed to update category")
			return
		}
		if !updated {
			notFound(c, "Category not found")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{
			Success: true,
			Message: "Category updated",
			Data:    existing,
		})
	}
}

// DeleteCategory removes a category (admin only). Categories that
// still hold products are rejected.
func DeleteCategory(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		count, err := services.ProductRepository().CountByCategory(id)
		if err != nil {
			services.GetLogger().Error("DeleteCategory count failed: %v", err)
			internalError(c, "Failed to delete category")
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:   "category_not_empty",
				Code:    409,
				Message: "Category still contains products",
			})
			return
		}

		deleted, err := services.CategoryRepository().Delete(id)
		if err != nil {
			services.GetLogger().Error("DeleteCategory failed: %v", err)
			internalError(c, "Failed to delete category")
			return
		}
		if !deleted {
			notFound(c, "Category not found")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "Category deleted"})
	}
}
