package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"hardware-catalog/internal/api/interfaces"
	"hardware-catalog/internal/api/models"
	"hardware-catalog/internal/database"

	"github.com/gin-gonic/gin"
)

// ListProducts returns active products, optionally filtered by
// category, with pagination
func ListProducts(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, offset := parsePagination(c)

		var (
			products []database.Product
			total    int64
			err      error
		)

		if v := c.Query("category_id"); v != "" {
			categoryID, convErr := strconv.ParseInt(v, 10, 64)
			if convErr != nil || categoryID <= 0 {
				badRequest(c, "Invalid category_id parameter")
				return
			}
			products, err = services.ProductRepository().GetByCategory(categoryID, limit, offset)
			if err == nil {
				total, err = services.ProductRepository().CountByCategory(categoryID)
			}
		} else {
			products, err = services.ProductRepository().GetActive(limit, offset)
			if err == nil {
				total, err = services.ProductRepository().CountActive()
			}
		}

		if err != nil {
			services.GetLogger().Error("ListProducts failed: %v", err)
			internalError(c, "Failed to list products")
			return
		}

		attachTranslations(services, products)

		c.JSON(http.StatusOK, models.SuccessResponse{
			Success: true,
			Data: models.PaginatedResponse{
				Data: products,
				Pagination: models.PaginationInfo{
					CurrentPage:  page,
					PageSize:     limit,
					TotalRecords: total,
				},
			},
		})
	}
}

// SearchProducts returns active products whose translated name matches
// the query, optionally restricted to a category
func SearchProducts(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		term := c.Query("q")
		if term == "" {
			badRequest(c, "Query parameter q is required")
			return
		}

		var categoryID int64
		if v := c.Query("category_id"); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil || id <= 0 {
				badRequest(c, "Invalid category_id parameter")
				return
			}
			categoryID = id
		}

		page, limit, offset := parsePagination(c)

		products, err := services.ProductRepository().Search(term, categoryID, limit, offset)
		if err != nil {
			services.GetLogger().Error("SearchProducts failed: %v", err)
			internalError(c, "Search failed")
			return
		}

		attachTranslations(services, products)

		c.JSON(http.StatusOK, models.SuccessResponse{
			Success: true,
			Data: models.PaginatedResponse{
				Data: products,
				Pagination: models.PaginationInfo{
					CurrentPage:  page,
					PageSize:     limit,
					TotalRecords: int64(len(products)),
				},
			},
		})
	}
}

// GetProduct returns one product with its translations
func GetProduct(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		product, err := services.ProductRepository().GetByID(id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				notFound(c, "Product not found")
				return
			}
			services.GetLogger().Error("GetProduct failed: %v", err)
			internalError(c, "Failed to load product")
			return
		}

		translations, err := services.TranslationRepository().GetByProduct(id)
		if err != nil {
			services.GetLogger().Warning("Could not load translations for product %d: %v", id, err)
		}
		product.Translations = translations

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: product})
	}
}

// CreateProduct creates a product with its translations (admin only)
func CreateProduct(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid product payload: "+err.Error())
			return
		}

		if _, err := services.CategoryRepository().GetByID(req.CategoryID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				badRequest(c, "Unknown category")
				return
			}
			services.GetLogger().Error("CreateProduct category lookup failed: %v", err)
			internalError(c, "Failed to create product")
			return
		}

		product := &database.Product{
			CategoryID:     req.CategoryID,
			Brand:          req.Brand,
			ImageURL:       req.ImageURL,
			TechnicalSpecs: req.TechnicalSpecs,
			UsageInfo:      req.UsageInfo,
			IsActive:       true,
		}
		if req.IsActive != nil {
			product.IsActive = *req.IsActive
		}

		if err := services.ProductRepository().Create(product); err != nil {
			services.GetLogger().Error("CreateProduct failed: %v", err)
			internalError(c, "Failed to create product")
			return
		}

		for _, tr := range req.Translations {
			t := &database.ProductTranslation{
				ProductID:    product.ID,
				LanguageCode: tr.LanguageCode,
				Name:         tr.Name,
				Description:  tr.Description,
			}
			if err := services.TranslationRepository().Create(t); err != nil {
				services.GetLogger().Error("CreateProduct translation failed: %v", err)
				internalError(c, "Failed to save product translation")
				return
			}
			product.Translations = append(product.Translations, *t)
		}

		c.JSON(http.StatusCreated, models.SuccessResponse{
			Success: true,
			Message: "Product created",
			Data:    product,
		})
	}
}

// UpdateProduct updates a product and upserts its translations (admin only)
func UpdateProduct(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		var req models.ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid product payload: "+err.Error())
			return
		}

		existing, err := services.ProductRepository().GetByID(id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				notFound(c, "Product not found")
				return
			}
			services.GetLogger().Error("UpdateProduct lookup failed: %v", err)
			internalError(c, "Failed to update product")
			return
		}

		existing.CategoryID = req.CategoryID
		existing.Brand = req.Brand
		existing.ImageURL = req.ImageURL
		existing.TechnicalSpecs = req.TechnicalSpecs
		existing.UsageInfo = req.UsageInfo
		if req.IsActive != nil {
			existing.IsActive = *req.IsActive
		}

		if _, err := services.ProductRepository().Update(existing); err != nil {
			services.GetLogger().Error("UpdateProduct failed: %v", err)
			internalError(c, "Failed to update product")
			return
		}

		for _, tr := range req.Translations {
			exists, err := services.TranslationRepository().Exists(id, tr.LanguageCode)
			if err != nil {
				services.GetLogger().Error("UpdateProduct translation check failed: %v", err)
				internalError(c, "Failed to save product translation")
				return
			}
			if exists {
				_, err = services.TranslationRepository().Update(id, tr.LanguageCode, tr.Name, tr.Description)
			} else {
				err = services.TranslationRepository().Create(&database.ProductTranslation{
					ProductID:    id,
					LanguageCode: tr.LanguageCode,
					Name:         tr.Name,
					Description:  tr.Description,
				})
			}
			if err != nil {
				services.GetLogger().Error("UpdateProduct translation save failed: %v", err)
				internalError(c, "Failed to save product translation")
				return
			}
		}

		translations, err := services.TranslationRepository().GetByProduct(id)
		if err == nil {
			existing.Translations = translations
		}

		c.JSON(http.StatusOK, models.SuccessResponse{
			Success: true,
			Message: "Product updated",
			Data:    existing,
		})
	}
}

// DeleteProduct marks a product inactive, or removes it permanently
// when hard=true (admin only)
func DeleteProduct(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		var (
			deleted bool
			err     error
		)
		if c.Query("hard") == "true" {
			deleted, err = services.ProductRepository().HardDelete(id)
		} else {
			deleted, err = services.ProductRepository().SoftDelete(id)
		}
		if err != nil {
			services.GetLogger().Error("DeleteProduct failed: %v", err)
			internalError(c, "Failed to delete product")
			return
		}
		if !deleted {
			notFound(c, "Product not found")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "Product deleted"})
	}
}

// attachTranslations loads translations for each product in the slice.
func attachTranslations(services interfaces.Services, products []database.Product) {
	for i := range products {
		translations, err := services.TranslationRepository().GetByProduct(products[i].ID)
		if err != nil {
			services.GetLogger().Warning("Could not load translations for product %d: %v", products[i].ID, err)
			continue
		}
		products[i].Translations = translations
	}
}
