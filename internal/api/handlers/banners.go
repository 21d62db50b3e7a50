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

// ListBanners returns active banners in display order
func ListBanners(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		banners, err := services.BannerRepository().GetActiveSorted()
		if err != nil {
			services.GetLogger().Error("ListBanners failed: %v", err)
			internalError(c, "Failed to list banners")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: banners})
	}
}

// ListAllBanners returns every banner including inactive ones (admin only)
func ListAllBanners(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		banners, err := services.BannerRepository().GetAll()
		if err != nil {
			services.GetLogger().Error("ListAllBanners failed: %v", err)
			internalError(c, "Failed to list banners")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: banners})
	}
}

// GetBanner returns one banner by ID
func GetBanner(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		banner, err := services.BannerRepository().GetByID(id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				notFound(c, "Banner not found")
				return
			}
			services.GetLogger().Error("GetBanner failed: %v", err)
			internalError(c, "Failed to load banner")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: banner})
	}
}

// CreateBanner creates a banner (admin only)
func CreateBanner(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.BannerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Banner title and image URL are required")
			return
		}

		banner := &database.Banner{
			Title:     req.Title,
			ImageURL:  req.ImageURL,
			LinkURL:   req.LinkURL,
			SortOrder: req.SortOrder,
			IsActive:  true,
		}
		if req.IsActive != nil {
			banner.IsActive = *req.IsActive
		}

		if err := services.BannerRepository().Create(banner); err != nil {
			services.GetLogger().Error("CreateBanner failed: %v", err)
			internalError(c, "Failed to create banner")
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse{
			Success: true,
			Message: "Banner created",
			Data:    banner,
		})
	}
}

// UpdateBanner updates a banner (admin only)
func UpdateBanner(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		var req models.BannerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Banner title and image URL are required")
			return
		}

		existing, err := services.BannerRepository().GetByID(id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				notFound(c, "Banner not found")
				return
			}
			services.GetLogger().Error("UpdateBanner lookup failed: %v", err)
			internalError(c, "Failed to update banner")
			return
		}

		existing.Title = req.Title
		existing.ImageURL = req.ImageURL
		existing.LinkURL = req.LinkURL
		existing.SortOrder = req.SortOrder
		if req.IsActive != nil {
			existing.IsActive = *req.IsActive
		}

		updated, err := services.BannerRepository().Update(existing)
		if err != nil {
			services.GetLogger().Error("UpdateBanner failed: %v", err)
			internalError(c, "Failed to update banner")
			return
		}
		if !updated {
			notFound(c, "Banner not found")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{
			Success: true,
			Message: "Banner updated",
			Data:    existing,
		})
	}
}

// DeleteBanner marks a banner inactive, or removes it permanently when
// hard=true (admin only)
func DeleteBanner(services interfaces.Services) gin.HandlerFunc {
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
			deleted, err = services.BannerRepository().HardDelete(id)
		} else {
			deleted, err = services.BannerRepository().SoftDelete(id)
		}
		if err != nil {
			services.GetLogger().Error("DeleteBanner failed: %v", err)
			internalError(c, "Failed to delete banner")
			return
		}
		if !deleted {
			notFound(c, "Banner not found")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "Banner deleted"})
	}
}

// ReorderBanners re-numbers banners in the order the IDs are given
// (admin only)
func ReorderBanners(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.BannerOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "banner_ids is required")
			return
		}

		if err := services.BannerRepository().BatchUpdateSortOrder(req.BannerIDs); err != nil {
			services.GetLogger().Error("ReorderBanners failed: %v", err)
			internalError(c, "Failed to reorder banners")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "Banners reordered"})
	}
}
