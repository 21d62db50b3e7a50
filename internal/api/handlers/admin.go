package handlers

import (
	"net/http"

	"hardware-catalog/internal/api/interfaces"
	"hardware-catalog/internal/api/models"

	"github.com/gin-gonic/gin"
)

// AdminDashboard returns the back-office summary: catalog sizes, quote
// counts per status and the most recent quote requests
func AdminDashboard(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := services.ProductRepository().CountActive()
		if err != nil {
			services.GetLogger().Error("Dashboard product count failed: %v", err)
			internalError(c, "Failed to build dashboard")
			return
		}

		categories, err := services.CategoryRepository().GetActive()
		if err != nil {
			services.GetLogger().Error("Dashboard category count failed: %v", err)
			internalError(c, "Failed to build dashboard")
			return
		}

		stats, err := quoteStatistics(services)
		if err != nil {
			services.GetLogger().Error("Dashboard quote statistics failed: %v", err)
			internalError(c, "Failed to build dashboard")
			return
		}

		recent, err := services.QuoteRepository().GetRecent()
		if err != nil {
			services.GetLogger().Warning("Dashboard recent quotes failed: %v", err)
		}

		c.JSON(http.StatusOK, models.SuccessResponse{
			Success: true,
			Data: models.DashboardResponse{
				TotalProducts:   products,
				TotalCategories: int64(len(categories)),
				TotalQuotes:     stats.Total,
				PendingQuotes:   stats.Pending,
				RecentQuotes:    recent,
				QuoteStatistics: stats,
			},
		})
	}
}

// AdminStats returns quote request aggregates for reporting
func AdminStats(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := quoteStatistics(services)
		if err != nil {
			services.GetLogger().Error("AdminStats failed: %v", err)
			internalError(c, "Failed to load statistics")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: stats})
	}
}
