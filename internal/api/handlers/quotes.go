package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"hardware-catalog/internal/api/interfaces"
	"hardware-catalog/internal/api/models"
	"hardware-catalog/internal/database"

	"github.com/gin-gonic/gin"
)

// SubmitQuote accepts a customer quote request. This is the one public
// write endpoint: customers are anonymous, so the submission starts in
// PENDING status for staff to pick up.
func SubmitQuote(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.QuoteRequestPayload
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Name and phone are required")
			return
		}

		if req.ProductID != nil {
			if _, err := services.ProductRepository().GetByID(*req.ProductID); err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					badRequest(c, "Unknown product")
					return
				}
				services.GetLogger().Error("SubmitQuote product lookup failed: %v", err)
				internalError(c, "Failed to submit quote request")
				return
			}
		}

		quote := &database.QuoteRequest{
			Name:         req.Name,
			Phone:        req.Phone,
			ProductID:    req.ProductID,
			Quantity:     req.Quantity,
			Location:     req.Location,
			LanguageCode: req.LanguageCode,
			Status:       database.QuoteStatusPending,
		}

		if err := services.QuoteRepository().Create(quote); err != nil {
			services.GetLogger().Error("SubmitQuote failed: %v", err)
			internalError(c, "Failed to submit quote request")
			return
		}

		services.GetLogger().Info("quote request %d received from %s", quote.ID, c.ClientIP())

		c.JSON(http.StatusCreated, models.SuccessResponse{
			Success: true,
			Message: "Quote request received",
			Data:    quote,
		})
	}
}

// ListQuotes returns quote requests with pagination; supports
// status, search, phone and date-range filters
func ListQuotes(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, offset := parsePagination(c)

		var (
			quotes []database.QuoteRequest
			err    error
		)

		switch {
		case c.Query("status") != "":
			status := c.Query("status")
			if !database.ValidQuoteStatus(status) {
				badRequest(c, "Unknown quote status")
				return
			}
			quotes, err = services.QuoteRepository().GetByStatus(status, limit, offset)
		case c.Query("q") != "":
			quotes, err = services.QuoteRepository().Search(c.Query("q"), limit, offset)
		case c.Query("phone") != "":
			quotes, err = services.QuoteRepository().GetByPhone(c.Query("phone"))
		case c.Query("product_id") != "":
			productID, convErr := strconv.ParseInt(c.Query("product_id"), 10, 64)
			if convErr != nil || productID <= 0 {
				badRequest(c, "Invalid product_id parameter")
				return
			}
			quotes, err = services.QuoteRepository().GetByProduct(productID)
		case c.Query("language") != "":
			quotes, err = services.QuoteRepository().GetByLanguage(c.Query("language"))
		case c.Query("from") != "" && c.Query("to") != "":
			var start, end time.Time
			start, err = time.Parse("2006-01-02", c.Query("from"))
			if err == nil {
				end, err = time.Parse("2006-01-02", c.Query("to"))
			}
			if err != nil {
				badRequest(c, "Dates must use the YYYY-MM-DD format")
				return
			}
			quotes, err = services.QuoteRepository().GetByDateRange(start, end.Add(24*time.Hour), limit, offset)
		default:
			quotes, err = services.QuoteRepository().GetAll(limit, offset)
		}

		if err != nil {
			services.GetLogger().Error("ListQuotes failed: %v", err)
			internalError(c, "Failed to list quote requests")
			return
		}

		total, err := services.QuoteRepository().Count()
		if err != nil {
			services.GetLogger().Warning("Quote count failed: %v", err)
		}

		c.JSON(http.StatusOK, models.SuccessResponse{
			Success: true,
			Data: models.PaginatedResponse{
				Data: quotes,
				Pagination: models.PaginationInfo{
					CurrentPage:  page,
					PageSize:     limit,
					TotalRecords: total,
				},
			},
		})
	}
}

// RecentQuotes returns the latest quote requests for staff triage
func RecentQuotes(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		quotes, err := services.QuoteRepository().GetRecent()
		if err != nil {
			services.GetLogger().Error("RecentQuotes failed: %v", err)
			internalError(c, "Failed to list recent quote requests")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: quotes})
	}
}

// GetQuote returns one quote request by ID
func GetQuote(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		quote, err := services.QuoteRepository().GetByID(id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				notFound(c, "Quote request not found")
				return
			}
			services.GetLogger().Error("GetQuote failed: %v", err)
			internalError(c, "Failed to load quote request")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: quote})
	}
}

// UpdateQuoteStatus moves a quote request between PENDING, CONTACTED
// and COMPLETED
func UpdateQuoteStatus(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		var req models.QuoteStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Status is required")
			return
		}
		if !database.ValidQuoteStatus(req.Status) {
			badRequest(c, "Unknown quote status")
			return
		}

		updated, err := services.QuoteRepository().UpdateStatus(id, req.Status)
		if err != nil {
			services.GetLogger().Error("UpdateQuoteStatus failed: %v", err)
			internalError(c, "Failed to update quote status")
			return
		}
		if !updated {
			notFound(c, "Quote request not found")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "Quote status updated"})
	}
}

// DeleteQuote removes a quote request
func DeleteQuote(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		deleted, err := services.QuoteRepository().Delete(id)
		if err != nil {
			services.GetLogger().Error("DeleteQuote failed: %v", err)
			internalError(c, "Failed to delete quote request")
			return
		}
		if !deleted {
			notFound(c, "Quote request not found")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: "Quote request deleted"})
	}
}

// GetQuoteStatistics returns aggregate quote request counts
func GetQuoteStatistics(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := quoteStatistics(services)
		if err != nil {
			services.GetLogger().Error("GetQuoteStatistics failed: %v", err)
			internalError(c, "Failed to load quote statistics")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Data: stats})
	}
}

func quoteStatistics(services interfaces.Services) (models.QuoteStatisticsResponse, error) {
	repo := services.QuoteRepository()

	total, err := repo.Count()
	if err != nil {
		return models.QuoteStatisticsResponse{}, err
	}
	pending, err := repo.CountByStatus(database.QuoteStatusPending)
	if err != nil {
		return models.QuoteStatisticsResponse{}, err
	}
	contacted, err := repo.CountByStatus(database.QuoteStatusContacted)
	if err != nil {
		return models.QuoteStatisticsResponse{}, err
	}
	completed, err := repo.CountByStatus(database.QuoteStatusCompleted)
	if err != nil {
		return models.QuoteStatisticsResponse{}, err
	}

	return models.QuoteStatisticsResponse{
		Total:     total,
		Pending:   pending,
		Contacted: contacted,
		Completed: completed,
	}, nil
}
