package handlers

import (
	"net/http"
	"strconv"

	"hardware-catalog/internal/api/models"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// parseIDParam reads a positive numeric :id path parameter. On failure
// it writes the 400 response and returns false.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Code:    400,
			Message: "Invalid " + name + " parameter",
		})
		return 0, false
	}
	return id, true
}

// parsePagination reads page/page_size query parameters and returns
// limit plus offset for SQL.
func parsePagination(c *gin.Context) (page, limit, offset int) {
	page = 1
	limit = defaultPageSize

	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := c.Query("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return page, limit, (page - 1) * limit
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "invalid_request",
		Code:    400,
		Message: message,
	})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Code:    404,
		Message: message,
	})
}

func internalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Code:    500,
		Message: message,
	})
}
