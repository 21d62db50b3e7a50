package models

import "time"

// SuccessResponse represents a success response
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// BaseResponse represents the base API response structure
type BaseResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ErrorInfo  `json:"error,omitempty"`
	Timestamp int64       `json:"timestamp"`
	RequestID string      `json:"request_id,omitempty"`
}

// ErrorInfo represents error information
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// LoginResponse represents a successful authentication
type LoginResponse struct {
	Token            string `json:"token"`
	TokenType        string `json:"token_type"`
	ExpiresInSeconds int64  `json:"expires_in_seconds"`
	Subject          string `json:"subject"`
	DisplayName      string `json:"display_name,omitempty"`
}

// UserResponse represents account information without credentials
type UserResponse struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name,omitempty"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// RenderedTemplateResponse represents a template after placeholder substitution
type RenderedTemplateResponse struct {
	Type         string `json:"type"`
	LanguageCode string `json:"language_code"`
	Content      string `json:"content"`
}

// QuoteStatisticsResponse represents aggregate quote request counts
type QuoteStatisticsResponse struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Contacted int64 `json:"contacted"`
	Completed int64 `json:"completed"`
}

// DashboardResponse represents the admin dashboard summary
type DashboardResponse struct {
	TotalProducts   int64                   `json:"total_products"`
	TotalCategories int64                   `json:"total_categories"`
	TotalQuotes     int64                   `json:"total_quotes"`
	PendingQuotes   int64                   `json:"pending_quotes"`
	RecentQuotes    interface{}             `json:"recent_quotes"`
	QuoteStatistics QuoteStatisticsResponse `json:"quote_statistics"`
}

// PaginatedResponse represents paginated response
type PaginatedResponse struct {
	Data       interface{}    `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}

// PaginationInfo represents pagination information
type PaginationInfo struct {
	CurrentPage  int   `json:"current_page"`
	PageSize     int   `json:"page_size"`
	TotalRecords int64 `json:"total_records"`
}

// HealthCheckResponse represents health check response
type HealthCheckResponse struct {
	Status    string                 `json:"status"`
	Timestamp int64                  `json:"timestamp"`
	Version   string                 `json:"version"`
	Uptime    int64                  `json:"uptime"`
	Checks    map[string]HealthCheck `json:"checks"`
}

// HealthCheck represents individual health check
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}
