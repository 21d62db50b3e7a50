package models

// Error codes
const (
	// General errors
	ErrCodeInvalidRequest     = "INVALID_REQUEST"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"

	// Authentication errors
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeTokenExpired       = "TOKEN_EXPIRED"
	ErrCodeInvalidToken       = "INVALID_TOKEN"
	ErrCodeWeakPassword       = "WEAK_PASSWORD"
	ErrCodeDuplicateUsername  = "DUPLICATE_USERNAME"
	ErrCodeDuplicateEmail     = "DUPLICATE_EMAIL"

	// Catalog errors
	ErrCodeCategoryNotFound = "CATEGORY_NOT_FOUND"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeBannerNotFound   = "BANNER_NOT_FOUND"
	ErrCodeTemplateNotFound = "TEMPLATE_NOT_FOUND"
	ErrCodeLanguageNotFound = "LANGUAGE_NOT_FOUND"
	ErrCodeConfigNotFound   = "CONFIG_NOT_FOUND"

	// Quote errors
	ErrCodeQuoteNotFound      = "QUOTE_NOT_FOUND"
	ErrCodeInvalidQuoteStatus = "INVALID_QUOTE_STATUS"
)

// APIError represents a structured API error
type APIError struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Details    string            `json:"details,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
	StatusCode int               `json:"-"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new API error
func NewAPIError(code, message string, statusCode int) *APIError {
	return &APIError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithDetails adds details to the error
func (e *APIError) WithDetails(details string) *APIError {
	e.Details = details
	return e
}

// WithField adds a field error
func (e *APIError) WithField(field, message string) *APIError {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
	return e
}
