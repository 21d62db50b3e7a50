package models

// LoginRequest represents a login attempt
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// RegisterRequest represents an account registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
}

// ChangePasswordRequest represents a password rotation by the account owner
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// ResetPasswordRequest represents an administrative password reset
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required"`
}

// UpdateProfileRequest represents a profile update
type UpdateProfileRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// CategoryRequest represents category create/update payload
type CategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	ImageURL  string `json:"image_url"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

// ProductRequest represents product create/update payload
type ProductRequest struct {
	CategoryID     int64                `json:"category_id" binding:"required"`
	Brand          string               `json:"brand"`
	ImageURL       string               `json:"image_url"`
	TechnicalSpecs string               `json:"technical_specs"`
	UsageInfo      string               `json:"usage_info"`
	IsActive       *bool                `json:"is_active"`
	Translations   []TranslationRequest `json:"translations"`
}

// TranslationRequest represents per-language product text
type TranslationRequest struct {
	LanguageCode string `json:"language_code" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
}

// BannerRequest represents banner create/update payload
type BannerRequest struct {
	Title     string `json:"title" binding:"required"`
	ImageURL  string `json:"image_url" binding:"required"`
	LinkURL   string `json:"link_url"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

// BannerOrderRequest represents a banner reordering payload; banner IDs
// listed in their new display order
type BannerOrderRequest struct {
	BannerIDs []int64 `json:"banner_ids" binding:"required,min=1"`
}

// ConfigEntryRequest represents a configuration key/value payload
type ConfigEntryRequest struct {
	KeyName string `json:"key_name" binding:"required"`
	Value   string `json:"value" binding:"required"`
}

// TemplateRequest represents a message template payload
type TemplateRequest struct {
	Type         string `json:"type" binding:"required"`
	LanguageCode string `json:"language_code" binding:"required"`
	Template     string `json:"template" binding:"required"`
}

// RenderTemplateRequest represents a template render request; values
// replace {key} placeholders in the template body
type RenderTemplateRequest struct {
	Type         string            `json:"type" binding:"required"`
	LanguageCode string            `json:"language_code" binding:"required"`
	Values       map[string]string `json:"values"`
}

// LanguageRequest represents a supported language payload
type LanguageRequest struct {
	Code       string `json:"code" binding:"required"`
	Name       string `json:"name" binding:"required"`
	NativeName string `json:"native_name"`
	IsDefault  bool   `json:"is_default"`
	IsActive   *bool  `json:"is_active"`
}

// QuoteRequestPayload represents a customer quote submission
type QuoteRequestPayload struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	ProductID    *int64 `json:"product_id"`
	Quantity     string `json:"quantity"`
	Location     string `json:"location"`
	LanguageCode string `json:"language_code"`
}

// QuoteStatusRequest represents a quote status transition
type QuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
