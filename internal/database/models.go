package database

import "time"

// AdminUser represents a back-office account
type AdminUser struct {
	ID           int64      `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"` // Never include in JSON
	FullName     string     `db:"full_name" json:"full_name"`
	Role         string     `db:"role" json:"role"`
	IsActive     bool       `db:"is_active" json:"is_active"`
	LastLogin    *time.Time `db:"last_login" json:"last_login"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// Category represents a product category
type Category struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	ImageURL  string    `db:"image_url" json:"image_url"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Product represents a catalog product
type Product struct {
	ID             int64                `db:"id" json:"id"`
	CategoryID     int64                `db:"category_id" json:"category_id"`
	Brand          string               `db:"brand" json:"brand"`
	ImageURL       string               `db:"image_url" json:"image_url"`
	TechnicalSpecs string               `db:"technical_specs" json:"technical_specs"`
	UsageInfo      string               `db:"usage_info" json:"usage_info"`
	IsActive       bool                 `db:"is_active" json:"is_active"`
	CreatedAt      time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time            `db:"updated_at" json:"updated_at"`
	Translations   []ProductTranslation `db:"-" json:"translations,omitempty"`
}

// ProductTranslation represents per-language product text
type ProductTranslation struct {
	ID           int64  `db:"id" json:"id"`
	ProductID    int64  `db:"product_id" json:"product_id"`
	LanguageCode string `db:"language_code" json:"language_code"`
	Name         string `db:"name" json:"name"`
	Description  string `db:"description" json:"description"`
}

// Banner represents a promotional banner
type Banner struct {
	ID        int64     `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	ImageURL  string    `db:"image_url" json:"image_url"`
	LinkURL   string    `db:"link_url" json:"link_url"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// AppConfig represents a configuration key/value pair
type AppConfig struct {
	ID        int64     `db:"id" json:"id"`
	KeyName   string    `db:"key_name" json:"key_name"`
	Value     string    `db:"value" json:"value"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// MessageTemplate represents a message template for a type/language pair
type MessageTemplate struct {
	ID           int64     `db:"id" json:"id"`
	Type         string    `db:"type" json:"type"`
	LanguageCode string    `db:"language_code" json:"language_code"`
	Template     string    `db:"template" json:"template"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// SupportedLanguage represents an available catalog language
type SupportedLanguage struct {
	ID         int64  `db:"id" json:"id"`
	Code       string `db:"code" json:"code"`
	Name       string `db:"name" json:"name"`
	NativeName string `db:"native_name" json:"native_name"`
	IsDefault  bool   `db:"is_default" json:"is_default"`
	IsActive   bool   `db:"is_active" json:"is_active"`
}

// Quote request status values
const (
	QuoteStatusPending   = "PENDING"
	QuoteStatusContacted = "CONTACTED"
	QuoteStatusCompleted = "COMPLETED"
)

// QuoteRequest represents a customer quote submission
type QuoteRequest struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Phone        string    `db:"phone" json:"phone"`
	ProductID    *int64    `db:"product_id" json:"product_id"`
	Quantity     string    `db:"quantity" json:"quantity"`
	Location     string    `db:"location" json:"location"`
	LanguageCode string    `db:"language_code" json:"language_code"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// ValidQuoteStatus reports whether s is a known quote status.
func ValidQuoteStatus(s string) bool {
	switch s {
	case QuoteStatusPending, QuoteStatusContacted, QuoteStatusCompleted:
		return true
	}
	return false
}
