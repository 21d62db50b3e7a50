package interfaces

import (
	"hardware-catalog/internal/auth"
	"hardware-catalog/internal/database/repositories"
	"hardware-catalog/pkg/logger"
)

// Services defines the interface for API services
type Services interface {
	GetLogger() *logger.Logger
	AuthService() *auth.Service
	TokenCodec() *auth.TokenCodec
	AccessPolicy() *auth.Policy
	IsHealthy() bool

	AdminUserRepository() *repositories.AdminUserRepository
	CategoryRepository() *repositories.CategoryRepository
	ProductRepository() *repositories.ProductRepository
	TranslationRepository() *repositories.TranslationRepository
	BannerRepository() *repositories.BannerRepository
	ConfigRepository() *repositories.ConfigRepository
	TemplateRepository() *repositories.TemplateRepository
	LanguageRepository() *repositories.LanguageRepository
	QuoteRepository() *repositories.QuoteRepository
}
