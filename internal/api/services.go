package api

import (
	"database/sql"

	"hardware-catalog/internal/auth"
	"hardware-catalog/internal/database/repositories"
	"hardware-catalog/pkg/config"
	"hardware-catalog/pkg/logger"
)

// Services contains all the dependencies for API handlers
type Services struct {
	DB     *sql.DB
	Logger *logger.Logger
	Config *config.Config

	authService  *auth.Service
	tokenCodec   *auth.TokenCodec
	accessPolicy *auth.Policy

	adminUserRepository   *repositories.AdminUserRepository
	categoryRepository    *repositories.CategoryRepository
	productRepository     *repositories.ProductRepository
	translationRepository *repositories.TranslationRepository
	bannerRepository      *repositories.BannerRepository
	configRepository      *repositories.ConfigRepository
	templateRepository    *repositories.TemplateRepository
	languageRepository    *repositories.LanguageRepository
	quoteRepository       *repositories.QuoteRepository
}

// NewServices creates a new services container
func NewServices(db *sql.DB, log *logger.Logger, cfg *config.Config) *Services {
	services := &Services{
		DB:     db,
		Logger: log,
		Config: cfg,
	}

	services.adminUserRepository = repositories.NewAdminUserRepository(db)
	services.categoryRepository = repositories.NewCategoryRepository(db)
	services.productRepository = repositories.NewProductRepository(db)
	services.translationRepository = repositories.NewTranslationRepository(db)
	services.bannerRepository = repositories.NewBannerRepository(db)
	services.configRepository = repositories.NewConfigRepository(db)
	services.templateRepository = repositories.NewTemplateRepository(db)
	services.languageRepository = repositories.NewLanguageRepository(db)
	services.quoteRepository = repositories.NewQuoteRepository(db)

	verifier := auth.NewPasswordVerifier(cfg.Security.BcryptCost)
	services.tokenCodec = auth.NewTokenCodec(cfg.Security.JWTSecret, cfg.Security.JWTExpiration)
	services.accessPolicy = auth.DefaultPolicy()
	services.authService = auth.NewService(
		services.adminUserRepository,
		verifier,
		services.tokenCodec,
		auth.ServiceOptions{
			DefaultRole:       cfg.Security.DefaultRole,
			PasswordMinLength: cfg.Security.PasswordMinLength,
		},
		log,
	)

	return services
}

// EnsureBootstrapAdmin provisions the configured admin account when
// the store is empty of it.
func (s *Services) EnsureBootstrapAdmin() error {
	return s.authService.EnsureBootstrapAdmin(
		s.Config.Security.AdminUsername,
		s.Config.Security.AdminPassword,
		"",
	)
}

// Interface implementation methods
func (s *Services) GetLogger() *logger.Logger {
	return s.Logger
}

func (s *Services) AuthService() *auth.Service {
	return s.authService
}

func (s *Services) TokenCodec() *auth.TokenCodec {
	return s.tokenCodec
}

func (s *Services) AccessPolicy() *auth.Policy {
	return s.accessPolicy
}

func (s *Services) AdminUserRepository() *repositories.AdminUserRepository {
	return s.adminUserRepository
}

func (s *Services) CategoryRepository() *repositories.CategoryRepository {
	return s.categoryRepository
}

func (s *Services) ProductRepository() *repositories.ProductRepository {
	return s.productRepository
}

func (s *Services) TranslationRepository() *repositories.TranslationRepository {
	return s.translationRepository
}

func (s *Services) BannerRepository() *repositories.BannerRepository {
	return s.bannerRepository
}

func (s *Services) ConfigRepository() *repositories.ConfigRepository {
	return s.configRepository
}

func (s *Services) TemplateRepository() *repositories.TemplateRepository {
	return s.templateRepository
}

func (s *Services) LanguageRepository() *repositories.LanguageRepository {
	return s.languageRepository
}

func (s *Services) QuoteRepository() *repositories.QuoteRepository {
	return s.quoteRepository
}

// IsHealthy checks if all critical services are healthy
func (s *Services) IsHealthy() bool {
	if err := s.DB.Ping(); err != nil {
		s.Logger.Error("Database health check failed: %v", err)
		return false
	}
	return true
}
