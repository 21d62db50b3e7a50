package api

import (
	"hardware-catalog/internal/api/handlers"
	"hardware-catalog/internal/api/interfaces"
	"hardware-catalog/internal/api/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes with proper middleware. Route
// protection is not attached per group: the SecurityFilter runs
// globally and resolves the required level from the access policy, so
// the policy table is the single place route protection is declared.
func SetupRoutes(router *gin.Engine, services interfaces.Services) {
	cfg := services.(*Services).Config

	// Global middleware
	router.Use(middlewares.Recovery())
	router.Use(middlewares.CORS(cfg.API.CORS.AllowedOrigins))
	router.Use(middlewares.Security())
	router.Use(middlewares.RequestLogging(services.GetLogger()))
	router.Use(middlewares.RateLimit(cfg.API.RateLimit))
	router.Use(middlewares.SecurityFilter(services.AccessPolicy(), services.TokenCodec(), services.GetLogger()))

	// Health check
	router.GET("/health", handlers.HealthCheck(services))
	router.GET("/ping", handlers.HealthCheck(services))

	v1 := router.Group("/api/v1")
	{
		setupAuthRoutes(v1, services)
		setupCatalogRoutes(v1, services)
		setupQuoteRoutes(v1, services)
		setupAdminRoutes(v1, services)
	}
}

// setupAuthRoutes configures authentication and account routes
func setupAuthRoutes(rg *gin.RouterGroup, services interfaces.Services) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", handlers.Login(services))
		auth.POST("/register", handlers.Register(services))
		auth.GET("/me", handlers.GetProfile(services))
		auth.PUT("/me", handlers.UpdateProfile(services))
		auth.POST("/change-password", handlers.ChangePassword(services))

		// Account administration; admin-only by policy
		users := auth.Group("/users")
		{
			users.GET("", handlers.ListUsers(services))
			users.GET("/by-email/:email", handlers.GetUserByEmail(services))
			users.POST("/:id/reset-password", handlers.ResetUserPassword(services))
			users.POST("/:id/activate", handlers.SetUserActive(services, true))
			users.POST("/:id/deactivate", handlers.SetUserActive(services, false))
		}
	}
}

// setupCatalogRoutes configures the public catalog surface
func setupCatalogRoutes(rg *gin.RouterGroup, services interfaces.Services) {
	categories := rg.Group("/categories")
	{
		categories.GET("", handlers.ListCategories(services))
		categories.GET("/:id", handlers.GetCategory(services))
	}

	products := rg.Group("/products")
	{
		products.GET("", handlers.ListProducts(services))
		products.GET("/search", handlers.SearchProducts(services))
		products.GET("/:id", handlers.GetProduct(services))
	}

	banners := rg.Group("/banners")
	{
		banners.GET("", handlers.ListBanners(services))
		banners.GET("/:id", handlers.GetBanner(services))
	}

	config := rg.Group("/config")
	{
		config.GET("", handlers.GetPublicConfig(services))
		config.GET("/:key", handlers.GetConfigByKey(services))

		// Admin maintenance; admin-only by policy
		config.POST("/admin", handlers.SaveConfig(services))
		config.DELETE("/admin/:key", handlers.DeleteConfig(services))
	}

	templates := rg.Group("/templates")
	{
		templates.GET("", handlers.ListTemplates(services))
		templates.GET("/types", handlers.ListTemplateTypes(services))
		templates.GET("/:type/:language", handlers.GetTemplate(services))
		templates.POST("/render", handlers.RenderTemplate(services))

		templates.POST("/admin", handlers.SaveTemplate(services))
		templates.DELETE("/admin/:type/:language", handlers.DeleteTemplate(services))
	}

	languages := rg.Group("/languages")
	{
		languages.GET("", handlers.ListLanguages(services))
		languages.GET("/default", handlers.GetDefaultLanguage(services))

		admin := languages.Group("/admin")
		{
			admin.GET("", handlers.ListAllLanguages(services))
			admin.POST("", handlers.CreateLanguage(services))
			admin.PUT("/:id", handlers.UpdateLanguage(services))
			admin.PUT("/:id/default", handlers.SetDefaultLanguage(services))
			admin.DELETE("/:id", handlers.DeleteLanguage(services))
		}
	}
}

// setupQuoteRoutes configures quote request routes. Submission is
// public; everything else requires authentication.
func setupQuoteRoutes(rg *gin.RouterGroup, services interfaces.Services) {
	quotes := rg.Group("/quotes")
	{
		quotes.POST("", handlers.SubmitQuote(services))
		quotes.GET("", handlers.ListQuotes(services))
		quotes.GET("/recent", handlers.RecentQuotes(services))
		quotes.GET("/:id", handlers.GetQuote(services))
		quotes.PUT("/:id/status", handlers.UpdateQuoteStatus(services))
		quotes.DELETE("/:id", handlers.DeleteQuote(services))
	}
}

// setupAdminRoutes configures back-office management routes
func setupAdminRoutes(rg *gin.RouterGroup, services interfaces.Services) {
	admin := rg.Group("/admin")
	{
		admin.GET("/dashboard", handlers.AdminDashboard(services))
		admin.GET("/stats", handlers.AdminStats(services))
		admin.GET("/quotes/statistics", handlers.GetQuoteStatistics(services))

		categories := admin.Group("/categories")
		{
			categories.GET("", handlers.ListAllCategories(services))
			categories.POST("", handlers.CreateCategory(services))
			categories.PUT("/:id", handlers.UpdateCategory(services))
			categories.DELETE("/:id", handlers.DeleteCategory(services))
		}

		products := admin.Group("/products")
		{
			products.POST("", handlers.CreateProduct(services))
			products.PUT("/:id", handlers.UpdateProduct(services))
			products.DELETE("/:id", handlers.DeleteProduct(services))
		}

		banners := admin.Group("/banners")
		{
			banners.GET("", handlers.ListAllBanners(services))
			banners.POST("", handlers.CreateBanner(services))
			banners.PUT("/reorder", handlers.ReorderBanners(services))
			banners.PUT("/:id", handlers.UpdateBanner(services))
			banners.DELETE("/:id", handlers.DeleteBanner(services))
		}
	}
}
