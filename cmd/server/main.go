package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hardware-catalog/internal/api"
	"hardware-catalog/internal/database"
	"hardware-catalog/pkg/config"
	"hardware-catalog/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "configs/server.yaml", "path to the configuration file")
	flag.Parse()

	// Local development convenience; missing .env is not an error.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.NewLogger(logger.Options{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		File:       cfg.Logging.File,
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAge,
		Compress:   cfg.Logging.Compress,
	})

	appLogger.Info("Starting hardware catalog server (mode: %s)", cfg.Server.Mode)

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		appLogger.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		appLogger.Fatal("Failed to run migrations: %v", err)
	}

	services := api.NewServices(db, appLogger, cfg)

	if err := services.EnsureBootstrapAdmin(); err != nil {
		appLogger.Fatal("Failed to provision bootstrap admin: %v", err)
	}

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	api.SetupRoutes(router, services)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Listening on %s", server.Addr)

		var err error
		if cfg.Server.TLS.Enabled {
			err = server.ListenAndServeTLS(cfg.Server.TLS.CertFile, cfg.Server.TLS.KeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown: %v", err)
	}

	appLogger.Info("Server stopped")
}
