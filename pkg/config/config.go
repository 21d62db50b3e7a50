package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Security SecurityConfig `mapstructure:"security"`
	API      APIConfig      `mapstructure:"api"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         string        `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"` // gin mode: debug, release, test
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	TLS          TLSConfig     `mapstructure:"tls"`
}

// TLSConfig holds TLS/SSL configuration
type TLSConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	CertFile string `mapstructure:"cert_file"`
	KeyFile  string `mapstructure:"key_file"`
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Type         string        `mapstructure:"type"` // postgres, sqlite
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	User         string        `mapstructure:"user"`
	Password     string        `mapstructure:"password"`
	DBName       string        `mapstructure:"dbname"`
	Path         string        `mapstructure:"path"`    // For SQLite
	SSLMode      string        `mapstructure:"sslmode"` // For PostgreSQL
	MaxOpenConns int           `mapstructure:"max_open_conns"`
	MaxIdleConns int           `mapstructure:"max_idle_conns"`
	MaxLifetime  time.Duration `mapstructure:"max_lifetime"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`  // debug, info, warn, error
	Format     string `mapstructure:"format"` // json, text
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"` // MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
	Compress   bool   `mapstructure:"compress"`
}

// SecurityConfig holds authentication and authorization configuration
type SecurityConfig struct {
	JWTSecret         string        `mapstructure:"jwt_secret"`
	JWTExpiration     time.Duration `mapstructure:"jwt_expiration"`
	BcryptCost        int           `mapstructure:"bcrypt_cost"`
	PasswordMinLength int           `mapstructure:"password_min_length"`
	// DefaultRole is the role granted to newly registered accounts.
	DefaultRole   string `mapstructure:"default_role"`
	AdminUsername string `mapstructure:"admin_username"`
	AdminPassword string `mapstructure:"admin_password"`
}

// APIConfig holds API-related configuration
type APIConfig struct {
	RateLimit  int        `mapstructure:"rate_limit"` // requests per minute
	BurstLimit int        `mapstructure:"burst_limit"`
	CORS       CORSConfig `mapstructure:"cors"`
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	setDefaults()

	viper.SetConfigFile(configPath)

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetEnvPrefix("HARDWARE")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Printf("Warning: Config file not found at %s, using defaults\n", configPath)
		} else if os.IsNotExist(err) {
			fmt.Printf("Warning: Config file not found at %s, using defaults\n", configPath)
		} else {
			return nil, fmt.Errorf("error reading config file: %v", err)
		}
	}

	overrideWithEnvVars()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %v", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %v", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "60s")

	// Database defaults
	viper.SetDefault("database.type", "sqlite")
	viper.SetDefault("database.path", "./hardware.db")
	viper.SetDefault("database.max_open_conns", 25)
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_lifetime", "5m")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.file", "./logs/app.log")
	viper.SetDefault("logging.max_size", 100)
	viper.SetDefault("logging.max_backups", 3)
	viper.SetDefault("logging.max_age", 28)
	viper.SetDefault("logging.compress", true)

	// Security defaults
	viper.SetDefault("security.jwt_expiration", "24h")
	viper.SetDefault("security.bcrypt_cost", 10)
	viper.SetDefault("security.password_min_length", 6)
	viper.SetDefault("security.default_role", "ADMIN")

	// API defaults
	viper.SetDefault("api.rate_limit", 100)
	viper.SetDefault("api.burst_limit", 200)

	// CORS defaults
	viper.SetDefault("api.cors.allowed_origins", []string{"*"})
	viper.SetDefault("api.cors.allowed_methods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	viper.SetDefault("api.cors.allowed_headers", []string{"Authorization", "Content-Type", "X-Requested-With", "Accept"})
	viper.SetDefault("api.cors.allow_credentials", true)
	viper.SetDefault("api.cors.max_age", 3600)
}

// overrideWithEnvVars overrides config with specific environment variables
func overrideWithEnvVars() {
	// Critical environment variables that should always override config
	envMappings := map[string]string{
		"JWT_SECRET":     "security.jwt_secret",
		"ADMIN_USERNAME": "security.admin_username",
		"ADMIN_PASSWORD": "security.admin_password",
		"DB_PASSWORD":    "database.password",
		"DB_USER":        "database.user",
	}

	for envVar, configKey := range envMappings {
		if value := os.Getenv(envVar); value != "" {
			viper.Set(configKey, value)
		}
	}
}

// validateConfig validates the loaded configuration
func validateConfig(config *Config) error {
	if config.Security.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if config.Security.JWTExpiration <= 0 {
		return fmt.Errorf("JWT expiration must be positive")
	}

	if config.Security.BcryptCost < 4 || config.Security.BcryptCost > 31 {
		return fmt.Errorf("bcrypt cost must be between 4 and 31")
	}

	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	switch config.Database.Type {
	case "postgres":
		if config.Database.Host == "" || config.Database.User == "" {
			return fmt.Errorf("postgres requires host and user")
		}
	case "sqlite":
		if config.Database.Path == "" {
			return fmt.Errorf("sqlite requires path")
		}
	default:
		return fmt.Errorf("unsupported database type: %s", config.Database.Type)
	}

	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	switch c.Database.Type {
	case "postgres":
		sslMode := c.Database.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Database.Host, c.Database.Port, c.Database.User,
			c.Database.Password, c.Database.DBName, sslMode)
	case "sqlite":
		return c.Database.Path
	default:
		return ""
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Mode == "debug" || c.Server.Mode == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Mode == "release" || c.Server.Mode == "production"
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
