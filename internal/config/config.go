package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Media backend selectors.
const (
	MediaBackendCloudinary = "cloudinary"
	MediaBackendS3         = "s3"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Media    MediaConfig
	WhatsApp WhatsAppConfig
	Site     SiteConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds session verification configuration. The secret is the
// identity provider's JWT signing secret; this service never issues tokens.
type AuthConfig struct {
	SessionSecret string
}

// MediaConfig selects and configures the image upload backend.
type MediaConfig struct {
	Backend    string // "cloudinary" or "s3"
	Cloudinary CloudinaryConfig
	S3         S3Config
}

// CloudinaryConfig holds the unsigned-upload settings for Cloudinary.
type CloudinaryConfig struct {
	CloudName    string
	UploadPreset string
	Folder       string
}

// S3Config holds AWS S3 configuration for the self-hosted media backend.
type S3Config struct {
	Bucket  string
	Region  string
	Prefix  string
	BaseURL string // public base URL the bucket is served from
}

// WhatsAppConfig holds the checkout deep-link destination.
type WhatsAppConfig struct {
	// Number is the destination in international format, digits only.
	Number string
}

// SiteConfig holds storefront metadata.
type SiteConfig struct {
	Name          string
	Tagline       string
	Currency      string
	CurrencyCode  string
	Origin        string // public origin for canonical product URLs
	SkeletonCount int
}

// Load loads configuration from the environment. A .env file in the working
// directory is applied first when present.
func Load() (*Config, error) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "shopde"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			SessionSecret: getEnv("SESSION_JWT_SECRET", ""),
		},
		Media: MediaConfig{
			Backend: getEnv("MEDIA_BACKEND", MediaBackendCloudinary),
			Cloudinary: CloudinaryConfig{
				CloudName:    getEnv("CLOUDINARY_CLOUD_NAME", ""),
				UploadPreset: getEnv("CLOUDINARY_UPLOAD_PRESET", ""),
				Folder:       getEnv("CLOUDINARY_FOLDER", "catalogo"),
			},
			S3: S3Config{
				Bucket:  getEnv("S3_BUCKET", ""),
				Region:  getEnv("S3_REGION", "us-east-1"),
				Prefix:  getEnv("S3_PREFIX", "catalogo/"),
				BaseURL: getEnv("S3_BASE_URL", ""),
			},
		},
		WhatsApp: WhatsAppConfig{
			Number: getEnv("WHATSAPP_NUMBER", ""),
		},
		Site: SiteConfig{
			Name:          getEnv("SITE_NAME", "SHOPDE"),
			Tagline:       getEnv("SITE_TAGLINE", "Los mejores productos, directo a tu WhatsApp"),
			Currency:      getEnv("SITE_CURRENCY", "$"),
			CurrencyCode:  getEnv("SITE_CURRENCY_CODE", "COP"),
			Origin:        getEnv("SITE_ORIGIN", "http://localhost:8080"),
			SkeletonCount: getEnvAsInt("SITE_SKELETON_COUNT", 8),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Database.Port)
	}

	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Database.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.Database.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.Database.MinConnections > c.Database.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	if c.Auth.SessionSecret == "" {
		return fmt.Errorf("session JWT secret is required")
	}

	if c.WhatsApp.Number == "" {
		return fmt.Errorf("WhatsApp number is required")
	}
	for _, r := range c.WhatsApp.Number {
		if r < '0' || r > '9' {
			return fmt.Errorf("WhatsApp number must contain digits only (no + or spaces): %s", c.WhatsApp.Number)
		}
	}

	switch c.Media.Backend {
	case MediaBackendCloudinary:
		if c.Media.Cloudinary.CloudName == "" {
			return fmt.Errorf("Cloudinary cloud name is required")
		}
		if c.Media.Cloudinary.UploadPreset == "" {
			return fmt.Errorf("Cloudinary upload preset is required")
		}
	case MediaBackendS3:
		if c.Media.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required when the S3 media backend is selected")
		}
		if c.Media.S3.Region == "" {
			return fmt.Errorf("S3 region is required when the S3 media backend is selected")
		}
		if c.Media.S3.BaseURL == "" {
			return fmt.Errorf("S3 base URL is required when the S3 media backend is selected")
		}
	default:
		return fmt.Errorf("invalid media backend: %s (must be %s or %s)",
			c.Media.Backend, MediaBackendCloudinary, MediaBackendS3)
	}

	if c.Site.Currency == "" {
		return fmt.Errorf("site currency symbol is required")
	}

	if c.Site.SkeletonCount < 1 {
		return fmt.Errorf("skeleton count must be at least 1")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
