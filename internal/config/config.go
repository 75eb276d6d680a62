package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
	}

	Server struct {
		Port        string
		GinMode     string
		Environment string
		LogLevel    string
	}

	Auth struct {
		JWTSecret   string
		TokenTTL    time.Duration
		AdminDomain string
	}

	Gallery struct {
		Endpoint  string
		AccessKey string
		SecretKey string
		Bucket    string
		UseSSL    bool
		PublicURL string
	}

	CORS struct {
		AllowOrigins string
		AllowMethods string
		AllowHeaders string
	}
}

// Load loads configuration from environment variables
func Load() *Config {
	_ = godotenv.Load()

	config := &Config{}

	config.DB.Host = getEnv("DB_HOST", "localhost")
	config.DB.Port = getEnv("DB_PORT", "5432")
	config.DB.User = getEnv("DB_USER", "brightpath")
	config.DB.Password = getEnv("DB_PASSWORD", "brightpath_password")
	config.DB.Name = getEnv("DB_NAME", "brightpath_db")
	config.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	config.Server.Port = getEnv("PORT", "8080")
	config.Server.GinMode = getEnv("GIN_MODE", "debug")
	config.Server.Environment = getEnv("ENVIRONMENT", "development")
	config.Server.LogLevel = getEnv("LOG_LEVEL", "info")

	config.Auth.JWTSecret = getEnv("JWT_SECRET", "dev-only-secret")
	config.Auth.TokenTTL = getEnvAsDuration("JWT_TTL", 12*time.Hour)
	config.Auth.AdminDomain = getEnv("ADMIN_EMAIL_DOMAIN", "brightpath.org")

	config.Gallery.Endpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	config.Gallery.AccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	config.Gallery.SecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	config.Gallery.Bucket = getEnv("MINIO_BUCKET", "brightpath-gallery")
	config.Gallery.UseSSL = getEnvAsBool("MINIO_USE_SSL", false)
	config.Gallery.PublicURL = getEnv("GALLERY_PUBLIC_URL", "http://localhost:9000/brightpath-gallery")

	config.CORS.AllowOrigins = getEnv("CORS_ALLOW_ORIGINS", "*")
	config.CORS.AllowMethods = getEnv("CORS_ALLOW_METHODS", "GET,POST,PUT,PATCH,DELETE,HEAD,OPTIONS")
	config.CORS.AllowHeaders = getEnv("CORS_ALLOW_HEADERS", "Origin,Content-Length,Content-Type,Authorization")

	return config
}

// GetDatabaseURL returns the database connection URL
func (c *Config) GetDatabaseURL() string {
	return "postgres://" + c.DB.User + ":" + c.DB.Password + "@" + c.DB.Host + ":" + c.DB.Port + "/" + c.DB.Name + "?sslmode=" + c.DB.SSLMode
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as bool or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvAsDuration gets an environment variable as a duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
