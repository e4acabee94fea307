// Package config loads application settings from the environment.
// File: config/config.go
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"kamaru-web/logger"
)

// Config holds every runtime setting the application needs. All values
// come from environment variables, optionally seeded from a .env file.
type Config struct {
	Port          string
	Environment   string
	AppURL        string
	APIBaseURL    string
	SessionSecret string

	// CloudWatch metrics publishing (disabled unless explicitly enabled)
	MetricsEnabled bool
}

// Load reads environment variables and returns a Config object.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Infof("No .env file, using environment variables")
	}

	metricsEnabled, _ := strconv.ParseBool(os.Getenv("METRICS_ENABLED"))

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("APP_ENV", "development"),
		AppURL:         getEnv("APPLICATION_URL", "http://localhost:8080"),
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:5000/api"),
		SessionSecret:  getEnv("SESSION_SECRET", "change-me"),
		MetricsEnabled: metricsEnabled,
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
