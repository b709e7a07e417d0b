package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string

	// Local dataset of name_age records, read on every lookup
	DatasetPath string

	// Remote age prediction service
	PredictorURL     string
	PredictorTimeout time.Duration

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "http://localhost:4200"

	// Features
	MetricsEnabled bool

	// UI assets
	ViewsDir  string
	StaticDir string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:              getEnv("ENV", "development"),
		ServerAddr:       getEnv("SERVER_ADDR", ":8080"),
		TLSEnabled:       getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:      getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:       getEnv("TLS_KEY_FILE", ""),
		DatasetPath:      getEnv("DATASET_PATH", "name_age.txt"),
		PredictorURL:     getEnv("PREDICTOR_URL", "https://api.agify.io/"),
		PredictorTimeout: getEnvDuration("PREDICTOR_TIMEOUT", 10*time.Second),
		CORSOrigins:      getEnv("CORS_ORIGINS", "http://localhost:4200"),
		MetricsEnabled:   getEnv("METRICS_ENABLED", "true") != "false",
		ViewsDir:         getEnv("VIEWS_DIR", "./views"),
		StaticDir:        getEnv("STATIC_DIR", "./static"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid %s %q, using %v: %v", key, value, fallback, err)
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// AllowedOrigins splits CORSOrigins into a trimmed list, dropping empty entries.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
