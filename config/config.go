package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Catalog sources
const (
	CatalogBuiltin  = "builtin"
	CatalogSQLite   = "sqlite"
	CatalogPostgres = "postgres"
)

// Config holds all configuration for the pathfinder service
type Config struct {
	// HTTP
	Port           string
	AllowedOrigins []string
	StaticDir      string

	// Path service
	PathServiceURL     string
	PathServiceTimeout time.Duration // 0 = no timeout

	// Catalog
	CatalogSource  string
	SQLiteDatabase string
	DatabaseURL    string

	// Sessions
	SessionTTL         time.Duration
	KeepStaleResponses bool

	Logging LoggingConfig
}

// LoggingConfig controls structured logging settings
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8081"),
		AllowedOrigins: splitCSV(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		StaticDir:      os.Getenv("STATIC_DIR"),

		PathServiceURL: getEnv("PATH_SERVICE_URL", "http://localhost:5000/find_shortest_path"),

		CatalogSource:  strings.ToLower(getEnv("CATALOG_SOURCE", CatalogBuiltin)),
		SQLiteDatabase: getEnv("SQLITE_DATABASE", "data/catalog.db"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),

		KeepStaleResponses: getEnvBool("KEEP_STALE_RESPONSES", false),

		Logging: LoggingConfig{
			Level:         getEnv("LOG_LEVEL", "info"),
			Format:        getEnv("LOG_FORMAT", "text"),
			IncludeCaller: getEnvBool("LOG_INCLUDE_CALLER", false),
		},
	}

	var err error
	if cfg.PathServiceTimeout, err = getEnvDuration("PATH_SERVICE_TIMEOUT", 0); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = getEnvDuration("SESSION_TTL", 30*time.Minute); err != nil {
		return nil, err
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}

	if err := cfg.validateCatalog(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validateCatalog() error {
	switch c.CatalogSource {
	case CatalogBuiltin, CatalogSQLite:
		return nil
	case CatalogPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("CATALOG_SOURCE=postgres requires DATABASE_URL")
		}
		return nil
	}
	return fmt.Errorf("invalid CATALOG_SOURCE %q (want %s, %s or %s)", c.CatalogSource, CatalogBuiltin, CatalogSQLite, CatalogPostgres)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
