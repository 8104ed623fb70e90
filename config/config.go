package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// CatalogSource selects where catalog stores load from.
type CatalogSource string

const (
	SourceStatic   CatalogSource = "static"
	SourcePostgres CatalogSource = "postgres"
	SourceRemote   CatalogSource = "remote"
)

// Config holds the settings read from the environment
type Config struct {
	Env     string
	Port    string
	BaseURL string

	LogLevel string

	CatalogSource   CatalogSource
	CatalogSeedFile string
	CatalogAPIURL   string
	CatalogTimeout  time.Duration

	DatabaseURL string

	GoogleCredentialsPath string
	ImagesFolderID        string
	ImageCacheDir         string
	StaticDir             string

	ChromePath string
}

// Load reads the configuration from environment variables, applying defaults
func Load() (*Config, error) {
	cfg := &Config{
		Env:                   getenv("ENV", "development"),
		Port:                  normalizePort(getenv("PORT", "8080")),
		LogLevel:              getenv("LOG_LEVEL", "info"),
		CatalogSource:         CatalogSource(strings.ToLower(getenv("CATALOG_SOURCE", string(SourceStatic)))),
		CatalogSeedFile:       os.Getenv("CATALOG_SEED_FILE"),
		CatalogAPIURL:         strings.TrimRight(os.Getenv("CATALOG_API_URL"), "/"),
		GoogleCredentialsPath: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		ImagesFolderID:        os.Getenv("CATALOG_IMAGES_FOLDER_ID"),
		ImageCacheDir:         getenv("IMAGE_CACHE_DIR", "cache/images"),
		StaticDir:             getenv("STATIC_DIR", "."),
		ChromePath:            os.Getenv("CHROME_PATH"),
	}
	cfg.BaseURL = strings.TrimRight(getenv("BASE_URL", "http://localhost:"+cfg.Port), "/")

	timeout, err := time.ParseDuration(getenv("CATALOG_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CATALOG_TIMEOUT: %w", err)
	}
	cfg.CatalogTimeout = timeout

	switch cfg.CatalogSource {
	case SourceStatic:
	case SourcePostgres:
		dsn, err := databaseURL()
		if err != nil {
			return nil, err
		}
		cfg.DatabaseURL = dsn
	case SourceRemote:
		if cfg.CatalogAPIURL == "" {
			return nil, fmt.Errorf("CATALOG_API_URL must be set when CATALOG_SOURCE=remote")
		}
	default:
		return nil, fmt.Errorf("unknown CATALOG_SOURCE %q (expected static, postgres or remote)", cfg.CatalogSource)
	}

	return cfg, nil
}

// IsProduction reports whether ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Addr is the listen address. Binds every interface so containers can reach it.
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

// databaseURL returns DATABASE_URL or builds a DSN from the DB_* variables
func databaseURL() (string, error) {
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		return connStr, nil
	}

	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	dbname := os.Getenv("DB_NAME")
	if host == "" || user == "" || dbname == "" {
		return "", fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, getenv("DB_PORT", "5432"), user, os.Getenv("DB_PASSWORD"), dbname, getenv("DB_SSLMODE", "disable")), nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// normalizePort strips the leading colon some platforms include
func normalizePort(port string) string {
	return strings.TrimPrefix(port, ":")
}
