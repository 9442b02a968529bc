package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Provider exposes read access to application configuration. Handlers and
// stores depend on this interface rather than the concrete Config so tests
// can substitute their own values.
type Provider interface {
	GetAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetDBUrl() string
	GetDBUser() string
	GetDBPass() string
	GetDBNs() string
	GetDBDb() string
	GetDBQueryTimeout() time.Duration
	GetDBExecuteTimeout() time.Duration
}

// Config holds all configuration for the application.
type Config struct {
	Addr           string
	AppBaseURL     string
	SessionSecret  string
	DBUrl          string
	DBUser         string
	DBPass         string
	DBNs           string
	DBDb           string
	QueryTimeout   time.Duration
	ExecuteTimeout time.Duration
}

// New loads configuration from environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Addr:           getEnv("APP_ADDR", ":8080"),
		AppBaseURL:     getEnv("APP_BASE_URL", "http://localhost:8080"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		DBUrl:          os.Getenv("SURREAL_URL"),
		DBUser:         os.Getenv("SURREAL_USER"),
		DBPass:         os.Getenv("SURREAL_PASS"),
		DBNs:           os.Getenv("SURREAL_NS"),
		DBDb:           os.Getenv("SURREAL_DB"),
		QueryTimeout:   getDuration("DB_QUERY_TIMEOUT", 5*time.Second),
		ExecuteTimeout: getDuration("DB_EXECUTE_TIMEOUT", 10*time.Second),
	}

	if cfg.SessionSecret == "" {
		log.Fatal("Required environment variable SESSION_SECRET is not set.")
	}
	if cfg.DBUrl == "" || cfg.DBNs == "" || cfg.DBDb == "" {
		log.Fatal("Required environment variables SURREAL_URL, SURREAL_NS, or SURREAL_DB are not set.")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid duration for %s (%q), using default %s", key, v, fallback)
		return fallback
	}
	return d
}

func (c *Config) GetAddr() string { return c.Addr }

func (c *Config) GetAppBaseURL() string { return c.AppBaseURL }

func (c *Config) GetSessionSecret() string { return c.SessionSecret }

func (c *Config) GetDBUrl() string { return c.DBUrl }

func (c *Config) GetDBUser() string { return c.DBUser }

func (c *Config) GetDBPass() string { return c.DBPass }

func (c *Config) GetDBNs() string { return c.DBNs }

func (c *Config) GetDBDb() string { return c.DBDb }

func (c *Config) GetDBQueryTimeout() time.Duration { return c.QueryTimeout }

func (c *Config) GetDBExecuteTimeout() time.Duration { return c.ExecuteTimeout }
