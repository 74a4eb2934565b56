package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DateLayout is the calendar-day format used for the reference date.
const DateLayout = "2006-01-02"

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost  string   `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ServerPort  string   `envconfig:"SERVER_PORT" default:"8080"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173,http://frontend:5173"`

	// Store configuration
	StoreDriver string `envconfig:"STORE_DRIVER" default:"memory"`
	DatabaseDSN string `envconfig:"DATABASE_DSN"`

	// Redis configuration (optional, enables rate limiting)
	RedisURL string `envconfig:"REDIS_URL"`

	// Session token configuration
	JWTSecret string        `envconfig:"JWT_SECRET"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"24h"`

	// Seed data configuration
	Seed  int64  `envconfig:"SEED" default:"42"`
	Today string `envconfig:"TODAY" default:"2026-02-06"`

	// Simulated network latency
	ReadLatency  time.Duration `envconfig:"READ_LATENCY" default:"0s"`
	WriteLatency time.Duration `envconfig:"WRITE_LATENCY" default:"0s"`

	// Report archive (optional)
	ReportBucket string `envconfig:"REPORT_BUCKET"`
	AWSRegion    string `envconfig:"AWS_REGION" default:"us-east-1"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	switch env {
	case CI:
		// CI passes everything through the environment
	case Development, Test:
		if secret := readSecret("jwt_secret"); secret != "" {
			cfg.JWTSecret = secret
		}
		if cfg.JWTSecret == "" {
			cfg.JWTSecret = "homechef-dev-secret"
		}
	case Production:
		if secret := readSecret("jwt_secret"); secret != "" {
			cfg.JWTSecret = secret
		}
		if dsn := readSecret("database_dsn"); dsn != "" {
			cfg.DatabaseDSN = dsn
		}
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// ReferenceDate returns the configured "today" or the current UTC day.
func (c *Config) ReferenceDate() time.Time {
	if c.Today != "" {
		if t, err := time.Parse(DateLayout, c.Today); err == nil {
			return t
		}
	}
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
