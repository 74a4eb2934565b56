package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Store drivers accepted by STORE_DRIVER
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()

	var errors []string

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		errors = append(errors, ValidationError{Field: "SERVER_PORT", Message: "must be a valid TCP port"}.Error())
	}

	switch cfg.StoreDriver {
	case StoreMemory, StoreSQLite:
	case StorePostgres:
		if cfg.DatabaseDSN == "" {
			errors = append(errors, ValidationError{Field: "DATABASE_DSN", Message: "required for the postgres store"}.Error())
		}
	default:
		errors = append(errors, ValidationError{Field: "STORE_DRIVER", Message: fmt.Sprintf("unknown driver %q", cfg.StoreDriver)}.Error())
	}

	if cfg.Today != "" {
		if _, err := time.Parse(DateLayout, cfg.Today); err != nil {
			errors = append(errors, ValidationError{Field: "TODAY", Message: "must be formatted as YYYY-MM-DD"}.Error())
		}
	}

	if cfg.ReadLatency < 0 || cfg.WriteLatency < 0 {
		errors = append(errors, ValidationError{Field: "READ_LATENCY/WRITE_LATENCY", Message: "must not be negative"}.Error())
	}

	// Sensitive values must be present outside development
	if (env == CI || env == Production) && cfg.JWTSecret == "" {
		errors = append(errors, ValidationError{Field: "JWT_SECRET", Message: "is required"}.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
