package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is internally consistent.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		errs = append(errs, ValidationError{
			Field: "SERVER_PORT", Message: fmt.Sprintf("must be numeric, got %q", cfg.ServerPort),
		}.Error())
	}

	switch cfg.StorageBackend {
	case StorageSQLite:
		if cfg.SQLitePath == "" {
			errs = append(errs, ValidationError{
				Field: "SQLITE_PATH", Message: "required when STORAGE_BACKEND is sqlite",
			}.Error())
		}
	case StorageRedis:
		if cfg.RedisURL == "" && (cfg.RedisHost == "" || cfg.RedisPort == "") {
			errs = append(errs, ValidationError{
				Field: "REDIS_HOST", Message: "REDIS_URL or REDIS_HOST/REDIS_PORT required when STORAGE_BACKEND is redis",
			}.Error())
		}
	default:
		errs = append(errs, ValidationError{
			Field: "STORAGE_BACKEND", Message: fmt.Sprintf("must be %q or %q, got %q", StorageSQLite, StorageRedis, cfg.StorageBackend),
		}.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
