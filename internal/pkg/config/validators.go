// internal/pkg/config/validators.go
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/robfig/cron/v3"
)

// ErrMissingRequiredConfig marks a required setting that is empty or still
// holds a placeholder.
var ErrMissingRequiredConfig = errors.New("missing required configuration")

// Validator checks one aspect of the configuration.
type Validator interface {
	Validate(cfg *Config) error
}

// BasicValidator performs basic configuration validation
type BasicValidator struct{}

// Validate performs basic validation
func (v *BasicValidator) Validate(cfg *Config) error {
	if err := validateRequiredFields(cfg); err != nil {
		return err
	}

	if cfg.Database.MaxConnections < cfg.Database.MinConnections {
		return fmt.Errorf("database max_connections must be >= min_connections")
	}

	if cfg.Redis.PoolSize <= 0 {
		return fmt.Errorf("redis pool_size must be positive")
	}

	if cfg.Server.RateLimitRequests <= 0 {
		return fmt.Errorf("rate_limit_requests must be positive")
	}

	if cfg.Asynq.Concurrency <= 0 {
		return fmt.Errorf("asynq concurrency must be positive")
	}

	switch cfg.Storage.Driver {
	case "s3":
		if cfg.Storage.Bucket == "" {
			return fmt.Errorf("%w: export bucket", ErrMissingRequiredConfig)
		}
	case "local":
		if cfg.Storage.LocalPath == "" {
			return fmt.Errorf("%w: export local path", ErrMissingRequiredConfig)
		}
	case "none", "":
	default:
		return fmt.Errorf("unknown export storage driver %q", cfg.Storage.Driver)
	}

	switch cfg.Secrets.Provider {
	case "env", "":
	case "aws":
		if cfg.Secrets.SecretName == "" {
			return fmt.Errorf("%w: secrets name", ErrMissingRequiredConfig)
		}
	default:
		return fmt.Errorf("unknown secrets provider %q", cfg.Secrets.Provider)
	}

	return nil
}

// LedgerValidator checks the engine retry, timeout and scheduling settings.
type LedgerValidator struct{}

func (v *LedgerValidator) Validate(cfg *Config) error {
	l := cfg.Ledger

	if l.MaxRetries < 0 {
		return fmt.Errorf("ledger max_retries must not be negative")
	}
	if l.BaseBackoff <= 0 || l.MaxBackoff < l.BaseBackoff {
		return fmt.Errorf("ledger backoff must satisfy 0 < base <= max")
	}
	if l.LockTimeout <= 0 || l.StatementTimeout <= 0 {
		return fmt.Errorf("ledger lock and statement timeouts must be positive")
	}
	if l.StatementTimeout < l.LockTimeout {
		return fmt.Errorf("ledger statement timeout must be >= lock timeout")
	}
	if l.RedisLockEnabled && l.RedisLockTTL <= 0 {
		return fmt.Errorf("redis lock ttl must be positive")
	}

	if cfg.Asynq.AuditCron != "" {
		if _, err := cron.ParseStandard(cfg.Asynq.AuditCron); err != nil {
			return fmt.Errorf("invalid audit schedule %q: %w", cfg.Asynq.AuditCron, err)
		}
	}

	return nil
}

// ProductionValidator performs strict validation for production environments
type ProductionValidator struct{}

// Validate performs production-specific validation
func (v *ProductionValidator) Validate(cfg *Config) error {
	if cfg.Database.Password == "" || strings.Contains(cfg.Database.Password, "MISSING_") {
		return fmt.Errorf("%w: database password", ErrMissingRequiredConfig)
	}

	if cfg.Database.SSLMode == "disable" {
		return fmt.Errorf("database SSL must be enabled in production")
	}

	if !cfg.Server.SecureHeaders {
		return fmt.Errorf("secure headers must be enabled in production")
	}

	for _, origin := range cfg.Server.AllowedOrigins {
		if origin == "*" {
			return fmt.Errorf("wildcard origin (*) not allowed in production")
		}
	}

	if cfg.Storage.Driver == "local" {
		return fmt.Errorf("local export storage is not allowed in production")
	}

	return nil
}

// validateRequiredFields uses reflection to check required struct tags
func validateRequiredFields(cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	return validateStruct(v, "")
}

func validateStruct(v reflect.Value, prefix string) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)
		fieldName := fieldType.Name

		if prefix != "" {
			fieldName = prefix + "." + fieldName
		}

		if required := fieldType.Tag.Get("required"); required == "true" {
			if isZeroValue(field) {
				return fmt.Errorf("%w: %s", ErrMissingRequiredConfig, fieldName)
			}
		}

		if field.Kind() == reflect.Struct {
			if err := validateStruct(field, fieldName); err != nil {
				return err
			}
		}
	}

	return nil
}

func isZeroValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == "" || strings.HasPrefix(v.String(), "MISSING_")
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Slice, reflect.Map:
		return v.IsNil() || v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
