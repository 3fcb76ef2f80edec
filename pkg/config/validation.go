package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the singleton validator instance.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate validates the configuration using struct tags plus custom rules
// that cannot be expressed in tags.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}

	return validateCustomRules(cfg)
}

// validateCustomRules performs custom validation beyond struct tags.
func validateCustomRules(cfg *Config) error {
	// The badger session cache needs either a path or in-memory mode.
	if cfg.Sessions.Type == "badger" {
		path, _ := cfg.Sessions.Badger["path"].(string)
		inMemory, _ := cfg.Sessions.Badger["in_memory"].(bool)
		if path == "" && !inMemory {
			return fmt.Errorf("sessions.badger: path is required unless in_memory is set")
		}
	}

	// The S3 payload store cannot fall back to defaults for its target.
	if cfg.Payloads.Type == "s3" {
		if bucket, _ := cfg.Payloads.S3["bucket"].(string); bucket == "" {
			return fmt.Errorf("payloads.s3: bucket is required")
		}
		if region, _ := cfg.Payloads.S3["region"].(string); region == "" {
			return fmt.Errorf("payloads.s3: region is required")
		}
	}

	return nil
}

// formatValidationError converts validator errors into readable messages.
func formatValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	for _, fe := range fieldErrs {
		return fmt.Errorf("%s: failed %q validation (value: %v)", fe.Namespace(), fe.Tag(), fe.Value())
	}
	return err
}
