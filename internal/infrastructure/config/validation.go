package config

import (
	"fmt"
	"strings"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/codec"
	"github.com/bnema/dockyard/internal/logging"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateWatch(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level: %v", err))
	}
	if config.Logging.Format != "console" && config.Logging.Format != "json" {
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}
	return validationErrors
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	if _, err := codec.ByName(config.Layout.DefaultFormat); err != nil {
		validationErrors = append(validationErrors,
			fmt.Sprintf("layout.default_format must be one of %s", strings.Join(codec.Names(), ", ")))
	}
	if _, err := entity.ParseInsertPolicy(string(config.Layout.InsertPolicy)); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("layout.insert_policy: %v", err))
	}
	if config.Layout.FloatWidth <= 0 {
		validationErrors = append(validationErrors, "layout.float_width must be positive")
	}
	if config.Layout.FloatHeight <= 0 {
		validationErrors = append(validationErrors, "layout.float_height must be positive")
	}

	seen := make(map[string]bool, len(config.Layout.Panels))
	for _, p := range config.Layout.Panels {
		if seen[p] {
			validationErrors = append(validationErrors, fmt.Sprintf("layout.panels lists %q twice", p))
		}
		seen[p] = true
	}
	return validationErrors
}

func validateWatch(config *Config) []string {
	if config.Watch.DebounceMs < 0 {
		return []string{"watch.debounce_ms must be non-negative"}
	}
	return nil
}
