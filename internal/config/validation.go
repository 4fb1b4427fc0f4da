// Package config provides validation utilities for configuration values.
package config

import (
	"fmt"
	"strings"
)

// validateConfig performs validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	if config.Database.MaxRuns < 0 {
		validationErrors = append(validationErrors, "database.max_runs must be non-negative")
	}
	if config.Database.KeepForDays < 0 {
		validationErrors = append(validationErrors, "database.keep_for_days must be non-negative")
	}

	if config.Viewport.Width <= 0 {
		validationErrors = append(validationErrors, "viewport.width must be positive")
	}
	if config.Viewport.Height <= 0 {
		validationErrors = append(validationErrors, "viewport.height must be positive")
	}

	if config.Terminal.ConnectTimeoutSec < 0 {
		validationErrors = append(validationErrors, "terminal.connect_timeout_sec must be non-negative")
	}
	if url := config.Terminal.BaseURL; url != "" {
		if !strings.HasPrefix(url, "ws://") && !strings.HasPrefix(url, "wss://") {
			validationErrors = append(validationErrors, fmt.Sprintf("terminal.base_url must use ws:// or wss:// (got: %s)", url))
		}
	}

	if config.Browser.NavigationTimeoutSec < 0 {
		validationErrors = append(validationErrors, "browser.navigation_timeout_sec must be non-negative")
	}

	// Validate logging values
	if config.Logging.MaxSize < 0 {
		validationErrors = append(validationErrors, "logging.max_size must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}
