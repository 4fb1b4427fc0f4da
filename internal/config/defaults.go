// Package config provides default configuration values for demoreel.
package config

// Default configuration constants
const (
	// Database defaults
	defaultMaxRuns     = 500 // recorded runs kept before pruning
	defaultKeepForDays = 90  // days

	// Viewport defaults
	defaultViewportWidth  = 1280
	defaultViewportHeight = 720

	// Connection defaults
	defaultConnectTimeoutSec    = 10 // seconds
	defaultNavigationTimeoutSec = 30 // seconds

	// Logging defaults
	defaultMaxLogSizeMB  = 100 // MB
	defaultMaxBackups    = 3   // backup files
	defaultMaxLogAgeDays = 7   // days
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for demoreel.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			MaxRuns:     defaultMaxRuns,
			KeepForDays: defaultKeepForDays,
		},
		Viewport: ViewportConfig{
			Width:  defaultViewportWidth,
			Height: defaultViewportHeight,
		},
		Terminal: TerminalConfig{
			BaseURL:           "",
			ConnectTimeoutSec: defaultConnectTimeoutSec,
		},
		Browser: BrowserConfig{
			Headless:             true,
			NavigationTimeoutSec: defaultNavigationTimeoutSec,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			MaxSize:       defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxBackups,
			MaxAge:        defaultMaxLogAgeDays,
			Compress:      true,
			LogDir:        getDefaultLogDir(),
			EnableFileLog: true,
		},
	}
}
