package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the to-do manager
type Config struct {
	Storage     StorageConfig     `toml:"storage"`
	Validation  ValidationConfig  `toml:"validation"`
	Display     DisplayConfig     `toml:"display"`
	Application ApplicationConfig `toml:"application"`
}

// StorageConfig holds key-value store configuration
type StorageConfig struct {
	Dir            string        `toml:"dir" env:"TODO_STORAGE_DIR"`
	Filename       string        `toml:"filename" env:"TODO_STORAGE_FILENAME"`
	Key            string        `toml:"key" env:"TODO_STORAGE_KEY"`
	QueryTimeout   time.Duration `toml:"query_timeout" env:"TODO_STORAGE_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `toml:"write_timeout" env:"TODO_STORAGE_WRITE_TIMEOUT"`
	DirPermissions uint32        `toml:"dir_permissions" env:"TODO_STORAGE_DIR_PERMISSIONS"`
}

// ValidationConfig holds task title rules
type ValidationConfig struct {
	TitleMinLength int `toml:"title_min_length" env:"TODO_VALIDATION_TITLE_MIN"`
	TitleMaxLength int `toml:"title_max_length" env:"TODO_VALIDATION_TITLE_MAX"`
}

// DisplayConfig holds list rendering configuration
type DisplayConfig struct {
	ImportantTitle  string `toml:"important_title" env:"TODO_DISPLAY_IMPORTANT_TITLE"`
	NormalTitle     string `toml:"normal_title" env:"TODO_DISPLAY_NORMAL_TITLE"`
	PlannedSymbol   string `toml:"planned_symbol" env:"TODO_DISPLAY_PLANNED_SYMBOL"`
	CompletedSymbol string `toml:"completed_symbol" env:"TODO_DISPLAY_COMPLETED_SYMBOL"`
	Color           bool   `toml:"color" env:"TODO_DISPLAY_COLOR"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `toml:"timeout" env:"TODO_APP_TIMEOUT"`
	Verbose bool          `toml:"verbose" env:"TODO_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Storage: StorageConfig{
			Dir:            filepath.Join(homeDir, ".todo"),
			Filename:       "todo.db",
			Key:            "tasks",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			TitleMinLength: 1,
			TitleMaxLength: 255,
		},
		Display: DisplayConfig{
			ImportantTitle:  "Important",
			NormalTitle:     "Current",
			PlannedSymbol:   "○",
			CompletedSymbol: "◉",
			Color:           true,
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if dir := os.Getenv("TODO_STORAGE_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("TODO_STORAGE_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if key := os.Getenv("TODO_STORAGE_KEY"); key != "" {
		c.Storage.Key = key
	}
	if timeout := os.Getenv("TODO_STORAGE_QUERY_TIMEOUT"); timeout != "" {
		c.Storage.QueryTimeout = ParseDurationWithFallback(timeout, c.Storage.QueryTimeout)
	}
	if timeout := os.Getenv("TODO_STORAGE_WRITE_TIMEOUT"); timeout != "" {
		c.Storage.WriteTimeout = ParseDurationWithFallback(timeout, c.Storage.WriteTimeout)
	}
	if perms := os.Getenv("TODO_STORAGE_DIR_PERMISSIONS"); perms != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(perms, 8, c.Storage.DirPermissions)
	}

	// Validation configuration
	if minLen := os.Getenv("TODO_VALIDATION_TITLE_MIN"); minLen != "" {
		c.Validation.TitleMinLength = ParseIntWithFallback(minLen, c.Validation.TitleMinLength)
	}
	if maxLen := os.Getenv("TODO_VALIDATION_TITLE_MAX"); maxLen != "" {
		c.Validation.TitleMaxLength = ParseIntWithFallback(maxLen, c.Validation.TitleMaxLength)
	}

	// Display configuration
	if title := os.Getenv("TODO_DISPLAY_IMPORTANT_TITLE"); title != "" {
		c.Display.ImportantTitle = title
	}
	if title := os.Getenv("TODO_DISPLAY_NORMAL_TITLE"); title != "" {
		c.Display.NormalTitle = title
	}
	if symbol := os.Getenv("TODO_DISPLAY_PLANNED_SYMBOL"); symbol != "" {
		c.Display.PlannedSymbol = symbol
	}
	if symbol := os.Getenv("TODO_DISPLAY_COMPLETED_SYMBOL"); symbol != "" {
		c.Display.CompletedSymbol = symbol
	}
	if color := os.Getenv("TODO_DISPLAY_COLOR"); color != "" {
		c.Display.Color = ParseBoolWithFallback(color, c.Display.Color)
	}
	if os.Getenv("NO_COLOR") != "" {
		c.Display.Color = false
	}

	// Application configuration
	if timeout := os.Getenv("TODO_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("TODO_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "storage filename cannot be empty"}
	}
	if c.Storage.Key == "" {
		return &ConfigError{Field: "storage.key", Message: "storage key cannot be empty"}
	}
	if c.Storage.QueryTimeout <= 0 {
		return &ConfigError{Field: "storage.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Validation.TitleMinLength < 1 {
		return &ConfigError{Field: "validation.title_min_length", Message: "title minimum length must be at least 1"}
	}
	if c.Validation.TitleMaxLength < c.Validation.TitleMinLength {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must not be less than minimum length"}
	}

	if c.Display.ImportantTitle == "" || c.Display.NormalTitle == "" {
		return &ConfigError{Field: "display.section_titles", Message: "section titles cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
