package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"todo-manager/internal/logging"
)

// DefaultConfigFilename is looked up in the storage directory when
// TODO_CONFIG is not set.
const DefaultConfigFilename = "config.toml"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
	path   string
}

// NewLoader creates a loader that reads TODO_CONFIG, or config.toml in the
// default storage directory when it exists.
func NewLoader() *Loader {
	path := os.Getenv("TODO_CONFIG")
	if path == "" {
		path = filepath.Join(NewConfig().Storage.Dir, DefaultConfigFilename)
	}
	return NewLoaderWithFile(path)
}

// NewLoaderWithFile creates a loader that reads the given TOML file.
func NewLoaderWithFile(path string) *Loader {
	return &Loader{config: NewConfig(), path: path}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TOML config file, if present
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.loadFile(); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// ApplyOverrides copies overrides onto config and validates the result.
// config is left modified even when validation fails.
func ApplyOverrides(config *Config, overrides *ConfigOverrides) error {
	if overrides != nil {
		overrides.Apply(config)
	}
	return config.Validate()
}

// loadFile decodes the config file over the defaults. A missing file is not an error.
func (l *Loader) loadFile() error {
	if l.path == "" {
		return nil
	}
	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		return nil
	}

	meta, err := toml.DecodeFile(l.path, l.config)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", l.path, err)
	}
	for _, key := range meta.Undecoded() {
		logging.Warnf("unknown config key %q in %s", key.String(), l.path)
	}
	logging.Debugf("loaded config file %s", l.path)
	return nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	StorageDir      *string
	StorageFilename *string
	StorageKey      *string
	QueryTimeout    *time.Duration
	WriteTimeout    *time.Duration

	TitleMinLength *int
	TitleMaxLength *int

	Color *bool

	Timeout *time.Duration
	Verbose *bool
}

// Apply copies every set override onto config
func (o *ConfigOverrides) Apply(config *Config) {
	if o.StorageDir != nil {
		config.Storage.Dir = *o.StorageDir
	}
	if o.StorageFilename != nil {
		config.Storage.Filename = *o.StorageFilename
	}
	if o.StorageKey != nil {
		config.Storage.Key = *o.StorageKey
	}
	if o.QueryTimeout != nil {
		config.Storage.QueryTimeout = *o.QueryTimeout
	}
	if o.WriteTimeout != nil {
		config.Storage.WriteTimeout = *o.WriteTimeout
	}

	if o.TitleMinLength != nil {
		config.Validation.TitleMinLength = *o.TitleMinLength
	}
	if o.TitleMaxLength != nil {
		config.Validation.TitleMaxLength = *o.TitleMaxLength
	}

	if o.Color != nil {
		config.Display.Color = *o.Color
	}

	if o.Timeout != nil {
		config.Application.Timeout = *o.Timeout
	}
	if o.Verbose != nil {
		config.Application.Verbose = *o.Verbose
	}
}
