// Package config defines the configuration structures for hsn-advisor.
// No I/O or parsing logic lives in this file — only plain data types and
// validation; loading is handled by loader.go.
package config

import (
	"fmt"
	"time"

	"github.com/turtacn/hsn-advisor/internal/infrastructure/monitoring/logging"
)

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// MaxUploadSize caps dataset uploads, in bytes.
	MaxUploadSize int64 `mapstructure:"max_upload_size"`
}

// DatasetConfig locates the reference data source.
type DatasetConfig struct {
	// Path is the reference data file (.xlsx or .csv).
	Path string `mapstructure:"path"`

	// Format overrides extension-based detection: "xlsx" or "csv".
	Format string `mapstructure:"format"`

	// CodeColumn and DescriptionColumn are the required header names.
	CodeColumn        string `mapstructure:"code_column"`
	DescriptionColumn string `mapstructure:"description_column"`

	// Watch enables automatic reload when the file changes on disk.
	Watch         bool          `mapstructure:"watch"`
	WatchDebounce time.Duration `mapstructure:"watch_debounce"`
}

// Config is the root configuration.
type Config struct {
	Server  ServerConfig   `mapstructure:"server"`
	Dataset DatasetConfig  `mapstructure:"dataset"`
	Log     logging.Config `mapstructure:"log"`
}

var validModes = map[string]bool{"debug": true, "release": true, "test": true}

// Validate checks the configuration for values that would prevent startup.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535], got %d", c.Server.Port)
	}
	if !validModes[c.Server.Mode] {
		return fmt.Errorf("server.mode must be one of debug/release/test, got %q", c.Server.Mode)
	}
	if c.Dataset.Path == "" {
		return fmt.Errorf("dataset.path must not be empty")
	}
	return nil
}
