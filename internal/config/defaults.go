package config

import (
	"time"

	"github.com/turtacn/hsn-advisor/internal/infrastructure/dataset"
)

// ApplyDefaults fills every unset field of cfg with its default value.
// Called by the loader after unmarshalling and before validation.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "release"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Server.MaxUploadSize == 0 {
		cfg.Server.MaxUploadSize = 8 << 20
	}

	if cfg.Dataset.Path == "" {
		cfg.Dataset.Path = "data/HSN_SAC.xlsx"
	}
	if cfg.Dataset.CodeColumn == "" {
		cfg.Dataset.CodeColumn = dataset.DefaultCodeColumn
	}
	if cfg.Dataset.DescriptionColumn == "" {
		cfg.Dataset.DescriptionColumn = dataset.DefaultDescriptionColumn
	}
	if cfg.Dataset.WatchDebounce == 0 {
		cfg.Dataset.WatchDebounce = 2 * time.Second
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
}

// NewDefault returns a Config populated entirely with defaults.
func NewDefault() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
