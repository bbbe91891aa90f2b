package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/turtacn/hsn-advisor/internal/infrastructure/dataset"
)

// envPrefix is the environment variable prefix for all settings.  Nested keys
// map dots to underscores: "dataset.path" resolves to "HSN_DATASET_PATH".
const envPrefix = "HSN"

// defaults registers every known key with its default value.  Registration
// matters beyond defaulting: viper only consults the environment for keys it
// knows about, so without this an env-only deployment (LoadFromEnv) would see
// none of its HSN_* variables.
func defaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.max_upload_size", 8<<20)

	v.SetDefault("dataset.path", "data/HSN_SAC.xlsx")
	v.SetDefault("dataset.format", "")
	v.SetDefault("dataset.code_column", dataset.DefaultCodeColumn)
	v.SetDefault("dataset.description_column", dataset.DefaultDescriptionColumn)
	v.SetDefault("dataset.watch", false)
	v.SetDefault("dataset.watch_debounce", 2*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output_paths", []string{"stdout"})
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	defaults(v)
	return v
}

// Load reads the YAML file at configPath, merges HSN_* environment variable
// overrides on top, and validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}
	return unmarshalAndValidate(v)
}

// LoadFromEnv builds a Config from HSN_* environment variables and built-in
// defaults, with no config file.  The preferred strategy for containerised
// deployments.
func LoadFromEnv() (*Config, error) {
	return unmarshalAndValidate(newViper())
}

func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	// Fields explicitly set to zero values in the file are restored to their
	// defaults before validation.
	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

// MustLoad is a convenience wrapper around Load that panics on any error,
// intended for main() where a config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}
