// Package config provides configuration management for presetctl using Viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/thoreinstein/presetctl/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "presetctl"

// Config represents the top-level configuration structure.
type Config struct {
	Version         int    `mapstructure:"version" yaml:"version"`
	PresetsDir      string `mapstructure:"presets_dir" yaml:"presets_dir"`
	PremadeDir      string `mapstructure:"premade_dir" yaml:"premade_dir"`
	DefaultCategory string `mapstructure:"default_category" yaml:"default_category"`
}

// Default returns a configuration with the built-in defaults.
func Default() *Config {
	return &Config{
		Version:         1,
		PresetsDir:      paths.PresetsDir(),
		PremadeDir:      paths.PremadeDir(),
		DefaultCategory: "settings",
	}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	// Environment variable support (PRESETCTL_PRESETS_DIR, ...)
	viper.SetEnvPrefix("PRESETCTL")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("presets_dir", paths.PresetsDir())
	viper.SetDefault("premade_dir", paths.PremadeDir())
	viper.SetDefault("default_category", "settings")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
