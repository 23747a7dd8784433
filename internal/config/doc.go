// Package config provides configuration management for the presetctl CLI.
//
// This package handles loading and validating the tool's own configuration
// file; preset documents themselves are managed by the preset package.
//
// # Configuration File
//
// The default configuration file location is <XDG config>/presetctl/config.yaml:
//
//	version: 1
//	presets_dir: /custom/presets      # optional
//	premade_dir: /custom/premade      # optional
//	default_category: settings        # settings or cosmetics
//
// Values can also be supplied through PRESETCTL_-prefixed environment
// variables (PRESETCTL_PRESETS_DIR, ...).
//
// # Loading
//
// Call [Init] once at startup, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load("")
//
// With an empty path, a missing config file is not an error; defaults from
// [Default] apply.
package config
