package commands

import (
	"github.com/thoreinstein/presetctl/internal/errors"
	"github.com/thoreinstein/presetctl/internal/paths"
	"github.com/thoreinstein/presetctl/internal/preset"
	"github.com/thoreinstein/presetctl/internal/settings"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// truncate shortens a string to maxLen characters, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// resolveCategory maps the --category flag, falling back to the configured
// default, to a persisted category.
func resolveCategory() (settings.Category, error) {
	token := categoryFlag
	if token == "" && cfg != nil {
		token = cfg.DefaultCategory
	}
	if token == "" {
		token = settings.CategorySetting.String()
	}

	cat, err := settings.ParseCategory(token)
	if err != nil {
		return 0, errors.NewUserError(err, "Use --category settings or --category cosmetics")
	}
	return cat, nil
}

// newStore builds the preset store from the configured base directory.
func newStore() *preset.Store {
	if cfg != nil && cfg.PresetsDir != "" {
		return preset.NewStore(preset.WithRootDir(cfg.PresetsDir))
	}
	return preset.NewStore()
}

// premadeDir returns the directory scanned for user premade bundles.
func premadeDir() string {
	if cfg != nil && cfg.PremadeDir != "" {
		return cfg.PremadeDir
	}
	return paths.PremadeDir()
}

// currentRegistry builds the catalog and restores the category's cached
// selections, if a cache preset exists.
func currentRegistry(store *preset.Store, cat settings.Category) (*settings.Registry, error) {
	reg := settings.DefaultRegistry()
	if err := store.LoadCache(cat, reg); err != nil {
		return nil, err
	}
	return reg, nil
}
