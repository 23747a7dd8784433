package config

import (
	"github.com/cockroachdb/errors"

	perrors "github.com/thoreinstein/presetctl/internal/errors"
	"github.com/thoreinstein/presetctl/internal/settings"
)

// Validate checks a loaded configuration for values the rest of the tool
// cannot work with. It returns all problems found, not just the first.
func Validate(cfg *Config) []error {
	var errs []error

	if cfg.Version != 1 {
		errs = append(errs, errors.Wrapf(perrors.ErrInvalidConfig, "unsupported config version %d", cfg.Version))
	}

	if cfg.DefaultCategory != "" {
		if _, err := settings.ParseCategory(cfg.DefaultCategory); err != nil {
			errs = append(errs, errors.Wrapf(perrors.ErrInvalidConfig, "default_category %q", cfg.DefaultCategory))
		}
	}

	return errs
}
