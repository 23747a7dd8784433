package settings

import (
	"github.com/cockroachdb/errors"

	perrors "github.com/thoreinstein/presetctl/internal/errors"
)

// Category identifies which persisted document type a setting belongs to.
// A definition may belong to more than one category; membership is a
// capability check, not a hierarchy.
type Category uint8

const (
	// CategorySetting marks tunable gameplay settings.
	CategorySetting Category = 1 << iota

	// CategoryCosmetic marks cosmetic-only settings.
	CategoryCosmetic

	// CategoryToggle marks in-menu toggles that are never persisted
	// to a preset document.
	CategoryToggle
)

// persistedCategories are the categories with a preset document type.
var persistedCategories = []Category{CategorySetting, CategoryCosmetic}

// PersistedCategories returns the categories that have an on-disk document
// type, in a stable order.
func PersistedCategories() []Category {
	out := make([]Category, len(persistedCategories))
	copy(out, persistedCategories)
	return out
}

// String returns the directory/flag name for the category.
func (c Category) String() string {
	switch c {
	case CategorySetting:
		return "settings"
	case CategoryCosmetic:
		return "cosmetics"
	case CategoryToggle:
		return "toggles"
	default:
		return "unknown"
	}
}

// ParseCategory maps a CLI/config token to a persisted category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "settings", "setting":
		return CategorySetting, nil
	case "cosmetics", "cosmetic":
		return CategoryCosmetic, nil
	default:
		return 0, errors.Wrapf(perrors.ErrInvalidCategory, "%q (valid: settings, cosmetics)", s)
	}
}
