package settings

import (
	"github.com/cockroachdb/errors"
)

// Definition is a single configurable setting: a stable display name, an
// ordered list of selectable option labels, the currently selected index,
// and category membership. The registry owns definitions for the lifetime
// of the process; serialization and reconciliation only read and write the
// selected index.
type Definition struct {
	name       string
	options    []string
	selected   int
	categories Category
}

// NewDefinition creates a definition with the given name, categories, and
// option labels. The first option is selected initially.
func NewDefinition(name string, categories Category, options ...string) *Definition {
	if len(options) == 0 {
		// A definition with no options is a programming error in the
		// catalog; give it a single placeholder so lookups stay total.
		options = []string{""}
	}
	return &Definition{
		name:       name,
		options:    options,
		categories: categories,
	}
}

// Name returns the stable display name. Names may contain embedded line
// breaks for menu layout; comparisons must normalize them first.
func (d *Definition) Name() string {
	return d.name
}

// In reports whether the definition belongs to the given category.
func (d *Definition) In(c Category) bool {
	return d.categories&c != 0
}

// OptionCount returns the number of selectable options.
func (d *Definition) OptionCount() int {
	return len(d.options)
}

// Option returns the label at index i, or "" if out of range.
func (d *Definition) Option(i int) string {
	if i < 0 || i >= len(d.options) {
		return ""
	}
	return d.options[i]
}

// Selected returns the currently selected option index.
func (d *Definition) Selected() int {
	return d.selected
}

// SelectedLabel returns the label of the currently selected option.
func (d *Definition) SelectedLabel() string {
	return d.options[d.selected]
}

// SetSelected sets the selected option index. Out-of-range values are
// rejected; value validation beyond the index range is not this type's job.
func (d *Definition) SetSelected(i int) error {
	if i < 0 || i >= len(d.options) {
		return errors.Newf("option index %d out of range [0,%d) for %q", i, len(d.options), d.name)
	}
	d.selected = i
	return nil
}

// SetSelectedByLabel selects the first option whose label exactly matches
// text. It reports whether a match was found; on no match the selection is
// left unchanged. Unrecognized labels are expected across schema versions
// and are not an error.
func (d *Definition) SetSelectedByLabel(text string) bool {
	for i, opt := range d.options {
		if opt == text {
			d.selected = i
			return true
		}
	}
	return false
}
