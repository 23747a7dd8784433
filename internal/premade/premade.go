// Package premade provides fixed, named bundles of setting overrides.
//
// A premade preset is not loaded from a persisted document; it is a
// data-driven list of (setting name, option label) pairs applied in bulk
// through the registry's normal selection contract. Built-in bundles ship
// with the tool; user bundles are TOML files in the premade directory.
package premade

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	perrors "github.com/thoreinstein/presetctl/internal/errors"
	"github.com/thoreinstein/presetctl/internal/settings"
)

// Override sets one setting to one option label.
type Override struct {
	Setting string `toml:"setting"`
	Value   string `toml:"value"`
}

// Preset is a named bundle of overrides.
type Preset struct {
	Name        string     `toml:"name"`
	Description string     `toml:"description"`
	Overrides   []Override `toml:"override"`
}

// Result summarizes one bundle application.
type Result struct {
	// Applied counts overrides that changed a setting.
	Applied int
	// Skipped counts overrides whose setting or value no longer exists.
	// Skips are expected across schema versions and are not errors.
	Skipped int
}

// Apply applies every override in order through the registry. Overrides
// naming an unknown setting or an unknown option label are skipped, same as
// unmatched records during reconciliation.
func (p *Preset) Apply(reg *settings.Registry) Result {
	var res Result
	for _, ov := range p.Overrides {
		d, ok := reg.Lookup(ov.Setting)
		if !ok {
			res.Skipped++
			continue
		}
		if d.SetSelectedByLabel(ov.Value) {
			res.Applied++
		} else {
			res.Skipped++
		}
	}
	return res
}

// LoadDir reads every .toml bundle in dir. A missing directory yields no
// bundles. Files that fail to parse or lack a name are rejected, not
// skipped; a broken bundle is a user mistake worth surfacing.
func LoadDir(dir string) ([]Preset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading premade directory")
	}

	var presets []Preset
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "reading bundle %s", entry.Name())
		}

		var p Preset
		if err := toml.Unmarshal(data, &p); err != nil {
			return nil, errors.Wrapf(err, "parsing bundle %s", entry.Name())
		}
		if p.Name == "" {
			return nil, errors.Wrapf(perrors.ErrMissingName, "bundle %s", entry.Name())
		}
		presets = append(presets, p)
	}

	return presets, nil
}

// All returns the built-in bundles plus any user bundles from dir, sorted
// by name. A user bundle with a built-in's name replaces the built-in.
func All(dir string) ([]Preset, error) {
	user, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]Preset)
	for _, p := range Builtins() {
		byName[p.Name] = p
	}
	for _, p := range user {
		byName[p.Name] = p
	}

	out := make([]Preset, 0, len(byName))
	for _, p := range byName {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Preset) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}

// Find returns the bundle with the given name from All.
func Find(dir, name string) (*Preset, error) {
	presets, err := All(dir)
	if err != nil {
		return nil, err
	}
	for i := range presets {
		if presets[i].Name == name {
			return &presets[i], nil
		}
	}
	return nil, errors.Wrapf(perrors.ErrNotFound, "premade preset %q", name)
}
