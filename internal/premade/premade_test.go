package premade

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	perrors "github.com/thoreinstein/presetctl/internal/errors"
	"github.com/thoreinstein/presetctl/internal/settings"
)

func TestPreset_Apply(t *testing.T) {
	reg := settings.DefaultRegistry()

	p := Preset{
		Name: "test",
		Overrides: []Override{
			{Setting: "Forest", Value: "Open"},
			{Setting: "Starting Age", Value: "Adult"},
			{Setting: "No Such Setting", Value: "On"}, // unknown setting
			{Setting: "Forest", Value: "Ajar"},        // unknown label
		},
	}

	res := p.Apply(reg)
	if res.Applied != 2 {
		t.Errorf("Applied = %d, want 2", res.Applied)
	}
	if res.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", res.Skipped)
	}

	d, _ := reg.Lookup("Forest")
	if d.SelectedLabel() != "Open" {
		t.Errorf("Forest = %q, want %q (failed override must not revert earlier one)", d.SelectedLabel(), "Open")
	}
	age, _ := reg.Lookup("Starting Age")
	if age.SelectedLabel() != "Adult" {
		t.Errorf("Starting Age = %q, want %q", age.SelectedLabel(), "Adult")
	}
}

func TestBuiltins_ApplyCleanly(t *testing.T) {
	for _, p := range Builtins() {
		reg := settings.DefaultRegistry()
		res := p.Apply(reg)
		if res.Skipped != 0 {
			t.Errorf("builtin %q skipped %d overrides against the default catalog", p.Name, res.Skipped)
		}
		if res.Applied != len(p.Overrides) {
			t.Errorf("builtin %q applied %d of %d overrides", p.Name, res.Applied, len(p.Overrides))
		}
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()

	bundle := `name = "Weekly"
description = "Community weekly race settings."

[[override]]
setting = "Forest"
value = "Open"

[[override]]
setting = "Starting Age"
value = "Random"
`
	if err := os.WriteFile(filepath.Join(dir, "weekly.toml"), []byte(bundle), 0600); err != nil {
		t.Fatal(err)
	}
	// Non-TOML files are ignored
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0600); err != nil {
		t.Fatal(err)
	}

	presets, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if len(presets) != 1 {
		t.Fatalf("LoadDir() returned %d presets, want 1", len(presets))
	}
	if presets[0].Name != "Weekly" || len(presets[0].Overrides) != 2 {
		t.Errorf("unexpected bundle: %+v", presets[0])
	}
}

func TestLoadDir_Missing(t *testing.T) {
	presets, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("LoadDir() on missing dir error = %v", err)
	}
	if presets != nil {
		t.Errorf("expected no presets, got %v", presets)
	}
}

func TestLoadDir_Unnamed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.toml"), []byte("description = \"no name\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadDir(dir)
	if !errors.Is(err, perrors.ErrMissingName) {
		t.Errorf("error = %v, want ErrMissingName", err)
	}
}

func TestAll_UserOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	bundle := `name = "Racing"
description = "House rules."

[[override]]
setting = "Forest"
value = "Closed"
`
	if err := os.WriteFile(filepath.Join(dir, "racing.toml"), []byte(bundle), 0600); err != nil {
		t.Fatal(err)
	}

	all, err := All(dir)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}

	found, err := Find(dir, "Racing")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if found.Description != "House rules." {
		t.Errorf("user bundle should replace the builtin, got %q", found.Description)
	}

	// No duplicate names
	seen := map[string]bool{}
	for _, p := range all {
		if seen[p.Name] {
			t.Errorf("duplicate bundle name %q", p.Name)
		}
		seen[p.Name] = true
	}
}

func TestFind_NotFound(t *testing.T) {
	_, err := Find(t.TempDir(), "Ghost")
	if !errors.Is(err, perrors.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
