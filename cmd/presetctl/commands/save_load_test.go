package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/thoreinstein/presetctl/internal/errors"
	"github.com/thoreinstein/presetctl/internal/settings"
)

// selected returns the selected label of the named setting, failing the
// test if the catalog doesn't know it.
func selected(t *testing.T, reg *settings.Registry, name string) string {
	t.Helper()
	d, ok := reg.Lookup(name)
	if !ok {
		t.Fatalf("catalog has no setting %q", name)
	}
	return d.SelectedLabel()
}

func TestSaveLoadDelete_Flow(t *testing.T) {
	setupTestConfig(t)
	store := newStore()

	// Seed the cache with a non-default selection
	reg := settings.DefaultRegistry()
	d, ok := reg.Lookup("Forest")
	if !ok {
		t.Fatal("catalog has no Forest setting")
	}
	if !d.SetSelectedByLabel("Open") {
		t.Fatal("catalog has no Open option for Forest")
	}
	if err := store.SaveCache(settings.CategorySetting, reg); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := runSaveWithWriter(&buf, "race"); err != nil {
		t.Fatalf("runSaveWithWriter() error = %v", err)
	}
	if !strings.Contains(buf.String(), `Saved settings preset "race"`) {
		t.Errorf("save output = %q", buf.String())
	}

	// Reset the cache to defaults, then load the preset back
	if err := store.SaveCache(settings.CategorySetting, settings.DefaultRegistry()); err != nil {
		t.Fatal(err)
	}

	buf.Reset()
	if err := runLoadWithWriter(&buf, "race"); err != nil {
		t.Fatalf("runLoadWithWriter() error = %v", err)
	}
	if !strings.Contains(buf.String(), `Loaded settings preset "race"`) {
		t.Errorf("load output = %q", buf.String())
	}

	// Load must have updated the cache
	current, err := currentRegistry(store, settings.CategorySetting)
	if err != nil {
		t.Fatal(err)
	}
	if got := selected(t, current, "Forest"); got != "Open" {
		t.Errorf("Forest after load = %q, want Open", got)
	}

	buf.Reset()
	if err := runDeleteWithWriter(&buf, "race"); err != nil {
		t.Fatalf("runDeleteWithWriter() error = %v", err)
	}

	names, err := store.List(settings.CategorySetting)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 0 {
		t.Errorf("presets after delete = %v", names)
	}
}

func TestRunLoad_NotFound(t *testing.T) {
	setupTestConfig(t)

	var buf bytes.Buffer
	err := runLoadWithWriter(&buf, "missing")
	if !errors.Is(err, errors.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}

	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatal("load of a missing preset should be a user error")
	}
	if exitErr.Code != errors.ExitUser {
		t.Errorf("exit code = %d, want %d", exitErr.Code, errors.ExitUser)
	}
}

func TestRunDelete_NotFound(t *testing.T) {
	setupTestConfig(t)

	var buf bytes.Buffer
	err := runDeleteWithWriter(&buf, "missing")
	if !errors.Is(err, errors.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestRunSave_InvalidName(t *testing.T) {
	setupTestConfig(t)

	var buf bytes.Buffer
	if err := runSaveWithWriter(&buf, "CACHED_SETTINGS"); err == nil {
		t.Fatal("saving over the cache name should fail")
	}
	if err := runSaveWithWriter(&buf, "a/b"); err == nil {
		t.Fatal("path separators in preset names should fail")
	}
}
