package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/presetctl/internal/errors"
	"github.com/thoreinstein/presetctl/internal/settings"
)

func TestRunApply_Builtin(t *testing.T) {
	setupTestConfig(t)

	var buf bytes.Buffer
	if err := runApplyWithWriter(&buf, "Racing"); err != nil {
		t.Fatalf("runApplyWithWriter() error = %v", err)
	}
	if !strings.Contains(buf.String(), `Applied "Racing"`) {
		t.Errorf("output = %q", buf.String())
	}

	// The overrides must land in the cache
	current, err := currentRegistry(newStore(), settings.CategorySetting)
	if err != nil {
		t.Fatal(err)
	}
	if got := selected(t, current, "Forest"); got != "Open" {
		t.Errorf("Forest = %q, want Open", got)
	}
	if got := selected(t, current, "Starting Age"); got != "Adult" {
		t.Errorf("Starting Age = %q, want Adult", got)
	}
}

func TestRunApply_NotFound(t *testing.T) {
	setupTestConfig(t)

	var buf bytes.Buffer
	err := runApplyWithWriter(&buf, "No Such Bundle")
	if !errors.Is(err, errors.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestRunApply_UserBundleOverridesBuiltin(t *testing.T) {
	setupTestConfig(t)

	if err := os.MkdirAll(premadeDir(), 0o755); err != nil {
		t.Fatal(err)
	}
	bundle := `name = "Racing"
description = "House rules"

[[override]]
setting = "Forest"
value = "Closed Deku"
`
	if err := os.WriteFile(filepath.Join(premadeDir(), "racing.toml"), []byte(bundle), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := runApplyWithWriter(&buf, "Racing"); err != nil {
		t.Fatalf("runApplyWithWriter() error = %v", err)
	}

	current, err := currentRegistry(newStore(), settings.CategorySetting)
	if err != nil {
		t.Fatal(err)
	}
	if got := selected(t, current, "Forest"); got != "Closed Deku" {
		t.Errorf("Forest = %q, want the user bundle's value", got)
	}
}

func TestRunApplyList(t *testing.T) {
	setupTestConfig(t)

	var buf bytes.Buffer
	if err := runApplyListWithWriter(&buf); err != nil {
		t.Fatalf("runApplyListWithWriter() error = %v", err)
	}

	out := buf.String()
	for _, name := range []string{"Intended", "Allsanity", "Racing"} {
		if !strings.Contains(out, name) {
			t.Errorf("output missing builtin %q:\n%s", name, out)
		}
	}
}
