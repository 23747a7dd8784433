package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(WithPath(path))

	data := DefaultData()
	data.PlaytimeSeconds = 4200
	data.ScenesDiscovered = []uint16{3, 7, 12}
	data.Options.SilenceNavi = true

	if err := store.Save(data); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got := store.Load()
	if got.PlaytimeSeconds != 4200 {
		t.Errorf("PlaytimeSeconds = %d, want 4200", got.PlaytimeSeconds)
	}
	if len(got.ScenesDiscovered) != 3 || got.ScenesDiscovered[1] != 7 {
		t.Errorf("ScenesDiscovered = %v", got.ScenesDiscovered)
	}
	if !got.Options.SilenceNavi {
		t.Error("SilenceNavi should survive the round trip")
	}
}

func TestStore_Load_Missing(t *testing.T) {
	store := NewStore(WithPath(filepath.Join(t.TempDir(), "session.json")))

	got := store.Load()
	if got.Version != Version {
		t.Errorf("Version = %d, want %d", got.Version, Version)
	}
	if !got.Options.EnableBGM || !got.Options.EnableSFX {
		t.Error("defaults should enable audio")
	}
}

func TestStore_Load_VersionMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	stale := `{"version": 1, "playtime_seconds": 999}`
	if err := os.WriteFile(path, []byte(stale), 0600); err != nil {
		t.Fatal(err)
	}

	got := NewStore(WithPath(path)).Load()
	if got.PlaytimeSeconds != 0 {
		t.Error("stale-version data must be discarded wholesale, not merged")
	}
	if got.Version != Version {
		t.Errorf("Version = %d, want %d", got.Version, Version)
	}
}

func TestStore_Load_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	got := NewStore(WithPath(path)).Load()
	if got.Version != Version {
		t.Error("corrupt data should fall back to defaults")
	}
}

func TestStore_Save_StampsVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(WithPath(path))

	data := &Data{Version: 1}
	if err := store.Save(data); err != nil {
		t.Fatal(err)
	}

	if got := store.Load(); got.Version != Version {
		t.Errorf("saved Version = %d, want %d", got.Version, Version)
	}
}
