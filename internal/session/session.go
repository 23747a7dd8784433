// Package session persists session-scoped state that is not part of any
// preset: play statistics, discovery flags, and in-game toggles.
//
// Unlike preset documents, session data is a flat versioned struct written
// and read wholesale. There is no per-field reconciliation: when the
// persisted version does not match [Version], the file is discarded and
// defaults are returned.
package session

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/presetctl/internal/paths"
	"github.com/thoreinstein/presetctl/pkg/fileutil"
)

// Version is the current session data layout version. Bump it whenever the
// Data structure changes; older files are then discarded on load.
const Version = 2

// Options are in-game toggles carried across sessions.
type Options struct {
	EnableBGM          bool `json:"enable_bgm"`
	EnableSFX          bool `json:"enable_sfx"`
	SilenceNavi        bool `json:"silence_navi"`
	IgnoreMaskReaction bool `json:"ignore_mask_reaction"`
	SkipSongReplays    bool `json:"skip_song_replays"`
}

// Data is the complete persisted session state. Version must stay the
// first field semantically: it is checked before anything else is trusted.
type Data struct {
	Version             int      `json:"version"`
	PlaytimeSeconds     uint64   `json:"playtime_seconds"`
	ScenesDiscovered    []uint16 `json:"scenes_discovered"`
	EntrancesDiscovered []uint16 `json:"entrances_discovered"`
	Options             Options  `json:"options"`
}

// DefaultData returns fresh session state at the current version.
func DefaultData() *Data {
	return &Data{
		Version: Version,
		Options: Options{
			EnableBGM: true,
			EnableSFX: true,
		},
	}
}

// Store reads and writes the session file.
type Store struct {
	path string
}

// Option configures a Store.
type Option func(*Store)

// WithPath overrides the session file location.
func WithPath(path string) Option {
	return func(s *Store) {
		s.path = path
	}
}

// NewStore creates a Store over the default session file location unless
// overridden with WithPath.
func NewStore(opts ...Option) *Store {
	s := &Store{path: paths.SessionFile()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the session file. A missing file, an unparsable file, or a
// version mismatch all yield defaults; session data is best-effort state,
// never worth failing a command over.
func (s *Store) Load() *Data {
	raw, err := fileutil.ReadFileWithLimit(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("discarding unreadable session data", "path", s.path, "error", err)
		}
		return DefaultData()
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		slog.Warn("discarding corrupt session data", "path", s.path, "error", err)
		return DefaultData()
	}
	if data.Version != Version {
		slog.Info("discarding session data from another version", "found", data.Version, "want", Version)
		return DefaultData()
	}

	return &data
}

// Save writes the session state wholesale, stamping the current version.
func (s *Store) Save(data *Data) error {
	if err := paths.EnsureDir(filepath.Dir(s.path), 0); err != nil {
		return errors.Wrap(err, "creating session directory")
	}
	data.Version = Version
	if err := fileutil.AtomicWriteJSON(s.path, data); err != nil {
		return errors.Wrap(err, "saving session data")
	}
	return nil
}
