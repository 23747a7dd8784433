package preset

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	perrors "github.com/thoreinstein/presetctl/internal/errors"
	"github.com/thoreinstein/presetctl/internal/paths"
	"github.com/thoreinstein/presetctl/internal/settings"
	"github.com/thoreinstein/presetctl/pkg/fileutil"
)

// presetExt is the file extension for persisted preset documents.
const presetExt = ".xml"

// cacheNames are the hidden per-category preset names used for session
// persistence. They are excluded from List and reserved against Save.
var cacheNames = map[settings.Category]string{
	settings.CategorySetting:  "CACHED_SETTINGS",
	settings.CategoryCosmetic: "CACHED_COSMETICS",
}

// Store manages named preset documents on disk, one directory per category.
type Store struct {
	rootDir string
}

// Option configures a Store.
type Option func(*Store)

// WithRootDir overrides the base directory containing the category
// subdirectories.
func WithRootDir(dir string) Option {
	return func(s *Store) {
		s.rootDir = dir
	}
}

// NewStore creates a Store rooted at the default presets directory unless
// overridden with WithRootDir.
func NewStore(opts ...Option) *Store {
	s := &Store{
		rootDir: paths.PresetsDir(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CategoryDir returns the directory holding one category's presets.
func (s *Store) CategoryDir(cat settings.Category) string {
	return filepath.Join(s.rootDir, cat.String())
}

// EnsureDirs idempotently creates the category directories.
func (s *Store) EnsureDirs() error {
	for _, cat := range settings.PersistedCategories() {
		if err := paths.EnsureDir(s.CategoryDir(cat), 0); err != nil {
			return errors.Wrapf(err, "creating %s directory", cat)
		}
	}
	return nil
}

// List returns the named presets available for a category, sorted, with the
// cache preset excluded. A missing category directory is an empty list, not
// an error.
func (s *Store) List(cat settings.Category) ([]string, error) {
	entries, err := os.ReadDir(s.CategoryDir(cat))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading preset directory")
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), presetExt) {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), presetExt)
		if stem == cacheNames[cat] {
			continue
		}
		names = append(names, stem)
	}

	slices.Sort(names)
	return names, nil
}

// Save serializes the category's settings and overwrites the named preset.
// The write is atomic: on failure the previous document, if any, is intact.
func (s *Store) Save(name string, cat settings.Category, reg *settings.Registry) error {
	if err := validateName(name, cat); err != nil {
		return err
	}
	return s.write(name, cat, reg)
}

// Load reads the named preset and reconciles the category's settings
// against it. Settings without a matching record keep their current value;
// a document that is not a settings document fails with ErrFormatMismatch
// and mutates nothing.
func (s *Store) Load(name string, cat settings.Category, reg *settings.Registry) error {
	if err := validateName(name, cat); err != nil {
		return err
	}
	return s.read(name, cat, reg)
}

// Delete removes the named preset. Deleting a preset that doesn't exist
// returns ErrNotFound.
func (s *Store) Delete(name string, cat settings.Category) error {
	if err := validateName(name, cat); err != nil {
		return err
	}
	if err := os.Remove(s.path(name, cat)); err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(perrors.ErrNotFound, "%q", name)
		}
		return errors.Wrapf(err, "deleting preset %q", name)
	}
	return nil
}

// SaveCache writes the category's hidden cache preset, used to carry the
// current selections across sessions.
func (s *Store) SaveCache(cat settings.Category, reg *settings.Registry) error {
	return s.write(cacheNames[cat], cat, reg)
}

// LoadCache reconciles against the category's cache preset if one exists.
// A missing cache file is not an error; there is simply nothing to restore.
func (s *Store) LoadCache(cat settings.Category, reg *settings.Registry) error {
	err := s.read(cacheNames[cat], cat, reg)
	if errors.Is(err, perrors.ErrNotFound) {
		return nil
	}
	return err
}

func (s *Store) path(name string, cat settings.Category) string {
	return filepath.Join(s.CategoryDir(cat), name+presetExt)
}

func (s *Store) write(name string, cat settings.Category, reg *settings.Registry) error {
	if err := paths.EnsureDir(s.CategoryDir(cat), 0); err != nil {
		return errors.Wrap(err, "creating preset directory")
	}

	var buf bytes.Buffer
	if err := Encode(&buf, Serialize(reg, cat)); err != nil {
		return err
	}

	if err := fileutil.AtomicWriteFile(s.path(name, cat), buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "saving preset %q", name)
	}
	return nil
}

func (s *Store) read(name string, cat settings.Category, reg *settings.Registry) error {
	data, err := fileutil.ReadFileWithLimit(s.path(name, cat))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errors.Wrapf(perrors.ErrNotFound, "%q", name)
		}
		return errors.Wrapf(err, "reading preset %q", name)
	}

	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return errors.Wrapf(err, "parsing preset %q", name)
	}

	return Reconcile(reg, cat, doc)
}

// validateName rejects empty names, names that escape the category
// directory, and the reserved cache name.
func validateName(name string, cat settings.Category) error {
	if name == "" {
		return perrors.ErrMissingName
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return errors.Newf("invalid preset name %q", name)
	}
	if name == cacheNames[cat] {
		return errors.Newf("%q is reserved", name)
	}
	return nil
}
