package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "presetctl"

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o755

// EnsureDir creates the directory and any necessary parents with the given
// permissions. If perm is 0, DefaultDirPerm is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// DataHome returns the XDG data home directory.
// On Linux: ~/.local/share
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func DataHome() string {
	return xdg.DataHome
}

// ConfigDir returns the tool's config directory.
// Returns: <ConfigHome>/presetctl/
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the path of the tool's config file.
// Returns: <ConfigHome>/presetctl/config.yaml
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// PresetsDir returns the base directory containing the per-category preset
// directories.
// Returns: <DataHome>/presetctl/presets/
func PresetsDir() string {
	return filepath.Join(DataHome(), AppName, "presets")
}

// PremadeDir returns the directory scanned for user premade preset bundles.
// Returns: <ConfigHome>/presetctl/premade/
func PremadeDir() string {
	return filepath.Join(ConfigDir(), "premade")
}

// SessionFile returns the path of the persisted session data file.
// Returns: <DataHome>/presetctl/session.json
func SessionFile() string {
	return filepath.Join(DataHome(), AppName, "session.json")
}
