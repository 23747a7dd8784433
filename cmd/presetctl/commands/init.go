package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/presetctl/internal/config"
	"github.com/thoreinstein/presetctl/internal/errors"
	"github.com/thoreinstein/presetctl/internal/paths"
	"github.com/thoreinstein/presetctl/pkg/fileutil"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing configuration")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize presetctl configuration",
	Long: `Bootstrap the preset directories and a default configuration file.

Creates the per-category preset directories, the premade bundle directory,
and config.yaml under the XDG config home. Existing presets are never
touched; re-running init is safe.`,
	Example: `  # Initialize with defaults
  presetctl init

  # Overwrite an existing config file
  presetctl init --force

  See Also: presetctl list, presetctl show`,
	RunE: runInit,
}

func runInit(_ *cobra.Command, _ []string) error {
	return runInitWithWriter(os.Stdout)
}

func runInitWithWriter(w io.Writer) error {
	if err := newStore().EnsureDirs(); err != nil {
		return errors.NewSystemError(err, "Check permissions on the data directory")
	}
	if err := paths.EnsureDir(premadeDir(), 0); err != nil {
		return errors.NewSystemError(err, "Check permissions on the config directory")
	}

	configPath := paths.ConfigFile()
	if _, err := os.Stat(configPath); err == nil && !initForce {
		fmt.Fprintf(w, "Configuration already exists at %s\n", configPath)
		fmt.Fprintln(w, "Use --force to overwrite")
		return nil
	}

	if err := paths.EnsureDir(filepath.Dir(configPath), 0); err != nil {
		return errors.NewSystemError(err, "Check permissions on the config directory")
	}
	if err := fileutil.AtomicWriteYAML(configPath, config.Default()); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	fmt.Fprintf(w, "Created %s\n", configPath)
	return nil
}
