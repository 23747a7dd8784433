package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/presetctl/internal/errors"
	"github.com/thoreinstein/presetctl/internal/logging"
	"github.com/thoreinstein/presetctl/internal/preset"
	"github.com/thoreinstein/presetctl/internal/settings"
)

func init() {
	rootCmd.AddCommand(loadCmd)
}

var loadCmd = &cobra.Command{
	Use:   "load [name]",
	Short: "Load a named preset into the current selections",
	Long: `Restore the category's selections from a named preset and update the
cache preset so the selections persist.

Settings without a matching record in the preset keep their current value,
so presets saved by older or newer catalog versions still load. Without a
name, an interactive picker opens when running on a terminal.`,
	Example: `  # Load a preset by name
  presetctl load weekly-race

  # Pick one interactively
  presetctl load

  See Also: presetctl save, presetctl show`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLoad,
}

func runLoad(_ *cobra.Command, args []string) error {
	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	return runLoadWithWriter(os.Stdout, name)
}

func runLoadWithWriter(w io.Writer, name string) error {
	cat, err := resolveCategory()
	if err != nil {
		return err
	}
	store := newStore()

	if name == "" {
		name, err = pickPreset(w, store, cat)
		if err != nil || name == "" {
			return err
		}
	}

	reg, err := currentRegistry(store, cat)
	if err != nil {
		return err
	}

	if err := store.Load(name, cat, reg); err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return errors.NewUserError(err, "Run: presetctl list")
		}
		return err
	}
	if err := store.SaveCache(cat, reg); err != nil {
		return err
	}

	slog.Debug("preset loaded", "name", name, "category", cat.String())
	fmt.Fprintf(w, "%s✓ Loaded %s preset %q%s\n", colorGreen, cat, name, colorReset)
	return nil
}

// pickPreset opens a fuzzy picker over the saved preset names. An aborted
// pick is not an error; it returns an empty name.
func pickPreset(w io.Writer, store *preset.Store, cat settings.Category) (string, error) {
	if !logging.IsTTY(os.Stdout) {
		return "", errors.NewUserError(errors.ErrMissingName, "Pass a preset name when not running on a terminal")
	}

	names, err := store.List(cat)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		fmt.Fprintf(w, "No %s presets saved\n", cat)
		return "", nil
	}

	idx, err := fuzzyfinder.Find(names, func(i int) string {
		return names[i]
	})
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", nil
		}
		return "", errors.Wrap(err, "selecting preset")
	}
	return names[idx], nil
}
