package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(saveCmd)
}

var saveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current selections as a named preset",
	Long: `Snapshot the current selections for a category into a named preset.

The current selections are whatever the cache preset holds; fresh installs
start from the catalog defaults. Saving over an existing name overwrites
it atomically.`,
	Example: `  # Save the current settings
  presetctl save weekly-race

  # Save the current cosmetics
  presetctl save lon-lon --category cosmetics

  See Also: presetctl load, presetctl list`,
	Args: cobra.ExactArgs(1),
	RunE: runSave,
}

func runSave(_ *cobra.Command, args []string) error {
	return runSaveWithWriter(os.Stdout, args[0])
}

func runSaveWithWriter(w io.Writer, name string) error {
	cat, err := resolveCategory()
	if err != nil {
		return err
	}

	store := newStore()
	reg, err := currentRegistry(store, cat)
	if err != nil {
		return err
	}

	if err := store.Save(name, cat, reg); err != nil {
		return err
	}

	slog.Debug("preset saved", "name", name, "category", cat.String())
	fmt.Fprintf(w, "%s✓ Saved %s preset %q%s\n", colorGreen, cat, name, colorReset)
	return nil
}
