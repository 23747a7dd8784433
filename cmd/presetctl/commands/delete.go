package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/presetctl/internal/errors"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved preset",
	Long: `Remove a named preset from the category's preset directory.

The cache preset cannot be deleted this way; it is managed by the cache
subcommands.`,
	Example: `  # Delete a settings preset
  presetctl delete weekly-race

  See Also: presetctl list`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(_ *cobra.Command, args []string) error {
	return runDeleteWithWriter(os.Stdout, args[0])
}

func runDeleteWithWriter(w io.Writer, name string) error {
	cat, err := resolveCategory()
	if err != nil {
		return err
	}

	if err := newStore().Delete(name, cat); err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return errors.NewUserError(err, "Run: presetctl list")
		}
		return err
	}

	fmt.Fprintf(w, "%s✓ Deleted %s preset %q%s\n", colorGreen, cat, name, colorReset)
	return nil
}
