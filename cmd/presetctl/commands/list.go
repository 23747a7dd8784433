package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets",
	Long: `List the saved presets for a category, sorted by name.

The hidden cache preset used for session persistence is not shown.

Examples:
  # List presets for the default category
  presetctl list

  # List cosmetic presets
  presetctl list --category cosmetics

  # Output as JSON
  presetctl list --json`,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	return runListWithWriter(os.Stdout)
}

// runListWithWriter allows injecting a writer for testing.
func runListWithWriter(w io.Writer) error {
	cat, err := resolveCategory()
	if err != nil {
		return err
	}

	names, err := newStore().List(cat)
	if err != nil {
		return err
	}

	if listJSON {
		if names == nil {
			names = []string{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string][]string{cat.String(): names})
	}

	if len(names) == 0 {
		fmt.Fprintf(w, "No %s presets saved\n", cat)
		return nil
	}

	fmt.Fprintf(w, "%sPresets: %s%s\n", colorCyan+colorBold, cat, colorReset)
	for _, name := range names {
		fmt.Fprintf(w, "  %s%s%s\n", colorGreen, name, colorReset)
	}
	return nil
}
