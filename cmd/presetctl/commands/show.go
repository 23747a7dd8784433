package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/presetctl/internal/preset"
	"github.com/thoreinstein/presetctl/internal/settings"
)

var showJSON bool

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show current or saved selections",
	Long: `Display every setting in the category with its selected option.

Without a name, shows the current selections (the cache preset over the
catalog defaults). With a name, shows what loading that preset over the
defaults would select.`,
	Example: `  # Show the current settings
  presetctl show

  # Show what a saved preset selects
  presetctl show weekly-race

  # Output as JSON
  presetctl show --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

// settingJSON represents one selection in JSON output.
type settingJSON struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func runShow(_ *cobra.Command, args []string) error {
	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	return runShowWithWriter(os.Stdout, name)
}

// runShowWithWriter allows injecting a writer for testing.
func runShowWithWriter(w io.Writer, name string) error {
	cat, err := resolveCategory()
	if err != nil {
		return err
	}
	store := newStore()

	var reg *settings.Registry
	if name == "" {
		reg, err = currentRegistry(store, cat)
		if err != nil {
			return err
		}
	} else {
		reg = settings.DefaultRegistry()
		if err := store.Load(name, cat, reg); err != nil {
			return err
		}
	}

	if showJSON {
		return outputSelectionsJSON(w, reg, cat)
	}
	printSelections(w, reg, cat)
	return nil
}

// outputSelectionsJSON outputs selections in JSON format, in catalog order.
func outputSelectionsJSON(w io.Writer, reg *settings.Registry, cat settings.Category) error {
	defs := reg.Definitions(cat)
	out := make([]settingJSON, len(defs))
	for i, d := range defs {
		out[i] = settingJSON{
			Name:  preset.NormalizeName(d.Name()),
			Value: d.SelectedLabel(),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// printSelections outputs selections grouped by menu.
func printSelections(w io.Writer, reg *settings.Registry, cat settings.Category) {
	first := true
	for _, m := range reg.Menus() {
		if m.Mode != settings.MenuOptions {
			continue
		}

		var defs []*settings.Definition
		for _, d := range m.Settings {
			if d.In(cat) {
				defs = append(defs, d)
			}
		}
		if len(defs) == 0 {
			continue
		}

		if !first {
			fmt.Fprintln(w)
		}
		first = false

		fmt.Fprintf(w, "%s%s%s\n", colorCyan+colorBold, m.Name, colorReset)

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, d := range defs {
			fmt.Fprintf(tw, "  %s\t%s%s%s\n",
				preset.NormalizeName(d.Name()), colorGreen, d.SelectedLabel(), colorReset)
		}
		tw.Flush()
	}

	if first {
		fmt.Fprintf(w, "%s(no %s in the catalog)%s\n", colorGray, cat, colorReset)
	}
}
