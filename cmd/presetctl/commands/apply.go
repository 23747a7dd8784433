package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/presetctl/internal/errors"
	"github.com/thoreinstein/presetctl/internal/premade"
	"github.com/thoreinstein/presetctl/internal/settings"
)

var applyList bool

func init() {
	applyCmd.Flags().BoolVar(&applyList, "list", false, "List available premade presets")
	rootCmd.AddCommand(applyCmd)
}

var applyCmd = &cobra.Command{
	Use:   "apply [name]",
	Short: "Apply a premade preset",
	Long: `Apply a named bundle of setting overrides on top of the current
selections, then update the cache presets.

Premade presets are built in; additional bundles are read from .toml files
in the premade directory, and a user bundle with a built-in's name replaces
it. Overrides naming a setting or option the catalog no longer has are
skipped, not errors.`,
	Example: `  # Apply the built-in racing bundle
  presetctl apply Racing

  # List available bundles
  presetctl apply --list

  See Also: presetctl show, presetctl save`,
	Args: cobra.MaximumNArgs(1),
	RunE: runApply,
}

func runApply(_ *cobra.Command, args []string) error {
	if applyList {
		return runApplyListWithWriter(os.Stdout)
	}
	if len(args) == 0 {
		return errors.NewUserError(errors.ErrMissingName, "Run: presetctl apply --list")
	}
	return runApplyWithWriter(os.Stdout, args[0])
}

func runApplyWithWriter(w io.Writer, name string) error {
	p, err := premade.Find(premadeDir(), name)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return errors.NewUserError(err, "Run: presetctl apply --list")
		}
		return err
	}

	// A bundle may override settings and cosmetics alike, so restore and
	// rewrite the cache for every persisted category.
	store := newStore()
	reg := settings.DefaultRegistry()
	for _, cat := range settings.PersistedCategories() {
		if err := store.LoadCache(cat, reg); err != nil {
			return err
		}
	}

	res := p.Apply(reg)

	for _, cat := range settings.PersistedCategories() {
		if err := store.SaveCache(cat, reg); err != nil {
			return err
		}
	}

	slog.Debug("premade preset applied",
		"name", p.Name, "applied", res.Applied, "skipped", res.Skipped)
	fmt.Fprintf(w, "%s✓ Applied %q: %d settings changed%s\n",
		colorGreen, p.Name, res.Applied, colorReset)
	if res.Skipped > 0 {
		fmt.Fprintf(w, "%s  %d overrides skipped (unknown setting or option)%s\n",
			colorYellow, res.Skipped, colorReset)
	}
	return nil
}

// runApplyListWithWriter outputs the available bundles in tabular format.
func runApplyListWithWriter(w io.Writer) error {
	presets, err := premade.All(premadeDir())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sNAME%s\t%sDESCRIPTION%s\n", colorBold, colorReset, colorBold, colorReset)
	for _, p := range presets {
		fmt.Fprintf(tw, "%s%s%s\t%s\n", colorGreen, p.Name, colorReset, truncate(p.Description, 80))
	}
	return tw.Flush()
}
