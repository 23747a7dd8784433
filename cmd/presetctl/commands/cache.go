package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cacheCmd.AddCommand(cacheSaveCmd)
	cacheCmd.AddCommand(cacheLoadCmd)
	rootCmd.AddCommand(cacheCmd)
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the hidden cache preset",
	Long: `The cache preset carries the current selections between runs. It lives
next to the named presets but is excluded from listings and cannot be
saved over or deleted by name.

Load and apply keep the cache up to date automatically; these subcommands
exist to inspect it and to rewrite it after a catalog upgrade.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var cacheSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Rewrite the cache preset in the current catalog's order",
	Long: `Load the cached selections and write them back through the current
catalog. Records for settings the catalog no longer knows are dropped,
and new settings are written at their defaults, so the cache file matches
the catalog again after an upgrade.`,
	RunE: runCacheSave,
}

var cacheLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Show the selections the cache preset restores",
	RunE:  runCacheLoad,
}

func runCacheSave(_ *cobra.Command, _ []string) error {
	return runCacheSaveWithWriter(os.Stdout)
}

func runCacheSaveWithWriter(w io.Writer) error {
	cat, err := resolveCategory()
	if err != nil {
		return err
	}

	store := newStore()
	reg, err := currentRegistry(store, cat)
	if err != nil {
		return err
	}
	if err := store.SaveCache(cat, reg); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s✓ Cache preset rewritten for %s%s\n", colorGreen, cat, colorReset)
	return nil
}

func runCacheLoad(_ *cobra.Command, _ []string) error {
	return runCacheLoadWithWriter(os.Stdout)
}

func runCacheLoadWithWriter(w io.Writer) error {
	cat, err := resolveCategory()
	if err != nil {
		return err
	}

	store := newStore()
	reg, err := currentRegistry(store, cat)
	if err != nil {
		return err
	}

	printSelections(w, reg, cat)
	return nil
}
