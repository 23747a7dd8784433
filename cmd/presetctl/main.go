// Package main is the entry point for the presetctl CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/presetctl/cmd/presetctl/commands"
	"github.com/thoreinstein/presetctl/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}
	os.Exit(errors.ExitUser)
}
