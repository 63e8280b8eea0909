// Package main is the entry point for the claude-profiles CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"claudeprofiles/cmd/claude-profiles/commands"
	cperrors "claudeprofiles/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		var exitErr *cperrors.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Suggestion != "" {
				fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
			}
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
