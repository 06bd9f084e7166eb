// Package display renders command results for humans or as JSON.
package display

import (
	"github.com/spf13/cobra"
)

// ShouldOutputJSON reports whether cmd was asked for JSON, by its own
// --json flag or a persistent one on the root command
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}

	if f := cmd.Flags().Lookup("json"); f != nil && f.Changed {
		v, _ := cmd.Flags().GetBool("json")
		return v
	}

	if f := cmd.Root().PersistentFlags().Lookup("json"); f != nil {
		v, _ := cmd.Root().PersistentFlags().GetBool("json")
		return v
	}
	return false
}
