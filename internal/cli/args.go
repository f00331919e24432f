package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// OptionalRoot validates that at most one root argument is provided.
// Returns a helpful error message with usage and examples if too many.
func OptionalRoot(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf(`accepts at most 1 arg(s), received %d

Usage: %s

Example:
  %s ./src -o snapshot.json`, len(args), cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}
