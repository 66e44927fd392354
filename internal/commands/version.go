// Package commands holds the pieces shared by the three command trees.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scottastone/check-servers/pkg/version"
)

// NewVersionCommand builds the version subcommand every tool carries.
func NewVersionCommand(tool string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s (commit %s, built %s)\n", tool, version.Version(), version.Commit(), version.BuildDate())
		},
	}
}
