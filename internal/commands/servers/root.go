// Package servers is the check-servers command tree: ping every configured
// server concurrently and show a status table, plus the add/remove config
// mutation commands.
package servers

import (
	"github.com/spf13/cobra"

	"github.com/scottastone/check-servers/internal/commands"
	"github.com/scottastone/check-servers/internal/config"
)

const tool = "check-servers"

type checkOptions struct {
	localOnly  bool
	remoteOnly bool
	quiet      bool
}

// NewRootCommand builds the check-servers command tree. A bare invocation
// runs the check subcommand.
func NewRootCommand() *cobra.Command {
	opts := &checkOptions{}

	root := &cobra.Command{
		Use:   tool,
		Short: "Check the status of local and remote servers via ICMP pings",
		Long: `check-servers pings every server listed in its configuration file
concurrently and renders a status table with per-server latency.

Configuration is read from ~/.config/check-servers/servers.conf, falling
back to /etc/check-servers/servers.conf.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts)
		},
	}

	root.PersistentFlags().BoolVarP(&opts.localOnly, "local", "l", false, "check local servers only")
	root.PersistentFlags().BoolVarP(&opts.remoteOnly, "remote", "r", false, "check remote servers only")
	root.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "only show servers that are down")

	check := &cobra.Command{
		Use:   "check",
		Short: "Ping the configured servers (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts)
		},
	}

	root.AddCommand(check, newAddCommand(), newRemoveCommand(), commands.NewVersionCommand(tool))
	return root
}

// Execute runs the check-servers CLI.
func Execute() error {
	return NewRootCommand().Execute()
}

func paths() config.Paths {
	return config.DefaultPaths(tool)
}
