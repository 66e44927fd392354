// Package docker is the check-docker command tree: list the configured
// containers per Docker host (local socket or ssh) and show their state.
package docker

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scottastone/check-servers/internal/commands"
	"github.com/scottastone/check-servers/internal/config"
	"github.com/scottastone/check-servers/internal/dispatch"
	"github.com/scottastone/check-servers/internal/probe"
	"github.com/scottastone/check-servers/internal/render"
	"github.com/scottastone/check-servers/internal/ui/components"
	"github.com/scottastone/check-servers/internal/ui/styles"
	"github.com/scottastone/check-servers/pkg/logger"
)

const tool = "check-docker"

// NewRootCommand builds the check-docker command tree. A bare invocation
// runs the check subcommand.
func NewRootCommand() *cobra.Command {
	quiet := false

	root := &cobra.Command{
		Use:   tool,
		Short: "Check the status of Docker containers on local or remote hosts",
		Long: `check-docker connects to every Docker host listed in its configuration
file (the local daemon socket, or ssh://<host> for remote ones), looks up
the configured containers and renders a status table.

Configuration is read from ~/.config/check-docker/servers.conf, falling
back to /etc/check-docker/servers.conf.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(quiet)
		},
	}
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only show containers that are down")

	check := &cobra.Command{
		Use:   "check",
		Short: "Check the configured containers (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(quiet)
		},
	}

	root.AddCommand(check, commands.NewVersionCommand(tool))
	return root
}

// Execute runs the check-docker CLI.
func Execute() error {
	return NewRootCommand().Execute()
}

func runCheck(quiet bool) error {
	paths := config.DefaultPaths(tool)
	path, err := paths.Locate()
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			return fmt.Errorf("configuration file not found; create %s", paths.User)
		}
		return err
	}

	groups, err := config.LoadContainers(path)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		fmt.Println(styles.Theme.Notice.Render("No hosts or containers to check in config."))
		return nil
	}
	logger.Debug("configuration loaded", "path", path, "hosts", len(groups))

	checker := probe.NewHostChecker()
	checkHost := func(group config.HostGroup) ([]probe.ContainerResult, error) {
		return checker.Check(group), nil
	}

	progress := components.NewProgress("Checking containers...", len(groups))
	progress.Start()
	outcomes := dispatch.Run(groups, checkHost, dispatch.WithOnComplete(progress.Advance))
	progress.Stop()

	var results []probe.ContainerResult
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			logger.Error("host check failed", "error", outcome.Err)
			continue
		}
		results = append(results, outcome.Value...)
	}

	render.Containers(os.Stdout, results, quiet)
	return nil
}
