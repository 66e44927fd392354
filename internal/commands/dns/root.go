// Package dns is the check-dns command tree: resolve a list of sites
// against two resolver endpoints and compare the answers.
package dns

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/scottastone/check-servers/internal/commands"
	"github.com/scottastone/check-servers/internal/config"
	"github.com/scottastone/check-servers/internal/dispatch"
	"github.com/scottastone/check-servers/internal/probe"
	"github.com/scottastone/check-servers/internal/render"
	"github.com/scottastone/check-servers/internal/ui/components"
	"github.com/scottastone/check-servers/pkg/logger"
)

const tool = "check-dns"

// NewRootCommand builds the check-dns command tree. A bare invocation runs
// the check subcommand.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   tool,
		Short: "Check DNS resolution consistency across two resolvers",
		Long: `check-dns queries a list of well-known sites against a primary and a
secondary resolver and renders a side-by-side status table.

The built-in site list and resolver addresses can be overridden through
~/.config/check-dns/servers.conf.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck()
		},
	}

	check := &cobra.Command{
		Use:   "check",
		Short: "Run the DNS checks (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck()
		},
	}

	root.AddCommand(check, commands.NewVersionCommand(tool))
	return root
}

// Execute runs the check-dns CLI.
func Execute() error {
	return NewRootCommand().Execute()
}

func runCheck() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Debug("resolver configuration", "primary", cfg.Primary, "secondary", cfg.Secondary,
		"sites", len(cfg.Sites), "timeout", cfg.Timeout)

	checker := probe.NewDNSChecker(cfg.Timeout)
	checkSite := func(site string) (probe.SiteResult, error) {
		return checker.CheckSite(site, cfg.Primary, cfg.Secondary), nil
	}

	progress := components.NewProgress("DNS checks...", len(cfg.Sites))
	progress.Start()
	outcomes := dispatch.Run(cfg.Sites, checkSite, dispatch.WithOnComplete(progress.Advance))
	progress.Stop()

	results := make(map[string]probe.SiteResult, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			logger.Error("site check failed", "error", outcome.Err)
			continue
		}
		results[outcome.Value.Site] = outcome.Value
	}

	render.DNS(os.Stdout, cfg, results)
	return nil
}

// loadConfig returns the optional user/system config, falling back to the
// built-in sites and resolvers when no file exists.
func loadConfig() (config.DNSConfig, error) {
	path, err := config.DefaultPaths(tool).Locate()
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			return config.DefaultDNSConfig(), nil
		}
		return config.DNSConfig{}, err
	}
	return config.LoadDNS(path)
}
