package servers

import (
	"errors"
	"fmt"
	"os"

	"github.com/scottastone/check-servers/internal/config"
	"github.com/scottastone/check-servers/internal/dispatch"
	"github.com/scottastone/check-servers/internal/probe"
	"github.com/scottastone/check-servers/internal/render"
	"github.com/scottastone/check-servers/internal/ui/components"
	"github.com/scottastone/check-servers/internal/ui/styles"
	"github.com/scottastone/check-servers/pkg/logger"
)

func runCheck(opts *checkOptions) error {
	path, err := paths().Locate()
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			return fmt.Errorf("configuration file not found; create %s", paths().User)
		}
		return err
	}

	settings, allServers, err := config.LoadServers(path)
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded", "path", path, "servers", len(allServers),
		"timeout", settings.Timeout, "retries", settings.Retries)

	toCheck := config.Filter(allServers, opts.localOnly, opts.remoteOnly)
	if len(toCheck) == 0 {
		fmt.Println(styles.Theme.Notice.Render("No servers to check."))
		return nil
	}

	pinger := probe.NewPinger(settings)

	progress := components.NewProgress("Pinging servers...", len(toCheck))
	progress.Start()
	outcomes := dispatch.Run(toCheck, pinger.Check, dispatch.WithOnComplete(progress.Advance))
	progress.Stop()

	// The only write point for the result map: the collecting side, after
	// every worker finished.
	results := make(map[string]probe.PingResult, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			logger.Error("probe failed", "error", outcome.Err)
			continue
		}
		results[outcome.Value.Server.Name] = outcome.Value
	}

	render.Servers(os.Stdout, toCheck, results, opts.quiet)
	return nil
}
