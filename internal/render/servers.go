// Package render turns probe results back into canonical display order
// and produces the status tables and summary lines.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/scottastone/check-servers/internal/config"
	"github.com/scottastone/check-servers/internal/probe"
	"github.com/scottastone/check-servers/internal/ui/components"
	"github.com/scottastone/check-servers/internal/ui/styles"
)

// Servers renders the ping results table plus the summary line. The
// servers slice is the canonical order; entries without a result (probe
// never completed) are skipped. Quiet mode hides OK rows but still counts
// them.
func Servers(w io.Writer, servers []config.Server, results map[string]probe.PingResult, quiet bool) {
	table := components.NewTable("Server Status",
		components.Column{Title: "SERVER", Width: 20},
		components.Column{Title: "ADDRESS", Width: 18},
		components.Column{Title: "TYPE", Width: 8},
		components.Column{Title: "STATUS", Width: 8, Align: lipgloss.Center},
		components.Column{Title: "TIME (ms)", Width: 10, Align: lipgloss.Right},
	)

	okCount, downCount := 0, 0
	totalLatency := 0.0

	for _, srv := range servers {
		res, checked := results[srv.Name]
		if !checked {
			continue
		}

		switch res.Status {
		case probe.StatusOK:
			okCount++
			totalLatency += res.Latency
			if quiet {
				continue
			}
			table.AddRow(
				styles.Theme.Name.Render(srv.Name),
				styles.Theme.Address.Render(srv.IP),
				styles.Theme.Kind.Render(string(srv.Kind)),
				components.RenderStatus(components.StatusOK),
				styles.Theme.Latency.Render(fmt.Sprintf("%.2f", res.Latency)),
			)
		default:
			downCount++
			table.AddRow(
				styles.Theme.Name.Render(srv.Name),
				styles.Theme.Address.Render(srv.IP),
				styles.Theme.Kind.Render(string(srv.Kind)),
				components.RenderStatus(components.StatusDown),
				styles.Theme.Muted.Render("--"),
			)
		}
	}

	fmt.Fprintln(w, table.Render())

	avgLatency := 0.0
	if okCount > 0 {
		avgLatency = totalLatency / float64(okCount)
	}
	fmt.Fprintf(w, "STATS: %s | %s | Avg Latency: %s\n",
		styles.Theme.OK.Render(fmt.Sprintf("%d/%d Online", okCount, len(servers))),
		styles.Theme.Down.Render(fmt.Sprintf("%d Down", downCount)),
		styles.Theme.Latency.Render(fmt.Sprintf("%.2fms", avgLatency)),
	)
}
