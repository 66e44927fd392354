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

// DNS renders the resolution consistency table plus one summary line per
// resolver. Sites iterate in the configured order; sites without a result
// are skipped.
func DNS(w io.Writer, cfg config.DNSConfig, results map[string]probe.SiteResult) {
	table := components.NewTable("DNS Resolution Check",
		components.Column{Title: "WEBSITE", Width: 20},
		components.Column{Title: cfg.Primary, Width: 16, Align: lipgloss.Center},
		components.Column{Title: cfg.Secondary, Width: 16, Align: lipgloss.Center},
		components.Column{Title: "IPV4", Width: 16},
		components.Column{Title: "IPV6", Width: 26},
	)

	primaryOK, secondaryOK := 0, 0
	checked := 0
	for _, site := range cfg.Sites {
		res, found := results[site]
		if !found {
			continue
		}
		checked++
		if res.Primary.Status == probe.StatusOK {
			primaryOK++
		}
		if res.Secondary.Status == probe.StatusOK {
			secondaryOK++
		}
		table.AddRow(
			styles.Theme.Name.Render(res.Site),
			renderRecordStatus(res.Primary.Status),
			renderRecordStatus(res.Secondary.Status),
			styles.Theme.Address.Render(res.IPv4),
			styles.Theme.Info.Render(res.IPv6),
		)
	}

	fmt.Fprintln(w, table.Render())
	printResolverStats(w, "PRIMARY", cfg.Primary, primaryOK, checked)
	printResolverStats(w, "SECONDARY", cfg.Secondary, secondaryOK, checked)
}

func renderRecordStatus(s probe.Status) string {
	if s == probe.StatusOK {
		return components.RenderStatus(components.StatusOK)
	}
	return components.RenderStatus(components.StatusFail)
}

func printResolverStats(w io.Writer, label, addr string, ok, total int) {
	fmt.Fprintf(w, "%s (%s) STATS: %s | %s\n",
		label,
		addr,
		styles.Theme.OK.Render(fmt.Sprintf("%d/%d OK", ok, total)),
		styles.Theme.Down.Render(fmt.Sprintf("%d FAIL", total-ok)),
	)
}
