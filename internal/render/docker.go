package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/scottastone/check-servers/internal/probe"
	"github.com/scottastone/check-servers/internal/ui/components"
	"github.com/scottastone/check-servers/internal/ui/styles"
)

// Containers renders the container results table plus the summary line.
// Results arrive in completion order across hosts; they are re-sorted by
// (host, name) for a stable display.
func Containers(w io.Writer, results []probe.ContainerResult, quiet bool) {
	sorted := make([]probe.ContainerResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Host != sorted[j].Host {
			return sorted[i].Host < sorted[j].Host
		}
		return sorted[i].Name < sorted[j].Name
	})

	table := components.NewTable("Docker Container Status",
		components.Column{Title: "CONTAINER", Width: 24},
		components.Column{Title: "HOST", Width: 18},
		components.Column{Title: "STATUS", Width: 8, Align: lipgloss.Center},
		components.Column{Title: "INFO", Width: 20},
	)

	okCount, downCount := 0, 0
	for _, res := range sorted {
		status := components.StatusDown
		switch res.Status {
		case probe.StatusOK:
			okCount++
			if quiet {
				continue
			}
			status = components.StatusOK
		case probe.StatusFail:
			downCount++
			status = components.StatusFail
		default:
			downCount++
		}
		table.AddRow(
			styles.Theme.Name.Render(res.Name),
			styles.Theme.Address.Render(res.Host),
			components.RenderStatus(status),
			styles.Theme.Info.Render(res.Info),
		)
	}

	fmt.Fprintln(w, table.Render())
	fmt.Fprintf(w, "STATS: %s | %s\n",
		styles.Theme.OK.Render(fmt.Sprintf("%d/%d Online", okCount, len(results))),
		styles.Theme.Down.Render(fmt.Sprintf("%d Down", downCount)),
	)
}
