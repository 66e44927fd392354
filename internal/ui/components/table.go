// Package components provides the reusable terminal pieces shared by the
// check tools: the status table and the transient progress spinner.
package components

import (
	"strings"

	"github.com/scottastone/check-servers/internal/ui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Column defines one table column. A zero Width means unconstrained.
type Column struct {
	Title string
	Width int
	Align lipgloss.Position
}

// Table renders a titled, bordered status table.
type Table struct {
	title   string
	columns []Column
	rows    [][]string
}

// NewTable creates a table with the given title and columns.
func NewTable(title string, columns ...Column) *Table {
	return &Table{title: title, columns: columns}
}

// AddRow appends one row. Cells are truncated to their column width at
// render time, never here.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Len returns the number of rows added so far.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render renders the title, the table and, when no rows were added, a
// muted "nothing to show" notice below the empty frame.
func (t *Table) Render() string {
	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = col.Title
	}

	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			width := 0
			if j < len(t.columns) {
				width = t.columns[j].Width
			}
			rows[i][j] = truncateCell(cell, width)
		}
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Theme.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := styles.Theme.Cell
			if row == table.HeaderRow {
				s = styles.Theme.Header
			}
			if col >= 0 && col < len(t.columns) {
				if w := t.columns[col].Width; w > 0 {
					s = s.Width(w).MaxWidth(w + 2)
				}
				if a := t.columns[col].Align; a != lipgloss.Left {
					s = s.Align(a)
				}
			}
			return s
		})

	var b strings.Builder
	if t.title != "" {
		b.WriteString(styles.Theme.Title.Render(styles.IconBullet + " " + t.title))
		b.WriteString("\n")
	}
	b.WriteString(tbl.String())
	if len(t.rows) == 0 {
		b.WriteString("\n")
		b.WriteString(styles.Theme.Muted.Render("(nothing to show)"))
	}
	return b.String()
}

// truncateCell trims a cell down to maxWidth terminal columns, appending
// an ellipsis. Cells that already carry ANSI sequences pass through.
func truncateCell(value string, maxWidth int) string {
	if strings.Contains(value, "\x1b[") {
		return value
	}

	if maxWidth <= 0 || runewidth.StringWidth(value) <= maxWidth {
		return value
	}

	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}

	targetWidth := maxWidth - 3
	b := strings.Builder{}
	currentWidth := 0
	g := uniseg.NewGraphemes(value)
	for g.Next() {
		grapheme := g.Str()
		graphemeWidth := runewidth.StringWidth(grapheme)
		if currentWidth+graphemeWidth > targetWidth {
			break
		}
		b.WriteString(grapheme)
		currentWidth += graphemeWidth
	}

	if b.Len() == 0 {
		return strings.Repeat(".", maxWidth)
	}

	return b.String() + "..."
}
