package components

import "github.com/scottastone/check-servers/internal/ui/styles"

// Status is the display classification of a probe outcome.
type Status int

const (
	StatusOK Status = iota
	StatusDown
	StatusFail
)

var statusLabels = map[Status]string{
	StatusOK:   "OK",
	StatusDown: "DOWN",
	StatusFail: "FAIL",
}

// RenderStatus renders a status cell with its marker and color applied.
func RenderStatus(s Status) string {
	label := statusLabels[s]
	switch s {
	case StatusOK:
		return styles.Theme.OK.Render(styles.IconOK + " " + label)
	case StatusFail:
		return styles.Theme.Fail.Render(styles.IconFail + " " + label)
	default:
		return styles.Theme.Down.Render(styles.IconDown + " " + label)
	}
}
