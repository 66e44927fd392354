package components

import (
	"fmt"
	"os"

	"github.com/scottastone/check-servers/internal/ui/styles"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

type progressAdvanceMsg struct{}

type progressDoneMsg struct{}

type progressModel struct {
	spinner  spinner.Model
	message  string
	done     int
	total    int
	finished bool
}

func newProgressModel(message string, total int) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Theme.OK
	return progressModel{spinner: s, message: message, total: total}
}

func (m progressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case progressAdvanceMsg:
		m.done++
		return m, nil
	case progressDoneMsg:
		m.finished = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m progressModel) View() string {
	if m.finished {
		// Transient: leave nothing behind once the run is over.
		return ""
	}
	counter := fmt.Sprintf("%d/%d", m.done, m.total)
	return m.spinner.View() + " " + styles.Theme.Progress.Render(m.message+" "+counter)
}

// Progress is a transient spinner-with-counter shown while probes run.
// It draws on stderr and only when stderr is a terminal, so piped and
// cron invocations see clean output.
type Progress struct {
	program *tea.Program
	runDone chan struct{}
}

// NewProgress creates a progress tracker for total probe completions.
func NewProgress(message string, total int) *Progress {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return &Progress{}
	}
	p := tea.NewProgram(
		newProgressModel(message, total),
		tea.WithOutput(os.Stderr),
		tea.WithoutSignalHandler(),
		tea.WithInput(nil),
	)
	return &Progress{program: p, runDone: make(chan struct{})}
}

// Start begins drawing. A no-op off-terminal.
func (p *Progress) Start() {
	if p.program == nil {
		return
	}
	go func() {
		defer close(p.runDone)
		_, _ = p.program.Run()
	}()
}

// Advance records one completed probe.
func (p *Progress) Advance() {
	if p.program == nil {
		return
	}
	p.program.Send(progressAdvanceMsg{})
}

// Stop tears the spinner down and waits for the screen to be clean.
func (p *Progress) Stop() {
	if p.program == nil {
		return
	}
	p.program.Send(progressDoneMsg{})
	<-p.runDone
}
