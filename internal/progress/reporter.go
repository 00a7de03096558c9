package progress

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Tracker displays progress while run executes. The observer handed to run
// feeds the display; Track returns run's error.
type Tracker interface {
	Track(title string, run func(Observer) error) error
}

var (
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	percentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Line formats the status line for a percentage.
func Line(percent int) string {
	return fmt.Sprintf("%s [%s] %s",
		labelStyle.Render("Download progress"),
		barStyle.Render(Bar(percent)),
		percentStyle.Render(Label(percent)))
}

// LineReporter rewrites one terminal line in place for every recognized
// event. It is the renderer used when output is not an interactive terminal.
type LineReporter struct {
	out        io.Writer
	normalizer *Normalizer
	last       string
}

// NewLineReporter writes to out and classifies stages with n; a nil n uses
// DefaultTokens.
func NewLineReporter(out io.Writer, n *Normalizer) *LineReporter {
	if n == nil {
		n = NewNormalizer(DefaultTokens())
	}

	return &LineReporter{out: out, normalizer: n}
}

// Observe renders e when its stage is recognized.
func (r *LineReporter) Observe(e Event) {
	if r.normalizer.Stage(e.Raw) == StageOther {
		return
	}

	r.replace(Line(e.Percent))
}

// Last returns the most recently rendered line.
func (r *LineReporter) Last() string {
	return r.last
}

// Track implements Tracker.
func (r *LineReporter) Track(title string, run func(Observer) error) error {
	r.replace(title)

	err := run(r.Observe)
	if err != nil {
		r.replace(failStyle.Render("✖ Create failed"))
	} else {
		r.replace(okStyle.Render("✔ Template cloned"))
	}

	_, _ = fmt.Fprintln(r.out)

	return err
}

func (r *LineReporter) replace(line string) {
	r.last = line
	_, _ = fmt.Fprint(r.out, "\r"+ansi.EraseEntireLine+line)
}
