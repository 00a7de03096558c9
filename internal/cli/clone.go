package cli

import (
	"fmt"
	"io"
	"log/slog"

	bprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/dadandiaoming/internal/progress"
)

// CloneModel shows a spinner and the download bar while a clone runs.
type CloneModel struct {
	spinner spinner.Model
	bar     bprogress.Model
	title   string
	percent int
	started bool
	cloning bool
	done    bool
	err     error
}

type cloneProgressMsg struct {
	percent int
}

type cloneCompleteMsg struct {
	err error
}

// NewCloneModel creates a new clone model
func NewCloneModel(title string) CloneModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	bar := bprogress.New(
		bprogress.WithWidth(progress.Width),
		bprogress.WithoutPercentage(),
		bprogress.WithSolidFill("220"),
	)
	bar.Full = []rune(progress.FilledCell)[0]
	bar.Empty = []rune(progress.EmptyCell)[0]

	return CloneModel{
		spinner: s,
		bar:     bar,
		title:   title,
		cloning: true,
	}
}

func (m CloneModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m CloneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case cloneProgressMsg:
		m.started = true
		m.percent = msg.percent

		return m, nil

	case cloneCompleteMsg:
		m.cloning = false
		m.done = true
		m.err = msg.err

		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m CloneModel) View() string {
	if m.done {
		if m.err != nil {
			return errorStyle.Render("✖ Create failed") + "\n"
		}

		return successStyle.Render("✔ Template cloned") + "\n"
	}

	if !m.started {
		return fmt.Sprintf("%s %s\n", m.spinner.View(), m.title)
	}

	return fmt.Sprintf("%s %s [%s] %s\n",
		m.spinner.View(),
		labelStyle.Render("Download progress"),
		m.bar.ViewAs(progress.Fraction(m.percent)),
		percentStyle.Render(progress.Label(m.percent)))
}

// CloneTracker renders clone progress through a bubbletea program. Events
// whose stage the normalizer does not recognize are dropped before they reach
// the program.
type CloneTracker struct {
	Out        io.Writer
	Normalizer *progress.Normalizer
}

var _ progress.Tracker = (*CloneTracker)(nil)

// Track implements progress.Tracker.
func (t *CloneTracker) Track(title string, run func(progress.Observer) error) error {
	n := t.Normalizer
	if n == nil {
		n = progress.NewNormalizer(progress.DefaultTokens())
	}

	// no input: interrupts reach the process and cancel the clone's context
	p := tea.NewProgram(NewCloneModel(title), tea.WithInput(nil), tea.WithOutput(t.Out))

	errCh := make(chan error, 1)

	go func() {
		last := -1
		err := run(func(e progress.Event) {
			if n.Stage(e.Raw) == progress.StageOther || e.Percent == last {
				return
			}

			last = e.Percent
			p.Send(cloneProgressMsg{percent: e.Percent})
		})

		errCh <- err

		p.Send(cloneCompleteMsg{err: err})
	}()

	if _, err := p.Run(); err != nil {
		slog.Debug("clone view stopped", "error", err)
	}

	return <-errCh
}
