package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Task describes one step shown with a spinner.
type Task struct {
	Title   string
	Success string
	Failure string
}

// TaskModel spins while a task runs and prints its outcome line.
type TaskModel struct {
	spinner spinner.Model
	task    Task
	done    bool
	err     error
}

type taskDoneMsg struct {
	err error
}

// NewTaskModel creates a spinner for task
func NewTaskModel(task Task) TaskModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return TaskModel{spinner: s, task: task}
}

func (m TaskModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m TaskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskDoneMsg:
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

func (m TaskModel) View() string {
	if m.done {
		return TaskResult(m.task, m.err) + "\n"
	}

	return fmt.Sprintf("%s %s\n", m.spinner.View(), m.task.Title)
}

// TaskResult renders the final status line of a task.
func TaskResult(task Task, err error) string {
	if err != nil {
		return errorStyle.Render("✖ " + task.Failure)
	}

	return successStyle.Render("✔ " + task.Success)
}

// Runner executes tasks with a spinner when Interactive is set and as plain
// status lines otherwise.
type Runner struct {
	Out         io.Writer
	Interactive bool
}

// Run executes fn and reports its outcome. It returns fn's error.
func (r *Runner) Run(ctx context.Context, task Task, fn func(context.Context) error) error {
	if !r.Interactive {
		_, _ = fmt.Fprintf(r.Out, "%s...\n", task.Title)

		err := fn(ctx)
		_, _ = fmt.Fprintln(r.Out, TaskResult(task, err))

		return err
	}

	p := tea.NewProgram(NewTaskModel(task), tea.WithInput(nil), tea.WithOutput(r.Out))

	errCh := make(chan error, 1)

	go func() {
		err := fn(ctx)
		errCh <- err

		p.Send(taskDoneMsg{err: err})
	}()

	if _, err := p.Run(); err != nil {
		slog.Debug("task view stopped", "task", task.Title, "error", err)
	}

	return <-errCh
}
