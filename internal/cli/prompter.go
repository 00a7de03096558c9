package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/dadandiaoming/internal/catalog"
	"github.com/inovacc/dadandiaoming/internal/core"
	"github.com/inovacc/dadandiaoming/internal/pkgmgr"
)

// ErrInputRequired is returned by NonInteractive prompts.
var ErrInputRequired = errors.New("interactive input required")

// Prompter runs each question as its own bubbletea program.
type Prompter struct {
	In  io.Reader
	Out io.Writer
}

var _ core.Prompter = (*Prompter)(nil)

func (p *Prompter) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if p.In != nil {
		opts = append(opts, tea.WithInput(p.In))
	}

	if p.Out != nil {
		opts = append(opts, tea.WithOutput(p.Out))
	}

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			return nil, core.ErrCancelled
		}

		return nil, fmt.Errorf("running prompt: %w", err)
	}

	return final, nil
}

func (p *Prompter) ProjectName(ctx context.Context) (string, error) {
	final, err := p.run(ctx, NewNameInput())
	if err != nil {
		return "", err
	}

	m := final.(NameInputModel)
	if m.Cancelled() {
		return "", core.ErrCancelled
	}

	return m.Value(), nil
}

func (p *Prompter) SelectTemplate(ctx context.Context, entries []catalog.Entry) (string, error) {
	final, err := p.run(ctx, NewTemplateSelector(entries))
	if err != nil {
		return "", err
	}

	m := final.(TemplateSelectorModel)
	if m.Selected() == "" {
		return "", core.ErrCancelled
	}

	return m.Selected(), nil
}

func (p *Prompter) ConfirmOverwrite(ctx context.Context, name, path string) (bool, error) {
	if p.Out != nil {
		_, _ = fmt.Fprintln(p.Out, errorStyle.Render(fmt.Sprintf("Directory %s already exists!", path)))
	}

	final, err := p.run(ctx, NewConfirm(fmt.Sprintf("Directory %s already exists. Overwrite?", name)))
	if err != nil {
		return false, err
	}

	m := final.(ConfirmModel)
	if m.Cancelled() {
		return false, core.ErrCancelled
	}

	return m.Confirmed(), nil
}

// SelectManagers asks which package managers to install. An empty result
// with a nil error means nothing was chosen.
func (p *Prompter) SelectManagers(ctx context.Context, managers []pkgmgr.Manager) ([]pkgmgr.Manager, error) {
	final, err := p.run(ctx, NewManagerSelect(managers))
	if err != nil {
		return nil, err
	}

	m := final.(ManagerSelectModel)
	if m.Cancelled() {
		return nil, core.ErrCancelled
	}

	return m.Chosen(), nil
}

// NonInteractive answers prompts when no terminal is attached. Questions that
// need a human fail with ErrInputRequired; an overwrite is declined.
type NonInteractive struct{}

var _ core.Prompter = NonInteractive{}

func (NonInteractive) ProjectName(context.Context) (string, error) {
	return "", fmt.Errorf("%w: pass the project name as an argument", ErrInputRequired)
}

func (NonInteractive) SelectTemplate(context.Context, []catalog.Entry) (string, error) {
	return "", fmt.Errorf("%w: pass --template", ErrInputRequired)
}

func (NonInteractive) ConfirmOverwrite(context.Context, string, string) (bool, error) {
	return false, nil
}

func (NonInteractive) SelectManagers(_ context.Context, managers []pkgmgr.Manager) ([]pkgmgr.Manager, error) {
	var out []pkgmgr.Manager

	for _, pm := range managers {
		if pm.Selected {
			out = append(out, pm)
		}
	}

	return out, nil
}
