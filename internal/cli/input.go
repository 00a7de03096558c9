package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// NameInputModel asks for a project name. An empty submission is rejected
// and the prompt stays open.
type NameInputModel struct {
	input     textinput.Model
	prompt    string
	invalid   string
	submitted bool
	cancelled bool
}

// NewNameInput creates the project name prompt
func NewNameInput() NameInputModel {
	t := textinput.New()
	t.Placeholder = "my-project"
	t.Cursor.Style = focusedStyle
	t.PromptStyle = focusedStyle
	t.CharLimit = 214
	t.Width = 40
	t.Focus()

	return NameInputModel{
		input:  t,
		prompt: "Project name:",
	}
}

func (m NameInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m NameInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if strings.TrimSpace(m.input.Value()) == "" {
				m.invalid = "Project name cannot be empty"
				return m, nil
			}

			m.submitted = true

			return m, tea.Quit
		}
	}

	m.invalid = ""

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m NameInputModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	view := fmt.Sprintf("%s\n%s\n", titleStyle.Render(m.prompt), m.input.View())
	if m.invalid != "" {
		view += errorStyle.Render(m.invalid) + "\n"
	}

	return view + helpStyle.Render("enter to confirm • esc to cancel") + "\n"
}

// Value returns the submitted name.
func (m NameInputModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// Cancelled reports whether the prompt was dismissed.
func (m NameInputModel) Cancelled() bool {
	return m.cancelled || !m.submitted
}
