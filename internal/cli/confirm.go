package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel is a yes/no question that defaults to No.
type ConfirmModel struct {
	question  string
	answer    bool
	done      bool
	cancelled bool
}

// NewConfirm creates a confirmation prompt
func NewConfirm(question string) ConfirmModel {
	return ConfirmModel{question: question}
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		return m, tea.Quit
	case "y", "Y":
		m.answer, m.done = true, true
		return m, tea.Quit
	case "n", "N":
		m.answer, m.done = false, true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	case "left", "right", "tab", "h", "l":
		m.answer = !m.answer
	}

	return m, nil
}

func (m ConfirmModel) View() string {
	if m.cancelled {
		return ""
	}

	if m.done {
		answer := "No"
		if m.answer {
			answer = "Yes"
		}

		return fmt.Sprintf("%s %s\n", titleStyle.Render(m.question), blurredStyle.Render(answer))
	}

	yes, no := blurredStyle.Render("Yes"), selectedStyle.Render("No")
	if m.answer {
		yes, no = selectedStyle.Render("Yes"), blurredStyle.Render("No")
	}

	return fmt.Sprintf("%s %s / %s %s\n", titleStyle.Render(m.question), yes, no, helpStyle.Render("(y/N)"))
}

// Confirmed reports whether the user answered yes.
func (m ConfirmModel) Confirmed() bool {
	return m.done && m.answer
}

// Cancelled reports whether the prompt was dismissed.
func (m ConfirmModel) Cancelled() bool {
	return m.cancelled || !m.done
}
