package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/dadandiaoming/internal/pkgmgr"
)

// ManagerSelectModel lets the user toggle any number of package managers.
type ManagerSelectModel struct {
	managers  []pkgmgr.Manager
	cursor    int
	done      bool
	cancelled bool
}

// NewManagerSelect starts with each manager's Selected flag as its state
func NewManagerSelect(managers []pkgmgr.Manager) ManagerSelectModel {
	return ManagerSelectModel{managers: append([]pkgmgr.Manager(nil), managers...)}
}

func (m ManagerSelectModel) Init() tea.Cmd {
	return nil
}

func (m ManagerSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc", "q":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.managers)-1 {
			m.cursor++
		}
	case " ", "x":
		if len(m.managers) > 0 {
			m.managers[m.cursor].Selected = !m.managers[m.cursor].Selected
		}
	case "a":
		all := !m.allSelected()
		for i := range m.managers {
			m.managers[i].Selected = all
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m ManagerSelectModel) allSelected() bool {
	for _, pm := range m.managers {
		if !pm.Selected {
			return false
		}
	}

	return true
}

func (m ManagerSelectModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Select the package managers to install") + "\n\n")

	for i, pm := range m.managers {
		cursor := "  "
		if i == m.cursor {
			cursor = focusedStyle.Render("❯ ")
		}

		box := blurredStyle.Render("◯ ")
		name := pm.Name

		if pm.Selected {
			box = selectedStyle.Render("◉ ")
			name = selectedStyle.Render(name)
		}

		b.WriteString(cursor + box + name + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("space to select • a to toggle all • enter to confirm • esc to cancel") + "\n")

	return b.String()
}

// Chosen returns the selected managers in display order.
func (m ManagerSelectModel) Chosen() []pkgmgr.Manager {
	var out []pkgmgr.Manager

	for _, pm := range m.managers {
		if pm.Selected {
			out = append(out, pm)
		}
	}

	return out
}

// Cancelled reports whether the prompt was dismissed.
func (m ManagerSelectModel) Cancelled() bool {
	return m.cancelled || !m.done
}
