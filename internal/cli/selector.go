package cli

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/dadandiaoming/internal/catalog"
)

// TemplateItem implements list.Item for template selection
type TemplateItem struct {
	entry catalog.Entry
}

func (i TemplateItem) Title() string       { return i.entry.Key }
func (i TemplateItem) Description() string { return i.entry.Description }
func (i TemplateItem) FilterValue() string { return i.entry.Key }

// TemplateSelectorModel is the single-choice template prompt. The first entry
// is highlighted initially.
type TemplateSelectorModel struct {
	list      list.Model
	selected  string
	cancelled bool
}

// NewTemplateSelector creates a selector over the catalog entries
func NewTemplateSelector(entries []catalog.Entry) TemplateSelectorModel {
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, TemplateItem{entry: e})
	}

	// each default item takes three rows; leave room for title and help
	l := list.New(items, list.NewDefaultDelegate(), 60, len(items)*3+8)
	l.Title = "Select a template"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return TemplateSelectorModel{list: l}
}

func (m TemplateSelectorModel) Init() tea.Cmd {
	return nil
}

func (m TemplateSelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch keyMsg := msg.(type) {
	case tea.WindowSizeMsg:
		h, _ := docStyle.GetFrameSize()
		m.list.SetWidth(keyMsg.Width - h)

		return m, nil

	case tea.KeyMsg:
		switch keyMsg.String() {
		case "ctrl+c", "q", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(TemplateItem); ok {
				m.selected = i.entry.Key
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m TemplateSelectorModel) View() string {
	if m.selected != "" || m.cancelled {
		return ""
	}

	return docStyle.Render(m.list.View())
}

// Selected returns the chosen template key, or "" if none was chosen
func (m TemplateSelectorModel) Selected() string {
	return m.selected
}
