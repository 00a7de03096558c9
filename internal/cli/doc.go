// Package cli provides the terminal user interface components.
//
// The package uses [Bubbletea] for the interactive prompts and [Lipgloss]
// for styling. All UI components follow the standard Bubbletea
// Model-View-Update (MVU) architecture.
//
// # Components
//
//   - NameInput: project name prompt that rejects empty input
//   - TemplateSelector: single-choice template list
//   - Confirm: yes/no question defaulting to No
//   - ManagerSelect: multi-select of package managers
//   - Clone: spinner plus download bar fed by git progress
//   - Task: spinner for a single step of update or package
//
// [Prompter] wraps the prompts behind the create workflow's interface and
// maps a dismissed prompt to the workflow's cancellation error. Models that
// display background work run without terminal input so an interrupt
// reaches the process.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
