package updater

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/inovacc/dadandiaoming/internal/process"
)

// Mechanism is one way of installing the latest release globally.
type Mechanism struct {
	Name string
	Args []string
}

// CommandLine returns the command as a user would type it.
func (m Mechanism) CommandLine() string {
	return process.CommandLine(m.Name, m.Args...)
}

// DefaultMechanisms returns npm as the primary installer and pnpm as the
// fallback.
func DefaultMechanisms(pkg string) []Mechanism {
	target := pkg + "@latest"

	return []Mechanism{
		{Name: "npm", Args: []string{"install", "-g", target}},
		{Name: "pnpm", Args: []string{"add", "-g", target}},
	}
}

// Attempt records a failed mechanism.
type Attempt struct {
	Mechanism Mechanism
	Err       error
}

// MechanismError is returned when every mechanism failed.
type MechanismError struct {
	Attempts []Attempt
}

func (e *MechanismError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %v", a.Mechanism.Name, a.Err))
	}

	return "automatic update failed (" + strings.Join(parts, "; ") + ")"
}

// Outcome classifies what the update command did.
type Outcome int

const (
	OutcomeCheckFailed Outcome = iota
	OutcomeUpToDate
	OutcomeUpdated
	OutcomeManual
)

// Result is everything the update command reports.
type Result struct {
	Status  Status
	Outcome Outcome
	Via     Mechanism
	Err     error
}

// Updater replaces the globally installed tool with the latest release.
type Updater struct {
	Runner     process.Runner
	Mechanisms []Mechanism
}

// New creates an updater for pkg using the default mechanisms.
func New(runner process.Runner, pkg string) *Updater {
	return &Updater{Runner: runner, Mechanisms: DefaultMechanisms(pkg)}
}

// Install tries each mechanism in order and returns the one that worked.
func (u *Updater) Install(ctx context.Context) (Mechanism, error) {
	failed := &MechanismError{}

	for _, m := range u.Mechanisms {
		if _, err := u.Runner.Run(ctx, m.Name, m.Args...); err != nil {
			slog.Debug("update mechanism failed", "command", m.CommandLine(), "error", err)
			failed.Attempts = append(failed.Attempts, Attempt{Mechanism: m, Err: err})

			continue
		}

		return m, nil
	}

	return Mechanism{}, failed
}

// Apply acts on a completed version check: it installs the published release
// whenever it differs from the running version and reports what happened.
func (u *Updater) Apply(ctx context.Context, status Status) Result {
	if status.Relation == UpToDate {
		return Result{Status: status, Outcome: OutcomeUpToDate}
	}

	via, err := u.Install(ctx)
	if err != nil {
		return Result{Status: status, Outcome: OutcomeManual, Err: err}
	}

	return Result{Status: status, Outcome: OutcomeUpdated, Via: via}
}

// ManualCommands lists the commands a user can run when automatic update
// failed.
func (u *Updater) ManualCommands() []string {
	cmds := make([]string, 0, len(u.Mechanisms))
	for _, m := range u.Mechanisms {
		cmds = append(cmds, m.CommandLine())
	}

	return cmds
}
