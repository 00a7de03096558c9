package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/dadandiaoming/internal/application"
	"github.com/inovacc/dadandiaoming/internal/updater"
)

var (
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// StatusChecker reports the running version against the registry.
type StatusChecker interface {
	Check(ctx context.Context, useCache bool) (updater.Status, error)
}

// VersionNotifier prints a one-off notice when the published release differs
// from the running one. It never fails the caller.
type VersionNotifier struct {
	Checker StatusChecker
	Out     io.Writer
}

// Notify runs the check and prints the outcome.
func (n *VersionNotifier) Notify(ctx context.Context) {
	status, err := n.Checker.Check(ctx, true)
	if err != nil {
		slog.Warn("version check failed", "error", err)
		_, _ = fmt.Fprintln(n.Out, warnStyle.Render("Version check failed, continuing..."))

		return
	}

	switch status.Relation {
	case updater.UpToDate:
		return
	case updater.Ahead:
		_, _ = fmt.Fprintln(n.Out, noticeStyle.Render(fmt.Sprintf("Published version %s differs from current version %s", status.Latest, status.Current)))
	default:
		_, _ = fmt.Fprintln(n.Out, noticeStyle.Render(fmt.Sprintf("New version %s available, current version %s", status.Latest, status.Current)))
	}

	_, _ = fmt.Fprintln(n.Out, hintStyle.Render(fmt.Sprintf("Run `%s update` to upgrade.", application.AppName)))
	_, _ = fmt.Fprintln(n.Out)
}
