package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/dadandiaoming/internal/application"
	"github.com/inovacc/dadandiaoming/internal/catalog"
	"github.com/inovacc/dadandiaoming/internal/cli"
	"github.com/inovacc/dadandiaoming/internal/database"
	"github.com/inovacc/dadandiaoming/internal/model"
	"github.com/inovacc/dadandiaoming/internal/progress"
	"github.com/inovacc/dadandiaoming/internal/registry"
	"github.com/inovacc/dadandiaoming/internal/updater"
	"golang.org/x/term"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	cmdStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

// isInteractive reports whether both stdin and stdout are terminals
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// buildCatalog layers configured templates, then an optional catalog file,
// over the built-in ones
func buildCatalog(cfg model.Config, file string) (*catalog.Catalog, error) {
	overrides := append([]model.TemplateInfo(nil), cfg.Templates...)

	if file != "" {
		fromFile, err := catalog.LoadFile(file)
		if err != nil {
			return nil, err
		}

		overrides = append(overrides, fromFile...)
	}

	return catalog.Default().With(overrides...)
}

// stageTokens returns the built-in stage spellings plus configured ones
func stageTokens(cfg model.Config) progress.Tokens {
	return progress.DefaultTokens().Merge(progress.Tokens{
		progress.StageObjectReceive: cfg.Progress.Receive,
		progress.StageDeltaResolve:  cfg.Progress.Resolve,
	})
}

// newTracker picks the bubbletea view on a terminal and the single
// rewritten line otherwise
func newTracker(out io.Writer, interactive bool, cfg model.Config) progress.Tracker {
	n := progress.NewNormalizer(stageTokens(cfg))

	if interactive {
		return &cli.CloneTracker{Out: out, Normalizer: n}
	}

	return progress.NewLineReporter(out, n)
}

// newChecker builds the version checker. The returned func releases the
// version cache; a cache that cannot be opened is skipped.
func newChecker(cfg model.Config) (*updater.Checker, func()) {
	checker := &updater.Checker{
		Registry: registry.New(cfg.RegistryURL, cfg.VersionCheck.Timeout),
		TTL:      cfg.VersionCheck.TTL,
		Package:  cfg.PackageName,
		Current:  application.Version,
	}

	if cfg.VersionCheck.TTL <= 0 {
		return checker, func() {}
	}

	db, err := database.OpenDefault()
	if err != nil {
		slog.Debug("version cache unavailable", "error", err)
		return checker, func() {}
	}

	checker.Cache = db

	return checker, func() {
		if err := db.Close(); err != nil {
			slog.Debug("closing version cache", "error", err)
		}
	}
}

type gitVersioner interface {
	Version(ctx context.Context) (string, error)
}

// requireGit fails early when git cannot be run, before any prompt is shown.
func requireGit(ctx context.Context, g gitVersioner) error {
	version, err := g.Version(ctx)
	if err != nil {
		return fmt.Errorf("git is required to create a project: %w", err)
	}

	slog.Debug("git found", "version", version)

	return nil
}
