package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/inovacc/dadandiaoming/internal/application"
	"github.com/inovacc/dadandiaoming/internal/config"
	"github.com/inovacc/dadandiaoming/internal/core"
	"github.com/inovacc/dadandiaoming/internal/model"
	"github.com/spf13/cobra"
)

var appConfig = model.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "A project scaffolder",
	Long: `dadandiaoming creates new projects from curated templates.

It clones a template repository into a new directory with live progress,
keeps itself up to date from the npm registry and can install package
managers configured for a registry mirror.`,
	Version:       application.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		level, _ := flags.GetString("log-level")
		asJSON, _ := flags.GetBool("log-json")

		logger, err := newLogger(cmd.ErrOrStderr(), level, asJSON)
		if err != nil {
			return err
		}

		slog.SetDefault(logger)

		path, _ := flags.GetString("config")

		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		appConfig = cfg
		slog.Debug("configuration loaded", "registry", cfg.RegistryURL, "templates", len(cfg.Templates))

		return nil
	},
}

// Execute runs the root command and exits with the workflow's status.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
	}

	os.Exit(core.ExitCode(err))
}

func newLogger(w io.Writer, level string, asJSON bool) (*slog.Logger, error) {
	var lvl slog.Level

	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}

	if asJSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func reportError(w io.Writer, err error) {
	if core.IsCancelled(err) {
		_, _ = fmt.Fprintln(w, warnStyle.Render("Operation cancelled"))
		return
	}

	_, _ = fmt.Fprintln(w, errorStyle.Render("✖ "+err.Error()))

	var remoteErr *core.RemoteOperationError
	if errors.As(err, &remoteErr) && remoteErr.Hint != "" {
		_, _ = fmt.Fprintln(w, dimStyle.Render(remoteErr.Hint))
	}
}

func init() {
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().String("config", "", "Config file (default is <user config dir>/dadandiaoming/config.yaml)")
}
