package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/inovacc/dadandiaoming/internal/cli"
	"github.com/inovacc/dadandiaoming/internal/pkgmgr"
	"github.com/inovacc/dadandiaoming/internal/process"
	"github.com/spf13/cobra"
)

var packageCmd = &cobra.Command{
	Use:     "package",
	Aliases: []string{"pkg"},
	Short:   "Install package managers and point them at a registry mirror",
	Long: `Point npm at the registry mirror, then install the selected package
managers globally and point each of them at the same mirror.

The mirror defaults to https://registry.npmmirror.com and can be changed with
the mirror_url setting.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		interactive := isInteractive()

		var selector managerSelector = cli.NonInteractive{}
		if interactive {
			selector = &cli.Prompter{Out: out}
		}

		inst := &pkgmgr.Installer{Runner: process.Exec{}, Mirror: appConfig.MirrorURL}
		steps := &cli.Runner{Out: out, Interactive: interactive}

		npmrc, err := pkgmgr.DefaultNpmrcPath()
		if err != nil {
			slog.Debug("npmrc location unknown", "error", err)
		}

		return runPackage(cmd.Context(), out, steps, selector, inst, appConfig.MirrorURL, npmrc)
	},
}

type managerSelector interface {
	SelectManagers(ctx context.Context, managers []pkgmgr.Manager) ([]pkgmgr.Manager, error)
}

type managerInstaller interface {
	SetBaseRegistry(ctx context.Context) error
	Install(ctx context.Context, m pkgmgr.Manager) error
	SetRegistry(ctx context.Context, m pkgmgr.Manager) error
}

// runPackage sets npm's registry, then installs and configures each chosen
// manager. It stops at the first failure.
func runPackage(ctx context.Context, out io.Writer, steps *cli.Runner, selector managerSelector, inst managerInstaller, mirror, npmrc string) error {
	err := steps.Run(ctx, cli.Task{
		Title:   "Setting the npm registry mirror",
		Success: "npm registry mirror set",
		Failure: "Setting the npm registry mirror failed",
	}, inst.SetBaseRegistry)
	if err != nil {
		return err
	}

	chosen, err := selector.SelectManagers(ctx, pkgmgr.Available())
	if err != nil {
		return err
	}

	if len(chosen) == 0 {
		return nil
	}

	for _, m := range chosen {
		err := steps.Run(ctx, cli.Task{
			Title:   fmt.Sprintf("Installing %s", m.Name),
			Success: fmt.Sprintf("%s installed", m.Name),
			Failure: "An error occurred during installation",
		}, func(ctx context.Context) error {
			return inst.Install(ctx, m)
		})
		if err != nil {
			return err
		}

		err = steps.Run(ctx, cli.Task{
			Title:   fmt.Sprintf("Setting the registry mirror for %s", m.Name),
			Success: fmt.Sprintf("%s registry mirror set", m.Name),
			Failure: fmt.Sprintf("Setting the registry mirror for %s failed", m.Name),
		}, func(ctx context.Context) error {
			return inst.SetRegistry(ctx, m)
		})
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, successStyle.Render("\n✨ All selected package managers are configured!"))
	_, _ = fmt.Fprintln(out, infoStyle.Render("\nInstalled package managers:"))

	for _, m := range chosen {
		_, _ = fmt.Fprintln(out, infoStyle.Render("- "+m.Name))
	}

	if mirror != "" {
		_, _ = fmt.Fprintln(out, infoStyle.Render("\nAll registries now point to: "+mirror))
	}

	if npmrc != "" {
		registry, err := pkgmgr.NpmrcRegistry(npmrc)
		if err != nil {
			slog.Debug("reading npmrc", "path", npmrc, "error", err)
		} else if registry != "" {
			_, _ = fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("%s registry=%s", npmrc, registry)))
		}
	}

	return nil
}

func init() {
	rootCmd.AddCommand(packageCmd)
}
