package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/inovacc/dadandiaoming/internal/cli"
	"github.com/inovacc/dadandiaoming/internal/process"
	"github.com/inovacc/dadandiaoming/internal/updater"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update dadandiaoming to the latest release",
	Long: `Check the npm registry for the latest release and install it globally,
first with npm and then with pnpm. When both fail the commands to run by hand
are printed.

The command always exits with status 0.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		checker, closeCache := newChecker(appConfig)
		defer closeCache()

		out := cmd.OutOrStdout()
		steps := &cli.Runner{Out: out, Interactive: isInteractive()}

		runUpdate(cmd.Context(), out, steps, checker, updater.New(process.Exec{}, appConfig.PackageName))

		return nil
	},
}

type versionChecker interface {
	Check(ctx context.Context, useCache bool) (updater.Status, error)
	Forget() error
}

type selfUpdater interface {
	Apply(ctx context.Context, status updater.Status) updater.Result
	ManualCommands() []string
}

// runUpdate performs the check and the update, printing each outcome. The
// result is returned for inspection only; the command never fails.
func runUpdate(ctx context.Context, out io.Writer, steps *cli.Runner, checker versionChecker, u selfUpdater) updater.Result {
	var status updater.Status

	err := steps.Run(ctx, cli.Task{
		Title:   "Checking for updates",
		Success: "Version check complete",
		Failure: "Update check failed",
	}, func(ctx context.Context) error {
		var err error

		status, err = checker.Check(ctx, false)

		return err
	})
	if err != nil {
		_, _ = fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("Error details: %v", err)))
		return updater.Result{Status: status, Outcome: updater.OutcomeCheckFailed, Err: err}
	}

	switch status.Relation {
	case updater.UpToDate:
		_, _ = fmt.Fprintln(out, successStyle.Render("Already on the latest version!"))
		_, _ = fmt.Fprintln(out, infoStyle.Render("Current version: "+status.Current))

		return updater.Result{Status: status, Outcome: updater.OutcomeUpToDate}

	case updater.Ahead:
		_, _ = fmt.Fprintln(out, warnStyle.Render("Current version differs from the published release!"))

	default:
		_, _ = fmt.Fprintln(out, warnStyle.Render("New version found!"))
	}

	_, _ = fmt.Fprintln(out, infoStyle.Render("Current version: "+status.Current))
	_, _ = fmt.Fprintln(out, infoStyle.Render("Latest version:  "+status.Latest))

	var res updater.Result

	_ = steps.Run(ctx, cli.Task{
		Title:   "Updating to the latest version",
		Success: "Update succeeded",
		Failure: "Automatic update failed",
	}, func(ctx context.Context) error {
		res = u.Apply(ctx, status)
		return res.Err
	})

	if res.Outcome == updater.OutcomeUpdated {
		if err := checker.Forget(); err != nil {
			slog.Debug("clearing version cache", "error", err)
		}

		_, _ = fmt.Fprintln(out, infoStyle.Render(fmt.Sprintf("Updated to %s with %s", status.Latest, res.Via.Name)))

		return res
	}

	_, _ = fmt.Fprintln(out, warnStyle.Render("\nRun one of the following to update manually:"))

	for i, line := range u.ManualCommands() {
		if i > 0 {
			_, _ = fmt.Fprintln(out, dimStyle.Render("or"))
		}

		_, _ = fmt.Fprintln(out, cmdStyle.Render(line))
	}

	return res
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
