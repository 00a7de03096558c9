// Package process runs external package-manager commands.
package process

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes a command and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// CommandError reports a failed command with its output.
type CommandError struct {
	Command  string
	ExitCode int
	Output   string
	Err      error
}

func (e *CommandError) Error() string {
	if out := strings.TrimSpace(e.Output); out != "" {
		return fmt.Sprintf("%s: %v: %s", e.Command, e.Err, out)
	}

	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Exec runs commands found on PATH.
type Exec struct{}

func (Exec) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, &CommandError{Command: commandLine(name, args), ExitCode: -1, Err: err}
	}

	output, err := exec.CommandContext(ctx, path, args...).CombinedOutput()
	if err != nil {
		exitCode := -1

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		return output, &CommandError{
			Command:  commandLine(name, args),
			ExitCode: exitCode,
			Output:   string(output),
			Err:      err,
		}
	}

	return output, nil
}

// CommandLine formats a command for display.
func CommandLine(name string, args ...string) string {
	return commandLine(name, args)
}

func commandLine(name string, args []string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}
