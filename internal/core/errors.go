package core

import (
	"errors"
	"fmt"
)

var (
	// ErrCancelled is returned when a prompt is dismissed without a value.
	ErrCancelled = errors.New("operation cancelled")

	// ErrConflictDeclined is returned when the user refuses to overwrite an
	// existing target. It matches ErrCancelled under errors.Is.
	ErrConflictDeclined = fmt.Errorf("overwrite declined: %w", ErrCancelled)

	// ErrUnsafeTarget is returned when the target is the working directory or
	// one of its parents.
	ErrUnsafeTarget = errors.New("target directory contains the working directory")

	// ErrBusy is returned when a workflow is already running.
	ErrBusy = errors.New("a create workflow is already in progress")
)

// FilesystemError wraps a failure touching the target directory
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// RemoteOperationError wraps a failed clone
type RemoteOperationError struct {
	URL  string
	Err  error
	Hint string
}

func (e *RemoteOperationError) Error() string {
	return fmt.Sprintf("clone of %s failed: %v", e.URL, e.Err)
}

func (e *RemoteOperationError) Unwrap() error {
	return e.Err
}

// ExitCode maps a workflow error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	return 1
}

// IsCancelled reports whether err ends the run without a failure message.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
