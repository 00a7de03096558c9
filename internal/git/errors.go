package git

import (
	"errors"
	"os/exec"
	"strings"
)

// Common error messages from git
const (
	errMsgAuthFailed       = "Authentication failed"
	errMsgPermissionDenied = "Permission denied"
	errMsgPromptDisabled   = "terminal prompts disabled"
	errMsgRefNotFound      = "couldn't find remote ref"
	errMsgBranchNotFound   = "not found in upstream"
	errMsgRepoNotFound     = "repository not found"
	errMsgNotARepo         = "does not appear to be a git repository"
	errMsgResolveHost      = "could not resolve host"
	errMsgUnableToAccess   = "unable to access"
	errMsgTimedOut         = "timed out"
	errMsgAlreadyExists    = "already exists and is not an empty directory"
)

// IsAuthRequired checks if the error indicates authentication is required
func IsAuthRequired(err error) bool {
	return containsError(err, errMsgAuthFailed) ||
		containsError(err, errMsgPermissionDenied) ||
		containsError(err, errMsgPromptDisabled)
}

// IsRefNotFound checks if the requested branch does not exist on the remote
func IsRefNotFound(err error) bool {
	return containsError(err, errMsgRefNotFound) || containsError(err, errMsgBranchNotFound)
}

// IsRepoNotFound checks if the remote repository does not exist
func IsRepoNotFound(err error) bool {
	return containsError(err, errMsgRepoNotFound) || containsError(err, errMsgNotARepo)
}

// IsNetwork checks if the error looks like a connectivity failure
func IsNetwork(err error) bool {
	return containsError(err, errMsgResolveHost) ||
		containsError(err, errMsgUnableToAccess) ||
		containsError(err, errMsgTimedOut)
}

// IsAlreadyExists checks if the clone destination was not empty
func IsAlreadyExists(err error) bool {
	return containsError(err, errMsgAlreadyExists)
}

// Hint returns a short suggestion for a clone failure, or "" when none fits.
func Hint(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrGitNotFound):
		return "install git and make sure it is on PATH"
	case IsRefNotFound(err):
		return "the template branch does not exist on the remote"
	case IsRepoNotFound(err):
		return "check the template url"
	case IsAuthRequired(err):
		return "the template repository requires credentials"
	case IsNetwork(err):
		return "check your network connection"
	case IsAlreadyExists(err):
		return "the target directory is not empty"
	}

	return ""
}

// containsError checks if the error contains a specific message
func containsError(err error, msg string) bool {
	if err == nil {
		return false
	}

	var gitErr *GitError
	if errors.As(err, &gitErr) {
		return strings.Contains(strings.ToLower(gitErr.Stderr), strings.ToLower(msg))
	}

	return strings.Contains(strings.ToLower(err.Error()), strings.ToLower(msg))
}

// GetExitCode returns the exit code from a git error, or -1 if not available
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}

	var gitErr *GitError
	if errors.As(err, &gitErr) {
		return gitErr.ExitCode
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return -1
}

// NewGitError creates a GitError from command output and error
func NewGitError(args []string, stderr string, err error) *GitError {
	exitCode := -1

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	return &GitError{
		ExitCode: exitCode,
		Stderr:   stderr,
		Args:     args,
		err:      err,
	}
}
