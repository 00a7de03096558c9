// Package git drives the git executable to clone project templates.
package git

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/inovacc/dadandiaoming/internal/model"
	"github.com/inovacc/dadandiaoming/internal/progress"
)

// ErrGitNotFound is returned when no git executable is on PATH.
var ErrGitNotFound = errors.New("git executable not found in PATH")

// maxStderrLines bounds how much non-progress output a GitError keeps.
const maxStderrLines = 20

// Client wraps git operations
type Client struct {
	GitPath string // Path to git executable
	Env     []string
}

// NewClient creates a new git client
func NewClient() *Client {
	gitPath, _ := exec.LookPath("git")

	return &Client{
		GitPath: gitPath,
		// Credential prompts would fight with the terminal UI for stdin.
		Env: append(os.Environ(), "GIT_TERMINAL_PROMPT=0"),
	}
}

// Command creates a git command.
// Note: Do not set Stdout/Stderr if you plan to use CombinedOutput()
func (c *Client) Command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.GitPath, args...)
	cmd.Env = c.Env

	return cmd
}

// Clone runs git clone for req, feeding observe with every progress line git
// prints. observe runs on the calling goroutine and may be nil.
func (c *Client) Clone(ctx context.Context, req model.CloneRequest, observe progress.Observer) error {
	if c.GitPath == "" {
		return ErrGitNotFound
	}

	args := req.Args()
	cmd := c.Command(ctx, args...)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to open git stderr: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return NewGitError(args, "", err)
	}

	tail := streamProgress(stderr, observe)

	if err := cmd.Wait(); err != nil {
		return NewGitError(args, tail, err)
	}

	return nil
}

// streamProgress reads git's stderr until EOF, reporting progress lines and
// returning the last few non-progress lines.
func streamProgress(r io.Reader, observe progress.Observer) string {
	var kept []string

	scanner := bufio.NewScanner(r)
	scanner.Split(scanProgressLines)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		if ev, ok := progress.ParseLine(line); ok {
			if observe != nil {
				observe(ev)
			}

			continue
		}

		kept = append(kept, line)
		if len(kept) > maxStderrLines {
			kept = kept[1:]
		}
	}

	// Drain anything left so git never blocks on a full pipe.
	_, _ = io.Copy(io.Discard, r)

	return strings.Join(kept, "\n")
}

// scanProgressLines splits on '\n' and on the bare '\r' git uses to redraw a
// progress line.
func scanProgressLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		advance = i + 1
		if data[i] == '\r' && i+1 < len(data) && data[i+1] == '\n' {
			advance++
		}

		return advance, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}

// Version returns the output of git --version.
func (c *Client) Version(ctx context.Context) (string, error) {
	if c.GitPath == "" {
		return "", ErrGitNotFound
	}

	output, err := c.Command(ctx, "--version").Output()
	if err != nil {
		return "", NewGitError([]string{"--version"}, "", err)
	}

	return strings.TrimSpace(string(output)), nil
}

// GitError represents a git command error
type GitError struct {
	ExitCode int
	Stderr   string
	Args     []string
	err      error
}

func (e *GitError) Error() string {
	if e.Stderr == "" {
		return fmt.Errorf("git command failed: %w", e.err).Error()
	}

	return fmt.Sprintf("git command failed: %s", strings.TrimSpace(e.Stderr))
}

func (e *GitError) Unwrap() error {
	return e.err
}
