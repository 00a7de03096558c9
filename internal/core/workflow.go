package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/inovacc/dadandiaoming/internal/catalog"
	"github.com/inovacc/dadandiaoming/internal/git"
	"github.com/inovacc/dadandiaoming/internal/giturl"
	"github.com/inovacc/dadandiaoming/internal/model"
	"github.com/inovacc/dadandiaoming/internal/progress"
)

// State is a step of the create workflow.
type State int

const (
	StateStart State = iota
	StateNameResolved
	StateTemplateSelected
	StateDirectoryChecked
	StateOverwritten
	StateClean
	StateCloning
	StateDone
	StateAborted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateNameResolved:
		return "name-resolved"
	case StateTemplateSelected:
		return "template-selected"
	case StateDirectoryChecked:
		return "directory-checked"
	case StateOverwritten:
		return "overwritten"
	case StateClean:
		return "clean"
	case StateCloning:
		return "cloning"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	case StateFailed:
		return "failed"
	}

	return "unknown"
}

// Prompter collects the interactive decisions of a run. Every method returns
// ErrCancelled when the user dismisses the prompt.
type Prompter interface {
	ProjectName(ctx context.Context) (string, error)
	SelectTemplate(ctx context.Context, entries []catalog.Entry) (string, error)
	ConfirmOverwrite(ctx context.Context, name, path string) (bool, error)
}

// Fetcher clones a remote repository, reporting progress to observe.
type Fetcher interface {
	Clone(ctx context.Context, req model.CloneRequest, observe progress.Observer) error
}

// Result describes how a run ended.
type Result struct {
	State    State
	Trace    []State
	Template model.TemplateInfo
	Request  model.CloneRequest
}

// Workflow sequences name resolution, template selection, conflict handling
// and the clone. Only one run may be in flight per Workflow.
type Workflow struct {
	Catalog  *catalog.Catalog
	Prompter Prompter
	Fetcher  Fetcher
	Tracker  progress.Tracker
	Notifier *VersionNotifier // optional
	Out      io.Writer
	Getwd    func() (string, error)
	Remove   func(path string) error // defaults to RemoveTarget

	// TemplateKey skips the selection prompt
	TemplateKey string

	// Force accepts an overwrite without asking
	Force bool

	// CleanOnFailure removes the target when the clone fails
	CleanOnFailure bool

	// Depth makes a shallow clone when greater than zero
	Depth int

	mu sync.Mutex
}

type run struct {
	log    *slog.Logger
	result Result
}

func (r *run) enter(s State) {
	r.result.State = s
	r.result.Trace = append(r.result.Trace, s)
	r.log.Debug("workflow state", "state", s.String())
}

func (r *run) abort(err error) (Result, error) {
	r.enter(StateAborted)
	return r.result, err
}

func (r *run) fail(err error) (Result, error) {
	r.enter(StateFailed)
	r.log.Debug("workflow failed", "error", err)

	return r.result, err
}

// Run executes the workflow. A non-empty name is used verbatim; otherwise the
// prompter asks for one.
func (w *Workflow) Run(ctx context.Context, name string) (Result, error) {
	if !w.mu.TryLock() {
		return Result{}, ErrBusy
	}
	defer w.mu.Unlock()

	r := &run{log: slog.With("run_id", uuid.NewString())}
	r.enter(StateStart)

	name, err := w.projectName(ctx, name)
	if err != nil {
		return r.abort(err)
	}

	r.enter(StateNameResolved)

	if w.Notifier != nil {
		w.Notifier.Notify(ctx)
	}

	tmpl, err := w.selectTemplate(ctx)
	if err != nil {
		if IsCancelled(err) {
			return r.abort(err)
		}

		return r.fail(err)
	}

	r.result.Template = tmpl
	r.enter(StateTemplateSelected)

	cwd, err := w.getwd()
	if err != nil {
		return r.fail(&FilesystemError{Op: "getwd", Path: ".", Err: err})
	}

	target, err := ResolveTarget(cwd, name)
	if err != nil {
		return r.fail(err)
	}

	exists, err := Conflict(target)
	if err != nil {
		return r.fail(err)
	}

	r.enter(StateDirectoryChecked)

	if exists {
		if !w.Force {
			ok, err := w.Prompter.ConfirmOverwrite(ctx, name, target)
			if err != nil {
				return r.abort(err)
			}

			if !ok {
				return r.abort(ErrConflictDeclined)
			}
		}

		if err := w.remove(target); err != nil {
			return r.fail(err)
		}

		r.log.Debug("removed existing target", "path", target)
		r.enter(StateOverwritten)
	} else {
		r.enter(StateClean)
	}

	req := model.CloneRequest{
		SourceURL:       tmpl.URL,
		ProjectName:     name,
		TargetDirectory: target,
		Options:         model.CloneOptions{Branch: tmpl.Branch, Depth: w.Depth},
	}
	r.result.Request = req
	r.enter(StateCloning)

	err = w.tracker().Track(fmt.Sprintf("Cloning %s template (%s) into %s", tmpl.Name, giturl.RepoName(tmpl.URL), name), func(observe progress.Observer) error {
		return w.Fetcher.Clone(ctx, req, observe)
	})
	if err != nil {
		r.log.Debug("clone failed", "exit_code", git.GetExitCode(err), "error", err)

		if w.CleanOnFailure {
			if rmErr := w.remove(target); rmErr != nil {
				r.log.Warn("cleanup after failed clone", "error", rmErr)
			}
		}

		return r.fail(&RemoteOperationError{
			URL:  giturl.Redact(tmpl.URL),
			Err:  err,
			Hint: git.Hint(err),
		})
	}

	r.enter(StateDone)
	PrintSummary(w.out(), name, target)

	return r.result, nil
}

func (w *Workflow) remove(path string) error {
	if w.Remove != nil {
		return w.Remove(path)
	}

	return RemoveTarget(path)
}

func (w *Workflow) projectName(ctx context.Context, name string) (string, error) {
	if name != "" {
		return name, nil
	}

	for {
		got, err := w.Prompter.ProjectName(ctx)
		if err != nil {
			return "", err
		}

		if strings.TrimSpace(got) != "" {
			return got, nil
		}

		slog.Debug("empty project name rejected")
	}
}

func (w *Workflow) selectTemplate(ctx context.Context) (model.TemplateInfo, error) {
	key := w.TemplateKey

	if key == "" {
		var err error

		key, err = w.Prompter.SelectTemplate(ctx, w.Catalog.List())
		if err != nil {
			return model.TemplateInfo{}, err
		}
	}

	tmpl, err := w.Catalog.Resolve(key)
	if err != nil {
		if errors.Is(err, catalog.ErrTemplateNotFound) && w.TemplateKey == "" {
			return model.TemplateInfo{}, fmt.Errorf("selection returned a key outside the catalog: %w", err)
		}

		return model.TemplateInfo{}, err
	}

	return tmpl, nil
}

func (w *Workflow) getwd() (string, error) {
	if w.Getwd != nil {
		return w.Getwd()
	}

	return os.Getwd()
}

func (w *Workflow) out() io.Writer {
	if w.Out != nil {
		return w.Out
	}

	return os.Stdout
}

func (w *Workflow) tracker() progress.Tracker {
	if w.Tracker != nil {
		return w.Tracker
	}

	return progress.NewLineReporter(w.out(), nil)
}
