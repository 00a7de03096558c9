package model

import (
	"fmt"

	"github.com/inovacc/dadandiaoming/internal/giturl"
)

// TemplateInfo describes a remote project skeleton the scaffolder can clone.
type TemplateInfo struct {
	// Name is the unique catalog key (e.g., "vue")
	Name string `json:"name" yaml:"name" mapstructure:"name"`

	// Description is shown next to the key in the selection prompt
	Description string `json:"description" yaml:"description" mapstructure:"description"`

	// URL is the remote repository locator passed to git clone
	URL string `json:"url" yaml:"url" mapstructure:"url"`

	// Branch is the branch checked out after cloning
	Branch string `json:"branch" yaml:"branch" mapstructure:"branch"`
}

// Validate reports whether the template can be cloned.
func (t TemplateInfo) Validate() error {
	switch {
	case t.Name == "":
		return fmt.Errorf("template name is required")
	case t.URL == "":
		return fmt.Errorf("template %q: url is required", t.Name)
	case !giturl.IsCloneSource(t.URL):
		return fmt.Errorf("template %q: %s is not a git URL or absolute path", t.Name, t.URL)
	}

	return nil
}

// CloneOptions carries the git options for a single clone.
type CloneOptions struct {
	// Branch selects the branch to check out; empty means the remote HEAD
	Branch string

	// Depth creates a shallow clone when greater than zero
	Depth int
}

// CloneRequest is built once per workflow run and consumed by the fetcher.
type CloneRequest struct {
	SourceURL       string
	ProjectName     string
	TargetDirectory string
	Options         CloneOptions
}

// Args returns the git clone arguments for the request.
func (r CloneRequest) Args() []string {
	args := []string{"clone", "--progress"}

	if r.Options.Branch != "" {
		args = append(args, "--branch", r.Options.Branch)
	}

	if r.Options.Depth > 0 {
		args = append(args, "--depth", fmt.Sprintf("%d", r.Options.Depth))
	}

	return append(args, r.SourceURL, r.TargetDirectory)
}
