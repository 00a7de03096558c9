package model

import (
	"time"

	"github.com/inovacc/dadandiaoming/internal/application"
)

const (
	// DefaultRegistryURL is the npm registry queried for the latest release
	DefaultRegistryURL = "https://registry.npmjs.org"

	// DefaultMirrorURL is the registry mirror configured by the package command
	DefaultMirrorURL = "https://registry.npmmirror.com"
)

// VersionCheck configures the release lookup done by create and update.
type VersionCheck struct {
	// TTL is how long a cached lookup stays fresh; zero disables the cache
	TTL time.Duration `json:"ttl" mapstructure:"ttl"`

	// Timeout bounds a single registry request
	Timeout time.Duration `json:"timeout" mapstructure:"timeout"`
}

// ProgressStages lists extra raw git stage labels per recognized stage.
type ProgressStages struct {
	Receive []string `json:"receive,omitempty" mapstructure:"receive"`
	Resolve []string `json:"resolve,omitempty" mapstructure:"resolve"`
}

// Config holds the application configuration
type Config struct {
	// PackageName is the npm package looked up for self-update
	PackageName string `json:"package_name" mapstructure:"package_name"`

	// RegistryURL is the npm registry base URL
	RegistryURL string `json:"registry_url" mapstructure:"registry_url"`

	// MirrorURL is the registry the package command configures
	MirrorURL string `json:"mirror_url" mapstructure:"mirror_url"`

	VersionCheck VersionCheck `json:"version_check" mapstructure:"version_check"`

	// Templates extends or overrides the built-in catalog by name
	Templates []TemplateInfo `json:"templates,omitempty" mapstructure:"templates"`

	// Progress adds git stage spellings to the built-in token table
	Progress ProgressStages `json:"progress" mapstructure:"progress"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		PackageName: application.AppName,
		RegistryURL: DefaultRegistryURL,
		MirrorURL:   DefaultMirrorURL,
		VersionCheck: VersionCheck{
			TTL:     24 * time.Hour,
			Timeout: 5 * time.Second,
		},
	}
}
