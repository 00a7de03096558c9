// Package pkgmgr installs JavaScript package managers and points them at a
// registry mirror.
package pkgmgr

import (
	"context"
	"fmt"

	"github.com/inovacc/dadandiaoming/internal/process"
)

// Manager is a package manager the package command can install.
type Manager struct {
	Name string

	// Selected marks the manager as preselected in the prompt
	Selected bool
}

// Available returns the managers offered for installation.
func Available() []Manager {
	return []Manager{
		{Name: "pnpm", Selected: true},
		{Name: "yarn"},
	}
}

// Installer runs the install and registry commands.
type Installer struct {
	Runner process.Runner
	Mirror string
}

// SetBaseRegistry points npm itself at the mirror.
func (i *Installer) SetBaseRegistry(ctx context.Context) error {
	if _, err := i.Runner.Run(ctx, "npm", "config", "set", "registry", i.Mirror); err != nil {
		return fmt.Errorf("setting npm registry: %w", err)
	}

	return nil
}

// Install installs m globally with npm.
func (i *Installer) Install(ctx context.Context, m Manager) error {
	if _, err := i.Runner.Run(ctx, "npm", "install", "-g", m.Name); err != nil {
		return fmt.Errorf("installing %s: %w", m.Name, err)
	}

	return nil
}

// SetRegistry points m at the mirror.
func (i *Installer) SetRegistry(ctx context.Context, m Manager) error {
	if _, err := i.Runner.Run(ctx, m.Name, "config", "set", "registry", i.Mirror); err != nil {
		return fmt.Errorf("setting %s registry: %w", m.Name, err)
	}

	return nil
}
