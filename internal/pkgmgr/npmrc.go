package pkgmgr

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// DefaultNpmrcPath returns the per-user npm config file (~/.npmrc).
func DefaultNpmrcPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".npmrc"), nil
}

// NpmrcRegistry returns the registry configured in an npmrc file, or "" when
// the file or the key is absent.
func NpmrcRegistry(path string) (string, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return "", nil
	}

	// Scoped auth keys look like "//host/:_authToken", so only '=' separates.
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment: true,
		KeyValueDelimiters:  "=",
	}, path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	return strings.TrimSpace(cfg.Section(ini.DefaultSection).Key("registry").String()), nil
}
