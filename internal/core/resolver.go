package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ResolveTarget returns the absolute project directory for name. Relative
// names resolve under cwd; absolute names are kept. A target that is cwd or
// one of its parents is refused with ErrUnsafeTarget.
func ResolveTarget(cwd, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errors.New("project name is required")
	}

	target := name
	if !filepath.IsAbs(target) {
		target = filepath.Join(cwd, name)
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("error determining absolute path: %w", err)
	}

	base, err := filepath.Abs(cwd)
	if err != nil {
		return "", fmt.Errorf("error determining absolute path: %w", err)
	}

	if within(abs, base) {
		return "", fmt.Errorf("%w: %s", ErrUnsafeTarget, abs)
	}

	return abs, nil
}

// within reports whether path is dir or lies below it.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}

	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// Conflict reports whether anything (file, directory or link) already
// occupies path.
func Conflict(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, &FilesystemError{Op: "stat", Path: path, Err: err}
}

// RemoveTarget deletes path recursively.
func RemoveTarget(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return &FilesystemError{Op: "remove", Path: path, Err: err}
	}

	return nil
}
