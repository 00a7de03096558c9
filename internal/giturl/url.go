// Package giturl recognizes and normalizes template repository locations.
package giturl

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// IsURL checks if the given string is a git URL
func IsURL(u string) bool {
	return strings.HasPrefix(u, "git@") || isSupportedProtocol(u)
}

func isSupportedProtocol(u string) bool {
	return strings.HasPrefix(u, "ssh:") ||
		strings.HasPrefix(u, "git+ssh:") ||
		strings.HasPrefix(u, "git:") ||
		strings.HasPrefix(u, "http:") ||
		strings.HasPrefix(u, "git+https:") ||
		strings.HasPrefix(u, "https:") ||
		strings.HasPrefix(u, "file:")
}

// IsCloneSource reports whether git can clone from s: a git URL or an
// absolute path to a local repository.
func IsCloneSource(s string) bool {
	return IsURL(s) || filepath.IsAbs(s)
}

// Parse normalizes git remote urls, including scp-like syntax (git@github.com:owner/repo)
func Parse(rawURL string) (*url.URL, error) {
	if !isSupportedProtocol(rawURL) &&
		strings.ContainsRune(rawURL, ':') &&
		// not a Windows path
		!strings.ContainsRune(rawURL, '\\') {
		// support scp-like syntax for ssh protocol
		rawURL = "ssh://" + strings.Replace(rawURL, ":", "/", 1)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	switch u.Scheme {
	case "git+https":
		u.Scheme = "https"
	case "git+ssh":
		u.Scheme = "ssh"
	}

	if u.Scheme != "ssh" {
		return u, nil
	}

	if strings.HasPrefix(u.Path, "//") {
		u.Path = strings.TrimPrefix(u.Path, "/")
	}

	u.Host = strings.TrimSuffix(u.Host, ":"+u.Port())

	return u, nil
}

// Redact removes credentials from an http(s) URL so it can be printed. The
// user of an ssh URL names the account, not a secret, and is kept.
func Redact(rawURL string) string {
	if !strings.Contains(rawURL, "://") {
		return rawURL
	}

	u, err := Parse(rawURL)
	if err != nil || u.User == nil {
		return rawURL
	}

	if u.Scheme == "ssh" {
		if _, hasPassword := u.User.Password(); !hasPassword {
			return rawURL
		}

		u.User = url.User(u.User.Username())

		return u.String()
	}

	u.User = nil

	return u.String()
}

// RepoName returns the last path element without a .git suffix.
func RepoName(rawURL string) string {
	p := rawURL
	if u, err := Parse(rawURL); err == nil && u.Path != "" {
		p = u.Path
	}

	return strings.TrimSuffix(path.Base(strings.TrimRight(p, "/")), ".git")
}
