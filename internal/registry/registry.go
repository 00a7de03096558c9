// Package registry queries an npm-compatible package registry for the latest
// published version of a package.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNoVersion is returned when the registry answers without a version.
var ErrNoVersion = errors.New("registry response has no latest version")

// NetworkError wraps a failed registry round trip
type NetworkError struct {
	Operation string
	Err       error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Client talks to the registry over HTTP.
type Client struct {
	BaseURL    string
	httpClient *http.Client
}

// New creates a client for baseURL with a per-request timeout.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// latestDocument covers both shapes registries return for /<pkg>/latest: the
// packument style with dist-tags, and the manifest style with version.
type latestDocument struct {
	DistTags struct {
		Latest string `json:"latest"`
	} `json:"dist-tags"`
	Version string `json:"version"`
}

// Latest returns the latest published version of pkg.
func (c *Client) Latest(ctx context.Context, pkg string) (string, error) {
	endpoint := fmt.Sprintf("%s/%s/latest", c.BaseURL, url.PathEscape(pkg))
	op := "GET " + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &NetworkError{Operation: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &NetworkError{Operation: op, Err: fmt.Errorf("registry returned status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", &NetworkError{Operation: op, Err: fmt.Errorf("reading response body: %w", err)}
	}

	var doc latestDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", fmt.Errorf("parsing registry response: %w", err)
	}

	switch {
	case doc.DistTags.Latest != "":
		return doc.DistTags.Latest, nil
	case doc.Version != "":
		return doc.Version, nil
	}

	return "", ErrNoVersion
}
