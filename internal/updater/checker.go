package updater

import (
	"context"
	"log/slog"
	"time"

	"github.com/inovacc/dadandiaoming/internal/model"
)

// LatestFetcher returns the latest published version of a package.
type LatestFetcher interface {
	Latest(ctx context.Context, pkg string) (string, error)
}

// VersionCache stores registry lookups between runs.
type VersionCache interface {
	GetVersionCheck(pkg string) (*model.VersionRecord, error)
	SaveVersionCheck(rec *model.VersionRecord) error
	ClearVersionCheck(pkg string) error
}

// Status is the outcome of a version check.
type Status struct {
	Current   string
	Latest    string
	Relation  Relation
	FromCache bool
}

// Checker looks up the latest release, consulting the cache first.
type Checker struct {
	Registry LatestFetcher
	Cache    VersionCache // optional
	TTL      time.Duration
	Package  string
	Current  string
	Now      func() time.Time
}

func (c *Checker) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}

	return time.Now()
}

// Check returns the running version against the registry. With useCache a
// fresh cached lookup answers without a network round trip. Cache failures
// are logged and ignored.
func (c *Checker) Check(ctx context.Context, useCache bool) (Status, error) {
	if useCache && c.Cache != nil {
		rec, err := c.Cache.GetVersionCheck(c.Package)
		if err != nil {
			slog.Debug("version cache read failed", "package", c.Package, "error", err)
		} else if rec.Fresh(c.TTL, c.now()) {
			return c.status(rec.Latest, true), nil
		}
	}

	latest, err := c.Registry.Latest(ctx, c.Package)
	if err != nil {
		return Status{Current: c.Current}, err
	}

	if c.Cache != nil && c.TTL > 0 {
		rec := &model.VersionRecord{Package: c.Package, Latest: latest, CheckedAt: c.now()}
		if err := c.Cache.SaveVersionCheck(rec); err != nil {
			slog.Debug("version cache write failed", "package", c.Package, "error", err)
		}
	}

	return c.status(latest, false), nil
}

// Forget drops the cached lookup so the next check asks the registry.
func (c *Checker) Forget() error {
	if c.Cache == nil {
		return nil
	}

	return c.Cache.ClearVersionCheck(c.Package)
}

func (c *Checker) status(latest string, cached bool) Status {
	return Status{
		Current:   c.Current,
		Latest:    latest,
		Relation:  Relate(c.Current, latest),
		FromCache: cached,
	}
}
