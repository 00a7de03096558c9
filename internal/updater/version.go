package updater

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareVersions compares two version strings using semver.
// Returns -1 if current < latest, 0 if equal, 1 if current > latest.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func CompareVersions(current, latest string) (int, error) {
	cv, err := parseSemver(current)
	if err != nil {
		return 0, fmt.Errorf("parsing current version %q: %w", current, err)
	}

	lv, err := parseSemver(latest)
	if err != nil {
		return 0, fmt.Errorf("parsing latest version %q: %w", latest, err)
	}

	return cv.Compare(lv), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}

// Relation describes the running version against the published one.
type Relation int

const (
	UpToDate Relation = iota
	Behind
	Ahead
)

func (r Relation) String() string {
	switch r {
	case Behind:
		return "behind"
	case Ahead:
		return "ahead"
	default:
		return "up-to-date"
	}
}

// Relate compares current with latest. Versions that are not valid semver
// fall back to plain string equality, where any difference counts as Behind.
func Relate(current, latest string) Relation {
	cmp, err := CompareVersions(current, latest)
	if err != nil {
		if strings.TrimSpace(current) == strings.TrimSpace(latest) {
			return UpToDate
		}

		return Behind
	}

	switch {
	case cmp < 0:
		return Behind
	case cmp > 0:
		return Ahead
	default:
		return UpToDate
	}
}
