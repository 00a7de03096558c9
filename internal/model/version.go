package model

import "time"

// VersionRecord is a cached registry lookup for one package.
type VersionRecord struct {
	Package   string    `json:"package"`
	Latest    string    `json:"latest"`
	CheckedAt time.Time `json:"checked_at"`
}

// Fresh reports whether the record is younger than ttl at now.
func (r *VersionRecord) Fresh(ttl time.Duration, now time.Time) bool {
	if r == nil || ttl <= 0 {
		return false
	}

	return now.Sub(r.CheckedAt) < ttl
}
