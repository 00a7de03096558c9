package database

import (
	"path/filepath"

	"github.com/inovacc/dadandiaoming/internal/application"
	"github.com/inovacc/dadandiaoming/internal/model"
)

const fileName = "state.bolt"

// Store defines the database operations used by the app.
type Store interface {
	GetVersionCheck(pkg string) (*model.VersionRecord, error)
	SaveVersionCheck(rec *model.VersionRecord) error
	ClearVersionCheck(pkg string) error
	Close() error
}

// OpenDefault opens the store in the application directory.
func OpenDefault() (*Bolt, error) {
	dir, err := application.EnsureApplicationDirectory()
	if err != nil {
		return nil, err
	}

	return Open(filepath.Join(dir, fileName))
}
