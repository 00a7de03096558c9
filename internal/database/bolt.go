package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/inovacc/dadandiaoming/internal/model"
	"go.etcd.io/bbolt"
)

const (
	boltBucketVersions = "versions" // key: package name -> VersionRecord JSON
)

// Bolt is the BoltDB implementation of Store.
type Bolt struct {
	db *bbolt.DB
}

var _ Store = (*Bolt)(nil)

// Open opens (or creates) the database at path.
func Open(path string) (*Bolt, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening state database %s: %w", path, err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketVersions))
		return err
	}); err != nil {
		_ = db.Close()

		return nil, err
	}

	return &Bolt{db: db}, nil
}

// GetVersionCheck returns the cached lookup for pkg, or nil when none exists.
func (b *Bolt) GetVersionCheck(pkg string) (*model.VersionRecord, error) {
	var rec *model.VersionRecord

	err := b.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(boltBucketVersions)).Get([]byte(pkg))
		if data == nil {
			return nil
		}

		rec = &model.VersionRecord{}

		return json.Unmarshal(data, rec)
	})
	if err != nil {
		return nil, err
	}

	return rec, nil
}

func (b *Bolt) SaveVersionCheck(rec *model.VersionRecord) error {
	if rec == nil || rec.Package == "" {
		return errors.New("package is required")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketVersions)).Put([]byte(rec.Package), data)
	})
}

// ClearVersionCheck drops the cached lookup for pkg.
func (b *Bolt) ClearVersionCheck(pkg string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketVersions)).Delete([]byte(pkg))
	})
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
