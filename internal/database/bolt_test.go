package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/inovacc/dadandiaoming/internal/model"
)

func setupTestDB(t *testing.T) *Bolt {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.bolt"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close database: %v", err)
		}
	})

	return db
}

func TestBolt_GetVersionCheck_Missing(t *testing.T) {
	db := setupTestDB(t)

	rec, err := db.GetVersionCheck("dadandiaoming")
	if err != nil {
		t.Fatalf("GetVersionCheck() error = %v", err)
	}

	if rec != nil {
		t.Errorf("GetVersionCheck() = %+v, want nil", rec)
	}
}

func TestBolt_SaveVersionCheck(t *testing.T) {
	db := setupTestDB(t)

	checkedAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		rec     *model.VersionRecord
		wantErr bool
	}{
		{
			name: "valid record",
			rec:  &model.VersionRecord{Package: "dadandiaoming", Latest: "1.2.3", CheckedAt: checkedAt},
		},
		{
			name: "overwrite record",
			rec:  &model.VersionRecord{Package: "dadandiaoming", Latest: "1.3.0", CheckedAt: checkedAt},
		},
		{
			name:    "missing package",
			rec:     &model.VersionRecord{Latest: "1.0.0"},
			wantErr: true,
		},
		{
			name:    "nil record",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := db.SaveVersionCheck(tt.rec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SaveVersionCheck() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				return
			}

			got, err := db.GetVersionCheck(tt.rec.Package)
			if err != nil {
				t.Fatalf("GetVersionCheck() error = %v", err)
			}

			if got.Latest != tt.rec.Latest || !got.CheckedAt.Equal(tt.rec.CheckedAt) {
				t.Errorf("GetVersionCheck() = %+v, want %+v", got, tt.rec)
			}
		})
	}
}

func TestBolt_ClearVersionCheck(t *testing.T) {
	db := setupTestDB(t)

	if err := db.SaveVersionCheck(&model.VersionRecord{Package: "pkg", Latest: "1.0.0"}); err != nil {
		t.Fatalf("SaveVersionCheck() error = %v", err)
	}

	if err := db.ClearVersionCheck("pkg"); err != nil {
		t.Fatalf("ClearVersionCheck() error = %v", err)
	}

	rec, err := db.GetVersionCheck("pkg")
	if err != nil {
		t.Fatalf("GetVersionCheck() error = %v", err)
	}

	if rec != nil {
		t.Errorf("record still present after clear: %+v", rec)
	}
}
