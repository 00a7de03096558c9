package updater

import (
	"testing"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		latest   string
		expected int
		wantErr  bool
	}{
		{"older patch", "1.0.0", "1.0.1", -1, false},
		{"older minor", "1.0.0", "1.1.0", -1, false},
		{"equal", "1.2.3", "1.2.3", 0, false},
		{"newer", "1.1.0", "1.0.0", 1, false},
		{"v prefix", "v1.0.0", "1.0.1", -1, false},
		{"prerelease less than release", "1.0.0-beta", "1.0.0", -1, false},
		{"invalid current", "notaversion", "1.0.0", 0, true},
		{"invalid latest", "1.0.0", "notaversion", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CompareVersions(tt.current, tt.latest)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got nil")
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result != tt.expected {
				t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.current, tt.latest, result, tt.expected)
			}
		})
	}
}

func TestRelate(t *testing.T) {
	tests := []struct {
		current string
		latest  string
		want    Relation
	}{
		{"1.0.0", "1.0.0", UpToDate},
		{"1.0.0", "1.0.1", Behind},
		{"2.0.0", "1.9.9", Ahead},
		{"dev", "dev", UpToDate},
		{"dev", "1.0.0", Behind},
	}

	for _, tt := range tests {
		if got := Relate(tt.current, tt.latest); got != tt.want {
			t.Errorf("Relate(%q, %q) = %v, want %v", tt.current, tt.latest, got, tt.want)
		}
	}
}
