package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTarget(t *testing.T) {
	root := t.TempDir()
	cwd := filepath.Join(root, "work")
	elsewhere := filepath.Join(root, "elsewhere")

	tests := []struct {
		name       string
		input      string
		want       string
		wantErr    bool
		wantUnsafe bool
	}{
		{name: "simple", input: "myapp", want: filepath.Join(cwd, "myapp")},
		{name: "nested", input: "apps/web", want: filepath.Join(cwd, "apps", "web")},
		{name: "dot segments", input: "./a/../myapp", want: filepath.Join(cwd, "myapp")},
		{name: "sibling", input: "../sibling", want: filepath.Join(root, "sibling")},
		{name: "absolute kept", input: elsewhere, want: elsewhere},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "  ", wantErr: true},
		{name: "working directory", input: ".", wantErr: true, wantUnsafe: true},
		{name: "parent", input: "..", wantErr: true, wantUnsafe: true},
		{name: "absolute working directory", input: cwd, wantErr: true, wantUnsafe: true},
		{name: "absolute ancestor", input: root, wantErr: true, wantUnsafe: true},
		{name: "filesystem root", input: string(filepath.Separator), wantErr: true, wantUnsafe: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTarget(cwd, tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantUnsafe, errors.Is(err, ErrUnsafeTarget))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, filepath.IsAbs(got))

			again, err := ResolveTarget(cwd, tt.input)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestConflict(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	link := filepath.Join(dir, "dangling")
	if err := os.Symlink(filepath.Join(dir, "nowhere"), link); err != nil {
		t.Logf("symlinks unavailable: %v", err)
		link = ""
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "directory", path: dir, want: true},
		{name: "file", path: file, want: true},
		{name: "absent", path: filepath.Join(dir, "absent"), want: false},
	}

	if link != "" {
		tests = append(tests, struct {
			name string
			path string
			want bool
		}{name: "dangling symlink", path: link, want: true})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Conflict(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRemoveTarget(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "myapp")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "a", "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "a", "b", "c.txt"), []byte("c"), 0o644))

	require.NoError(t, RemoveTarget(target))
	assert.NoDirExists(t, target)

	// removing an absent path is not an error
	require.NoError(t, RemoveTarget(target))
}

func TestRemoveTarget_Failure(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	dir := t.TempDir()
	parent := filepath.Join(dir, "locked")
	target := filepath.Join(parent, "myapp")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "inner"), 0o755))
	require.NoError(t, os.Chmod(parent, 0o500))
	t.Cleanup(func() { _ = os.Chmod(parent, 0o755) })

	err := RemoveTarget(target)
	require.Error(t, err)

	var fsErr *FilesystemError
	require.ErrorAs(t, err, &fsErr)
	assert.Equal(t, "remove", fsErr.Op)
	assert.Equal(t, target, fsErr.Path)
}
