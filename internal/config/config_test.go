package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/inovacc/dadandiaoming/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := Load(path)
	require.NoError(t, err)

	want := model.DefaultConfig()
	assert.Equal(t, want.PackageName, cfg.PackageName)
	assert.Equal(t, want.RegistryURL, cfg.RegistryURL)
	assert.Equal(t, want.MirrorURL, cfg.MirrorURL)
	assert.Equal(t, 24*time.Hour, cfg.VersionCheck.TTL)
	assert.Empty(t, cfg.Templates)
}

func TestLoad_FileOverrides(t *testing.T) {
	path := writeConfig(t, `
registry_url: https://registry.example.com
version_check:
  ttl: 1h
templates:
  - name: svelte
    description: svelte starter
    url: https://example.com/svelte.git
    branch: dev
progress:
  receive: ["Objekte empfangen"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://registry.example.com", cfg.RegistryURL)
	assert.Equal(t, time.Hour, cfg.VersionCheck.TTL)
	require.Len(t, cfg.Templates, 1)
	assert.Equal(t, model.TemplateInfo{
		Name:        "svelte",
		Description: "svelte starter",
		URL:         "https://example.com/svelte.git",
		Branch:      "dev",
	}, cfg.Templates[0])
	assert.Equal(t, []string{"Objekte empfangen"}, cfg.Progress.Receive)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "mirror_url: https://from-file.example.com\n")
	t.Setenv("DADANDIAOMING_MIRROR_URL", "https://from-env.example.com")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://from-env.example.com", cfg.MirrorURL)
}

func TestLoad_InvalidTemplate(t *testing.T) {
	path := writeConfig(t, `
templates:
  - name: broken
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "url is required")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
