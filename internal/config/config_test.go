package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raveheart1/nextver/internal/version"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	isolateHome(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "semver", cfg.Scheme)
	assert.Equal(t, "v", cfg.TagPrefix)
	assert.True(t, cfg.IncludeHash)
	assert.False(t, cfg.Strict)
	assert.Empty(t, cfg.IgnorePatterns)
}

func TestLoadProjectConfig(t *testing.T) {
	isolateHome(t)
	path := writeConfig(t, `
scheme: calver
tag_prefix: ""
strict: true
ignore_patterns:
  - "[skip release]"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "calver", cfg.Scheme)
	assert.Equal(t, "", cfg.TagPrefix)
	assert.True(t, cfg.Strict)
	assert.Equal(t, []string{"[skip release]"}, cfg.IgnorePatterns)

	scheme, err := cfg.VersionScheme()
	require.NoError(t, err)
	assert.Equal(t, version.SchemeCalVer, scheme)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	isolateHome(t)
	path := writeConfig(t, "scheme: semver\n")
	t.Setenv("NEXTVER_SCHEME", "calver")
	t.Setenv("NEXTVER_TAG_PREFIX", "release-")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "calver", cfg.Scheme)
	assert.Equal(t, "release-", cfg.TagPrefix)
}

func TestLoadRejectsUnknownScheme(t *testing.T) {
	isolateHome(t)
	path := writeConfig(t, "scheme: chronover\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chronover")
}

func TestLoadMissingExplicitConfigFails(t *testing.T) {
	isolateHome(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	isolateHome(t)
	path := writeConfig(t, "scheme: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
}
