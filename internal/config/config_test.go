package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/nikbrunner/lcl/internal/config"
)

func TestLoad_DefaultsAndInstallationID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg, err := config.Load(path)
	assert.NilError(t, err)

	assert.Equal(t, cfg.Storage.Backend, "sqlite")
	assert.Equal(t, cfg.Catalog.Path, filepath.Join(dir, "commands.db"))
	assert.Equal(t, cfg.Storage.Path, filepath.Join(dir, "bookmarks.db"))
	assert.Equal(t, cfg.Render.Style, "auto")
	assert.Equal(t, cfg.Probe.Concurrency, 8)
	assert.Assert(t, cfg.InstallationID != "", "installation id should be generated")

	// The generated id is written back and reused.
	_, err = os.Stat(path)
	assert.NilError(t, err)

	again, err := config.Load(path)
	assert.NilError(t, err)
	assert.Equal(t, again.InstallationID, cfg.InstallationID)
}

func TestLoad_FileValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	data := `{
  "installation_id": "fixed-id",
  "locale": "de",
  "storage": {"backend": "json", "json_path": "marks.json"},
  "probe": {"concurrency": 0}
}`
	assert.NilError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := config.Load(path)
	assert.NilError(t, err)

	assert.Equal(t, cfg.InstallationID, "fixed-id")
	assert.Equal(t, cfg.Locale, "de")
	assert.Equal(t, cfg.Storage.Backend, "json")
	assert.Equal(t, cfg.Storage.JSONPath, filepath.Join(dir, "marks.json"))
	assert.Equal(t, cfg.Probe.Concurrency, 1, "concurrency is clamped to at least one worker")
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LCL_STORAGE_BACKEND", "json")
	t.Setenv("LCL_RENDER_STYLE", "notty")

	cfg, err := config.Load(filepath.Join(dir, "config.json"))
	assert.NilError(t, err)

	assert.Equal(t, cfg.Storage.Backend, "json")
	assert.Equal(t, cfg.Render.Style, "notty")
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	assert.NilError(t, os.WriteFile(path, []byte("{broken"), 0644))

	_, err := config.Load(path)
	assert.ErrorContains(t, err, "read config")
}

func TestLoad_EnvOverrideIsNotPersisted(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	t.Setenv("LCL_STORAGE_BACKEND", "json")
	cfg, err := config.Load(path)
	assert.NilError(t, err)
	assert.Equal(t, cfg.Storage.Backend, "json")

	data, err := os.ReadFile(path)
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(string(data), cfg.InstallationID))
	assert.Assert(t, !strings.Contains(string(data), "backend"), "written config: %s", data)
	assert.Assert(t, !strings.Contains(string(data), "commands.db"), "defaults are not written: %s", data)

	assert.NilError(t, os.Unsetenv("LCL_STORAGE_BACKEND"))
	again, err := config.Load(path)
	assert.NilError(t, err)
	assert.Equal(t, again.Storage.Backend, "sqlite")
	assert.Equal(t, again.InstallationID, cfg.InstallationID)
}

func TestLoad_InstallationIDKeepsFileValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	assert.NilError(t, os.WriteFile(path, []byte(`{"locale": "de"}`), 0644))

	cfg, err := config.Load(path)
	assert.NilError(t, err)

	again, err := config.Load(path)
	assert.NilError(t, err)
	assert.Equal(t, again.Locale, "de")
	assert.Equal(t, again.InstallationID, cfg.InstallationID)
}
