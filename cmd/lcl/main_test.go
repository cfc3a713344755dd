package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/nikbrunner/lcl/internal/catalog"
)

// runCLI runs lcl with a config file in dir and plain rendering.
func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LCL_RENDER_STYLE", "notty")
	t.Setenv("LCL_PROBE_ENABLED", "false")
	t.Setenv("LCL_LOCALE", "en")

	var out, errOut bytes.Buffer
	args = append([]string{"--config", filepath.Join(dir, "config.json")}, args...)
	err := run(context.Background(), args, &out, &errOut)
	return out.String(), err
}

func TestShow(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "show", "ls")
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(out, "SYNOPSIS"))
	assert.Assert(t, is.Contains(out, "List directory contents."))
}

func TestShow_Raw(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "show", "--raw", "cd")
	assert.NilError(t, err)
	assert.Assert(t, strings.HasPrefix(out, "# cd\n"))
}

func TestShow_UnknownSuggests(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "show", "lss")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.ErrorContains(t, err, "did you mean ls")
}

func TestSearch_List(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "search", "--list", "c")
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(out, "cp"))
	assert.Assert(t, is.Contains(out, "curl"))
}

func TestSearch_SingleMatchShowsPage(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "search", "uname")
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(out, "Print system information."))
}

func TestSearch_NoMatch(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "search", "zzzz")
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(out, "No commands found"))
}

func TestBasics(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "basics")
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(out, "oneliners"))
	assert.Assert(t, is.Contains(out, "One-Liners"))

	out, err = runCLI(t, dir, "basics", "One-Liners")
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(out, "du -ah"))

	_, err = runCLI(t, dir, "basics", "nope")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestTips(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "tips")
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(out, "Go back to the previous directory"))
}

func TestBookmarkLifecycle(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, dir, "bookmark", "add", "grep")
	assert.NilError(t, err)
	assert.Equal(t, out, "Bookmarked grep\n")

	out, err = runCLI(t, dir, "bookmark", "list")
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(out, "grep"))

	out, err = runCLI(t, dir, "bookmark", "toggle", "grep")
	assert.NilError(t, err)
	assert.Equal(t, out, "Removed bookmark grep\n")

	out, err = runCLI(t, dir, "bookmark", "list")
	assert.NilError(t, err)
	assert.Assert(t, !strings.Contains(out, "grep"))

	out, err = runCLI(t, dir, "bookmark", "toggle", "tar")
	assert.NilError(t, err)
	assert.Equal(t, out, "Bookmarked tar\n")

	out, err = runCLI(t, dir, "bookmark", "remove", "tar")
	assert.NilError(t, err)
	assert.Equal(t, out, "Removed bookmark tar\n")
}

func TestBookmark_JSONBackend(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LCL_STORAGE_BACKEND", "json")

	_, err := runCLI(t, dir, "bookmark", "add", "ssh")
	assert.NilError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "bookmarks.json"))
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(string(data), "commandId"))
}

func TestImport(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "extra.yaml")
	assert.NilError(t, os.WriteFile(file, []byte(`
commands:
  - name: htop
    category: processes
    description: Interactive process viewer.
    sections:
      - title: EXAMPLES
        content: htop -u root
`), 0644))

	out, err := runCLI(t, dir, "import", file)
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(out, "Imported 1 commands (0 updated)"))

	out, err = runCLI(t, dir, "show", "htop")
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(out, "Interactive process viewer."))
}

func TestExport(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, dir, "bookmark", "add", "grep")
	assert.NilError(t, err)

	target := filepath.Join(dir, "export.html")
	out, err := runCLI(t, dir, "export", target)
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(out, "Exported 1 bookmarks"))

	data, err := os.ReadFile(target)
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(string(data), "https://linuxcommandlibrary.com/man/grep"))
}

func TestVerboseLogsOpenedFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, dir, "-v", "tips")
	assert.NilError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "lcl.log"))
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(string(data), filepath.Join(dir, "commands.db")))
	assert.Assert(t, is.Contains(string(data), filepath.Join(dir, "bookmarks.db")))
}
