package probe_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/nikbrunner/lcl/internal/probe"
)

// fakePath points PATH at a temp dir holding an executable per name.
func fakePath(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		assert.NilError(t, os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"), 0755))
	}
	// Present but not executable.
	assert.NilError(t, os.WriteFile(filepath.Join(dir, "plainfile"), []byte("data"), 0644))
	t.Setenv("PATH", dir)
	return dir
}

func TestInstalled(t *testing.T) {
	dir := fakePath(t, "lcl-ls", "lcl-grep")

	var mu sync.Mutex
	var calls []int
	found, err := probe.Installed(context.Background(),
		[]string{"lcl-ls", "lcl-grep", "lcl-missing", "plainfile", "", "../lcl-ls"}, 2,
		func(completed, total int) {
			mu.Lock()
			defer mu.Unlock()
			assert.Equal(t, total, 6)
			calls = append(calls, completed)
		})
	assert.NilError(t, err)

	assert.DeepEqual(t, found, map[string]string{
		"lcl-ls":   filepath.Join(dir, "lcl-ls"),
		"lcl-grep": filepath.Join(dir, "lcl-grep"),
	})
	assert.DeepEqual(t, calls, []int{1, 2, 3, 4, 5, 6})
}

func TestInstalled_Empty(t *testing.T) {
	found, err := probe.Installed(context.Background(), nil, 4, nil)
	assert.NilError(t, err)
	assert.Assert(t, is.Len(found, 0))
}

func TestInstalled_ZeroConcurrency(t *testing.T) {
	fakePath(t, "lcl-tar")

	found, err := probe.Installed(context.Background(), []string{"lcl-tar"}, 0, nil)
	assert.NilError(t, err)
	assert.Assert(t, is.Contains(found, "lcl-tar"))
}

func TestInstalled_Cancelled(t *testing.T) {
	fakePath(t, "lcl-ls")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	found, err := probe.Installed(ctx, []string{"lcl-ls"}, 1, nil)
	assert.Assert(t, errors.Is(err, context.Canceled))
	assert.Assert(t, is.Len(found, 0))
}
