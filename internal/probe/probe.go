// Package probe finds which catalog commands are installed on this machine.
package probe

import (
	"context"
	"os/exec"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ProgressFunc is called after each name is looked up.
// completed is the number of names checked so far, total is the total count.
type ProgressFunc func(completed, total int)

// Installed resolves each name on PATH with at most concurrency lookups in
// flight and returns name -> executable path for the names found. Names
// containing a path separator are never resolved. A cancelled context stops
// pending lookups and its error is returned with the results found so far.
func Installed(ctx context.Context, names []string, concurrency int, onProgress ProgressFunc) (map[string]string, error) {
	found := make(map[string]string)
	if len(names) == 0 {
		return found, nil
	}
	if concurrency < 1 {
		concurrency = 1
	}

	var mu sync.Mutex
	completed := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, name := range names {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			path, ok := lookup(name)

			mu.Lock()
			defer mu.Unlock()
			if ok {
				found[name] = path
			}
			completed++
			if onProgress != nil {
				onProgress(completed, len(names))
			}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	return found, err
}

func lookup(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsRune(name, '/') {
		return "", false
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}
