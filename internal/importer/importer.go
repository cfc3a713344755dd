// Package importer reads command documentation from files for `lcl import`.
package importer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nikbrunner/lcl/internal/catalog"
)

var (
	// ErrNoCommandName is returned for HTML pages without an <h1> and no fallback name.
	ErrNoCommandName = errors.New("no command name")
	// ErrUnsupportedFormat is returned for files that are neither HTML nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// ParseFile reads a dataset from path. HTML files yield a single command named
// after the file when the page has no <h1>; YAML files hold a full dataset.
// A directory is read file by file, skipping unsupported files.
func ParseFile(path string) (catalog.Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return catalog.Dataset{}, err
	}
	if info.IsDir() {
		return parseDir(path)
	}
	return parseOne(path)
}

func parseOne(path string) (catalog.Dataset, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".html", ".htm", ".yaml", ".yml":
	default:
		return catalog.Dataset{}, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return catalog.Dataset{}, err
	}
	defer f.Close()

	if ext == ".yaml" || ext == ".yml" {
		ds, err := catalog.DecodeDataset(f)
		if err != nil {
			return catalog.Dataset{}, fmt.Errorf("%s: %w", path, err)
		}
		return ds, nil
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	entry, err := ParseCommandHTML(f, name)
	if err != nil {
		return catalog.Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	return catalog.Dataset{Commands: []catalog.CommandEntry{entry}}, nil
}

func parseDir(dir string) (catalog.Dataset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return catalog.Dataset{}, err
	}

	var merged catalog.Dataset
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ds, err := parseOne(filepath.Join(dir, e.Name()))
		if errors.Is(err, ErrUnsupportedFormat) {
			continue
		}
		if err != nil {
			return catalog.Dataset{}, err
		}
		merged.Commands = append(merged.Commands, ds.Commands...)
		merged.Basics = append(merged.Basics, ds.Basics...)
		merged.Tips = append(merged.Tips, ds.Tips...)
	}
	if err := merged.Validate(); err != nil {
		return catalog.Dataset{}, fmt.Errorf("%s: %w", dir, err)
	}
	return merged, nil
}
