package catalog

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dataset is the interchange format of the catalog: the embedded seed and
// `lcl import` files use it.
type Dataset struct {
	Commands []CommandEntry `yaml:"commands"`
	Basics   []BasicsEntry  `yaml:"basics"`
	Tips     []TipEntry     `yaml:"tips"`
}

// CommandEntry is one command page.
type CommandEntry struct {
	Name        string         `yaml:"name"`
	Category    string         `yaml:"category"`
	Description string         `yaml:"description"`
	Sections    []SectionEntry `yaml:"sections"`
}

// SectionEntry is one titled block of a command page.
type SectionEntry struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

// BasicsEntry is one basics category with its groups.
type BasicsEntry struct {
	Title  string       `yaml:"title"`
	Groups []GroupEntry `yaml:"groups"`
}

// GroupEntry is one described group of shell lines.
type GroupEntry struct {
	Description string        `yaml:"description"`
	Commands    []CommandLine `yaml:"commands"`
}

// CommandLine is a shell line and the commands it uses.
type CommandLine struct {
	Command string   `yaml:"command"`
	Man     []string `yaml:"man"`
}

// TipEntry is one tip.
type TipEntry struct {
	Title    string         `yaml:"title"`
	Sections []TipPartEntry `yaml:"sections"`
}

// TipPartEntry is one text or code part of a tip.
type TipPartEntry struct {
	Kind string `yaml:"kind"`
	Data string `yaml:"data"`
}

// DecodeDataset reads a YAML dataset and validates it.
func DecodeDataset(r io.Reader) (Dataset, error) {
	var ds Dataset
	if err := yaml.NewDecoder(r).Decode(&ds); err != nil && !errors.Is(err, io.EOF) {
		return Dataset{}, fmt.Errorf("decode dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

// Validate checks that every entry is addressable by its name or title.
func (ds Dataset) Validate() error {
	seen := make(map[string]bool, len(ds.Commands))
	for i, c := range ds.Commands {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return fmt.Errorf("command #%d: name is required", i+1)
		}
		if seen[name] {
			return fmt.Errorf("command %q: duplicate name", name)
		}
		seen[name] = true
	}
	for i, b := range ds.Basics {
		if strings.TrimSpace(b.Title) == "" {
			return fmt.Errorf("basics #%d: title is required", i+1)
		}
	}
	for i, t := range ds.Tips {
		if strings.TrimSpace(t.Title) == "" {
			return fmt.Errorf("tip #%d: title is required", i+1)
		}
	}
	return nil
}
