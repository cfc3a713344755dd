package search

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/nikbrunner/lcl/internal/model"
)

// Suggest returns up to max command names closest to name by edit distance,
// for "did you mean" hints. Names further away than half their length are
// not suggested.
func Suggest(name string, commands []model.Command, max int) []string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || max <= 0 {
		return nil
	}

	type candidate struct {
		name     string
		distance int
	}

	var candidates []candidate
	for _, cmd := range commands {
		d := levenshtein.ComputeDistance(name, strings.ToLower(cmd.Name))
		limit := len(cmd.Name) / 2
		if limit < 1 {
			limit = 1
		}
		if d > limit {
			continue
		}
		candidates = append(candidates, candidate{name: cmd.Name, distance: d})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].name < candidates[j].name
	})

	if len(candidates) > max {
		candidates = candidates[:max]
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.name
	}
	return names
}
