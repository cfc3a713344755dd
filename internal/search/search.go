package search

import (
	"sort"

	"github.com/nikbrunner/lcl/internal/model"
	"github.com/sahilm/fuzzy"
)

// SearchResult represents a fuzzy search match.
type SearchResult struct {
	Command        *model.Command
	MatchedIndexes []int
	Score          int
}

// commandNames implements fuzzy.Source for a command slice.
type commandNames []*model.Command

func (cn commandNames) String(i int) string {
	return cn[i].Name
}

func (cn commandNames) Len() int {
	return len(cn)
}

// FuzzySearchCommands searches commands by name using fuzzy matching.
// Returns results sorted by match score (best first). Equal scores put the
// shorter name first, then order by name, so "ls" leads "lsblk" and "lsof".
func FuzzySearchCommands(commands []model.Command, query string) []SearchResult {
	if query == "" {
		return nil
	}

	source := make(commandNames, len(commands))
	for i := range commands {
		source[i] = &commands[i]
	}

	matches := fuzzy.FindFrom(query, source)

	results := make([]SearchResult, len(matches))
	for i, m := range matches {
		results[i] = SearchResult{
			Command:        source[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if len(a.Command.Name) != len(b.Command.Name) {
			return len(a.Command.Name) < len(b.Command.Name)
		}
		return a.Command.Name < b.Command.Name
	})

	return results
}
