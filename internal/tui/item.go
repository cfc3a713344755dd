package tui

import "github.com/nikbrunner/lcl/internal/model"

// ItemKind distinguishes between commands and basics categories in a list.
type ItemKind int

const (
	ItemCommand ItemKind = iota
	ItemCategory
)

// Item represents either a command or a basics category in the list.
type Item struct {
	Kind     ItemKind
	Command  *model.Command
	Category *model.BasicCategory

	// Command rows only.
	Bookmarked     bool
	InstalledPath  string
	MatchedIndexes []int
}

// Title returns a display title for the item.
func (i Item) Title() string {
	if i.Kind == ItemCategory {
		return i.Category.Title
	}
	return i.Command.Name
}

// IsCommand returns true if this item is a command.
func (i Item) IsCommand() bool {
	return i.Kind == ItemCommand
}
