package tui

import (
	"github.com/nikbrunner/lcl/internal/bookmark"
	"github.com/nikbrunner/lcl/internal/route"
)

// TopBar is what the bar above every screen shows.
type TopBar struct {
	Title            string
	ShowBack         bool
	ShowSearchField  bool
	ShowSearchButton bool
	ShowInfo         bool
	ShowBookmark     bool
	Bookmarked       bool
}

// NewTopBar derives the bar for dest. title is the resolved title of dest;
// toggle is the bookmark state of the shown command, nil when the command
// does not exist.
func NewTopBar(dest *route.Destination, title string, search SearchBar, toggle *bookmark.Toggle) TopBar {
	kind := dest.Kind()

	if kind == route.KindCommands {
		if search.Active() {
			return TopBar{Title: title, ShowBack: true, ShowSearchField: true}
		}
		return TopBar{Title: title, ShowSearchButton: true}
	}

	bar := TopBar{
		Title:    title,
		ShowBack: kind != route.KindBasics && kind != route.KindTips,
		ShowInfo: kind == route.KindBasics,
	}
	if kind == route.KindCommand && toggle != nil {
		bar.ShowBookmark = true
		bar.Bookmarked = toggle.Bookmarked()
	}
	return bar
}
