package tui

import (
	"strings"

	"github.com/nikbrunner/lcl/internal/route"
)

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "open", "move")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for bottom bar: "j/k:move h:back l:open"
func (a App) renderHints(hints HintSet) string {
	allHints := hints.All()
	if len(allHints) == 0 {
		return ""
	}

	parts := make([]string, len(allHints))
	for i, h := range allHints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Nav    []Hint // Navigation hints (j/k, h/l, etc.)
	Action []Hint // Action hints (Enter, b, y)
	System []Hint // System hints (?, q, Esc)
}

// All returns all hints flattened in display order: Nav + Action + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Action)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Action...)
	result = append(result, h.System...)
	return result
}

// getContextualHints returns the hints for the current overlay and screen.
func (a App) getContextualHints() HintSet {
	switch a.mode {
	case ModeHelp:
		return HintSet{System: []Hint{{Key: "?/q/Esc", Desc: "close"}}}
	case ModeInfo:
		return HintSet{System: []Hint{{Key: "i/Esc", Desc: "close"}}}
	}

	switch a.router.Current().Kind() {
	case route.KindCommands:
		if a.search.Active() {
			return a.getSearchHints()
		}
		return a.getListHints(true)
	case route.KindBasics:
		return a.getListHints(false)
	case route.KindCommand:
		return a.getPageHints(a.toggle != nil)
	default:
		return a.getPageHints(false)
	}
}

// getSearchHints returns hints while the search field has focus.
func (a App) getSearchHints() HintSet {
	return HintSet{
		Nav: []Hint{
			{Key: "↑/↓", Desc: "move"},
			{Key: "type", Desc: "search"},
		},
		Action: []Hint{
			{Key: "Enter", Desc: "open"},
		},
		System: []Hint{
			{Key: "ctrl+b", Desc: "back"},
			{Key: "Esc", Desc: "clear/close"},
		},
	}
}

// getListHints returns hints for the commands and basics lists.
func (a App) getListHints(commands bool) HintSet {
	hints := HintSet{
		Nav: []Hint{
			{Key: "j/k", Desc: "move"},
			{Key: "l", Desc: "open"},
			{Key: "1-3", Desc: "tab"},
		},
		System: []Hint{
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
	}
	if commands {
		hints.Action = []Hint{
			{Key: "/", Desc: "search"},
			{Key: "y", Desc: "yank"},
		}
	} else {
		hints.Action = []Hint{
			{Key: "i", Desc: "info"},
		}
	}
	return hints
}

// getPageHints returns hints for document screens.
func (a App) getPageHints(bookmarkable bool) HintSet {
	hints := HintSet{
		Nav: []Hint{
			{Key: "j/k", Desc: "scroll"},
		},
		System: []Hint{
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
	}
	if a.router.CanGoBack() {
		hints.Nav = append(hints.Nav, Hint{Key: "h", Desc: "back"})
	}
	hints.Nav = append(hints.Nav, Hint{Key: "1-3", Desc: "tab"})

	if bookmarkable {
		hints.Action = []Hint{
			{Key: "b", Desc: "bookmark"},
			{Key: "y", Desc: "yank"},
		}
	}
	return hints
}
