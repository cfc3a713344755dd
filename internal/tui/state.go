package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/lcl/internal/tui/layout"
)

// Mode is the overlay shown above the current screen.
type Mode int

const (
	ModeNormal Mode = iota
	ModeHelp
	ModeInfo
)

// SearchBar is the search field of the commands screen. It is either hidden
// or active; the query only changes while it is active.
type SearchBar struct {
	input  textinput.Model
	active bool
}

// NewSearchBar creates a hidden search bar.
func NewSearchBar(cfg layout.InputConfig, placeholder string) SearchBar {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = cfg.SearchCharLimit
	input.Width = cfg.SearchWidth
	input.Prompt = ""

	return SearchBar{input: input}
}

// Active reports whether the bar is shown.
func (s SearchBar) Active() bool {
	return s.active
}

// Query returns the current query text.
func (s SearchBar) Query() string {
	return s.input.Value()
}

// AtStart reports whether the input cursor is before the first character.
func (s SearchBar) AtStart() bool {
	return s.input.Position() == 0
}

// Activate shows the bar with an empty query and focuses it.
func (s *SearchBar) Activate() tea.Cmd {
	s.active = true
	s.input.Reset()
	return s.input.Focus()
}

// Close is the trailing close action: a non-empty query is cleared and the
// bar stays; an empty query hides the bar.
func (s *SearchBar) Close() {
	if s.input.Value() != "" {
		s.input.Reset()
		return
	}
	s.hide()
}

// Back is the navigation action while searching: clear and hide.
func (s *SearchBar) Back() {
	s.input.Reset()
	s.hide()
}

func (s *SearchBar) hide() {
	s.active = false
	s.input.Blur()
}

// Update feeds msg to the input. Hidden bars ignore all messages.
func (s *SearchBar) Update(msg tea.Msg) tea.Cmd {
	if !s.active {
		return nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// View renders the input field.
func (s SearchBar) View() string {
	return s.input.View()
}
