package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/lcl/internal/model"
	"github.com/nikbrunner/lcl/internal/search"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true).
			MarginBottom(1)
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Cancel key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("k", "up", "ctrl+p")),
	Down:   key.NewBinding(key.WithKeys("j", "down", "ctrl+n")),
	Choose: key.NewBinding(key.WithKeys("enter")),
	Cancel: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

// Picker lets the user choose one command from search results.
type Picker struct {
	results   []search.SearchResult
	query     string
	cursor    int
	selected  bool
	cancelled bool
	width     int
	height    int
}

// New creates a Picker over results found for query.
func New(results []search.SearchResult, query string) Picker {
	return Picker{
		results: results,
		query:   query,
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Cancel):
			p.cancelled = true
			return p, tea.Quit
		case key.Matches(msg, keys.Choose):
			p.selected = true
			return p, tea.Quit
		case key.Matches(msg, keys.Down):
			p.cursor = min(p.cursor+1, max(len(p.results)-1, 0))
		case key.Matches(msg, keys.Up):
			p.cursor = max(p.cursor-1, 0)
		}
	}

	return p, nil
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	// Header
	b.WriteString(headerStyle.Render(fmt.Sprintf("Search: %s (%d results)", p.query, len(p.results))))
	b.WriteString("\n\n")

	// Each result takes two lines; header and footer take four.
	start, end := visibleRange(p.cursor, len(p.results), (p.height-4)/2)
	for i := start; i < end; i++ {
		result := p.results[i]
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		name := highlight(result.Command.Name, result.MatchedIndexes, style)
		desc := descStyle.Render(result.Command.Description)

		b.WriteString(fmt.Sprintf("%s%s\n", cursor, name))
		b.WriteString(fmt.Sprintf("   %s\n", desc))
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render("j/k: move  Enter: show  q/Esc: cancel"))

	return b.String()
}

// visibleRange returns the window of rows to draw so the cursor stays shown.
func visibleRange(cursor, total, rows int) (start, end int) {
	if rows < 1 {
		rows = 1
	}
	if total <= rows {
		return 0, total
	}
	if cursor >= rows {
		start = cursor - rows + 1
	}
	return start, start + rows
}

// highlight renders name in base with the matched bytes underlined.
func highlight(name string, matched []int, base lipgloss.Style) string {
	if len(matched) == 0 {
		return base.Render(name)
	}

	set := make(map[int]bool, len(matched))
	for _, i := range matched {
		set[i] = true
	}

	var b strings.Builder
	for i, r := range name {
		if set[i] {
			b.WriteString(base.Underline(true).Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// SelectedCommand returns the selected command, or nil if cancelled.
func (p Picker) SelectedCommand() *model.Command {
	if p.cancelled || !p.selected {
		return nil
	}
	if p.cursor < len(p.results) {
		return p.results[p.cursor].Command
	}
	return nil
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
