package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App          lipgloss.Style
	TopBar       lipgloss.Style
	Title        lipgloss.Style
	Action       lipgloss.Style // Top bar action icons
	ActionActive lipgloss.Style // Filled bookmark icon
	Tab          lipgloss.Style
	TabActive    lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	Match        lipgloss.Style // Fuzzy-matched characters in names
	Description  lipgloss.Style
	Installed    lipgloss.Style
	Empty        lipgloss.Style
	Message      lipgloss.Style
	Error        lipgloss.Style
	Modal        lipgloss.Style
	HintKey      lipgloss.Style // Key portion of hints (e.g., "Enter", "j/k")
	HintDesc     lipgloss.Style // Description portion of hints (e.g., "open", "move")
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent.
func DefaultStyles() Styles {
	// Industrial color palette
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal
	danger := lipgloss.AdaptiveColor{Light: "#8A4A4A", Dark: "#AF6F6F"}  // errors

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		TopBar: lipgloss.NewStyle().
			Foreground(primary),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Action: lipgloss.NewStyle().
			Foreground(subtle),

		ActionActive: lipgloss.NewStyle().
			Foreground(accent),

		Tab: lipgloss.NewStyle().
			Foreground(subtle).
			PaddingRight(2),

		TabActive: lipgloss.NewStyle().
			Foreground(accent).
			Underline(true).
			PaddingRight(2),

		Item: lipgloss.NewStyle().
			Foreground(primary).
			PaddingLeft(1),

		ItemSelected: lipgloss.NewStyle().
			PaddingLeft(1).
			Background(accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		Match: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		Description: lipgloss.NewStyle().
			Foreground(subtle),

		Installed: lipgloss.NewStyle().
			Foreground(accent),

		Empty: lipgloss.NewStyle().
			Foreground(subtle).
			PaddingLeft(1),

		Message: lipgloss.NewStyle().
			Foreground(subtle),

		Error: lipgloss.NewStyle().
			Foreground(danger),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(1, 2),

		HintKey: lipgloss.NewStyle().
			Foreground(subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),
	}
}
