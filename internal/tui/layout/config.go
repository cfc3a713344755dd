package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Screen ScreenConfig
	Modal  ModalConfig
	Input  InputConfig
	Text   TextConfig
}

// ScreenConfig holds the dimensions of the main screen.
type ScreenConfig struct {
	// ChromeHeight is subtracted from terminal height for screen content.
	// Accounts for: app padding (1) + top bar (1) + tabs (1) + gap (1) + status line (1) + help bar (1) = 6
	ChromeHeight int

	// MinHeight is the minimum content height.
	MinHeight int

	// HorizontalPadding is subtracted from terminal width for content.
	// Accounts for app padding on each side.
	HorizontalPadding int

	// NameColumnWidth is the width of the command name column in lists.
	NameColumnWidth int
}

// ModalConfig holds overlay dialog configuration.
type ModalConfig struct {
	// WidthPercent is the overlay width as percentage of terminal width.
	WidthPercent int

	// MinWidth is the minimum overlay width in characters.
	MinWidth int

	// MaxWidth is the maximum overlay width in characters.
	MaxWidth int

	// FrameHeight is the height taken by the overlay border and padding.
	FrameHeight int

	// HelpKeyColumnWidth: width of the key column in the help overlay.
	HelpKeyColumnWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	SearchCharLimit int
	SearchWidth     int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Screen: ScreenConfig{
			ChromeHeight:      6,
			MinHeight:         3,
			HorizontalPadding: 4,
			NameColumnWidth:   14,
		},
		Modal: ModalConfig{
			WidthPercent:       50,
			MinWidth:           40,
			MaxWidth:           72,
			FrameHeight:        4,
			HelpKeyColumnWidth: 12,
		},
		Input: InputConfig{
			SearchCharLimit: 64,
			SearchWidth:     40,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
