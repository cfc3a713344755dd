package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes terminal escape sequences from s.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// VisibleLength returns the number of terminal cells s occupies.
// Escape sequences take none; wide runes take two.
func VisibleLength(s string) int {
	return ansi.StringWidth(s)
}

// TruncateText shortens text to maxWidth cells, ending it with the
// configured ellipsis. Styled text keeps its escape sequences. It reports
// whether anything was cut.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", text != ""
	}
	if VisibleLength(text) <= maxWidth {
		return text, false
	}
	if maxWidth <= VisibleLength(cfg.Ellipsis) {
		return ansi.Truncate(cfg.Ellipsis, maxWidth, ""), true
	}
	return ansi.Truncate(text, maxWidth, cfg.Ellipsis), true
}

// PadRight fills s with spaces up to width cells. Wider strings are
// returned unchanged.
func PadRight(s string, width int) string {
	if gap := width - VisibleLength(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Column fits s into exactly width cells: truncated when longer, padded
// when shorter.
func Column(s string, width int, cfg TextConfig) string {
	s, _ = TruncateText(s, width, cfg)
	return PadRight(s, width)
}
