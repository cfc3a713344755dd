package layout

import "strings"

// ModalWidth returns the overlay width for a terminal: WidthPercent of it,
// within MinWidth and MaxWidth, and never closer than two cells to either
// edge.
func ModalWidth(terminalWidth int, cfg ModalConfig) int {
	width := max(terminalWidth*cfg.WidthPercent/100, cfg.MinWidth)
	width = min(width, cfg.MaxWidth, terminalWidth-4)
	return max(width, 1)
}

// ModalBodyLines returns how many content lines fit inside an overlay on a
// terminal of the given height.
func ModalBodyLines(terminalHeight int, cfg ModalConfig) int {
	return max(terminalHeight-cfg.FrameHeight, 1)
}

// ClipLines keeps at most n lines of s. When lines are dropped the last
// kept line becomes the ellipsis.
func ClipLines(s string, n int, cfg TextConfig) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	kept := append(lines[:n-1:n-1], cfg.Ellipsis)
	return strings.Join(kept, "\n")
}
