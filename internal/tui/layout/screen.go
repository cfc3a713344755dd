package layout

// CalculateContentHeight computes the height left for screen content.
// Returns at least MinHeight.
func CalculateContentHeight(terminalHeight int, cfg ScreenConfig) int {
	height := terminalHeight - cfg.ChromeHeight
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CalculateContentWidth computes the width left for screen content.
func CalculateContentWidth(terminalWidth int, cfg ScreenConfig) int {
	width := terminalWidth - cfg.HorizontalPadding
	if width < 1 {
		return 1
	}
	return width
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected item visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - viewportHeight/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}
