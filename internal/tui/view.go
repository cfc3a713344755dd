package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/lcl/internal/i18n"
	"github.com/nikbrunner/lcl/internal/route"
	"github.com/nikbrunner/lcl/internal/tui/layout"
)

// renderView creates the complete screen: top bar, tabs, content, status
// line and hints.
func (a App) renderView() string {
	switch a.mode {
	case ModeHelp:
		return a.renderHelpOverlay()
	case ModeInfo:
		return a.renderInfoOverlay()
	}

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			a.renderTopBar(),
			a.renderTabs(),
			"",
			a.renderContent(),
			a.renderStatusLine(),
			a.renderHints(a.getContextualHints()),
		),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderTopBar renders the bar described by TopBar: navigation arrow, title
// or search field on the left, actions on the right.
func (a App) renderTopBar() string {
	bar := a.TopBar()
	width := a.contentWidth()

	left := ""
	if bar.ShowBack {
		left = a.styles.Action.Render("←") + " "
	}

	if bar.ShowSearchField {
		right := a.styles.Action.Render("✕")
		return a.joinBar(left+a.search.View(), right, width)
	}

	var actions []string
	if bar.ShowSearchButton {
		actions = append(actions, a.styles.Action.Render("/ "+a.localizer.T(i18n.ActionSearch)))
	}
	if bar.ShowInfo {
		actions = append(actions, a.styles.Action.Render("i "+a.localizer.T(i18n.ActionInfo)))
	}
	if bar.ShowBookmark {
		if bar.Bookmarked {
			actions = append(actions, a.styles.ActionActive.Render("★ "+a.localizer.T(i18n.ActionBookmarked)))
		} else {
			actions = append(actions, a.styles.Action.Render("☆ "+a.localizer.T(i18n.ActionBookmark)))
		}
	}
	right := strings.Join(actions, "  ")

	titleWidth := width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	title, _ := layout.TruncateText(bar.Title, titleWidth, a.layoutConfig.Text)

	return a.joinBar(left+a.styles.Title.Render(title), right, width)
}

func (a App) joinBar(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return a.styles.TopBar.Render(left + strings.Repeat(" ", gap) + right)
}

// renderTabs renders the three root screens with the active one marked.
func (a App) renderTabs() string {
	tabs := []struct {
		key   string
		kind  route.Kind
		title string
	}{
		{"1", route.KindCommands, a.localizer.T(i18n.TitleCommands)},
		{"2", route.KindBasics, a.localizer.T(i18n.TitleBasics)},
		{"3", route.KindTips, a.localizer.T(i18n.TitleTips)},
	}

	root := a.router.Root().Kind()
	parts := make([]string, len(tabs))
	for i, t := range tabs {
		label := t.key + " " + t.title
		if t.kind == root {
			parts[i] = a.styles.TabActive.Render(label)
		} else {
			parts[i] = a.styles.Tab.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderContent renders the list or document of the current destination at
// a fixed height.
func (a App) renderContent() string {
	width := a.contentWidth()
	height := a.contentHeight()

	var body string
	switch a.router.Current().Kind() {
	case route.KindCommands, route.KindBasics:
		body = a.renderList(width, height)
	default:
		body = a.viewport.View()
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxHeight(height).
		Render(body)
}

func (a App) renderList(width, height int) string {
	if len(a.items) == 0 {
		return a.styles.Empty.Render(a.localizer.T(i18n.ListEmpty))
	}

	offset := layout.CalculateViewportOffset(a.cursor, len(a.items), height)
	end := min(offset+height, len(a.items))

	lines := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		item := a.items[i]
		if item.IsCommand() {
			lines = append(lines, a.renderCommandRow(item, i == a.cursor, width))
		} else {
			lines = append(lines, a.renderCategoryRow(item, i == a.cursor, width))
		}
	}
	return strings.Join(lines, "\n")
}

// renderCommandRow renders "★ name   description ✓". Item styles pad one
// column on the left.
func (a App) renderCommandRow(item Item, selected bool, width int) string {
	marker := "  "
	if item.Bookmarked {
		marker = "★ "
	}

	nameWidth := a.layoutConfig.Screen.NameColumnWidth
	name, _ := layout.TruncateText(item.Command.Name, nameWidth, a.layoutConfig.Text)
	pad := strings.Repeat(" ", nameWidth-layout.VisibleLength(name)+1)

	suffix := ""
	if item.InstalledPath != "" {
		suffix = " ✓"
	}

	descWidth := width - 1 - lipgloss.Width(marker) - nameWidth - 1 - lipgloss.Width(suffix)
	desc, _ := layout.TruncateText(item.Command.Description, descWidth, a.layoutConfig.Text)

	if selected {
		line := marker + name + pad + desc + suffix
		return a.styles.ItemSelected.Render(layout.PadRight(line, width-1))
	}

	return a.styles.Item.Render(
		marker +
			a.highlightMatches(name, item.MatchedIndexes) +
			pad +
			a.styles.Description.Render(desc) +
			a.styles.Installed.Render(suffix),
	)
}

func (a App) renderCategoryRow(item Item, selected bool, width int) string {
	if selected {
		return a.styles.ItemSelected.Render(layout.Column(item.Title(), width-1, a.layoutConfig.Text))
	}
	line, _ := layout.TruncateText(item.Title(), width-1, a.layoutConfig.Text)
	return a.styles.Item.Render(line)
}

// highlightMatches styles the fuzzy-matched bytes of name.
func (a App) highlightMatches(name string, matched []int) string {
	if len(matched) == 0 {
		return name
	}

	set := make(map[int]bool, len(matched))
	for _, i := range matched {
		set[i] = true
	}

	var b strings.Builder
	for i, r := range name {
		if set[i] {
			b.WriteString(a.styles.Match.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// renderStatusLine shows the last error or message, or where the shown
// command is installed.
func (a App) renderStatusLine() string {
	width := a.contentWidth()

	switch {
	case a.err != nil:
		text, _ := layout.TruncateText("✗ "+a.err.Error(), width, a.layoutConfig.Text)
		return a.styles.Error.Render(text)
	case a.message != "":
		text, _ := layout.TruncateText(a.message, width, a.layoutConfig.Text)
		return a.styles.Message.Render(text)
	case a.page != nil && a.installed[a.page.Command.Name] != "":
		text, _ := layout.TruncateText(a.localizer.T(i18n.MessageInstalled, a.installed[a.page.Command.Name]), width, a.layoutConfig.Text)
		return a.styles.Installed.Render(text)
	}
	return ""
}

// renderHelpOverlay renders the key reference.
func (a App) renderHelpOverlay() string {
	keyCol := lipgloss.NewStyle().Width(a.layoutConfig.Modal.HelpKeyColumnWidth)

	var content strings.Builder
	content.WriteString(a.styles.Title.Render("keys") + "\n\n")
	for _, binding := range a.keys.HelpBindings() {
		help := binding.Help()
		content.WriteString(keyCol.Render(help.Key) + help.Desc + "\n")
	}
	content.WriteString("\n" + a.renderHints(a.getContextualHints()))

	return a.renderModal(content.String())
}

// renderInfoOverlay renders the about dialog of the basics screen.
func (a App) renderInfoOverlay() string {
	var content strings.Builder
	content.WriteString(a.styles.Title.Render(a.localizer.T(i18n.InfoTitle)) + "\n\n")
	content.WriteString(a.localizer.T(i18n.InfoBody, a.counts.Commands, a.counts.Basics, a.counts.Tips) + "\n\n")
	content.WriteString(a.renderHints(a.getContextualHints()))

	return a.renderModal(content.String())
}

func (a App) renderModal(content string) string {
	cfg := a.layoutConfig.Modal
	content = layout.ClipLines(strings.TrimRight(content, "\n"), layout.ModalBodyLines(a.height, cfg), a.layoutConfig.Text)
	modal := a.styles.Modal.Width(layout.ModalWidth(a.width, cfg)).Render(content)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
}
