// Package render turns catalog content into markdown and renders it for the
// terminal with glamour.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/nikbrunner/lcl/internal/model"
)

// StyleAuto picks a dark or light style from the terminal background.
const StyleAuto = "auto"

const minWidth = 20

// Renderer renders markdown at a fixed word-wrap width.
type Renderer struct {
	tr    *glamour.TermRenderer
	style string
	width int
}

// New creates a renderer. style is "auto" or a glamour style name or path
// ("dark", "light", "notty", ...).
func New(style string, width int) (*Renderer, error) {
	if width < minWidth {
		width = minWidth
	}
	if style == "" {
		style = StyleAuto
	}

	styleOpt := glamour.WithStylePath(style)
	if style == StyleAuto {
		styleOpt = glamour.WithAutoStyle()
	}

	tr, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: %w", err)
	}
	return &Renderer{tr: tr, style: style, width: width}, nil
}

// Width returns the word-wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// WithWidth returns a renderer with the same style wrapping at width.
// The receiver is returned when the width is unchanged.
func (r *Renderer) WithWidth(width int) (*Renderer, error) {
	if width < minWidth {
		width = minWidth
	}
	if width == r.width {
		return r, nil
	}
	return New(r.style, width)
}

// Render renders markdown.
func (r *Renderer) Render(markdown string) (string, error) {
	out, err := r.tr.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// CommandPage renders a command page.
func (r *Renderer) CommandPage(page model.CommandPage) (string, error) {
	return r.Render(CommandMarkdown(page))
}

// BasicGroups renders the groups of a basics category.
func (r *Renderer) BasicGroups(title string, groups []model.BasicGroup) (string, error) {
	return r.Render(BasicGroupsMarkdown(title, groups))
}

// Tips renders all tips.
func (r *Renderer) Tips(tips []model.Tip) (string, error) {
	return r.Render(TipsMarkdown(tips))
}

// CommandMarkdown is the name heading, the description as a quote and
// every section under its own heading.
func CommandMarkdown(page model.CommandPage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", page.Command.Name)
	if page.Command.Description != "" {
		fmt.Fprintf(&b, "\n> %s\n", page.Command.Description)
	}
	for _, s := range page.Sections {
		fmt.Fprintf(&b, "\n## %s\n\n%s\n", s.Title, strings.TrimSpace(s.Content))
	}
	return b.String()
}

// BasicGroupsMarkdown lists each group's shell lines in a code block,
// followed by the commands they use.
func BasicGroupsMarkdown(title string, groups []model.BasicGroup) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", title)
	for _, g := range groups {
		fmt.Fprintf(&b, "\n## %s\n", g.Description)
		if len(g.Commands) == 0 {
			continue
		}

		b.WriteString("\n```sh\n")
		var man []string
		seen := make(map[string]bool)
		for _, c := range g.Commands {
			b.WriteString(c.Command + "\n")
			for _, m := range c.ManPages {
				if !seen[m] {
					seen[m] = true
					man = append(man, "`"+m+"`")
				}
			}
		}
		b.WriteString("```\n")

		if len(man) > 0 {
			fmt.Fprintf(&b, "\nSee %s\n", strings.Join(man, ", "))
		}
	}
	return b.String()
}

// TipsMarkdown writes each tip as a heading followed by its text paragraphs
// and code blocks.
func TipsMarkdown(tips []model.Tip) string {
	var b strings.Builder
	for i, tip := range tips {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s\n", tip.Title)
		for _, s := range tip.Sections {
			switch s.Kind {
			case model.TipCode:
				fmt.Fprintf(&b, "\n```sh\n%s\n```\n", strings.TrimSpace(s.Data))
			default:
				fmt.Fprintf(&b, "\n%s\n", strings.TrimSpace(s.Data))
			}
		}
	}
	return b.String()
}
