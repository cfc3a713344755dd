package importer

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/nikbrunner/lcl/internal/catalog"
)

// fallbackSection holds content that appears before the first <h2>.
const fallbackSection = "DESCRIPTION"

// ParseCommandHTML parses a single command page. The command name comes from
// the first <h1>, or name when the page has none. Every <h2> starts a section;
// paragraphs become text, <pre> blocks fenced code and lists bullet items.
func ParseCommandHTML(r io.Reader, name string) (catalog.CommandEntry, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return catalog.CommandEntry{}, err
	}

	p := &pageParser{}
	p.parse(doc)
	p.flush()

	entry := p.entry
	if entry.Name == "" {
		entry.Name = strings.TrimSpace(name)
	}
	if entry.Name == "" {
		return catalog.CommandEntry{}, ErrNoCommandName
	}
	return entry, nil
}

type pageParser struct {
	entry   catalog.CommandEntry
	current *catalog.SectionEntry
	blocks  []string
}

func (p *pageParser) parse(n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "nav", "footer":
			return

		case "meta":
			switch strings.ToLower(getAttr(n, "name")) {
			case "description":
				if p.entry.Description == "" {
					p.entry.Description = collapse(getAttr(n, "content"))
				}
			case "category":
				p.entry.Category = collapse(getAttr(n, "content"))
			}
			return

		case "h1":
			if p.entry.Name == "" {
				p.entry.Name = inlineText(n)
			}
			return

		case "h2":
			p.flush()
			p.current = &catalog.SectionEntry{Title: inlineText(n)}
			return

		case "p":
			text := inlineText(n)
			if text == "" {
				return
			}
			if p.current == nil && p.entry.Description == "" {
				p.entry.Description = text
				return
			}
			p.add(text)
			return

		case "pre":
			code := strings.Trim(getTextContent(n), "\n")
			if code != "" {
				p.add("```\n" + code + "\n```")
			}
			return

		case "ul", "ol":
			var items []string
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && strings.ToLower(c.Data) == "li" {
					if text := inlineText(c); text != "" {
						items = append(items, "- "+text)
					}
				}
			}
			if len(items) > 0 {
				p.add(strings.Join(items, "\n"))
			}
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.parse(c)
	}
}

func (p *pageParser) add(block string) {
	if p.current == nil {
		p.current = &catalog.SectionEntry{Title: fallbackSection}
	}
	p.blocks = append(p.blocks, block)
}

func (p *pageParser) flush() {
	if p.current == nil {
		return
	}
	if len(p.blocks) > 0 {
		p.current.Content = strings.Join(p.blocks, "\n\n")
		p.entry.Sections = append(p.entry.Sections, *p.current)
	}
	p.current = nil
	p.blocks = nil
}

// inlineText returns the whitespace-collapsed text of n with <code> spans
// wrapped in backticks.
func inlineText(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			text.WriteString(n.Data)
			return
		case n.Type == html.ElementNode && strings.ToLower(n.Data) == "code":
			text.WriteString("`" + collapse(getTextContent(n)) + "`")
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return collapse(text.String())
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// getTextContent returns the raw text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return text.String()
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
