package exporter

import (
	"fmt"
	"html"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/nikbrunner/lcl/internal/model"
)

// Entry is a bookmarked command to export.
type Entry struct {
	Command  model.Command
	Bookmark model.Bookmark
}

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/lcl-bookmarks-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("lcl-bookmarks-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// CommandURL returns the web page of a command below baseURL.
func CommandURL(baseURL, name string) string {
	return strings.TrimRight(baseURL, "/") + "/man/" + url.PathEscape(name)
}

// ExportHTML exports bookmarked commands to Netscape bookmark HTML format.
// Commands are grouped into one folder per category; uncategorized commands
// follow at the top level. Entries keep their given order within a folder.
func ExportHTML(entries []Entry, baseURL string) string {
	var b strings.Builder

	// Header
	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Linux Command Library Bookmarks</TITLE>\n")
	b.WriteString("<H1>Linux Command Library Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")

	byCategory := make(map[string][]Entry)
	var categories []string
	for _, e := range entries {
		category := strings.TrimSpace(e.Command.Category)
		if _, ok := byCategory[category]; !ok && category != "" {
			categories = append(categories, category)
		}
		byCategory[category] = append(byCategory[category], e)
	}
	sort.Strings(categories)

	prefix := "    "
	for _, category := range categories {
		fmt.Fprintf(&b, "%s<DT><H3>%s</H3>\n", prefix, html.EscapeString(category))
		fmt.Fprintf(&b, "%s<DL><p>\n", prefix)
		writeEntries(&b, byCategory[category], baseURL, 2)
		fmt.Fprintf(&b, "%s</DL><p>\n", prefix)
	}
	writeEntries(&b, byCategory[""], baseURL, 1)

	// Footer
	b.WriteString("</DL><p>\n")

	return b.String()
}

func writeEntries(b *strings.Builder, entries []Entry, baseURL string, indent int) {
	prefix := strings.Repeat("    ", indent)

	for _, e := range entries {
		fmt.Fprintf(b,
			"%s<DT><A HREF=\"%s\" ADD_DATE=\"%d\">%s</A>\n",
			prefix,
			html.EscapeString(CommandURL(baseURL, e.Command.Name)),
			e.Bookmark.CreatedAt.Unix(),
			html.EscapeString(e.Command.Name),
		)
		if e.Command.Description != "" {
			fmt.Fprintf(b, "%s<DD>%s\n", prefix, html.EscapeString(e.Command.Description))
		}
	}
}
