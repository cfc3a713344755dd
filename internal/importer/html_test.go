package importer_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nikbrunner/lcl/internal/importer"
)

const grepPage = `<!DOCTYPE html>
<html>
<head>
	<title>grep man page</title>
	<meta name="category" content="text">
	<script>var x = "<h2>not a section</h2>";</script>
</head>
<body>
<nav><a href="/">Home</a></nav>
<h1>grep</h1>
<p>Print lines that
   match patterns.</p>
<h2>SYNOPSIS</h2>
<pre>grep [OPTION...] PATTERNS [FILE...]</pre>
<h2>EXAMPLES</h2>
<p>Search <code>src</code> recursively:</p>
<pre><code>grep -rn TODO src/
</code></pre>
<ul><li>one</li><li><b>two</b></li></ul>
<h2>EMPTY</h2>
</body>
</html>`

func TestParseCommandHTML_Page(t *testing.T) {
	entry, err := importer.ParseCommandHTML(strings.NewReader(grepPage), "ignored")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if entry.Name != "grep" {
		t.Errorf("expected name 'grep', got %q", entry.Name)
	}
	if entry.Category != "text" {
		t.Errorf("expected category 'text', got %q", entry.Category)
	}
	if entry.Description != "Print lines that match patterns." {
		t.Errorf("unexpected description %q", entry.Description)
	}

	if len(entry.Sections) != 2 {
		t.Fatalf("expected 2 sections (empty ones dropped), got %d: %+v", len(entry.Sections), entry.Sections)
	}

	synopsis := entry.Sections[0]
	if synopsis.Title != "SYNOPSIS" {
		t.Errorf("expected SYNOPSIS, got %q", synopsis.Title)
	}
	if synopsis.Content != "```\ngrep [OPTION...] PATTERNS [FILE...]\n```" {
		t.Errorf("unexpected synopsis content %q", synopsis.Content)
	}

	want := "Search `src` recursively:\n\n```\ngrep -rn TODO src/\n```\n\n- one\n- two"
	if entry.Sections[1].Content != want {
		t.Errorf("unexpected examples content:\n got %q\nwant %q", entry.Sections[1].Content, want)
	}
}

func TestParseCommandHTML_FallbackName(t *testing.T) {
	page := `<p>No heading here.</p><p>More text.</p><pre>foo --bar</pre>`

	entry, err := importer.ParseCommandHTML(strings.NewReader(page), "foo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if entry.Name != "foo" {
		t.Errorf("expected fallback name 'foo', got %q", entry.Name)
	}
	if entry.Description != "No heading here." {
		t.Errorf("unexpected description %q", entry.Description)
	}
	if len(entry.Sections) != 1 || entry.Sections[0].Title != "DESCRIPTION" {
		t.Fatalf("expected a single DESCRIPTION section, got %+v", entry.Sections)
	}
	if entry.Sections[0].Content != "More text.\n\n```\nfoo --bar\n```" {
		t.Errorf("unexpected content %q", entry.Sections[0].Content)
	}
}

func TestParseCommandHTML_NoName(t *testing.T) {
	_, err := importer.ParseCommandHTML(strings.NewReader("<p>anonymous</p>"), "  ")
	if !errors.Is(err, importer.ErrNoCommandName) {
		t.Errorf("expected ErrNoCommandName, got %v", err)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParseFile_HTMLUsesFileName(t *testing.T) {
	path := writeFile(t, t.TempDir(), "lsblk.html", "<p>List block devices.</p>")

	ds, err := importer.ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds.Commands) != 1 || ds.Commands[0].Name != "lsblk" {
		t.Fatalf("expected single command 'lsblk', got %+v", ds.Commands)
	}
}

func TestParseFile_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "extra.yml", `
commands:
  - name: htop
    description: Interactive process viewer.
tips:
  - title: Quit htop
    sections:
      - kind: text
        data: Press q.
`)

	ds, err := importer.ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds.Commands) != 1 || len(ds.Tips) != 1 {
		t.Fatalf("expected 1 command and 1 tip, got %d and %d", len(ds.Commands), len(ds.Tips))
	}
}

func TestParseFile_Unsupported(t *testing.T) {
	path := writeFile(t, t.TempDir(), "notes.txt", "hello")

	_, err := importer.ParseFile(path)
	if !errors.Is(err, importer.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestParseFile_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.html", "<h1>alpha</h1>")
	writeFile(t, dir, "b.yaml", "commands:\n  - name: beta\n")
	writeFile(t, dir, "README.txt", "skipped")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	ds, err := importer.ParseFile(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds.Commands) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(ds.Commands))
	}
	if ds.Commands[0].Name != "alpha" || ds.Commands[1].Name != "beta" {
		t.Errorf("expected [alpha beta], got [%s %s]", ds.Commands[0].Name, ds.Commands[1].Name)
	}
}

func TestParseFile_DirectoryDuplicates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ls.html", "<h1>ls</h1>")
	writeFile(t, dir, "more.yaml", "commands:\n  - name: ls\n")

	_, err := importer.ParseFile(dir)
	if err == nil || !strings.Contains(err.Error(), "duplicate name") {
		t.Errorf("expected duplicate name error, got %v", err)
	}
}
