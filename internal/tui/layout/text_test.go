package layout

import "testing"

func TestStripANSI(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ls", "ls"},
		{"\x1b[1mls\x1b[0m", "ls"},
		{"\x1b[38;5;212m★\x1b[0m grep", "★ grep"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := StripANSI(tt.input); got != tt.want {
			t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestVisibleLength(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"tar", 3},
		{"\x1b[4mt\x1b[0mar", 3},
		{"★ ls ✓", 6},
		{"日本", 4},
		{"", 0},
	}

	for _, tt := range tests {
		if got := VisibleLength(tt.input); got != tt.want {
			t.Errorf("VisibleLength(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestTruncateText(t *testing.T) {
	cfg := DefaultConfig().Text

	tests := []struct {
		name      string
		text      string
		maxWidth  int
		want      string
		truncated bool
	}{
		{"fits", "chmod", 10, "chmod", false},
		{"exact", "chmod", 5, "chmod", false},
		{"cut with ellipsis", "List directory contents.", 10, "List di...", true},
		{"room for ellipsis only", "systemctl", 3, "...", true},
		{"narrower than ellipsis", "systemctl", 2, "..", true},
		{"zero width", "ls", 0, "", true},
		{"zero width empty", "", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := TruncateText(tt.text, tt.maxWidth, cfg)
			if got != tt.want || truncated != tt.truncated {
				t.Errorf("TruncateText(%q, %d) = %q, %v; want %q, %v",
					tt.text, tt.maxWidth, got, truncated, tt.want, tt.truncated)
			}
		})
	}
}

func TestTruncateText_KeepsStyling(t *testing.T) {
	cfg := DefaultConfig().Text
	styled := "\x1b[1mtraceroute\x1b[0m"

	got, truncated := TruncateText(styled, 8, cfg)

	if !truncated {
		t.Fatal("expected truncation")
	}
	if VisibleLength(got) != 8 {
		t.Errorf("visible length = %d, want 8 (%q)", VisibleLength(got), got)
	}
	if StripANSI(got) != "trace..." {
		t.Errorf("visible text = %q, want %q", StripANSI(got), "trace...")
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"ls", 5, "ls   "},
		{"grep", 4, "grep"},
		{"rsync", 3, "rsync"},
		{"★", 3, "★  "},
	}

	for _, tt := range tests {
		if got := PadRight(tt.input, tt.width); got != tt.want {
			t.Errorf("PadRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestColumn(t *testing.T) {
	cfg := DefaultConfig().Text

	tests := []struct {
		input string
		width int
		want  string
	}{
		{"cd", 6, "cd    "},
		{"journalctl", 6, "jou..."},
		{"uname", 5, "uname"},
	}

	for _, tt := range tests {
		if got := Column(tt.input, tt.width, cfg); got != tt.want {
			t.Errorf("Column(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}
