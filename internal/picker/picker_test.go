package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/lcl/internal/model"
	"github.com/nikbrunner/lcl/internal/search"
)

func testResults() []search.SearchResult {
	return []search.SearchResult{
		{Command: &model.Command{ID: 1, Name: "cp", Description: "Copy files and directories."}},
		{Command: &model.Command{ID: 2, Name: "scp", Description: "Secure copy."}},
	}
}

func TestPicker_InitialState(t *testing.T) {
	p := New(testResults(), "cp")

	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}
	if len(p.results) != 2 {
		t.Errorf("expected 2 results, got %d", len(p.results))
	}
}

func TestPicker_NavigateDown(t *testing.T) {
	p := New(testResults(), "cp")
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}

	newModel, _ := p.Update(msg)
	p = newModel.(Picker)

	if p.cursor != 1 {
		t.Errorf("expected cursor at 1, got %d", p.cursor)
	}
}

func TestPicker_NavigateUp(t *testing.T) {
	p := New(testResults(), "cp")
	p.cursor = 1

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	newModel, _ := p.Update(msg)
	p = newModel.(Picker)

	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}
}

func TestPicker_BoundsCheck(t *testing.T) {
	p := New(testResults()[:1], "cp")

	// Try to go up from 0 (should stay at 0)
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	newModel, _ := p.Update(msg)
	p = newModel.(Picker)

	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}

	// Try to go down from last (should stay at last)
	msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	newModel, _ = p.Update(msg)
	p = newModel.(Picker)

	if p.cursor != 0 {
		t.Errorf("expected cursor at 0 (only 1 item), got %d", p.cursor)
	}
}

func TestPicker_SelectItem(t *testing.T) {
	p := New(testResults(), "cp")
	p.cursor = 1

	newModel, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = newModel.(Picker)

	if !p.selected {
		t.Error("expected selected to be true after Enter")
	}
	if cmd == nil {
		t.Error("expected quit command after selection")
	}
	if got := p.SelectedCommand(); got == nil || got.Name != "scp" {
		t.Errorf("expected scp selected, got %+v", got)
	}
}

func TestPicker_Cancel(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		p := New(testResults(), "cp")

		newModel, cmd := p.Update(msg)
		p = newModel.(Picker)

		if !p.Cancelled() {
			t.Errorf("%s: expected cancelled", msg)
		}
		if cmd == nil {
			t.Errorf("%s: expected quit command after cancel", msg)
		}
		if p.SelectedCommand() != nil {
			t.Errorf("%s: expected no selection", msg)
		}
	}
}

func TestPicker_SelectedCommand_NotChosen(t *testing.T) {
	p := New(testResults(), "cp")

	if p.SelectedCommand() != nil {
		t.Error("expected nil before Enter")
	}
}

func TestPicker_ArrowKeys(t *testing.T) {
	p := New(testResults(), "cp")

	newModel, _ := p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p = newModel.(Picker)
	if p.cursor != 1 {
		t.Errorf("expected cursor at 1 after down arrow, got %d", p.cursor)
	}

	newModel, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	p = newModel.(Picker)
	if p.cursor != 0 {
		t.Errorf("expected cursor at 0 after up arrow, got %d", p.cursor)
	}
}

func TestPicker_View(t *testing.T) {
	out := New(testResults(), "cp").View()

	for _, want := range []string{"Search: cp (2 results)", "scp", "Secure copy."} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		cursor, total, rows int
		start, end          int
	}{
		{0, 3, 10, 0, 3},
		{0, 20, 5, 0, 5},
		{7, 20, 5, 3, 8},
		{19, 20, 5, 15, 20},
		{0, 4, 0, 0, 1},
	}

	for _, tt := range tests {
		start, end := visibleRange(tt.cursor, tt.total, tt.rows)
		if start != tt.start || end != tt.end {
			t.Errorf("visibleRange(%d, %d, %d) = %d, %d; want %d, %d",
				tt.cursor, tt.total, tt.rows, start, end, tt.start, tt.end)
		}
	}
}
