package effects

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestFrame_BlankView(t *testing.T) {
	t.Parallel()

	f := NewFrame(4, 2)
	got := f.View()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if line != "    " {
			t.Errorf("blank line = %q", line)
		}
	}
}

func TestFrame_SetAndView(t *testing.T) {
	t.Parallel()

	f := NewFrame(5, 1)
	f.Set(1, 0, '*', "")
	line := f.View()
	if line != " *   " {
		t.Errorf("View() = %q, want %q", line, " *   ")
	}
}

func TestFrame_OutOfBoundsDropped(t *testing.T) {
	t.Parallel()

	f := NewFrame(3, 3)
	f.Set(-1, 0, 'x', "")
	f.Set(0, -5, 'x', "")
	f.Set(3, 0, 'x', "")
	f.Set(0, 3, 'x', "")
	if strings.ContainsRune(f.View(), 'x') {
		t.Error("out-of-bounds writes must be dropped")
	}
}

func TestFrame_WideRuneKeepsRowWidth(t *testing.T) {
	t.Parallel()

	f := NewFrame(6, 1)
	f.Set(2, 0, '🎃', "")
	if got := ansi.StringWidth(f.View()); got != 6 {
		t.Errorf("row width = %d, want 6", got)
	}
}

func TestFrame_StyledCellStripsToGlyph(t *testing.T) {
	t.Parallel()

	f := NewFrame(3, 1)
	f.Set(0, 0, '❄', "#ffffff")
	plain := ansi.Strip(f.View())
	if !strings.ContainsRune(plain, '❄') {
		t.Errorf("stripped view %q should contain the glyph", plain)
	}
	if got := ansi.StringWidth(f.View()); got != 3 {
		t.Errorf("styled row width = %d, want 3", got)
	}
}

func TestFrame_ClearAndResize(t *testing.T) {
	t.Parallel()

	f := NewFrame(4, 4)
	f.Set(1, 1, 'x', "")
	f.Clear()
	if strings.ContainsRune(f.View(), 'x') {
		t.Error("Clear should blank the buffer")
	}

	f.Set(1, 1, 'x', "")
	f.Resize(2, 2)
	if strings.ContainsRune(f.View(), 'x') {
		t.Error("Resize should discard contents")
	}
	if w, h := f.Size(); w != 2 || h != 2 {
		t.Errorf("Size() = (%d,%d), want (2,2)", w, h)
	}
}

func TestFrame_SetStringAdvancesByDisplayWidth(t *testing.T) {
	t.Parallel()

	f := NewFrame(10, 1)
	f.SetString(0, 0, "🎃ab", "")
	plain := ansi.Strip(f.View())
	// The pumpkin is two cells wide, so 'a' lands at cell 2.
	if !strings.HasPrefix(plain, "🎃ab") {
		t.Errorf("View() = %q, want prefix %q", plain, "🎃ab")
	}
}
