// Package effects renders seasonal overlay animations into a terminal
// cell buffer. Each effect is a self-contained particle system advanced
// one frame at a time; the TUI composites any number of them onto a
// shared Frame and owns the tick loop.
package effects

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// wideTail marks the cell occupied by the right half of a double-width
// rune; it renders as nothing.
const wideTail = '\x00'

type cell struct {
	ch    rune
	color string
}

// Frame is a width x height cell buffer. (0,0) is the top-left corner.
// Out-of-bounds writes are dropped silently so effects can let particles
// drift past the edges without bounds bookkeeping.
type Frame struct {
	width  int
	height int
	cells  []cell
	styles map[string]lipgloss.Style
}

func NewFrame(width, height int) *Frame {
	f := &Frame{styles: make(map[string]lipgloss.Style)}
	f.Resize(width, height)
	return f
}

// Resize reallocates the buffer. Contents are discarded; the caller
// redraws on the next frame anyway.
func (f *Frame) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f.width = width
	f.height = height
	f.cells = make([]cell, width*height)
}

func (f *Frame) Size() (int, int) { return f.width, f.height }

// Clear blanks every cell.
func (f *Frame) Clear() {
	for i := range f.cells {
		f.cells[i] = cell{}
	}
}

// Set places a single rune. Double-width runes claim the neighboring cell.
func (f *Frame) Set(x, y int, ch rune, color string) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	f.cells[y*f.width+x] = cell{ch: ch, color: color}
	if runewidth.RuneWidth(ch) == 2 && x+1 < f.width {
		f.cells[y*f.width+x+1] = cell{ch: wideTail}
	}
}

// SetString draws s starting at (x, y), advancing by display width.
func (f *Frame) SetString(x, y int, s, color string) {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		f.Set(x, y, ch, color)
		x += w
	}
}

func (f *Frame) style(color string) lipgloss.Style {
	s, ok := f.styles[color]
	if !ok {
		s = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
		f.styles[color] = s
	}
	return s
}

// View renders the buffer as styled lines joined by newlines.
func (f *Frame) View() string {
	var b strings.Builder
	for y := 0; y < f.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		x := 0
		for x < f.width {
			c := f.cells[y*f.width+x]
			switch {
			case c.ch == 0:
				b.WriteByte(' ')
				x++
			case c.ch == wideTail:
				// Reached only when the owning rune was overwritten;
				// rendering a wide rune skips its tail below.
				b.WriteByte(' ')
				x++
			case c.color == "":
				b.WriteRune(c.ch)
				x += runewidth.RuneWidth(c.ch)
			default:
				b.WriteString(f.style(c.color).Render(string(c.ch)))
				x += runewidth.RuneWidth(c.ch)
			}
		}
	}
	return b.String()
}
