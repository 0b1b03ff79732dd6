package effects

import (
	"math/rand"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/mnhtran/festive/internal/holiday"
)

// garland holds the themed glyphs for the top and bottom edge rows.
type garland struct {
	top    []string
	bottom []string
}

// garlands maps a config theme tag to its decoration set.
var garlands = map[string]garland{
	"christmas-theme":  {top: []string{"🎄", "⭐", "🎁", "❄", "🎄"}, bottom: []string{"🎅", "⛄", "🦌"}},
	"tet-theme":        {top: []string{"🎆", "🧧", "🎊", "🏮", "🎆"}, bottom: []string{"🐉", "🧧", "🏮"}},
	"new-year-theme":   {top: []string{"🎉", "🎊", "🥂", "🎆", "🎉"}, bottom: []string{"🎆", "🍾", "🎊"}},
	"halloween-theme":  {top: []string{"🎃", "👻", "🦇", "🕷", "🎃"}, bottom: []string{"🎃", "👻", "🦇"}},
	"mid-autumn-theme": {top: []string{"🌕", "🥮", "🏮", "⭐", "🌕"}, bottom: []string{"🌕", "🥮", "🏮"}},
}

// decorations pins themed glyphs along the top and bottom rows with a
// slow pulse that nudges them sideways.
type decorations struct {
	width  int
	height int
	set    garland
	phase  int
	tick   int
}

func newDecorations(cfg holiday.EffectConfig, _ holiday.Intensity, _ *rand.Rand) Effect {
	set, ok := garlands[cfg.Theme]
	if !ok {
		set = garland{}
	}
	return &decorations{set: set}
}

func (d *decorations) Kind() holiday.EffectKind { return holiday.EffectDecorations }

func (d *decorations) Resize(width, height int) {
	d.width = width
	d.height = height
}

func (d *decorations) Step(time.Time) {
	d.tick++
	// Shift one cell roughly every second at the medium frame rate.
	if d.tick%20 == 0 {
		d.phase = (d.phase + 1) % 2
	}
}

func (d *decorations) row(f *Frame, glyphs []string, y int) {
	if len(glyphs) == 0 || d.width == 0 {
		return
	}
	span := d.width / len(glyphs)
	if span == 0 {
		span = 1
	}
	for i, g := range glyphs {
		x := i*span + span/2 - runewidth.StringWidth(g)/2 + d.phase
		f.SetString(x, y, g, "")
	}
}

func (d *decorations) Render(f *Frame) {
	if d.height == 0 {
		return
	}
	d.row(f, d.set.top, 0)
	if d.height > 2 {
		d.row(f, d.set.bottom, d.height-1)
	}
}
