package effects

import (
	"math"
	"math/rand"
	"time"

	"github.com/mnhtran/festive/internal/holiday"
)

const defaultPetalDensity = 18

var petalGlyphs = []rune{'✿', '❀', '•', '·'}

// branch sprite anchored to the top-right corner, drawn most-distant row
// first. Petals appear to shake loose from it.
var branchRows = []string{
	`──────╮`,
	`   ✿──┤`,
	`  ╭───╯`,
	`✿─┤`,
	`  ╰─✿`,
}

type petal struct {
	x, y      float64
	speed     float64
	sway      float64
	swaySpeed float64
	glyph     rune
	color     string
}

// blossoms scatters falling petals beneath a corner blossom branch.
type blossoms struct {
	width   int
	height  int
	rng     *rand.Rand
	colors  []string
	density int
	speed   float64
	petals  []petal
}

func newBlossoms(cfg holiday.EffectConfig, in holiday.Intensity, rng *rand.Rand) Effect {
	p := profileFor(in)
	density := cfg.Density
	if density <= 0 {
		density = defaultPetalDensity
	}
	return &blossoms{
		rng:     rng,
		colors:  cfg.Colors,
		density: int(float64(density) * p.density),
		speed:   p.speed,
	}
}

func (bl *blossoms) Kind() holiday.EffectKind { return holiday.EffectBlossoms }

func (bl *blossoms) Resize(width, height int) {
	bl.width = width
	bl.height = height
	count := bl.density * max(width, 1) / 80
	if count < 4 {
		count = 4
	}
	bl.petals = make([]petal, count)
	for i := range bl.petals {
		bl.petals[i] = bl.spawn()
		bl.petals[i].y = bl.rng.Float64() * float64(height)
	}
}

func (bl *blossoms) spawn() petal {
	// Bias spawn toward the branch corner so petals read as falling
	// from it.
	x := bl.rng.Float64() * float64(bl.width)
	if bl.rng.Float64() > 0.5 {
		x = float64(bl.width)*0.6 + bl.rng.Float64()*float64(bl.width)*0.4
	}
	return petal{
		x:         x,
		y:         -1,
		speed:     (0.15 + bl.rng.Float64()*0.3) * bl.speed,
		sway:      bl.rng.Float64() * 2 * math.Pi,
		swaySpeed: 0.05 + bl.rng.Float64()*0.05,
		glyph:     petalGlyphs[bl.rng.Intn(len(petalGlyphs))],
		color:     pick(bl.rng, bl.colors, "#ec4899"),
	}
}

func (bl *blossoms) Step(time.Time) {
	if bl.width == 0 || bl.height == 0 {
		return
	}
	for i := range bl.petals {
		p := &bl.petals[i]
		p.y += p.speed
		p.sway += p.swaySpeed
		p.x += math.Sin(p.sway)*0.4 - 0.1 // gentle leftward breeze
		if p.y > float64(bl.height) || p.x < -2 {
			bl.petals[i] = bl.spawn()
		}
	}
}

func (bl *blossoms) Render(f *Frame) {
	for i, row := range branchRows {
		x := bl.width - len([]rune(row)) - 1
		f.SetString(x, i, row, "#a16207")
	}
	for i := range bl.petals {
		p := &bl.petals[i]
		f.Set(int(p.x), int(p.y), p.glyph, p.color)
	}
}
