package effects

import (
	"math"
	"math/rand"
	"time"

	"github.com/mnhtran/festive/internal/holiday"
)

const defaultSparkleDensity = 20

type sparkle struct {
	x, y         float64
	speed        float64
	phase        float64
	twinkleSpeed float64
	sway         float64
	swaySpeed    float64
	color        string
	lantern      bool
}

// sparkles drifts twinkling stars upward; roughly a third of them are
// floating lanterns.
type sparkles struct {
	width   int
	height  int
	rng     *rand.Rand
	colors  []string
	density int
	speed   float64
	items   []sparkle
}

func newSparkles(cfg holiday.EffectConfig, in holiday.Intensity, rng *rand.Rand) Effect {
	p := profileFor(in)
	density := cfg.Density
	if density <= 0 {
		density = defaultSparkleDensity
	}
	return &sparkles{
		rng:     rng,
		colors:  cfg.Colors,
		density: int(float64(density) * p.density),
		speed:   p.speed,
	}
}

func (sp *sparkles) Kind() holiday.EffectKind { return holiday.EffectSparkles }

func (sp *sparkles) Resize(width, height int) {
	sp.width = width
	sp.height = height
	count := sp.density * max(width, 1) / 80
	if count < 3 {
		count = 3
	}
	sp.items = make([]sparkle, count)
	for i := range sp.items {
		sp.items[i] = sp.spawn()
		sp.items[i].y = sp.rng.Float64() * float64(height)
	}
}

func (sp *sparkles) spawn() sparkle {
	return sparkle{
		x:            sp.rng.Float64() * float64(sp.width),
		y:            float64(sp.height),
		speed:        (0.1 + sp.rng.Float64()*0.25) * sp.speed,
		phase:        sp.rng.Float64() * 2 * math.Pi,
		twinkleSpeed: 0.1 + sp.rng.Float64()*0.15,
		sway:         sp.rng.Float64() * 2 * math.Pi,
		swaySpeed:    0.02 + sp.rng.Float64()*0.04,
		color:        pick(sp.rng, sp.colors, "#fbbf24"),
		lantern:      sp.rng.Float64() > 0.7,
	}
}

func (sp *sparkles) Step(time.Time) {
	if sp.width == 0 || sp.height == 0 {
		return
	}
	for i := range sp.items {
		s := &sp.items[i]
		s.phase += s.twinkleSpeed
		s.sway += s.swaySpeed
		s.y -= s.speed
		s.x += math.Sin(s.sway) * 0.3

		if s.y < -1 {
			sp.items[i] = sp.spawn()
			continue
		}
		if s.x < -1 {
			s.x = float64(sp.width)
		} else if s.x > float64(sp.width)+1 {
			s.x = 0
		}
	}
}

func (sp *sparkles) Render(f *Frame) {
	for i := range sp.items {
		s := &sp.items[i]
		if s.lantern {
			f.Set(int(s.x), int(s.y), '🏮', s.color)
			continue
		}
		var glyph rune
		switch bright := math.Sin(s.phase); {
		case bright > 0.4:
			glyph = '✦'
		case bright > -0.3:
			glyph = '✧'
		default:
			glyph = '·'
		}
		f.Set(int(s.x), int(s.y), glyph, s.color)
	}
}
