package effects

import (
	"math"
	"math/rand"
	"time"

	"github.com/mnhtran/festive/internal/holiday"
)

const defaultSnowDensity = 30

var snowGlyphs = []rune{'❄', '*', '•', '·', '·'}

type flake struct {
	x, y  float64
	speed float64
	drift float64
	glyph rune
	color string
}

// snow is a steady fall of flakes with a shared sinusoidal wind.
type snow struct {
	width   int
	height  int
	rng     *rand.Rand
	colors  []string
	count   int
	speed   float64
	wind    float64
	flakes  []flake
	density int
}

func newSnow(cfg holiday.EffectConfig, in holiday.Intensity, rng *rand.Rand) Effect {
	p := profileFor(in)
	density := cfg.Density
	if density <= 0 {
		density = defaultSnowDensity
	}
	return &snow{
		rng:     rng,
		colors:  cfg.Colors,
		density: int(float64(density) * p.density),
		speed:   p.speed,
	}
}

func (s *snow) Kind() holiday.EffectKind { return holiday.EffectSnow }

func (s *snow) Resize(width, height int) {
	s.width = width
	s.height = height
	// Density is calibrated for an 80-column view; wider terminals get
	// proportionally more flakes.
	s.count = s.density * max(width, 1) / 80
	if s.count < 4 {
		s.count = 4
	}
	s.flakes = make([]flake, s.count)
	for i := range s.flakes {
		s.flakes[i] = s.spawn(false)
	}
}

func (s *snow) spawn(fromTop bool) flake {
	y := s.rng.Float64() * float64(s.height)
	if fromTop {
		y = -1
	}
	return flake{
		x:     s.rng.Float64() * float64(s.width),
		y:     y,
		speed: (0.25 + s.rng.Float64()*0.35) * s.speed,
		drift: (s.rng.Float64() - 0.5) * 0.3,
		glyph: snowGlyphs[s.rng.Intn(len(snowGlyphs))],
		color: pick(s.rng, s.colors, "#ffffff"),
	}
}

func (s *snow) Step(time.Time) {
	if s.width == 0 || s.height == 0 {
		return
	}
	s.wind += 0.01
	gust := math.Sin(s.wind) * 0.2
	for i := range s.flakes {
		f := &s.flakes[i]
		f.y += f.speed
		f.x += f.drift + gust

		if f.x > float64(s.width)+1 {
			f.x = -1
		} else if f.x < -1 {
			f.x = float64(s.width) + 1
		}
		if f.y > float64(s.height) {
			s.flakes[i] = s.spawn(true)
		}
	}
}

func (s *snow) Render(f *Frame) {
	for i := range s.flakes {
		fl := &s.flakes[i]
		f.Set(int(fl.x), int(fl.y), fl.glyph, fl.color)
	}
}
