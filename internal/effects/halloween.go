package effects

import (
	"math"
	"math/rand"
	"time"

	"github.com/mnhtran/festive/internal/holiday"
)

const defaultHalloweenDensity = 8

type pumpkin struct {
	x, y      float64
	speed     float64
	sway      float64
	swaySpeed float64
}

type bat struct {
	x, y      float64
	baseY     float64
	speed     float64
	flap      float64
	flapSpeed float64
	amplitude float64
	direction float64
}

type spider struct {
	x       int
	length  float64
	maxLen  float64
	descend bool
	bob     float64
}

// halloweenFX drops pumpkins, flies bats on sine paths, and dangles
// spiders from the top corners. Pumpkins take 70% of the density budget,
// bats the rest; spiders are always exactly two.
type halloweenFX struct {
	width   int
	height  int
	rng     *rand.Rand
	density int
	speed   float64

	pumpkins []pumpkin
	bats     []bat
	spiders  []spider
}

func newHalloween(cfg holiday.EffectConfig, in holiday.Intensity, rng *rand.Rand) Effect {
	p := profileFor(in)
	density := cfg.Density
	if density <= 0 {
		density = defaultHalloweenDensity
	}
	return &halloweenFX{
		rng:     rng,
		density: int(float64(density) * p.density),
		speed:   p.speed,
	}
}

func (h *halloweenFX) Kind() holiday.EffectKind { return holiday.EffectHalloween }

func (h *halloweenFX) Resize(width, height int) {
	h.width = width
	h.height = height

	n := h.density * max(width, 1) / 80
	if n < 3 {
		n = 3
	}
	pumpkins := n * 7 / 10
	if pumpkins < 1 {
		pumpkins = 1
	}
	bats := n - pumpkins
	if bats < 1 {
		bats = 1
	}

	h.pumpkins = make([]pumpkin, pumpkins)
	for i := range h.pumpkins {
		h.pumpkins[i] = h.spawnPumpkin()
		h.pumpkins[i].y = h.rng.Float64() * float64(height)
	}

	h.bats = make([]bat, bats)
	for i := range h.bats {
		dir := 1.0
		if h.rng.Float64() > 0.5 {
			dir = -1.0
		}
		h.bats[i] = bat{
			x:         h.rng.Float64() * float64(width),
			baseY:     h.rng.Float64() * float64(height) * 0.6,
			speed:     (0.4 + h.rng.Float64()*0.6) * h.speed,
			flapSpeed: 0.3 + h.rng.Float64()*0.2,
			amplitude: 1.5 + h.rng.Float64()*2,
			direction: dir,
		}
	}

	h.spiders = []spider{
		{x: 4, maxLen: 4 + h.rng.Float64()*float64(height)/3, descend: true},
		{x: max(width-6, 0), maxLen: 4 + h.rng.Float64()*float64(height)/3, descend: true},
	}
}

func (h *halloweenFX) spawnPumpkin() pumpkin {
	return pumpkin{
		x:         h.rng.Float64() * float64(h.width),
		y:         -1,
		speed:     (0.2 + h.rng.Float64()*0.3) * h.speed,
		sway:      h.rng.Float64() * 2 * math.Pi,
		swaySpeed: 0.04 + h.rng.Float64()*0.04,
	}
}

func (h *halloweenFX) Step(time.Time) {
	if h.width == 0 || h.height == 0 {
		return
	}
	for i := range h.pumpkins {
		p := &h.pumpkins[i]
		p.y += p.speed
		p.sway += p.swaySpeed
		p.x += math.Sin(p.sway) * 0.3
		if p.y > float64(h.height) {
			h.pumpkins[i] = h.spawnPumpkin()
		}
	}

	for i := range h.bats {
		b := &h.bats[i]
		b.x += b.speed * b.direction
		b.flap += b.flapSpeed
		b.y = b.baseY + math.Sin(b.flap*0.3)*b.amplitude
		if b.x < -3 {
			b.x = float64(h.width) + 3
		} else if b.x > float64(h.width)+3 {
			b.x = -3
		}
	}

	for i := range h.spiders {
		s := &h.spiders[i]
		if s.descend {
			s.length += 0.15
			if s.length >= s.maxLen {
				s.descend = false
			}
		} else {
			s.length -= 0.1
			if s.length <= 1 {
				s.descend = true
			}
		}
		s.bob += 0.1
	}
}

func (h *halloweenFX) Render(f *Frame) {
	for i := range h.pumpkins {
		p := &h.pumpkins[i]
		f.Set(int(p.x), int(p.y), '🎃', "#f97316")
	}

	for i := range h.bats {
		b := &h.bats[i]
		wings := "^v^"
		if math.Sin(b.flap) > 0 {
			wings = "-v-"
		}
		f.SetString(int(b.x), int(b.y), wings, "#8b5cf6")
	}

	for i := range h.spiders {
		s := &h.spiders[i]
		depth := int(s.length + math.Sin(s.bob)*0.5)
		for y := 0; y < depth; y++ {
			f.Set(s.x, y, '|', "#6b7280")
		}
		f.Set(s.x, depth, '🕷', "#111111")
	}
}
