package effects

import (
	"math"
	"math/rand"
	"time"

	"github.com/mnhtran/festive/internal/holiday"
)

const (
	defaultLaunchIntervalMS = 3000
	defaultBurstSize        = 50
	confettiBurstSize       = 80
	confettiIntervalMS      = 2000
)

type spark struct {
	x, y    float64
	vx, vy  float64
	gravity float64
	life    int
	maxLife int
	color   string
}

type rocket struct {
	x, y     float64
	targetY  float64
	speed    float64
	color    string
	exploded bool
	sparks   []spark
}

// fireworks launches rockets from the side fifths of the view and bursts
// them in the top third. confetti is the same system with a denser burst.
type fireworks struct {
	kind     holiday.EffectKind
	width    int
	height   int
	rng      *rand.Rand
	colors   []string
	interval time.Duration
	burst    int
	speed    float64
	rockets  []rocket
	last     time.Time
}

func newFireworks(cfg holiday.EffectConfig, in holiday.Intensity, rng *rand.Rand) Effect {
	return newBurst(holiday.EffectFireworks, cfg, in, rng, cfg.IntervalMS, defaultBurstSize)
}

func newConfetti(cfg holiday.EffectConfig, in holiday.Intensity, rng *rand.Rand) Effect {
	intervalMS := cfg.IntervalMS
	if intervalMS <= 0 {
		intervalMS = confettiIntervalMS
	}
	return newBurst(holiday.EffectConfetti, cfg, in, rng, intervalMS, confettiBurstSize)
}

func newBurst(kind holiday.EffectKind, cfg holiday.EffectConfig, in holiday.Intensity, rng *rand.Rand, intervalMS, burstSize int) Effect {
	p := profileFor(in)
	if intervalMS <= 0 {
		intervalMS = defaultLaunchIntervalMS
	}
	return &fireworks{
		kind:     kind,
		rng:      rng,
		colors:   cfg.Colors,
		interval: time.Duration(float64(intervalMS)*p.interval) * time.Millisecond,
		burst:    int(float64(burstSize) * p.burst),
		speed:    p.speed,
	}
}

func (fw *fireworks) Kind() holiday.EffectKind { return fw.kind }

func (fw *fireworks) Resize(width, height int) {
	fw.width = width
	fw.height = height
	fw.rockets = nil
}

func (fw *fireworks) launch() rocket {
	w := float64(fw.width)
	h := float64(fw.height)

	// Side launches only: left or right fifth of the view.
	x := fw.rng.Float64() * w * 0.2
	if fw.rng.Float64() > 0.5 {
		x = w*0.8 + fw.rng.Float64()*w*0.2
	}
	return rocket{
		x:       x,
		y:       h,
		targetY: h*0.05 + fw.rng.Float64()*h*0.25,
		speed:   (0.8 + fw.rng.Float64()*0.6) * fw.speed,
		color:   pick(fw.rng, fw.colors, "#fbbf24"),
	}
}

func (fw *fireworks) explode(r *rocket) {
	n := fw.burst
	if n < 6 {
		n = 6
	}
	r.sparks = make([]spark, 0, n+n/5)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		vel := 0.4 + fw.rng.Float64()*0.7
		life := 12 + fw.rng.Intn(10)
		r.sparks = append(r.sparks, spark{
			x: r.x, y: r.y,
			// Terminal cells are roughly twice as tall as wide; squash
			// the vertical component so bursts look circular.
			vx: math.Cos(angle) * vel * 2,
			vy: math.Sin(angle) * vel,
			gravity: 0.02 + fw.rng.Float64()*0.02,
			life:    life, maxLife: life,
			color: r.color,
		})
	}
	// Golden trailing sparkles, a fifth of the burst.
	for i := 0; i < n/5; i++ {
		angle := fw.rng.Float64() * 2 * math.Pi
		vel := 0.2 + fw.rng.Float64()*0.4
		life := 8 + fw.rng.Intn(8)
		r.sparks = append(r.sparks, spark{
			x: r.x, y: r.y,
			vx: math.Cos(angle) * vel * 2,
			vy: math.Sin(angle) * vel,
			gravity: 0.01,
			life:    life, maxLife: life,
			color: "#fbbf24",
		})
	}
	r.exploded = true
}

func (fw *fireworks) Step(now time.Time) {
	if fw.width == 0 || fw.height == 0 {
		return
	}
	if fw.last.IsZero() || now.Sub(fw.last) >= fw.interval {
		fw.rockets = append(fw.rockets, fw.launch())
		fw.last = now
	}

	alive := fw.rockets[:0]
	for i := range fw.rockets {
		r := &fw.rockets[i]
		if !r.exploded {
			r.y -= r.speed
			if r.y <= r.targetY {
				fw.explode(r)
			}
			alive = append(alive, *r)
			continue
		}

		live := r.sparks[:0]
		for j := range r.sparks {
			s := &r.sparks[j]
			s.x += s.vx
			s.y += s.vy
			s.vy += s.gravity
			s.life--
			if s.life > 0 {
				live = append(live, *s)
			}
		}
		r.sparks = live
		if len(r.sparks) > 0 {
			alive = append(alive, *r)
		}
	}
	fw.rockets = alive
}

func sparkGlyph(s *spark) rune {
	switch frac := float64(s.life) / float64(s.maxLife); {
	case frac > 0.66:
		return '✦'
	case frac > 0.33:
		return '*'
	default:
		return '·'
	}
}

func (fw *fireworks) Render(f *Frame) {
	for i := range fw.rockets {
		r := &fw.rockets[i]
		if !r.exploded {
			f.Set(int(r.x), int(r.y), '|', r.color)
			continue
		}
		for j := range r.sparks {
			s := &r.sparks[j]
			f.Set(int(s.x), int(s.y), sparkGlyph(s), s.color)
		}
	}
}
