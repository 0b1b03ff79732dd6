package effects

import (
	"math/rand"
	"time"

	"github.com/mnhtran/festive/internal/holiday"
)

// Effect is one overlay animation layer. Implementations keep all state
// internal; the caller drives them with Resize/Step and composites their
// output with Render. Effects never block and never touch the terminal
// directly.
type Effect interface {
	Kind() holiday.EffectKind
	Resize(width, height int)
	Step(now time.Time)
	Render(f *Frame)
}

// profile scales an effect's parameters for an intensity level: density
// and burst size grow with intensity, launch cadence shrinks.
type profile struct {
	density  float64
	speed    float64
	interval float64
	burst    float64
}

func profileFor(in holiday.Intensity) profile {
	switch in {
	case holiday.IntensityLow:
		return profile{density: 0.5, speed: 0.7, interval: 1.5, burst: 0.5}
	case holiday.IntensityHigh:
		return profile{density: 1.5, speed: 1.3, interval: 1.0, burst: 1.0}
	default:
		return profile{density: 1.0, speed: 1.0, interval: 1.2, burst: 0.7}
	}
}

// FrameInterval is the tick cadence for a mounted effect set.
func FrameInterval(in holiday.Intensity) time.Duration {
	switch in {
	case holiday.IntensityLow:
		return 80 * time.Millisecond
	case holiday.IntensityHigh:
		return 33 * time.Millisecond
	default:
		return 50 * time.Millisecond
	}
}

// constructors is the single dispatch table from effect kind to
// implementation. Selection logic never compares kind strings anywhere
// else.
var constructors = map[holiday.EffectKind]func(cfg holiday.EffectConfig, in holiday.Intensity, rng *rand.Rand) Effect{
	holiday.EffectSnow:        newSnow,
	holiday.EffectFireworks:   newFireworks,
	holiday.EffectConfetti:    newConfetti,
	holiday.EffectSparkles:    newSparkles,
	holiday.EffectHalloween:   newHalloween,
	holiday.EffectBlossoms:    newBlossoms,
	holiday.EffectDecorations: newDecorations,
}

// New builds a single effect. Unknown kinds report ok=false.
func New(kind holiday.EffectKind, cfg holiday.EffectConfig, in holiday.Intensity, rng *rand.Rand) (Effect, bool) {
	ctor, ok := constructors[kind]
	if !ok {
		return nil, false
	}
	return ctor(cfg, in, rng), true
}

// Mount builds every effect a holiday config asks for, in declaration
// order. Several kinds on one config layer independently; that stacking
// is intentional. Unknown kinds are skipped.
func Mount(cfg *holiday.Config, in holiday.Intensity, rng *rand.Rand) []Effect {
	if cfg == nil {
		return nil
	}
	out := make([]Effect, 0, len(cfg.Effects.Effects))
	for _, kind := range cfg.Effects.Effects {
		if e, ok := New(kind, cfg.Effects, in, rng); ok {
			out = append(out, e)
		}
	}
	return out
}

// pick returns a random element of colors, or fallback when empty.
func pick(rng *rand.Rand, colors []string, fallback string) string {
	if len(colors) == 0 {
		return fallback
	}
	return colors[rng.Intn(len(colors))]
}
