package effects

import (
	"math/rand"
	"testing"
	"time"

	"github.com/mnhtran/festive/internal/holiday"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestNew_CoversEveryKind(t *testing.T) {
	t.Parallel()

	kinds := []holiday.EffectKind{
		holiday.EffectSnow,
		holiday.EffectFireworks,
		holiday.EffectConfetti,
		holiday.EffectSparkles,
		holiday.EffectHalloween,
		holiday.EffectBlossoms,
		holiday.EffectDecorations,
	}
	for _, kind := range kinds {
		e, ok := New(kind, holiday.EffectConfig{}, holiday.IntensityMedium, testRNG())
		if !ok {
			t.Errorf("no constructor for kind %q", kind)
			continue
		}
		if e.Kind() != kind {
			t.Errorf("constructor for %q built a %q", kind, e.Kind())
		}
	}

	if _, ok := New("lasers", holiday.EffectConfig{}, holiday.IntensityMedium, testRNG()); ok {
		t.Error("unknown kind should not construct")
	}
}

func TestMount_LayersInDeclarationOrder(t *testing.T) {
	t.Parallel()

	cfg := &holiday.Config{
		ID:      holiday.Tet,
		Enabled: true,
		Effects: holiday.EffectConfig{
			Effects: []holiday.EffectKind{
				holiday.EffectBlossoms,
				holiday.EffectFireworks,
				holiday.EffectDecorations,
			},
		},
	}
	mounted := Mount(cfg, holiday.IntensityMedium, testRNG())
	if len(mounted) != 3 {
		t.Fatalf("expected 3 layers, got %d", len(mounted))
	}
	want := []holiday.EffectKind{holiday.EffectBlossoms, holiday.EffectFireworks, holiday.EffectDecorations}
	for i, e := range mounted {
		if e.Kind() != want[i] {
			t.Errorf("layer %d = %q, want %q", i, e.Kind(), want[i])
		}
	}

	if got := Mount(nil, holiday.IntensityMedium, testRNG()); got != nil {
		t.Error("nil config should mount nothing")
	}
}

func TestSnow_IntensityScalesFlakeCount(t *testing.T) {
	t.Parallel()

	count := func(in holiday.Intensity) int {
		e, _ := New(holiday.EffectSnow, holiday.EffectConfig{Density: 30}, in, testRNG())
		e.Resize(80, 24)
		return len(e.(*snow).flakes)
	}

	low, med, high := count(holiday.IntensityLow), count(holiday.IntensityMedium), count(holiday.IntensityHigh)
	if !(low < med && med < high) {
		t.Errorf("flake counts should grow with intensity: low=%d med=%d high=%d", low, med, high)
	}
}

func TestSnow_StepKeepsFlakesRenderable(t *testing.T) {
	t.Parallel()

	e, _ := New(holiday.EffectSnow, holiday.EffectConfig{Density: 30}, holiday.IntensityMedium, testRNG())
	e.Resize(40, 12)
	f := NewFrame(40, 12)

	now := time.Now()
	for i := 0; i < 500; i++ {
		e.Step(now.Add(time.Duration(i) * 50 * time.Millisecond))
		f.Clear()
		e.Render(f) // must not panic, out-of-bounds drops are fine
	}

	s := e.(*snow)
	for i := range s.flakes {
		fl := &s.flakes[i]
		if fl.y > float64(s.height)+1 {
			t.Errorf("flake %d escaped below the view: y=%f", i, fl.y)
		}
	}
}

func TestFireworks_LaunchCadence(t *testing.T) {
	t.Parallel()

	e, _ := New(holiday.EffectFireworks,
		holiday.EffectConfig{IntervalMS: 1000}, holiday.IntensityHigh, testRNG())
	e.Resize(80, 24)
	fw := e.(*fireworks)

	start := time.Now()
	// First step always launches.
	e.Step(start)
	if len(fw.rockets) != 1 {
		t.Fatalf("expected first launch, got %d rockets", len(fw.rockets))
	}
	// Within the interval: no new rocket.
	e.Step(start.Add(200 * time.Millisecond))
	if len(fw.rockets) != 1 {
		t.Errorf("launched again too early: %d rockets", len(fw.rockets))
	}
	// Past the interval (high intensity keeps the configured cadence).
	e.Step(start.Add(1100 * time.Millisecond))
	if len(fw.rockets) != 2 {
		t.Errorf("expected second launch, got %d rockets", len(fw.rockets))
	}
}

func TestFireworks_BurstsDecayToNothing(t *testing.T) {
	t.Parallel()

	e, _ := New(holiday.EffectFireworks,
		holiday.EffectConfig{IntervalMS: 1000000}, holiday.IntensityMedium, testRNG())
	e.Resize(60, 20)
	fw := e.(*fireworks)

	now := time.Now()
	e.Step(now) // single launch
	// Advance within the (huge) interval until the rocket explodes and
	// every spark burns out.
	for i := 0; i < 400; i++ {
		e.Step(now.Add(time.Duration(i+1) * time.Millisecond))
	}
	if len(fw.rockets) != 0 {
		t.Errorf("burst should fully decay, %d rockets remain", len(fw.rockets))
	}
}

func TestDecorations_RendersThemedGlyphs(t *testing.T) {
	t.Parallel()

	e, _ := New(holiday.EffectDecorations,
		holiday.EffectConfig{Theme: "christmas-theme"}, holiday.IntensityMedium, testRNG())
	e.Resize(40, 10)
	f := NewFrame(40, 10)
	e.Render(f)

	view := f.View()
	for _, glyph := range []string{"🎄", "🎅"} {
		if !containsGlyph(view, glyph) {
			t.Errorf("view should contain %q", glyph)
		}
	}

	// Unknown theme renders nothing but must not panic.
	bare, _ := New(holiday.EffectDecorations, holiday.EffectConfig{Theme: "nope"}, holiday.IntensityMedium, testRNG())
	bare.Resize(40, 10)
	f.Clear()
	bare.Render(f)
}

func TestEffects_SurviveZeroSize(t *testing.T) {
	t.Parallel()

	for kind := range constructors {
		e, _ := New(kind, holiday.EffectConfig{}, holiday.IntensityMedium, testRNG())
		f := NewFrame(0, 0)
		// Never resized: stepping and rendering must be safe no-ops.
		e.Step(time.Now())
		e.Render(f)

		e.Resize(0, 0)
		e.Step(time.Now())
		e.Render(f)
	}
}

func containsGlyph(s, glyph string) bool {
	for _, r := range glyph {
		found := false
		for _, sr := range s {
			if sr == r {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
