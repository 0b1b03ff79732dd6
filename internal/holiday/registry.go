package holiday

import (
	"fmt"
	"strings"
)

// Registry is the ordered, read-only holiday catalog. Order matters: when
// two holiday windows overlap on a date, the earlier entry wins detection.
type Registry struct {
	configs []Config
}

// NewRegistry builds a registry from configs in declaration order.
func NewRegistry(configs ...Config) *Registry {
	return &Registry{configs: configs}
}

// Builtin returns the shipped holiday catalog.
func Builtin() *Registry {
	return NewRegistry(
		Config{
			ID:      Christmas,
			Name:    "Christmas",
			Enabled: true,
			Start:   &DateMark{Month: 12, Day: 1},
			End:     &DateMark{Month: 12, Day: 26},
			Effects: EffectConfig{
				Effects: []EffectKind{EffectSnow, EffectDecorations},
				Colors:  []string{"#ffffff", "#e0f2fe", "#bae6fd", "#7dd3fc"},
				Density: 30,
				Theme:   "christmas-theme",
			},
			Description: "Christmas season with snowfall",
		},
		Config{
			ID:      Tet,
			Name:    "Vietnamese Tet (Lunar New Year)",
			Enabled: true,
			Lunar:   &LunarDate{Month: 1, Days: []int{1, 2, 3, 4, 5}},
			Effects: EffectConfig{
				Effects: []EffectKind{EffectBlossoms, EffectFireworks, EffectDecorations},
				Colors: []string{
					"#ec4899", "#f472b6", "#fb7185", "#fda4af", "#fecdd3",
					"#ef4444", "#dc2626", "#f87171", "#fca5a5",
					"#fbbf24", "#facc15", "#fde047",
				},
				IntervalMS: 3000,
				Theme:      "tet-theme",
			},
			Description: "Vietnamese Lunar New Year with fireworks and peach blossoms",
		},
		Config{
			ID:      NewYear,
			Name:    "New Year",
			Enabled: true,
			Start:   &DateMark{Month: 12, Day: 28},
			End:     &DateMark{Month: 1, Day: 2},
			Effects: EffectConfig{
				Effects:    []EffectKind{EffectFireworks, EffectConfetti},
				Colors:     []string{"#fbbf24", "#f59e0b", "#a855f7", "#ec4899"},
				IntervalMS: 2000,
				Theme:      "new-year-theme",
			},
			Description: "New Year celebration",
		},
		Config{
			ID:      Halloween,
			Name:    "Halloween",
			Enabled: true,
			Start:   &DateMark{Month: 10, Day: 25},
			End:     &DateMark{Month: 10, Day: 31},
			Effects: EffectConfig{
				Effects: []EffectKind{EffectHalloween, EffectDecorations},
				Colors:  []string{"#f97316", "#8b5cf6", "#000000"},
				Density: 8,
				Theme:   "halloween-theme",
			},
			Description: "Halloween night",
		},
		Config{
			ID:      MidAutumn,
			Name:    "Mid-Autumn Festival",
			Enabled: true,
			Lunar:   &LunarDate{Month: 8, Days: []int{15}},
			Effects: EffectConfig{
				Effects: []EffectKind{EffectSparkles, EffectDecorations},
				Colors:  []string{"#fbbf24", "#f59e0b", "#fde047"},
				Density: 20,
				Theme:   "mid-autumn-theme",
			},
			Description: "Mid-Autumn Festival (Moon Festival)",
		},
	)
}

// Enabled returns the enabled configs in registry order. The returned
// pointers reference registry-owned values; callers must not mutate them.
func (r *Registry) Enabled() []*Config {
	out := make([]*Config, 0, len(r.configs))
	for i := range r.configs {
		if r.configs[i].Enabled {
			out = append(out, &r.configs[i])
		}
	}
	return out
}

// ConfigFor finds an enabled config by id. Disabled and unknown ids both
// report ok=false; callers cannot tell the two apart, matching the
// silent-fallback override behavior.
func (r *Registry) ConfigFor(id ID) (*Config, bool) {
	for i := range r.configs {
		if r.configs[i].ID == id && r.configs[i].Enabled {
			return &r.configs[i], true
		}
	}
	return nil, false
}

// DisplayName returns a human-readable name for an id.
func (r *Registry) DisplayName(id ID) string {
	if id == None {
		return "No Holiday"
	}
	if cfg, ok := r.ConfigFor(id); ok {
		return cfg.Name
	}
	return string(id)
}

// Window describes when the config activates, for display surfaces.
func (c *Config) Window() string {
	if c.Lunar != nil {
		days := make([]string, len(c.Lunar.Days))
		for i, d := range c.Lunar.Days {
			days[i] = fmt.Sprintf("%d", d)
		}
		return fmt.Sprintf("Lunar %d/%s", c.Lunar.Month, strings.Join(days, ", "))
	}
	if c.Start != nil && c.End != nil {
		return fmt.Sprintf("%d/%d - %d/%d", c.Start.Month, c.Start.Day, c.End.Month, c.End.Day)
	}
	return "unscheduled"
}
