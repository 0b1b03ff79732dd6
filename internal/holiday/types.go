// Package holiday implements seasonal holiday detection: a static registry
// of holiday windows (fixed solar ranges or lunar dates), a detector that
// resolves the single active holiday for a given date, and the derived
// effect parameters consumed by the renderer.
package holiday

import "time"

// ID identifies a holiday. The zero value "" means "no override supplied";
// None is the explicit sentinel for "no holiday active".
type ID string

const (
	None      ID = "none"
	Christmas ID = "christmas"
	Tet       ID = "tet"
	NewYear   ID = "new-year"
	Halloween ID = "halloween"
	MidAutumn ID = "mid-autumn"
)

// KnownIDs lists every accepted holiday identifier, None included.
// Override inputs (CLI flag, query parameter) are validated against it.
var KnownIDs = []ID{None, Christmas, Tet, NewYear, Halloween, MidAutumn}

// ParseID validates a raw override value. Anything outside the known set
// reports ok=false and is treated by callers as if no override was given.
func ParseID(s string) (ID, bool) {
	for _, id := range KnownIDs {
		if ID(s) == id {
			return id, true
		}
	}
	return "", false
}

// EffectKind names one overlay animation. A holiday config may carry
// several kinds; each mounts as an independent layer.
type EffectKind string

const (
	EffectSnow        EffectKind = "snow"
	EffectFireworks   EffectKind = "fireworks"
	EffectConfetti    EffectKind = "confetti"
	EffectSparkles    EffectKind = "sparkles"
	EffectHalloween   EffectKind = "halloween"
	EffectBlossoms    EffectKind = "tet-blossoms"
	EffectDecorations EffectKind = "decorations"
)

// Intensity is the coarse quality dial applied uniformly to mounted effects.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// CompactPolicy controls effect behavior on constrained displays (narrow
// terminals, or mobile clients when detection runs behind the HTTP API).
type CompactPolicy string

const (
	CompactFull    CompactPolicy = "full"
	CompactReduced CompactPolicy = "reduced"
	CompactNone    CompactPolicy = "none"
)

// DateMark is a recurring (month, day) point in the solar calendar.
type DateMark struct {
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// LunarDate pins a holiday to one or more days of a lunar month. It is
// resolved to solar dates per year through the tabulated lunar data.
type LunarDate struct {
	Month int   `json:"month"`
	Days  []int `json:"days"`
}

// EffectConfig carries the renderer parameters for a holiday.
type EffectConfig struct {
	Effects []EffectKind `json:"effects"`
	Colors  []string     `json:"colors"`
	// Density is the particle count baseline for density-driven effects
	// (snow, sparkles, halloween). Zero means the effect's own default.
	Density int `json:"density,omitempty"`
	// IntervalMS is the launch cadence in milliseconds for burst effects
	// (fireworks, confetti). Zero means the effect's own default.
	IntervalMS int    `json:"intervalMs,omitempty"`
	Theme      string `json:"theme,omitempty"`
}

// Config declares one holiday: identity, whether it can activate, exactly
// one activation rule (Start+End or Lunar), and its effect parameters.
// Configs are defined once at startup and never mutated.
type Config struct {
	ID          ID           `json:"id"`
	Name        string       `json:"name"`
	Enabled     bool         `json:"enabled"`
	Start       *DateMark    `json:"startDate,omitempty"`
	End         *DateMark    `json:"endDate,omitempty"`
	Lunar       *LunarDate   `json:"lunarDates,omitempty"`
	Effects     EffectConfig `json:"effectConfig"`
	Description string       `json:"description,omitempty"`
}

// Settings are the global switches, separate from per-holiday config.
type Settings struct {
	Enabled              bool
	RespectReducedMotion bool
	CompactEffects       CompactPolicy
	Intensity            Intensity
	Debug                bool
}

// DefaultSettings mirrors the shipped configuration file.
func DefaultSettings() Settings {
	return Settings{
		Enabled:              true,
		RespectReducedMotion: true,
		CompactEffects:       CompactReduced,
		Intensity:            IntensityMedium,
	}
}

// Detection is the raw outcome of one detector run.
type Detection struct {
	Holiday        ID        `json:"holiday"`
	Config         *Config   `json:"config"`
	DetectedAt     time.Time `json:"detectedAt"`
	ManualOverride bool      `json:"isManualOverride"`
}

// ActiveInfo is the render-facing view of a detection: whether effects
// should be shown at all and at what intensity, given the global settings
// and the display environment. Recomputed on every trigger, never stored.
type ActiveInfo struct {
	Holiday     ID        `json:"holiday"`
	Config      *Config   `json:"config"`
	ShowEffects bool      `json:"showEffects"`
	Intensity   Intensity `json:"intensity"`
	Compact     bool      `json:"compact"`
}
