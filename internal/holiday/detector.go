package holiday

import (
	"os"
	"time"
)

// Environment abstracts the display the detector adapts to. The TUI probes
// the terminal and process environment; the HTTP API derives one per
// request from the User-Agent header.
type Environment interface {
	// CompactDisplay reports a constrained display (narrow terminal or
	// mobile client). Best-effort; defaults to false when unknown.
	CompactDisplay() bool
	// ReducedMotion reports that the user asked for less animation.
	ReducedMotion() bool
}

// StaticEnv is a fixed Environment, used by tests and as a building block.
type StaticEnv struct {
	Compact bool
	Reduced bool
}

func (e StaticEnv) CompactDisplay() bool { return e.Compact }
func (e StaticEnv) ReducedMotion() bool  { return e.Reduced }

// OSEnv probes the process environment. REDUCE_MOTION (or the
// festive-specific FESTIVE_REDUCE_MOTION) opts out of animation the way
// the reduced-motion media preference does in a browser.
type OSEnv struct{}

func (OSEnv) CompactDisplay() bool { return false }

func (OSEnv) ReducedMotion() bool {
	return os.Getenv("REDUCE_MOTION") != "" || os.Getenv("FESTIVE_REDUCE_MOTION") != ""
}

// Detector resolves the active holiday and derives render eligibility.
// Detection is pure given (date, override, settings, environment); the
// only side effect is the explicit cache write performed by callers.
type Detector struct {
	reg      *Registry
	settings Settings
	env      Environment

	// Clock supplies "now" and exists so tests can pin the date.
	Clock func() time.Time
}

// NewDetector wires a detector over a registry. A nil env defaults to the
// OS probe.
func NewDetector(reg *Registry, settings Settings, env Environment) *Detector {
	if env == nil {
		env = OSEnv{}
	}
	return &Detector{
		reg:      reg,
		settings: settings,
		env:      env,
		Clock:    time.Now,
	}
}

// Registry exposes the catalog for display surfaces.
func (d *Detector) Registry() *Registry { return d.reg }

// Settings exposes the global switches.
func (d *Detector) Settings() Settings { return d.settings }

// Active reports whether cfg's window contains date. A config with neither
// a lunar rule nor a complete range can never activate.
func (d *Detector) Active(cfg *Config, date time.Time) bool {
	if cfg == nil || !cfg.Enabled {
		return false
	}
	if cfg.Lunar != nil {
		return MatchesLunar(date, *cfg.Lunar)
	}
	if cfg.Start != nil && cfg.End != nil {
		return DateInRange(date, *cfg.Start, *cfg.End)
	}
	return false
}

// Detect resolves the active holiday for date. A valid enabled override
// (anything but "" and None) short-circuits date logic entirely; an
// override naming a disabled or unknown holiday silently falls through to
// automatic detection. Automatic detection returns the first enabled
// config whose window contains date, in registry order.
func (d *Detector) Detect(date time.Time, override ID) Detection {
	if override != "" && override != None {
		if cfg, ok := d.reg.ConfigFor(override); ok {
			return Detection{
				Holiday:        override,
				Config:         cfg,
				DetectedAt:     d.Clock(),
				ManualOverride: true,
			}
		}
	}

	for _, cfg := range d.reg.Enabled() {
		if d.Active(cfg, date) {
			return Detection{
				Holiday:    cfg.ID,
				Config:     cfg,
				DetectedAt: d.Clock(),
			}
		}
	}

	return Detection{Holiday: None, DetectedAt: d.Clock()}
}

// today returns the clock's date at local midnight.
func (d *Detector) today() time.Time {
	y, m, day := d.Clock().Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.Local)
}

// ActiveInfo runs detection for today and folds in the global settings and
// the detector's own environment.
func (d *Detector) ActiveInfo(override ID) ActiveInfo {
	return d.Resolve(d.today(), override, d.env)
}

// Resolve is ActiveInfo with an explicit date and environment, for callers
// that adapt per request.
func (d *Detector) Resolve(date time.Time, override ID, env Environment) ActiveInfo {
	det := d.Detect(date, override)
	compact := env.CompactDisplay()
	reduced := env.ReducedMotion()

	show := d.settings.Enabled &&
		det.Holiday != None &&
		(!reduced || !d.settings.RespectReducedMotion) &&
		(d.settings.CompactEffects != CompactNone || !compact)

	intensity := d.settings.Intensity
	if compact && d.settings.CompactEffects == CompactReduced {
		intensity = IntensityLow
	}

	return ActiveInfo{
		Holiday:     det.Holiday,
		Config:      det.Config,
		ShowEffects: show,
		Intensity:   intensity,
		Compact:     compact,
	}
}

// Upcoming scans today through today+days (inclusive) and returns each
// config that activates at least once, ordered by first activation.
// Upcoming(0) is exactly the set active today.
func (d *Detector) Upcoming(days int) []*Config {
	today := d.today()
	enabled := d.reg.Enabled()

	var out []*Config
	seen := make(map[ID]bool)
	for i := 0; i <= days; i++ {
		date := today.AddDate(0, 0, i)
		for _, cfg := range enabled {
			if !seen[cfg.ID] && d.Active(cfg, date) {
				seen[cfg.ID] = true
				out = append(out, cfg)
			}
		}
	}
	return out
}
