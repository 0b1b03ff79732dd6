package tui

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mnhtran/festive/internal/config"
	"github.com/mnhtran/festive/internal/effects"
	"github.com/mnhtran/festive/internal/holiday"
	"github.com/mnhtran/festive/internal/log"
)

// Version is the current version of festive.
const Version = "v0.1.0"

// compactWidth is the terminal width below which the display counts as
// constrained, mirroring a small screen.
const compactWidth = 60

// statusHeight is the number of rows reserved below the effect canvas.
const statusHeight = 1

// Model is the root Bubble Tea model: it owns the detection result, the
// mounted effect stack and the frame buffer the effects draw into.
type Model struct {
	cfg      *config.Config
	detector *holiday.Detector
	cache    *holiday.Cache
	keys     keyMap
	help     help.Model
	rng      *rand.Rand

	// override is the forced holiday. forced distinguishes "0" (effects
	// off) from no override at all, since both leave override at None.
	override holiday.ID
	forced   bool

	detection  holiday.Detection
	info       holiday.ActiveInfo
	stack      []effects.Effect
	frame      *effects.Frame
	generation int
	paused     bool

	width  int
	height int
	ready  bool
	debug  bool

	// clock exists so tests can pin the date.
	clock func() time.Time

	lastStep time.Time
	fps      float64
	stats    *SystemStats
	flash    string
}

// frameMsg drives one animation step. The generation tag lets stale ticks
// from a torn-down effect stack drain harmlessly.
type frameMsg struct {
	generation int
	at         time.Time
}

type statsMsg struct{ stats *SystemStats }

type clearFlashMsg struct{}

// New creates the root model. override seeds a manual holiday override
// from the command line; pass "" for automatic detection.
func New(cfg *config.Config, detector *holiday.Detector, cache *holiday.Cache, override holiday.ID) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		cfg:      cfg,
		detector: detector,
		cache:    cache,
		keys:     newKeyMap(),
		help:     h,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		override: override,
		forced:   override != "",
		debug:    cfg.Holiday.Debug,
		clock:    time.Now,
	}
}

// Init implements tea.Model. Effects mount on the first WindowSizeMsg,
// once the canvas size is known.
func (m Model) Init() tea.Cmd {
	if m.debug {
		return refreshStatsCmd()
	}
	return nil
}

func (m Model) today() time.Time {
	y, mo, d := m.clock().Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.Local)
}

func (m Model) environment() holiday.Environment {
	return holiday.StaticEnv{
		Compact: m.ready && m.width < compactWidth,
		Reduced: holiday.OSEnv{}.ReducedMotion(),
	}
}

// canvasSize returns the effect canvas dimensions for the current layout.
func (m Model) canvasSize() (int, int) {
	h := m.height - statusHeight
	if m.debug {
		h -= debugPanelHeight
	}
	if h < 0 {
		h = 0
	}
	return m.width, h
}

// redetect reruns detection and rebuilds the effect stack. It returns the
// command that starts the new stack's tick loop, or nil when nothing
// animates.
func (m *Model) redetect() tea.Cmd {
	m.detection = m.detector.Detect(m.today(), m.override)
	m.info = m.detector.Resolve(m.today(), m.override, m.environment())

	if m.detection.Config != nil {
		m.cache.Write(m.detection)
	}

	m.generation++
	m.stack = nil
	m.lastStep = time.Time{}
	m.fps = 0

	if m.forced && m.override == holiday.None {
		// Forced off: detection still reports the date's holiday but
		// nothing mounts.
		return nil
	}

	if !m.info.ShowEffects {
		return nil
	}

	m.stack = effects.Mount(m.info.Config, m.info.Intensity, m.rng)
	w, h := m.canvasSize()
	for _, e := range m.stack {
		e.Resize(w, h)
	}

	log.TUI().Info("mounted effects",
		"holiday", m.detection.Holiday,
		"layers", len(m.stack),
		"intensity", m.info.Intensity,
		"override", m.detection.ManualOverride)

	if len(m.stack) == 0 || m.paused {
		return nil
	}
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	gen := m.generation
	return tea.Tick(effects.FrameInterval(m.info.Intensity), func(t time.Time) tea.Msg {
		return frameMsg{generation: gen, at: t}
	})
}

func refreshStatsCmd() tea.Cmd {
	return func() tea.Msg {
		stats, err := GetSystemStats()
		if err != nil {
			return statsMsg{}
		}
		return statsMsg{stats: stats}
	}
}

func flashCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearFlashMsg{}
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		first := !m.ready
		wasCompact := m.info.Compact
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		w, h := m.canvasSize()
		if m.frame == nil {
			m.frame = effects.NewFrame(w, h)
		} else {
			m.frame.Resize(w, h)
		}
		for _, e := range m.stack {
			e.Resize(w, h)
		}

		// Crossing the compact threshold can change eligibility and
		// intensity, so detection reruns.
		if first || m.environment().CompactDisplay() != wasCompact {
			return m, m.redetect()
		}
		return m, nil

	case tea.FocusMsg:
		// The terminal regained focus; the date may have rolled over
		// while the session idled.
		if !holiday.SameDay(m.detection.DetectedAt, m.clock()) {
			return m, m.redetect()
		}
		return m, nil

	case frameMsg:
		if msg.generation != m.generation || m.paused {
			return m, nil
		}
		if !m.lastStep.IsZero() {
			if d := msg.at.Sub(m.lastStep); d > 0 {
				// Smoothed over recent frames so the readout doesn't jitter.
				m.fps = m.fps*0.9 + (1.0/d.Seconds())*0.1
			}
		}
		m.lastStep = msg.at
		for _, e := range m.stack {
			e.Step(msg.at)
		}
		return m, m.tickCmd()

	case statsMsg:
		m.stats = msg.stats
		if m.debug {
			return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
				return refreshStatsCmd()()
			})
		}
		return m, nil

	case clearFlashMsg:
		m.flash = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()

	switch s {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "d":
		m.debug = !m.debug
		w, h := m.canvasSize()
		if m.frame != nil {
			m.frame.Resize(w, h)
		}
		for _, e := range m.stack {
			e.Resize(w, h)
		}
		if m.debug {
			return m, refreshStatsCmd()
		}
		return m, nil
	case " ":
		m.paused = !m.paused
		if !m.paused && len(m.stack) > 0 {
			m.lastStep = time.Time{}
			return m, m.tickCmd()
		}
		return m, nil
	}

	// The remaining keys are debug controls.
	if !m.debug {
		return m, nil
	}

	switch s {
	case "r":
		m.override = holiday.None
		m.forced = false
		m.flash = "auto-detection restored"
		return m, tea.Batch(m.redetect(), flashCmd())
	case "c":
		m.cache.Clear()
		m.flash = "detection cache cleared"
		return m, flashCmd()
	case "y":
		snapshot, err := json.MarshalIndent(m.debugSnapshot(), "", "  ")
		if err == nil {
			err = clipboard.WriteAll(string(snapshot))
		}
		if err != nil {
			m.flash = fmt.Sprintf("copy failed: %v", err)
		} else {
			m.flash = "snapshot copied to clipboard"
		}
		return m, flashCmd()
	}

	if target, ok := forceTargets[s]; ok {
		id, _ := holiday.ParseID(target)
		m.override = id
		m.forced = true
		if id == holiday.None {
			m.flash = "effects forced off"
		} else {
			m.flash = "forced " + m.detector.Registry().DisplayName(id)
		}
		return m, tea.Batch(m.redetect(), flashCmd())
	}

	return m, nil
}

// debugSnapshot is the JSON document the "y" key puts on the clipboard.
func (m Model) debugSnapshot() map[string]any {
	return map[string]any{
		"version":   Version,
		"detection": m.detection,
		"settings":  m.detector.Settings(),
		"info":      m.info,
		"fps":       m.fps,
		"terminal":  map[string]int{"width": m.width, "height": m.height},
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing festive..."
	}

	var b strings.Builder

	if len(m.stack) > 0 {
		m.frame.Clear()
		for _, e := range m.stack {
			e.Render(m.frame)
		}
		b.WriteString(m.frame.View())
	} else {
		b.WriteString(m.idleView())
	}
	b.WriteString("\n")

	if m.debug {
		b.WriteString(m.debugView())
		b.WriteString("\n")
	}

	b.WriteString(m.statusView())
	return b.String()
}

// idleView fills the canvas with a centered note on why nothing animates.
func (m Model) idleView() string {
	_, h := m.canvasSize()
	if h == 0 {
		return ""
	}

	reason := "No holiday today"
	switch {
	case m.forced && m.override == holiday.None:
		reason = "Effects forced off"
	case !m.detector.Settings().Enabled:
		reason = "Effects disabled in ~/.festive.conf"
	case m.detection.Holiday != holiday.None && !m.info.ShowEffects:
		reason = "Effects suppressed for this display"
	case m.detection.Holiday != holiday.None && m.paused:
		reason = "Paused"
	}

	lines := make([]string, h)
	mid := h / 2
	for i := range lines {
		if i == mid {
			pad := (m.width - len(reason)) / 2
			if pad < 0 {
				pad = 0
			}
			lines[i] = strings.Repeat(" ", pad) + idleStyle.Render(reason)
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) statusView() string {
	name := m.detector.Registry().DisplayName(m.detection.Holiday)

	var parts []string
	parts = append(parts, holidayNameStyle.Render(name))
	if m.detection.Config != nil {
		parts = append(parts, dimStyle.Render(m.detection.Config.Window()))
	}
	if m.detection.ManualOverride {
		parts = append(parts, overrideStyle.Render("[override]"))
	}
	if m.paused {
		parts = append(parts, overrideStyle.Render("[paused]"))
	}
	if m.flash != "" {
		parts = append(parts, flashStyle.Render(m.flash))
	}
	parts = append(parts, dimStyle.Render(m.help.View(m.keys)))

	return statusStyle.Render(strings.Join(parts, "  "))
}
