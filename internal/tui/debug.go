package tui

import (
	"fmt"
	"strings"

	"github.com/mnhtran/festive/internal/holiday"
)

// debugPanelHeight is the number of rows the panel takes from the canvas,
// border included.
const debugPanelHeight = 10

// debugView renders the diagnostics panel: detection snapshot, frame rate,
// process cost and the next holidays on the calendar.
func (m Model) debugView() string {
	var b strings.Builder

	b.WriteString(debugTitleStyle.Render("festive " + Version))
	b.WriteString("\n")

	name := m.detector.Registry().DisplayName(m.detection.Holiday)
	source := "auto"
	if m.detection.ManualOverride {
		source = "override"
	}
	b.WriteString(fmt.Sprintf("holiday    %s (%s)\n", name, source))
	b.WriteString(fmt.Sprintf("detected   %s\n", m.detection.DetectedAt.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("effects    show=%v layers=%d intensity=%s compact=%v\n",
		m.info.ShowEffects, len(m.stack), m.info.Intensity, m.info.Compact))
	b.WriteString(fmt.Sprintf("fps        %.1f (target %s)\n", m.fps, frameRateLabel(m.info.Intensity)))

	if m.stats != nil {
		b.WriteString(fmt.Sprintf("cpu        %s   mem %s\n", m.stats.FormatCPU(), m.stats.FormatMemory()))
	} else {
		b.WriteString("cpu        sampling...\n")
	}

	if cached, ok := m.cache.Read(); ok {
		b.WriteString(fmt.Sprintf("cache      %s at %s\n",
			cached.Holiday, cached.DetectedAt.Format("15:04:05")))
	} else {
		b.WriteString("cache      empty\n")
	}

	b.WriteString("upcoming   " + m.upcomingLine(30))

	return debugPanelStyle.Width(m.width - 2).Render(b.String())
}

func frameRateLabel(in holiday.Intensity) string {
	switch in {
	case holiday.IntensityLow:
		return "12fps"
	case holiday.IntensityHigh:
		return "30fps"
	default:
		return "20fps"
	}
}

// upcomingLine summarizes the holidays activating in the next n days.
func (m Model) upcomingLine(days int) string {
	upcoming := m.detector.Upcoming(days)
	if len(upcoming) == 0 {
		return fmt.Sprintf("none in the next %d days", days)
	}
	parts := make([]string, 0, len(upcoming))
	for _, cfg := range upcoming {
		parts = append(parts, fmt.Sprintf("%s (%s)", cfg.Name, cfg.Window()))
	}
	return strings.Join(parts, ", ")
}
