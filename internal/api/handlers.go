package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/mnhtran/festive/internal/holiday"
)

// maxUpcomingDays caps the scan window of the upcoming endpoint.
const maxUpcomingDays = 366

// defaultUpcomingDays is used when the days parameter is absent.
const defaultUpcomingDays = 30

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	detector *holiday.Detector
	cache    *holiday.Cache
	logger   *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(detector *holiday.Detector, cache *holiday.Cache, logger *slog.Logger) *Handlers {
	return &Handlers{
		detector: detector,
		cache:    cache,
		logger:   logger,
	}
}

func (h *Handlers) today() time.Time {
	y, m, d := h.detector.Clock().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// todayPayload is the detection document served to pages.
type todayPayload struct {
	Holiday        holiday.ID        `json:"holiday"`
	Name           string            `json:"name"`
	Config         *holiday.Config   `json:"config,omitempty"`
	ShowEffects    bool              `json:"showEffects"`
	Intensity      holiday.Intensity `json:"intensity"`
	Compact        bool              `json:"compact"`
	ManualOverride bool              `json:"isManualOverride"`
	DetectedAt     time.Time         `json:"detectedAt"`
}

// GetToday handles GET /api/v1/holiday/today?holiday=X&reduced=1.
// The holiday parameter forces a specific holiday the same way the CLI
// flag does; "none" behaves like no override at all.
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	override := holiday.ID("")
	if raw := r.URL.Query().Get("holiday"); raw != "" {
		id, ok := holiday.ParseID(raw)
		if !ok {
			WriteBadRequest(w, fmt.Sprintf("Unknown holiday: %s", raw))
			return
		}
		override = id
	}

	date := h.today()
	detection := h.detector.Detect(date, override)
	info := h.detector.Resolve(date, override, requestEnv(r))

	if detection.Config != nil {
		h.cache.Write(detection)
	}

	WriteSuccess(w, todayPayload{
		Holiday:        detection.Holiday,
		Name:           h.detector.Registry().DisplayName(detection.Holiday),
		Config:         detection.Config,
		ShowEffects:    info.ShowEffects,
		Intensity:      info.Intensity,
		Compact:        info.Compact,
		ManualOverride: detection.ManualOverride,
		DetectedAt:     detection.DetectedAt,
	})
}

// catalogEntry pairs a config with its human-readable window.
type catalogEntry struct {
	holiday.Config
	Window string `json:"window"`
}

// GetHolidays handles GET /api/v1/holidays and returns the enabled
// catalog in registry order.
func (h *Handlers) GetHolidays(w http.ResponseWriter, r *http.Request) {
	enabled := h.detector.Registry().Enabled()
	entries := make([]catalogEntry, 0, len(enabled))
	for _, cfg := range enabled {
		entries = append(entries, catalogEntry{Config: *cfg, Window: cfg.Window()})
	}
	WriteSuccess(w, entries)
}

// GetUpcoming handles GET /api/v1/holidays/upcoming?days=N.
func (h *Handlers) GetUpcoming(w http.ResponseWriter, r *http.Request) {
	days := defaultUpcomingDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			WriteBadRequest(w, fmt.Sprintf("days must be a non-negative integer, got %q", raw))
			return
		}
		days = parsed
	}
	if days > maxUpcomingDays {
		days = maxUpcomingDays
	}

	upcoming := h.detector.Upcoming(days)
	entries := make([]catalogEntry, 0, len(upcoming))
	for _, cfg := range upcoming {
		entries = append(entries, catalogEntry{Config: *cfg, Window: cfg.Window()})
	}
	WriteSuccess(w, map[string]any{
		"days":     days,
		"holidays": entries,
	})
}
