package log

import (
	"io"
	"log/slog"
	"os"
)

type LoggerConfiguration struct {
	LogLevel slog.Level
	Writer   io.Writer
	// JSON selects the JSON handler; text is the default and is what the
	// serve mode emits to stdout.
	JSON bool
}

// NewLogger builds a structured slog logger for the given sink.
func NewLogger(config *LoggerConfiguration) *slog.Logger {
	if config.Writer == nil {
		config.Writer = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level:     config.LogLevel,
		AddSource: config.LogLevel == slog.LevelDebug,
	}
	if config.JSON {
		return slog.New(slog.NewJSONHandler(config.Writer, opts))
	}
	return slog.New(slog.NewTextHandler(config.Writer, opts))
}

// SetDefault sets the default logger
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}

// G returns the global logger instance
func G() *slog.Logger {
	return slog.Default()
}

// TUI returns a logger instance scoped with the TUI component
func TUI() *slog.Logger {
	return slog.With("component", "TUI")
}

// Detection returns a logger instance scoped with the detection component
func Detection() *slog.Logger {
	return slog.With("component", "detection")
}

// API returns a logger instance scoped with the HTTP API component
func API() *slog.Logger {
	return slog.With("component", "API")
}
