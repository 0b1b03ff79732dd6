package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mnhtran/festive/internal/api"
	"github.com/mnhtran/festive/internal/config"
	"github.com/mnhtran/festive/internal/holiday"
	"github.com/mnhtran/festive/internal/log"
	"github.com/mnhtran/festive/internal/tui"
)

func main() {
	holidayFlag := flag.String("holiday", "", "Force a holiday (christmas, tet, new-year, halloween, mid-autumn). 'none' disables the override.")
	serveFlag := flag.Bool("serve", false, "Run the detection HTTP API instead of the TUI.")
	upcomingFlag := flag.Int("upcoming", -1, "Print the holidays of the next N days and exit.")
	debugFlag := flag.Bool("debug", false, "Open the TUI with the debug panel visible.")
	logLevelFlag := flag.String("log-level", "", "Set log level (debug, info, warn, error). Defaults to info.")
	flag.Parse()

	logLevel := parseLogLevel(*logLevelFlag)

	override := holiday.ID("")
	if *holidayFlag != "" {
		id, ok := holiday.ParseID(*holidayFlag)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown holiday %q\n", *holidayFlag)
			os.Exit(1)
		}
		override = id
	}

	if err := config.CreateDefaultConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create default config: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Holiday.Debug = true
	}

	switch {
	case *serveFlag:
		runServe(cfg, override, logLevel)
	case *upcomingFlag >= 0:
		runUpcoming(cfg, *upcomingFlag)
	default:
		runTUI(cfg, override, logLevel)
	}
}

// runTUI is the default mode: the full-screen effect canvas.
func runTUI(cfg *config.Config, override holiday.ID, logLevel slog.Level) {
	logFile, err := setupFileLogging(logLevel, cfg.LogFilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not setup logging: %v\n", err)
	} else if logFile != nil {
		defer func() {
			if closeErr := logFile.Close(); closeErr != nil {
				slog.Error("failed to close log file", "error", closeErr)
			}
		}()
	}

	slog.Info("festive starting", "version", tui.Version, "config", cfg.String())

	detector := holiday.NewDetector(holiday.Builtin(), cfg.Holiday, nil)
	cache := holiday.NewCache(log.Detection())

	p := tea.NewProgram(
		tui.New(cfg, detector, cache, override),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	if _, err := p.Run(); err != nil {
		slog.Error("TUI error", "error", err)
		os.Exit(1)
	}

	slog.Info("festive exiting")
}

// runServe exposes detection over HTTP for pages and other clients.
func runServe(cfg *config.Config, override holiday.ID, logLevel slog.Level) {
	logger := log.NewLogger(&log.LoggerConfiguration{
		LogLevel: logLevel,
		Writer:   os.Stdout,
	})
	log.SetDefault(logger)

	if override != "" {
		// The server answers per request; a process-wide override would
		// surprise every client.
		logger.Warn("ignoring -holiday in serve mode, use the query parameter instead")
	}

	serverCfg, err := api.LoadServerConfig()
	if err != nil {
		logger.Error("invalid server configuration", "error", err)
		os.Exit(1)
	}

	detector := holiday.NewDetector(holiday.Builtin(), cfg.Holiday, nil)
	cache := holiday.NewCache(log.Detection())
	handler := api.SetupRoutes(api.NewHandlers(detector, cache, log.API()), log.API())

	logger.Info("festive API starting", "version", tui.Version, "addr", serverCfg.Addr())
	if err := api.Serve(context.Background(), serverCfg, handler, logger); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// runUpcoming prints the detection calendar and exits, for scripts and
// shell prompts.
func runUpcoming(cfg *config.Config, days int) {
	detector := holiday.NewDetector(holiday.Builtin(), cfg.Holiday, nil)

	upcoming := detector.Upcoming(days)
	if len(upcoming) == 0 {
		fmt.Printf("No holidays in the next %d days\n", days)
		return
	}
	for _, c := range upcoming {
		fmt.Printf("%-12s %-35s %s\n", c.ID, c.Name, c.Window())
	}
}
