package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mnhtran/festive/internal/holiday"
)

// configFileName is the user configuration file in the home directory.
const configFileName = ".festive.conf"

// Config holds the user configuration for festive: the global holiday
// switches plus where the internal log goes.
type Config struct {
	Holiday     holiday.Settings
	LogFilePath string // Custom log file path (empty means use XDG default)
}

// Load reads the configuration from ~/.festive.conf. If the file doesn't
// exist or any value cannot be parsed, the affected setting keeps its
// default. A broken config never stops the program.
func Load() (*Config, error) {
	cfg := &Config{Holiday: holiday.DefaultSettings()}

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil
	}

	file, err := os.Open(filepath.Join(home, configFileName))
	if err != nil {
		// Config file doesn't exist, return defaults
		return cfg, nil
	}
	defer func() {
		_ = file.Close() // Ignore close error on read-only file
	}()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		applyKey(cfg, strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
	}

	// FESTIVE_DEBUG opens the debug panel regardless of the config file.
	if os.Getenv("FESTIVE_DEBUG") != "" {
		cfg.Holiday.Debug = true
	}

	return cfg, nil
}

func applyKey(cfg *Config, key, value string) {
	switch key {
	case "enabled":
		if b, ok := parseBool(value); ok {
			cfg.Holiday.Enabled = b
		}
	case "respect_reduced_motion":
		if b, ok := parseBool(value); ok {
			cfg.Holiday.RespectReducedMotion = b
		}
	case "compact_effects":
		switch holiday.CompactPolicy(value) {
		case holiday.CompactFull, holiday.CompactReduced, holiday.CompactNone:
			cfg.Holiday.CompactEffects = holiday.CompactPolicy(value)
		}
	case "effect_intensity":
		switch holiday.Intensity(value) {
		case holiday.IntensityLow, holiday.IntensityMedium, holiday.IntensityHigh:
			cfg.Holiday.Intensity = holiday.Intensity(value)
		}
	case "debug":
		if b, ok := parseBool(value); ok {
			cfg.Holiday.Debug = b
		}
	case "festive_log_path":
		// Accepted as-is, validated when logging is set up
		cfg.LogFilePath = value
	}
}

func parseBool(value string) (bool, bool) {
	switch strings.ToLower(value) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	}
	return false, false
}

// CreateDefaultConfig creates a default configuration file at
// ~/.festive.conf if it doesn't already exist. It does not overwrite
// existing configurations.
func CreateDefaultConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(home, configFileName)

	// Don't overwrite existing config
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	defaultConfig := `# festive configuration file

# Master switch for seasonal effects
enabled=true

# Honor the REDUCE_MOTION / FESTIVE_REDUCE_MOTION environment variables
# and show no animation when they are set
respect_reduced_motion=true

# Effects on constrained displays (narrow terminals, mobile API clients):
# "full", "reduced" (drops intensity to low) or "none"
compact_effects=reduced

# Overall effect intensity: low, medium or high
effect_intensity=medium

# Show the debug panel without passing -debug
debug=false

# Log file path for festive internal logs
# If commented out or empty, logs go to the XDG state directory:
#   - macOS: ~/Library/Application Support/festive/festive.log
#   - Linux: ~/.local/state/festive/festive.log
# festive_log_path=
`

	return os.WriteFile(configPath, []byte(defaultConfig), 0644)
}

func (c *Config) String() string {
	return fmt.Sprintf("Enabled: %v, Intensity: %s, CompactEffects: %s",
		c.Holiday.Enabled, c.Holiday.Intensity, c.Holiday.CompactEffects)
}
