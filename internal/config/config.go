// Package config defines pipeline configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// TimezoneAuto selects the historical relocation rule instead of a fixed
// hour offset.
const TimezoneAuto = "auto"

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// GarminDir is the directory containing the DI_CONNECT export tree.
	GarminDir string `koanf:"garmin_dir"`

	// TogglDir is the directory holding the Toggl CSV exports.
	TogglDir string `koanf:"toggl_dir"`

	// HabitFile is the Nomie event export (.json or .csv).
	HabitFile string `koanf:"habit_file"`

	// OutputDir receives the canonical TSV files.
	OutputDir string `koanf:"output_dir"`

	// TimezoneOffset is "auto" or a fixed GMT offset in whole hours.
	TimezoneOffset string `koanf:"timezone_offset"`

	// ClientsInclude narrows timesheet aggregation to these clients.
	ClientsInclude []string `koanf:"clients_include"`

	// ClientsExclude removes these clients after the include pass.
	ClientsExclude []string `koanf:"clients_exclude"`

	// Emojis overrides the default substance symbol set for the habit
	// daily counts. Empty keeps the default.
	Emojis []string `koanf:"emojis"`
}

// New creates a Config using defaults mirroring the export layout the
// pipeline was built around. Context is accepted first to satisfy the
// project-wide convention; it is reserved for future use and currently
// unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:       "info",
		GarminDir:      "raw-data/garmin-export/data",
		TogglDir:       "raw-data/toggl-export/data",
		HabitFile:      "raw-data/nomie-export/data/nomie-events.json",
		OutputDir:      "data",
		TimezoneOffset: TimezoneAuto,
	}
}
