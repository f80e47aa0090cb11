package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	app "github.com/avagyan/daygrid/internal/app"
	"github.com/avagyan/daygrid/internal/config"
	"github.com/avagyan/daygrid/internal/domain/timezone"
	"github.com/avagyan/daygrid/pkg/logger"
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Flags override the loaded configuration.
	garminDir := flag.String("garmin-dir", cfg.GarminDir, "directory containing the DI_CONNECT export tree")
	togglDir := flag.String("toggl-dir", cfg.TogglDir, "directory holding the Toggl CSV exports")
	habitFile := flag.String("habit-file", cfg.HabitFile, "Nomie event export (.json or .csv)")
	outputDir := flag.String("output", cfg.OutputDir, "directory receiving the canonical TSV files")
	tzOffset := flag.String("timezone-offset", cfg.TimezoneOffset, `sleep timezone offset: "auto" or whole hours from GMT`)
	include := flag.String("clients-include", strings.Join(cfg.ClientsInclude, ","), "comma-separated client include list")
	exclude := flag.String("clients-exclude", strings.Join(cfg.ClientsExclude, ","), "comma-separated client exclude list")
	emojis := flag.String("emojis", strings.Join(cfg.Emojis, ","), "comma-separated habit symbol filter (default: substance set)")
	logLevel := flag.String("log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	flag.Parse()

	cfg.GarminDir = *garminDir
	cfg.TogglDir = *togglDir
	cfg.HabitFile = *habitFile
	cfg.OutputDir = *outputDir
	cfg.TimezoneOffset = *tzOffset
	cfg.ClientsInclude = splitList(*include)
	cfg.ClientsExclude = splitList(*exclude)
	cfg.Emojis = splitList(*emojis)
	cfg.LogLevel = *logLevel
	if err := cfg.Validate(); err != nil {
		os.Stderr.WriteString("invalid flags: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	tz := timezone.Auto()
	if !cfg.TimezoneIsAuto() {
		hours, err := cfg.FixedTimezoneOffset()
		if err != nil {
			os.Stderr.WriteString("invalid timezone offset: " + err.Error() + "\n")
			os.Exit(1)
		}
		tz = timezone.Fixed(hours)
	}

	svc := app.New(
		app.WithLogger(loggerInstance),
		app.WithGarminDir(cfg.GarminDir),
		app.WithTogglDir(cfg.TogglDir),
		app.WithHabitFile(cfg.HabitFile),
		app.WithOutputDir(cfg.OutputDir),
		app.WithTimezone(tz),
		app.WithClientFilter(cfg.ClientsInclude, cfg.ClientsExclude),
		app.WithEmojis(cfg.Emojis),
	)
	if err := svc.Run(ctx); err != nil {
		loggerInstance.Error(ctx, "pipeline run failed", logger.Error(err))
		os.Exit(1)
	}
}

// splitList parses a comma-separated flag value, trimming blanks.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
