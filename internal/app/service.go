// Package service provides the pipeline service that runs a full daygrid
// pass: read every export, normalize per domain, reconcile, and write the
// canonical TSV tables.
package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/avagyan/daygrid/internal/adapters/export/garmin"
	"github.com/avagyan/daygrid/internal/adapters/export/nomie"
	"github.com/avagyan/daygrid/internal/adapters/export/toggl"
	"github.com/avagyan/daygrid/internal/domain/timezone"
	"github.com/avagyan/daygrid/internal/domain/types"
	"github.com/avagyan/daygrid/internal/merge"
	"github.com/avagyan/daygrid/internal/normalize"
	"github.com/avagyan/daygrid/internal/table"
	"github.com/avagyan/daygrid/pkg/logger"
	"github.com/avagyan/daygrid/pkg/metrics"
)

// Canonical output file names. Each run regenerates these wholesale; they
// are never mutated after write.
const (
	GarminDailyFile      = "garmin_daily.tsv"
	GarminSleepFile      = "garmin_sleep.tsv"
	GarminActivitiesFile = "garmin_activities.tsv"
	GarminStressFile     = "garmin_stress.tsv"
	BusinessHoursFile    = "business_hours.tsv"
	HabitEventsFile      = "habit_events.tsv"
	HabitDailyCountsFile = "habit_daily_counts.tsv"
)

// Service runs the normalization/reconciliation pipeline. All state is
// fixed at construction; Run is synchronous and single-threaded.
type Service struct {
	garminDir string
	togglDir  string
	habitFile string
	outputDir string

	tz           timezone.Corrector
	clientFilter normalize.ClientFilter
	emojis       []string

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithGarminDir sets the directory containing the DI_CONNECT export tree.
func WithGarminDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.garminDir = dir
		}
	}
}

// WithTogglDir sets the directory holding the Toggl CSV exports.
func WithTogglDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.togglDir = dir
		}
	}
}

// WithHabitFile sets the Nomie event export file.
func WithHabitFile(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.habitFile = path
		}
	}
}

// WithOutputDir sets the directory receiving the canonical TSV files.
func WithOutputDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.outputDir = dir
		}
	}
}

// WithTimezone sets the GMT-to-local corrector for sleep timestamps.
func WithTimezone(tz timezone.Corrector) Option {
	return func(s *Service) {
		s.tz = tz
	}
}

// WithClientFilter sets the timesheet include/exclude client lists.
func WithClientFilter(include, exclude []string) Option {
	return func(s *Service) {
		s.clientFilter = normalize.ClientFilter{Include: include, Exclude: exclude}
	}
}

// WithEmojis overrides the symbol set the habit daily counts filter on.
func WithEmojis(emojis []string) Option {
	return func(s *Service) {
		if len(emojis) > 0 {
			s.emojis = emojis
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		garminDir: "raw-data/garmin-export/data",
		togglDir:  "raw-data/toggl-export/data",
		habitFile: "raw-data/nomie-export/data/nomie-events.json",
		outputDir: "data",
		tz:        timezone.Auto(),
		emojis:    nomie.DefaultSubstanceEmojis(),
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// Run executes the whole pipeline once. A domain whose export is absent
// contributes an empty table and the run continues; a malformed file in a
// present export aborts the run.
func (s *Service) Run(ctx context.Context) error {
	start := time.Now()
	runID := uuid.NewString()
	log := s.logger
	log.Info(ctx, "starting pipeline run",
		logger.String("run_id", runID),
		logger.String("output_dir", s.outputDir))

	if err := s.runGarmin(ctx); err != nil {
		return err
	}
	if err := s.runTimesheet(ctx); err != nil {
		return err
	}
	if err := s.runHabits(ctx); err != nil {
		return err
	}

	elapsed := time.Since(start)
	metrics.ObserveRunDuration(elapsed)
	log.Info(ctx, "pipeline run finished",
		logger.String("run_id", runID),
		logger.Float64("elapsed_s", elapsed.Seconds()))
	return nil
}

func (s *Service) runGarmin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	reader := garmin.NewReader(s.garminDir)

	daily, err := reader.DailyAggregates()
	if err != nil {
		return fmt.Errorf("garmin daily aggregates: %w", err)
	}
	metrics.RecordsRead("garmin_daily", len(daily))

	sleep, err := reader.Sleep()
	if err != nil {
		return fmt.Errorf("garmin sleep: %w", err)
	}
	metrics.RecordsRead("garmin_sleep", len(sleep))
	if s.tz.Auto() {
		s.logger.Debug(ctx, "sleep timezone: auto-detect relocation rule")
	}

	activities, err := reader.Activities()
	if err != nil {
		return fmt.Errorf("garmin activities: %w", err)
	}
	metrics.RecordsRead("garmin_activities", len(activities))

	stress, err := reader.Stress()
	if err != nil {
		return fmt.Errorf("garmin stress: %w", err)
	}
	metrics.RecordsRead("garmin_stress", len(stress))
	// Daily records without a TOTAL aggregator are absent-for-that-day.
	if skipped := len(daily) - len(stress); skipped > 0 {
		metrics.RecordsSkipped("garmin_stress", skipped)
	}

	dailyTable := normalize.DailyAggregates(daily)
	sleepTable := normalize.Sleep(sleep, s.tz)

	merged, err := merge.Tables(types.ColDate, dailyTable, sleepTable)
	if err != nil {
		return fmt.Errorf("merge daily and sleep: %w", err)
	}
	merged = merge.WithFloorsClimbed(merged)

	if err := s.writeTable(ctx, GarminDailyFile, merged); err != nil {
		return err
	}
	if err := s.writeTable(ctx, GarminSleepFile, normalize.WithSleepDuration(sleepTable)); err != nil {
		return err
	}
	if err := s.writeTable(ctx, GarminActivitiesFile, normalize.ActivityCounts(activities)); err != nil {
		return err
	}
	return s.writeTable(ctx, GarminStressFile, normalize.Stress(stress))
}

func (s *Service) runTimesheet(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entries, err := toggl.NewReader(s.togglDir).Entries()
	if err != nil {
		return fmt.Errorf("timesheet: %w", err)
	}
	metrics.RecordsRead("timesheet", len(entries))

	return s.writeTable(ctx, BusinessHoursFile, normalize.Timesheet(entries, s.clientFilter))
}

func (s *Service) runHabits(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	events, err := nomie.NewReader(s.habitFile).Events()
	if err != nil {
		return fmt.Errorf("habit log: %w", err)
	}
	metrics.RecordsRead("habit", len(events))

	if err := s.writeTable(ctx, HabitEventsFile, normalize.HabitEvents(events)); err != nil {
		return err
	}
	return s.writeTable(ctx, HabitDailyCountsFile, normalize.HabitDailyCounts(events, s.emojis))
}

func (s *Service) writeTable(ctx context.Context, name string, t *table.Table) error {
	path := filepath.Join(s.outputDir, name)
	if err := table.WriteFile(path, t); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	metrics.RowsEmitted(name, t.Len())
	metrics.TableWritten()
	s.logger.Info(ctx, "wrote table",
		logger.String("file", path),
		logger.Int("rows", t.Len()))
	return nil
}
