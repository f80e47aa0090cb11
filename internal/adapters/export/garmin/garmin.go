// Package garmin reads the four relevant slices of a Garmin Connect
// full-account export: daily aggregates (steps, heart rate, floors), sleep
// sessions, summarized activities, and all-day stress.
//
// Readers return raw observations in filename-sorted file order. A missing
// export subdirectory means the account had no data of that kind in the
// window and yields an empty result, not an error; a malformed file in a
// present directory is a hard error.
package garmin

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/avagyan/daygrid/internal/domain/model"
)

// Export layout constants. The DI_CONNECT tree ships inside every Garmin
// account export.
const (
	aggregatorSubdir = "DI-Connect-Aggregator"
	wellnessSubdir   = "DI-Connect-Wellness"
	fitnessSubdir    = "DI-Connect-Fitness"
	exportRootDir    = "DI_CONNECT"

	udsFilePrefix    = "UDSFile"
	sleepMarker      = "sleepData"
	activitiesMarker = "summarizedActivities"

	// Sleep timestamps are naive GMT with a fixed fractional digit.
	sleepTimestampLayout = "2006-01-02T15:04:05.0"

	// The older export generation wraps calendar dates in an object with a
	// human-readable date string.
	legacyDateLayout = "Jan 2, 2006"

	// Stress aggregator entry covering the whole day.
	totalAggregatorType = "TOTAL"

	millisPerSecond = 1000
	millisPerMinute = 60000
)

// Reader loads observations from one export root.
type Reader struct {
	root string
}

// NewReader creates a Reader over the directory containing DI_CONNECT.
func NewReader(root string) *Reader {
	return &Reader{root: root}
}

// udsRecord is one daily-aggregate JSON record. Numeric fields the export
// omitted decode to nil.
type udsRecord struct {
	CalendarDate           json.RawMessage `json:"calendarDate"`
	TotalSteps             *int            `json:"totalSteps"`
	MinHeartRate           *int            `json:"minHeartRate"`
	MinAvgHeartRate        *int            `json:"minAvgHeartRate"`
	MaxAvgHeartRate        *int            `json:"maxAvgHeartRate"`
	MaxHeartRate           *int            `json:"maxHeartRate"`
	RestingHeartRate       *int            `json:"restingHeartRate"`
	FloorsAscendedInMeters *float64        `json:"floorsAscendedInMeters"`
	AllDayStress           *allDayStress   `json:"allDayStress"`
}

type allDayStress struct {
	AggregatorList []stressAggregator `json:"aggregatorList"`
}

type stressAggregator struct {
	Type               string   `json:"type"`
	AverageStressLevel *float64 `json:"averageStressLevel"`
	MaxStressLevel     *float64 `json:"maxStressLevel"`
}

type sleepJSONRecord struct {
	CalendarDate           json.RawMessage `json:"calendarDate"`
	SleepStartTimestampGMT string          `json:"sleepStartTimestampGMT"`
	SleepEndTimestampGMT   string          `json:"sleepEndTimestampGMT"`
}

// activitiesEnvelope unwraps the one level of array/object nesting around
// the activity list.
type activitiesEnvelope []struct {
	SummarizedActivitiesExport []activityJSONRecord `json:"summarizedActivitiesExport"`
}

type activityJSONRecord struct {
	StartTimeGmt   *int64  `json:"startTimeGmt"`
	BeginTimestamp *int64  `json:"beginTimestamp"`
	ActivityType   string  `json:"activityType"`
	SportType      string  `json:"sportType"`
	Duration       float64 `json:"duration"` // provider milliseconds
	Calories       float64 `json:"calories"`
}

// DailyAggregates reads the UDSFile records into daily observations.
func (r *Reader) DailyAggregates() ([]model.DailyRecord, error) {
	var out []model.DailyRecord
	err := r.eachUDSRecord(func(file string, rec udsRecord) error {
		date, err := parseCalendarDate(rec.CalendarDate)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		out = append(out, model.DailyRecord{
			Date:            date,
			Steps:           rec.TotalSteps,
			MinHR:           rec.MinHeartRate,
			MinAvgHR:        rec.MinAvgHeartRate,
			MaxAvgHR:        rec.MaxAvgHeartRate,
			MaxHR:           rec.MaxHeartRate,
			RestingHR:       rec.RestingHeartRate,
			FloorsAscendedM: rec.FloorsAscendedInMeters,
		})
		return nil
	})
	return out, err
}

// Stress reads the UDSFile records, keeping only the whole-day TOTAL stress
// aggregator. Records without one are skipped: absent-for-that-day, not an
// error.
func (r *Reader) Stress() ([]model.StressRecord, error) {
	var out []model.StressRecord
	err := r.eachUDSRecord(func(file string, rec udsRecord) error {
		if rec.AllDayStress == nil {
			return nil
		}
		for _, agg := range rec.AllDayStress.AggregatorList {
			if agg.Type != totalAggregatorType {
				continue
			}
			date, err := parseCalendarDate(rec.CalendarDate)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			out = append(out, model.StressRecord{
				Date:     date,
				AvgLevel: agg.AverageStressLevel,
				MaxLevel: agg.MaxStressLevel,
			})
			break
		}
		return nil
	})
	return out, err
}

// Sleep reads the sleepData records. Timestamps stay in GMT; the timezone
// corrector converts them downstream.
func (r *Reader) Sleep() ([]model.SleepRecord, error) {
	files, err := r.listFiles(wellnessSubdir, func(name string) bool {
		return strings.Contains(name, sleepMarker)
	})
	if err != nil {
		return nil, err
	}

	var out []model.SleepRecord
	for _, file := range files {
		var records []sleepJSONRecord
		if err := decodeJSONFile(file, &records); err != nil {
			return nil, err
		}
		for _, rec := range records {
			date, err := parseCalendarDate(rec.CalendarDate)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			start, err := time.Parse(sleepTimestampLayout, rec.SleepStartTimestampGMT)
			if err != nil {
				return nil, fmt.Errorf("%s: sleep start: %w", file, err)
			}
			end, err := time.Parse(sleepTimestampLayout, rec.SleepEndTimestampGMT)
			if err != nil {
				return nil, fmt.Errorf("%s: sleep end: %w", file, err)
			}
			out = append(out, model.SleepRecord{Date: date, StartGMT: start, EndGMT: end})
		}
	}
	return out, nil
}

// Activities reads the summarized-activities file(s). Activity start is
// epoch milliseconds truncated to whole seconds; duration converts from
// milliseconds to minutes at read time. Records without a start timestamp
// are skipped.
func (r *Reader) Activities() ([]model.ActivityRecord, error) {
	files, err := r.listFiles(fitnessSubdir, func(name string) bool {
		return strings.Contains(name, activitiesMarker) && strings.HasSuffix(name, ".json")
	})
	if err != nil {
		return nil, err
	}

	var out []model.ActivityRecord
	for _, file := range files {
		var envelope activitiesEnvelope
		if err := decodeJSONFile(file, &envelope); err != nil {
			return nil, err
		}
		for _, wrapper := range envelope {
			for _, act := range wrapper.SummarizedActivitiesExport {
				startMS := act.StartTimeGmt
				if startMS == nil {
					startMS = act.BeginTimestamp
				}
				if startMS == nil {
					continue
				}
				out = append(out, model.ActivityRecord{
					Start:        time.Unix(*startMS/millisPerSecond, 0).UTC(),
					ActivityType: orUnknown(act.ActivityType),
					SportType:    orUnknown(act.SportType),
					DurationMin:  act.Duration / millisPerMinute,
					Calories:     act.Calories,
				})
			}
		}
	}
	return out, nil
}

// eachUDSRecord walks every record of every UDSFile in filename order.
func (r *Reader) eachUDSRecord(fn func(file string, rec udsRecord) error) error {
	files, err := r.listFiles(aggregatorSubdir, func(name string) bool {
		return strings.HasPrefix(name, udsFilePrefix)
	})
	if err != nil {
		return err
	}
	for _, file := range files {
		var records []udsRecord
		if err := decodeJSONFile(file, &records); err != nil {
			return err
		}
		for _, rec := range records {
			if err := fn(file, rec); err != nil {
				return err
			}
		}
	}
	return nil
}

// listFiles returns the matching files of one DI_CONNECT subdirectory in
// filename-sorted order. An absent subdirectory yields no files and no
// error: the export simply has no data of that kind.
func (r *Reader) listFiles(subdir string, match func(string) bool) ([]string, error) {
	dir := filepath.Join(r.root, exportRootDir, subdir)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !match(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func decodeJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// parseCalendarDate dispatches on the detected export generation: the
// current schema writes a plain ISO string, the legacy one an object
// carrying a human-readable date. Either way one normalized Date comes back.
func parseCalendarDate(raw json.RawMessage) (model.Date, error) {
	trimmed := strings.TrimSpace(string(raw))
	switch {
	case trimmed == "" || trimmed == "null":
		return model.Date{}, ErrMissingCalendarDate
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return model.Date{}, fmt.Errorf("%w: %w", ErrBadCalendarDate, err)
		}
		d, err := model.ParseDate(s)
		if err != nil {
			return model.Date{}, fmt.Errorf("%w: %w", ErrBadCalendarDate, err)
		}
		return d, nil
	case trimmed[0] == '{':
		var legacy struct {
			Date string `json:"date"`
		}
		if err := json.Unmarshal(raw, &legacy); err != nil {
			return model.Date{}, fmt.Errorf("%w: %w", ErrBadCalendarDate, err)
		}
		t, err := time.Parse(legacyDateLayout, legacy.Date)
		if err != nil {
			return model.Date{}, fmt.Errorf("%w: %w", ErrBadCalendarDate, err)
		}
		return model.DateOf(t), nil
	}
	return model.Date{}, fmt.Errorf("%w: %s", ErrBadCalendarDate, trimmed)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
