package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Observations are raw per-export measurements as the readers found them.
// Optional numerics are pointers: a field the export omitted is nil, which
// is distinct from a measured zero everywhere downstream.

// DailyRecord is one wearable daily-aggregate observation (steps plus
// heart-rate summary, one per calendar date in the export).
type DailyRecord struct {
	Date            Date
	Steps           *int
	MinHR           *int
	MinAvgHR        *int
	MaxAvgHR        *int
	MaxHR           *int
	RestingHR       *int
	FloorsAscendedM *float64
}

// SleepRecord is one logged sleep session. Timestamps are kept in GMT as
// exported; converting them to local time is the timezone corrector's job.
// Date is the provider-assigned measurement date, not necessarily the day
// the session started.
type SleepRecord struct {
	Date     Date
	StartGMT time.Time
	EndGMT   time.Time
}

// ActivityRecord is one recorded activity. Start comes from an epoch-ms
// field; DurationMin is already converted from provider milliseconds.
type ActivityRecord struct {
	Start        time.Time
	ActivityType string
	SportType    string
	DurationMin  float64
	Calories     float64
}

// StressRecord is the whole-day "TOTAL" stress summary for one date.
type StressRecord struct {
	Date     Date
	AvgLevel *float64
	MaxLevel *float64
}

// TimesheetEntry is one time-tracking row. Hours is decimal so that sums of
// HH:MM:SS entries stay exact across a year of rows.
type TimesheetEntry struct {
	Date   Date
	Hours  decimal.Decimal
	Client string
}

// HabitEvent is one habit-tracker event. Tracker, Value and Emoji are nil
// when the note carried no recognizable marker; such rows are kept but fall
// out of emoji-based filtering.
type HabitEvent struct {
	Start   time.Time
	Note    string
	Tracker *string
	Value   *float64
	Emoji   *string
}
