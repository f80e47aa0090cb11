// Package category buckets continuous metrics into small ordinals for the
// calendar heatmaps. Thresholds are fixed per metric except the habit
// limits, which the caller may tune. A nil input always yields a nil bucket:
// a missing measurement is categorically different from a measured zero.
package category

// Heatmap palette. The bucket-to-color assignment is part of the visual
// contract with the plotting layer.
const (
	ColorIdle = "#f5f5f5"
	ColorGood = "#99ff66"
	ColorOK   = "#f8e447"
	ColorBad  = "#f3a0bc"
)

// Steps buckets a daily step count: walking under 5k, 5-10k, over 10k.
func Steps(steps *int) *int {
	if steps == nil {
		return nil
	}
	switch {
	case *steps <= 5000:
		return bucket(1)
	case *steps <= 10000:
		return bucket(2)
	default:
		return bucket(3)
	}
}

// SleepHours buckets a night's sleep: too little, good, very good.
func SleepHours(hours *float64) *int {
	if hours == nil {
		return nil
	}
	switch {
	case *hours < 7:
		return bucket(1)
	case *hours < 8:
		return bucket(2)
	default:
		return bucket(3)
	}
}

// Activities buckets a day's activity count: none, one or two, more.
func Activities(count *int) *int {
	if count == nil {
		return nil
	}
	switch {
	case *count == 0:
		return bucket(1)
	case *count <= 2:
		return bucket(2)
	default:
		return bucket(3)
	}
}

// Stress buckets the daily average stress level (0-100 provider scale).
func Stress(level *float64) *int {
	if level == nil {
		return nil
	}
	switch {
	case *level <= 25:
		return bucket(1)
	case *level <= 40:
		return bucket(2)
	case *level <= 60:
		return bucket(3)
	default:
		return bucket(4)
	}
}

// BusinessHours buckets a day's tracked work: idle, good, okay, excessive.
func BusinessHours(hours *float64) *int {
	if hours == nil {
		return nil
	}
	switch {
	case *hours < 1:
		return bucket(1)
	case *hours <= 8:
		return bucket(2)
	case *hours <= 10:
		return bucket(3)
	default:
		return bucket(4)
	}
}

// HabitLimits are the caller-tunable thresholds for daily habit counts.
type HabitLimits struct {
	Good int // counts up to Good are fine
	Ok   int // counts up to Ok are tolerable
}

// Option applies a configuration option to HabitLimits.
type Option func(*HabitLimits)

// WithGoodLimit overrides the "good" threshold.
func WithGoodLimit(n int) Option {
	return func(l *HabitLimits) {
		if n > 0 {
			l.Good = n
		}
	}
}

// WithOkLimit overrides the "ok" threshold.
func WithOkLimit(n int) Option {
	return func(l *HabitLimits) {
		if n > 0 {
			l.Ok = n
		}
	}
}

// NewHabitLimits builds limits with the defaults used for the substance
// calendars (one a day is fine, three tolerable).
func NewHabitLimits(opts ...Option) HabitLimits {
	l := HabitLimits{Good: 1, Ok: 3}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// Habit buckets a daily habit-event count against the limits.
func Habit(count *int, limits HabitLimits) *int {
	if count == nil {
		return nil
	}
	switch {
	case *count <= limits.Good:
		return bucket(1)
	case *count <= limits.Ok:
		return bucket(2)
	default:
		return bucket(3)
	}
}

func bucket(n int) *int {
	return &n
}
