// Package types contains common types used across the application
package types

// Canonical column names shared by the normalizers, the merge engine and the
// TSV output. Downstream plotting reads these headers verbatim.
const (
	ColDate = "date"

	// Wearable daily aggregates.
	ColSteps     = "steps_cnt"
	ColMinHR     = "min_hr"
	ColMinAvgHR  = "min_avg_hr"
	ColMaxAvgHR  = "max_avg_hr"
	ColMaxHR     = "max_hr"
	ColRestingHR = "resting_hr"
	ColFloorsM   = "floors_ascended_m"

	// Derived after the aggregates+sleep merge.
	ColFloorsClimbed = "floors_climbed"

	// Sleep.
	ColSleepStart     = "sleep_start"
	ColSleepEnd       = "sleep_end"
	ColSleepDurationH = "sleep_duration_h"

	// Activities.
	ColActivityCount = "activity_count"

	// Stress.
	ColAvgStress = "avg_stress_level"
	ColMaxStress = "max_stress_level"

	// Time tracking.
	ColDurationH = "duration_h"

	// Habit events.
	ColStart      = "start"
	ColTracker    = "tracker"
	ColEmoji      = "emoji"
	ColValue      = "value"
	ColNote       = "note"
	ColEventCount = "event_count"
)
