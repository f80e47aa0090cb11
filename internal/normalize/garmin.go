package normalize

import (
	"time"

	"github.com/avagyan/daygrid/internal/domain/dedupe"
	"github.com/avagyan/daygrid/internal/domain/model"
	"github.com/avagyan/daygrid/internal/domain/timezone"
	"github.com/avagyan/daygrid/internal/domain/types"
	"github.com/avagyan/daygrid/internal/table"
)

// DailyAggregates retypes daily aggregate observations into the canonical
// per-day table. The provider already emits one record per date; repeated
// dates from overlapping snapshots resolve last-wins.
func DailyAggregates(records []model.DailyRecord) *table.Table {
	t := table.New(
		types.ColDate,
		types.ColSteps,
		types.ColMinHR,
		types.ColMinAvgHR,
		types.ColMaxAvgHR,
		types.ColMaxHR,
		types.ColRestingHR,
		types.ColFloorsM,
	)
	for _, r := range records {
		t.Append(table.Row{
			types.ColDate:      r.Date,
			types.ColSteps:     cellInt(r.Steps),
			types.ColMinHR:     cellInt(r.MinHR),
			types.ColMinAvgHR:  cellInt(r.MinAvgHR),
			types.ColMaxAvgHR:  cellInt(r.MaxAvgHR),
			types.ColMaxHR:     cellInt(r.MaxHR),
			types.ColRestingHR: cellInt(r.RestingHR),
			types.ColFloorsM:   cellFloat(r.FloorsAscendedM),
		})
	}
	return dedupe.ByKey(t, types.ColDate)
}

// Sleep converts each session's GMT endpoints to local time and emits the
// per-day sleep table. The record's measurement date selects the offset for
// both endpoints. Duration is not computed here; see WithSleepDuration.
func Sleep(records []model.SleepRecord, tz timezone.Corrector) *table.Table {
	t := table.New(types.ColDate, types.ColSleepStart, types.ColSleepEnd)
	for _, r := range records {
		t.Append(table.Row{
			types.ColDate:       r.Date,
			types.ColSleepStart: tz.ToLocal(r.StartGMT, r.Date),
			types.ColSleepEnd:   tz.ToLocal(r.EndGMT, r.Date),
		})
	}
	return dedupe.ByKey(t, types.ColDate)
}

// WithSleepDuration derives sleep_duration_h = (end - start) in float hours
// on a sleep table. Rows missing either endpoint get a nil duration.
func WithSleepDuration(t *table.Table) *table.Table {
	out := table.New(append(t.Columns(), types.ColSleepDurationH)...)
	for _, r := range t.Rows() {
		row := make(table.Row, len(r)+1)
		for k, v := range r {
			row[k] = v
		}
		start, okStart := r[types.ColSleepStart].(time.Time)
		end, okEnd := r[types.ColSleepEnd].(time.Time)
		if okStart && okEnd {
			row[types.ColSleepDurationH] = end.Sub(start).Hours()
		} else {
			row[types.ColSleepDurationH] = nil
		}
		out.Append(row)
	}
	return out
}

// ActivityCounts groups raw activity events by calendar date and emits a
// daily count. Individual durations and calories are dropped here: only
// presence matters for the canonical table.
func ActivityCounts(records []model.ActivityRecord) *table.Table {
	counts := make(map[model.Date]int, len(records))
	for _, r := range records {
		counts[model.DateOf(r.Start)]++
	}

	t := table.New(types.ColDate, types.ColActivityCount)
	for date, n := range counts {
		t.Append(table.Row{types.ColDate: date, types.ColActivityCount: n})
	}
	t.SortBy(types.ColDate)
	return t
}

// Stress retypes the TOTAL stress summaries and gap-fills the full
// inclusive date range: every calendar day between the domain's first and
// last date appears, with nil stress cells where the provider had no data.
func Stress(records []model.StressRecord) *table.Table {
	t := table.New(types.ColDate, types.ColAvgStress, types.ColMaxStress)
	for _, r := range records {
		t.Append(table.Row{
			types.ColDate:      r.Date,
			types.ColAvgStress: cellFloat(r.AvgLevel),
			types.ColMaxStress: cellFloat(r.MaxLevel),
		})
	}
	t = dedupe.ByKey(t, types.ColDate)
	if t.Empty() {
		return t
	}

	minDate, maxDate := dateBounds(t)
	calendar := table.New(types.ColDate)
	for d := minDate; !d.After(maxDate); d = d.Next() {
		calendar.Append(table.Row{types.ColDate: d})
	}

	// Left-joining the sparse table onto the calendar cannot fail: both
	// sides carry the date column.
	filled, _ := table.LeftJoin(calendar, t, types.ColDate)
	return filled
}

func dateBounds(t *table.Table) (minDate, maxDate model.Date) {
	for _, r := range t.Rows() {
		d, ok := r[types.ColDate].(model.Date)
		if !ok {
			continue
		}
		if minDate.IsZero() || d.Before(minDate) {
			minDate = d
		}
		if maxDate.IsZero() || d.After(maxDate) {
			maxDate = d
		}
	}
	return minDate, maxDate
}
