package normalize

import (
	"github.com/avagyan/daygrid/internal/domain/model"
	"github.com/avagyan/daygrid/internal/domain/types"
	"github.com/avagyan/daygrid/internal/table"
)

// HabitEvents retypes habit events into the canonical event table. This
// domain keeps one row per event, not per day; daily folding happens in
// HabitDailyCounts. Events with an unrecognized tracker keep their row with
// nil tracker/emoji cells.
func HabitEvents(events []model.HabitEvent) *table.Table {
	t := table.New(
		types.ColDate,
		types.ColStart,
		types.ColTracker,
		types.ColEmoji,
		types.ColValue,
		types.ColNote,
	)
	for _, e := range events {
		t.Append(table.Row{
			types.ColDate:    model.DateOf(e.Start),
			types.ColStart:   e.Start,
			types.ColTracker: cellString(e.Tracker),
			types.ColEmoji:   cellString(e.Emoji),
			types.ColValue:   cellFloat(e.Value),
			types.ColNote:    e.Note,
		})
	}
	return t
}

// HabitDailyCounts keeps events whose symbol is in the given set and counts
// them per calendar date. Events with no symbol never match.
func HabitDailyCounts(events []model.HabitEvent, emojis []string) *table.Table {
	wanted := make(map[string]bool, len(emojis))
	for _, e := range emojis {
		wanted[e] = true
	}

	counts := make(map[model.Date]int)
	for _, e := range events {
		if e.Emoji == nil || !wanted[*e.Emoji] {
			continue
		}
		counts[model.DateOf(e.Start)]++
	}

	t := table.New(types.ColDate, types.ColEventCount)
	for date, n := range counts {
		t.Append(table.Row{types.ColDate: date, types.ColEventCount: n})
	}
	t.SortBy(types.ColDate)
	return t
}
