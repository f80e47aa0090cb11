// Package dedupe resolves duplicate join keys in per-day tables.
//
// Overlapping export snapshots can repeat the same calendar date across
// files; the canonical tables are strictly one row per date, so one row must
// survive. Readers scan files in filename-sorted order, which makes the
// default last-row-wins policy deterministic: the later-sorted snapshot
// overrides the earlier one.
package dedupe

import (
	"github.com/avagyan/daygrid/internal/table"
)

// Policy selects which of several same-key rows survives.
type Policy int

const (
	// LastWins keeps the row seen last in read order.
	LastWins Policy = iota
	// FirstWins keeps the row seen first.
	FirstWins
)

type folder struct {
	policy Policy
}

// ByKey collapses rows sharing a key cell down to one survivor. Row order
// follows the first appearance of each key.
func ByKey(t *table.Table, on string, opts ...Option) *table.Table {
	f := &folder{policy: LastWins}
	for _, opt := range opts {
		opt(f)
	}

	out := table.New(t.Columns()...)
	var order []any
	survivors := make(map[any]table.Row, t.Len())

	for _, r := range t.Rows() {
		key := r[on]
		if _, seen := survivors[key]; !seen {
			order = append(order, key)
			survivors[key] = r
			continue
		}
		if f.policy == LastWins {
			survivors[key] = r
		}
	}

	for _, key := range order {
		out.Append(survivors[key])
	}
	return out
}
