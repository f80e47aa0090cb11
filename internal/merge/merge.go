// Package merge reconciles the per-domain per-day tables into one record
// per calendar date.
package merge

import (
	"github.com/avagyan/daygrid/internal/domain/types"
	"github.com/avagyan/daygrid/internal/table"
)

// One floor of climb is roughly three meters of ascent.
const metersPerFloor = 3.0

// Tables outer-joins per-day tables on the key column. Every date present
// in any input appears exactly once; a domain without that date contributes
// nil cells. Losing a date because one domain lacks data would be a
// correctness bug, not acceptable behavior.
//
// Empty inputs are skipped rather than joined: with a single non-empty
// input the merge degenerates into passing that table through unchanged.
// The result is sorted by key.
func Tables(on string, tables ...*table.Table) (*table.Table, error) {
	var live []*table.Table
	for _, t := range tables {
		if t != nil && !t.Empty() {
			live = append(live, t)
		}
	}

	switch len(live) {
	case 0:
		return table.New(on), nil
	case 1:
		out := table.New(live[0].Columns()...)
		for _, r := range live[0].Rows() {
			out.Append(r)
		}
		out.SortBy(on)
		return out, nil
	}

	out := live[0]
	for _, t := range live[1:] {
		joined, err := table.OuterJoin(out, t, on)
		if err != nil {
			return nil, err
		}
		out = joined
	}
	out.SortBy(on)
	return out, nil
}

// WithFloorsClimbed derives floors_climbed from floors_ascended_m on the
// merged daily table. Tables without the floors column pass through
// untouched; rows without a measurement get a nil floor count.
func WithFloorsClimbed(t *table.Table) *table.Table {
	if !t.HasColumn(types.ColFloorsM) {
		return t
	}
	out := table.New(append(t.Columns(), types.ColFloorsClimbed)...)
	for _, r := range t.Rows() {
		row := make(table.Row, len(r)+1)
		for k, v := range r {
			row[k] = v
		}
		if meters, ok := r[types.ColFloorsM].(float64); ok {
			row[types.ColFloorsClimbed] = meters / metersPerFloor
		} else {
			row[types.ColFloorsClimbed] = nil
		}
		out.Append(row)
	}
	return out
}
