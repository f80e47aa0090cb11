// Package table provides the in-memory column table every pipeline stage
// operates on: ordered columns, rows of nullable cells, joins on a shared
// key column, and TSV encoding.
//
// Cell values are one of: nil (null), model.Date, time.Time, string, int,
// float64 or decimal.Decimal. A nil cell means the domain had no measurement;
// it is never conflated with a zero value.
package table

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avagyan/daygrid/internal/domain/model"
)

// Row maps column name to cell value. Missing keys read as nil cells.
type Row map[string]any

// Table is an ordered-column collection of rows.
type Table struct {
	cols []string
	rows []Row
}

// New creates an empty table with the given column order.
func New(cols ...string) *Table {
	return &Table{cols: append([]string(nil), cols...)}
}

// Columns returns a copy of the column order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.cols...)
}

// HasColumn reports whether name is one of the table's columns.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.cols {
		if c == name {
			return true
		}
	}
	return false
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return len(t.rows) == 0
}

// Append adds a row. Cells for columns the table does not declare are
// ignored when encoding.
func (t *Table) Append(r Row) {
	t.rows = append(t.rows, r)
}

// Rows returns the underlying rows. Callers must not mutate them.
func (t *Table) Rows() []Row {
	return t.rows
}

// SortBy orders rows ascending by the named column. Nil cells sort first.
func (t *Table) SortBy(col string) {
	sort.SliceStable(t.rows, func(i, j int) bool {
		return lessCell(t.rows[i][col], t.rows[j][col])
	})
}

// lessCell orders the supported cell kinds; mixed kinds never occur within
// one column of a well-formed table.
func lessCell(a, b any) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	switch av := a.(type) {
	case model.Date:
		bv, ok := b.(model.Date)
		return ok && av.Before(bv)
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Before(bv)
	case string:
		bv, ok := b.(string)
		return ok && av < bv
	case int:
		bv, ok := b.(int)
		return ok && av < bv
	case float64:
		bv, ok := b.(float64)
		return ok && av < bv
	case decimal.Decimal:
		bv, ok := b.(decimal.Decimal)
		return ok && av.LessThan(bv)
	}
	return false
}
