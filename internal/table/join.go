package table

import "fmt"

// OuterJoin joins two tables on the key column, keeping every key present in
// either side. A key missing from one side yields nil cells for that side's
// columns. Inputs are expected to be unique on the key (per-day tables); if
// the right side repeats a key, its last row wins.
//
// Column order: left columns first, then right columns not already present.
// Row order: left keys in left order, then right-only keys in right order.
func OuterJoin(left, right *Table, on string) (*Table, error) {
	if err := checkKey(left, on); err != nil {
		return nil, err
	}
	if err := checkKey(right, on); err != nil {
		return nil, err
	}

	out := New(mergeColumns(left.cols, right.cols)...)

	rightByKey := make(map[any]Row, right.Len())
	for _, r := range right.rows {
		rightByKey[r[on]] = r
	}

	matched := make(map[any]bool, left.Len())
	for _, lr := range left.rows {
		key := lr[on]
		merged := cloneRow(lr)
		if rr, ok := rightByKey[key]; ok {
			matched[key] = true
			for k, v := range rr {
				if k == on {
					continue
				}
				merged[k] = v
			}
		}
		out.Append(merged)
	}

	for _, rr := range right.rows {
		if matched[rr[on]] {
			continue
		}
		out.Append(cloneRow(rr))
	}
	return out, nil
}

// LeftJoin keeps every left row and attaches right columns where the key
// matches; unmatched left rows carry nil cells for the right columns.
func LeftJoin(left, right *Table, on string) (*Table, error) {
	if err := checkKey(left, on); err != nil {
		return nil, err
	}
	if err := checkKey(right, on); err != nil {
		return nil, err
	}

	out := New(mergeColumns(left.cols, right.cols)...)

	rightByKey := make(map[any]Row, right.Len())
	for _, r := range right.rows {
		rightByKey[r[on]] = r
	}

	for _, lr := range left.rows {
		merged := cloneRow(lr)
		if rr, ok := rightByKey[lr[on]]; ok {
			for k, v := range rr {
				if k == on {
					continue
				}
				merged[k] = v
			}
		}
		out.Append(merged)
	}
	return out, nil
}

// checkKey rejects joining a non-empty table that lacks the key column.
func checkKey(t *Table, on string) error {
	if t.Empty() {
		return nil
	}
	if !t.HasColumn(on) {
		return fmt.Errorf("%w: %q", ErrMissingKeyColumn, on)
	}
	return nil
}

func mergeColumns(left, right []string) []string {
	cols := append([]string(nil), left...)
	seen := make(map[string]bool, len(left))
	for _, c := range left {
		seen[c] = true
	}
	for _, c := range right {
		if !seen[c] {
			cols = append(cols, c)
			seen[c] = true
		}
	}
	return cols
}

func cloneRow(r Row) Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
