// Package normalize folds raw observations into canonical per-day tables.
//
// Every function is pure: it takes the reader's observation slice and
// returns a fresh table with one row per calendar date (habit events are the
// documented exception and stay one row per event). Duplicate-date policy is
// explicit per domain: last-wins in read order for daily aggregates, sleep
// and stress; sum for the timesheet; count for activities.
package normalize

// cellInt converts an optional observation field to a table cell.
func cellInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

// cellFloat converts an optional observation field to a table cell.
func cellFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

// cellString converts an optional observation field to a table cell.
func cellString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}
