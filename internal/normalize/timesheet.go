package normalize

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avagyan/daygrid/internal/domain/model"
	"github.com/avagyan/daygrid/internal/domain/types"
	"github.com/avagyan/daygrid/internal/table"
)

// PersonalClientPrefix marks the personal/non-billable bucket. Entries for
// clients with this prefix never reach aggregation.
const PersonalClientPrefix = "%"

var hoursPerDay = decimal.NewFromInt(24)

// ClientFilter narrows timesheet entries by client label. Include applies
// first (empty means keep all), Exclude then removes.
type ClientFilter struct {
	Include []string
	Exclude []string
}

func (f ClientFilter) keep(client string) bool {
	if strings.HasPrefix(client, PersonalClientPrefix) {
		return false
	}
	if len(f.Include) > 0 && !contains(f.Include, client) {
		return false
	}
	return !contains(f.Exclude, client)
}

// Timesheet filters entries per the client filter, sums hours per start
// date, and wraps daily totals exceeding 24 hours.
//
// The wrap corrects a known export artifact: an entry spanning a calendar
// boundary double-counts into the wrong day. Each pass subtracts 24 from
// every total above 24; real totals are bounded, so the loop terminates.
func Timesheet(entries []model.TimesheetEntry, filter ClientFilter) *table.Table {
	sums := make(map[model.Date]decimal.Decimal, len(entries))
	for _, e := range entries {
		if !filter.keep(e.Client) {
			continue
		}
		sums[e.Date] = sums[e.Date].Add(e.Hours)
	}

	for overflowing(sums) {
		for date, h := range sums {
			if h.GreaterThan(hoursPerDay) {
				sums[date] = h.Sub(hoursPerDay)
			}
		}
	}

	t := table.New(types.ColDate, types.ColDurationH)
	for date, h := range sums {
		t.Append(table.Row{types.ColDate: date, types.ColDurationH: h})
	}
	t.SortBy(types.ColDate)
	return t
}

func overflowing(sums map[model.Date]decimal.Decimal) bool {
	for _, h := range sums {
		if h.GreaterThan(hoursPerDay) {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
