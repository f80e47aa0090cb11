package garmin

import "errors"

// Sentinel kinds for export parsing errors.
var (
	ErrMissingCalendarDate = errors.New("record has no calendarDate")
	ErrBadCalendarDate     = errors.New("unrecognized calendarDate form")
)
