package toggl

import "errors"

// Sentinel kinds for timesheet parsing errors.
var (
	ErrMissingColumn = errors.New("timesheet column missing")
	ErrBadDuration   = errors.New("duration is not HH:MM:SS")
)
