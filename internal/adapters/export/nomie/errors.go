package nomie

import "errors"

// Sentinel kinds for habit-log parsing errors.
var (
	ErrUnknownFormat = errors.New("habit export must be .json or .csv")
	ErrMissingStart  = errors.New("event has no numeric start timestamp")
	ErrMissingColumn = errors.New("habit export column missing")
	ErrBadTimestamp  = errors.New("unparseable start timestamp")
)
