package table

import "errors"

// Sentinel kinds for table errors.
var (
	ErrMissingKeyColumn = errors.New("join key column not present")
	ErrUnsupportedCell  = errors.New("unsupported cell type")
)
