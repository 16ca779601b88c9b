package timeline

import "errors"

// Sentinel kinds for status order parsing.
var (
	ErrUnknownStatus   = errors.New("unknown status")
	ErrDuplicateStatus = errors.New("duplicate status")
)
