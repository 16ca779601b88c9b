package service

import "errors"

// Sentinel errors for request-shape failures. Malformed entity data is never
// an error; it degrades to unknown timelines and null sort keys.
var (
	ErrTooManyItems     = errors.New("too many items")
	ErrUnknownDimension = errors.New("unknown weighting dimension")
)
