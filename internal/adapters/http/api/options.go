package api

import "github.com/okian/scorecard/pkg/logger"

// Option configures a Server.
type Option func(*options)

type options struct {
	logger       logger.Logger
	maxBodyBytes int64
}

// WithLogger sets the logger handlers report rejected requests to.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxBodyBytes caps the size of a request body.
func WithMaxBodyBytes(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBodyBytes = n
		}
	}
}
