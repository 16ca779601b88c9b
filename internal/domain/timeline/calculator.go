package timeline

import (
	"time"

	"github.com/itbasis/go-clock"
	"github.com/okian/scorecard/internal/domain/datemath"
)

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithClock sets the clock used to read "now".
func WithClock(c Clock) Option {
	return func(calc *Calculator) {
		if c != nil {
			calc.clock = c
		}
	}
}

// Calculator computes timelines against a clock. It reads the clock on
// every call.
type Calculator struct {
	clock Clock
}

// NewCalculator creates a calculator with configuration options. The
// default clock is the real wall clock.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{clock: clock.New()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Now returns the calculator's current instant.
func (c *Calculator) Now() time.Time {
	return c.clock.Now()
}

// Timeline computes the timeline of [start, end] at the clock's current
// instant.
func (c *Calculator) Timeline(start, end string) Timeline {
	return Compute(start, end, c.clock.Now())
}

// Compute derives the timeline of the range [start, end] as seen at now.
// Missing, malformed or inverted ranges yield an unknown timeline.
func Compute(start, end string, now time.Time) Timeline {
	s, ok := datemath.Parse(start)
	if !ok {
		return Unknown()
	}
	e, ok := datemath.Parse(end)
	if !ok {
		return Unknown()
	}
	if e.Before(s) {
		return Unknown()
	}

	total := datemath.DaysBetween(s, e)
	switch {
	case now.Before(s):
		return Timeline{
			Status:          StatusUpcoming,
			DaysElapsed:     intPtr(0),
			DaysTotal:       intPtr(total),
			DaysRemaining:   intPtr(datemath.DaysBetween(now, e)),
			ProgressPercent: floatPtr(0),
		}
	case now.After(e):
		return Timeline{
			Status:          StatusCompleted,
			DaysElapsed:     intPtr(total),
			DaysTotal:       intPtr(total),
			DaysRemaining:   intPtr(0),
			ProgressPercent: floatPtr(100),
		}
	default:
		elapsed := intPtr(datemath.DaysBetween(s, now))
		totalPtr := intPtr(total)
		return Timeline{
			Status:          StatusInProgress,
			DaysElapsed:     elapsed,
			DaysTotal:       totalPtr,
			DaysRemaining:   intPtr(datemath.DaysBetween(now, e)),
			ProgressPercent: datemath.PercentOfRange(elapsed, totalPtr),
		}
	}
}
