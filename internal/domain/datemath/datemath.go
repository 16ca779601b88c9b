// Package datemath provides the date arithmetic shared by every timeline
// computation. All functions are pure and never panic on bad input.
package datemath

import (
	"math"
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// Accepted layouts, tried in order. Layouts without a zone are read as UTC.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Number is the set of numeric types PercentOfRange accepts.
type Number interface {
	~int | ~int32 | ~int64 | ~float64
}

// Parse converts a raw instant to a time. Offsets may be written with or
// without a colon (+10:00 or +1000). The second result is false when raw is
// empty or does not match any accepted layout.
func Parse(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if t.Year() < 1 || t.Year() > 9999 {
			return time.Time{}, false
		}
		return t, true
	}
	return time.Time{}, false
}

// IsValidInstant reports whether raw parses to a point in time.
func IsValidInstant(raw string) bool {
	_, ok := Parse(raw)
	return ok
}

// DaysBetween returns the absolute number of whole days between a and b.
// Partial days are truncated.
func DaysBetween(a, b time.Time) int {
	if a.After(b) {
		a, b = b, a
	}
	secs := b.Unix() - a.Unix()
	if b.Nanosecond() < a.Nanosecond() {
		secs--
	}
	return int(secs / secondsPerDay)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// PercentOfRange returns elapsed as a percentage of total clamped to
// [0, 100], or nil when either argument is nil or total is not positive.
func PercentOfRange[N Number](elapsed, total *N) *float64 {
	if elapsed == nil || total == nil || *total <= 0 {
		return nil
	}
	pct := Clamp(float64(*elapsed)/float64(*total)*100, 0, 100)
	return &pct
}
