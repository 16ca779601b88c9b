// Package timeline derives the canonical status/progress record of a
// time-bounded entity and reconciles it with externally supplied values.
//
// Every screen that shows a competition or season progress reads it from
// here; nothing else in the repository performs date math on entities.
package timeline

import (
	"fmt"
	"strings"
)

// Status is the lifecycle phase of a time-bounded entity.
type Status string

// Known statuses.
const (
	StatusUpcoming   Status = "upcoming"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusUnknown    Status = "unknown"
)

// ParseStatus maps a raw value to a Status. Unrecognized values are unknown.
func ParseStatus(raw string) Status {
	switch s := Status(raw); s {
	case StatusUpcoming, StatusInProgress, StatusCompleted:
		return s
	default:
		return StatusUnknown
	}
}

// StatusOrder lists statuses in display order. A status missing from the
// list sorts after every listed one.
type StatusOrder []Status

// Preset display orders.
var (
	// ActiveFirst shows running entities ahead of scheduled ones.
	ActiveFirst = StatusOrder{StatusInProgress, StatusUpcoming, StatusCompleted, StatusUnknown}
	// UpcomingFirst shows scheduled entities ahead of running ones.
	UpcomingFirst = StatusOrder{StatusUpcoming, StatusInProgress, StatusCompleted, StatusUnknown}
)

// Priority returns the position of s in the order.
func (o StatusOrder) Priority(s Status) int {
	for i, candidate := range o {
		if candidate == s {
			return i
		}
	}
	return len(o)
}

// ParseStatusOrder builds an order from status names. Names must be known
// statuses and may not repeat.
func ParseStatusOrder(names []string) (StatusOrder, error) {
	out := make(StatusOrder, 0, len(names))
	seen := make(map[Status]bool, len(names))
	for _, name := range names {
		s := Status(strings.TrimSpace(name))
		if s != StatusUnknown && ParseStatus(string(s)) == StatusUnknown {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, name)
		}
		if seen[s] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateStatus, name)
		}
		seen[s] = true
		out = append(out, s)
	}
	return out, nil
}

// Timeline is the derived status and progress of an entity. Nil numeric
// fields mean the value is not known.
type Timeline struct {
	Status          Status   `json:"status"`
	DaysElapsed     *int     `json:"daysElapsed"`
	DaysTotal       *int     `json:"daysTotal"`
	DaysRemaining   *int     `json:"daysRemaining"`
	ProgressPercent *float64 `json:"progressPercent"`
}

// Unknown returns the timeline of an entity whose dates cannot be used.
func Unknown() Timeline {
	return Timeline{Status: StatusUnknown}
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
