package timeline

import "math"

// Field names as they appear on the wire.
const (
	FieldStatus          = "status"
	FieldDaysElapsed     = "daysElapsed"
	FieldDaysTotal       = "daysTotal"
	FieldDaysRemaining   = "daysRemaining"
	FieldProgressPercent = "progressPercent"
)

// Reconcile merges a locally computed timeline with a supplied one, field by
// field. The supplied value wins whenever it is well-formed; the computed
// value fills in wherever the supplied one is missing or not a number. An
// unknown supplied status only wins when the computed status is unknown too.
func Reconcile(computed, supplied Timeline) Timeline {
	out := Timeline{
		Status:          supplied.Status,
		DaysElapsed:     pickInt(supplied.DaysElapsed, computed.DaysElapsed),
		DaysTotal:       pickInt(supplied.DaysTotal, computed.DaysTotal),
		DaysRemaining:   pickInt(supplied.DaysRemaining, computed.DaysRemaining),
		ProgressPercent: pickFloat(supplied.ProgressPercent, computed.ProgressPercent),
	}
	if ParseStatus(string(supplied.Status)) == StatusUnknown {
		out.Status = StatusUnknown
		if computed.Status != StatusUnknown {
			out.Status = computed.Status
		}
	}
	return out
}

// ReconcilePtr is Reconcile for an optional supplied timeline. A nil
// supplied timeline leaves computed unchanged.
func ReconcilePtr(computed Timeline, supplied *Timeline) Timeline {
	if supplied == nil {
		return computed
	}
	return Reconcile(computed, *supplied)
}

// Fallbacks lists the fields of supplied that Reconcile would replace with
// computed values. A nil supplied timeline falls back on every field, except
// status when the computed status is unknown as well.
func Fallbacks(computed Timeline, supplied *Timeline) []string {
	if supplied == nil {
		supplied = &Timeline{Status: StatusUnknown}
	}
	var out []string
	if ParseStatus(string(supplied.Status)) == StatusUnknown && computed.Status != StatusUnknown {
		out = append(out, FieldStatus)
	}
	if supplied.DaysElapsed == nil {
		out = append(out, FieldDaysElapsed)
	}
	if supplied.DaysTotal == nil {
		out = append(out, FieldDaysTotal)
	}
	if supplied.DaysRemaining == nil {
		out = append(out, FieldDaysRemaining)
	}
	if !usable(supplied.ProgressPercent) {
		out = append(out, FieldProgressPercent)
	}
	return out
}

func pickInt(supplied, computed *int) *int {
	if supplied != nil {
		return intPtr(*supplied)
	}
	if computed != nil {
		return intPtr(*computed)
	}
	return nil
}

func pickFloat(supplied, computed *float64) *float64 {
	if usable(supplied) {
		return floatPtr(*supplied)
	}
	if computed != nil {
		return floatPtr(*computed)
	}
	return nil
}

// usable reports whether v is present and a finite number.
func usable(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}
