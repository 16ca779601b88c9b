package timeline

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// UnmarshalJSON decodes a timeline leniently. A field that is missing or
// malformed decodes to its unknown value instead of failing the whole
// document, since supplied timelines are untrusted field by field.
// Only a document that is not a JSON object is an error.
func (t *Timeline) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*t = Timeline{
		Status:          decodeStatus(fields[FieldStatus]),
		DaysElapsed:     decodeDays(fields[FieldDaysElapsed]),
		DaysTotal:       decodeDays(fields[FieldDaysTotal]),
		DaysRemaining:   decodeDays(fields[FieldDaysRemaining]),
		ProgressPercent: decodeNumber(fields[FieldProgressPercent]),
	}
	return nil
}

func decodeStatus(raw json.RawMessage) Status {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return StatusUnknown
	}
	return ParseStatus(s)
}

// decodeNumber accepts JSON numbers and numeric strings. NaN is kept so that
// reconciliation can see it; everything else that is not a number is nil.
func decodeNumber(raw json.RawMessage) *float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil
		}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil
	}
	return &v
}

// decodeDays accepts finite integral numbers only.
func decodeDays(raw json.RawMessage) *int {
	v := decodeNumber(raw)
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || *v != math.Trunc(*v) {
		return nil
	}
	if *v > math.MaxInt32 || *v < math.MinInt32 {
		return nil
	}
	return intPtr(int(*v))
}
