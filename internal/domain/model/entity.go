// Package model contains the records exchanged with the data-fetch layer
// and the annotated views handed to the rendering layer.
package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// ID identifies an entity. Upstream sends ids as JSON strings or numbers;
// both decode to the same textual form.
type ID string

// UnmarshalJSON accepts a string, a number or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON writes integral ids as numbers and everything else as strings.
func (id ID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Instant is a raw, unvalidated point in time as supplied upstream. The
// empty value means absent.
type Instant string

// UnmarshalJSON never fails on a scalar: strings are kept verbatim, numbers
// are read as Unix milliseconds, and null or other values leave the instant
// absent or unparseable.
func (in *Instant) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*in = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*in = Instant(s)
		return nil
	}
	if ms, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		*in = Instant(time.UnixMilli(ms).UTC().Format(time.RFC3339Nano))
		return nil
	}
	// Kept as-is so that validation reports it as malformed.
	*in = Instant(strings.TrimSpace(string(data)))
	return nil
}

// CountOf returns the value of an optional count, or zero when it is absent.
func CountOf(c *int) int {
	if c == nil {
		return 0
	}
	return *c
}
