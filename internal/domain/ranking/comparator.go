// Package ranking builds deterministic multi-key orderings for entity lists.
//
// Ordering: keys are evaluated left to right and the first non-zero
// comparison decides. Every key carries an explicit null policy, so missing
// values land in a defined place regardless of direction. Sorting is stable,
// so entities that tie on every key keep their input order.
package ranking

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"time"
)

// Direction is the sort direction of a key.
type Direction int

// Directions.
const (
	Asc Direction = iota
	Desc
)

// NullPolicy places null values before or after all non-null values.
type NullPolicy int

// Null policies.
const (
	NullsLast NullPolicy = iota
	NullsFirst
)

// Key is one sort key over T.
type Key[T any] struct {
	Name      string
	Direction Direction
	Nulls     NullPolicy

	compare func(a, b T) int
}

// NewKey builds a key from an extractor and a value comparison. The
// extractor reports false for a null value.
func NewKey[T, V any](name string, extract func(T) (V, bool), compare func(a, b V) int, dir Direction, nulls NullPolicy) Key[T] {
	return Key[T]{
		Name:      name,
		Direction: dir,
		Nulls:     nulls,
		compare: func(a, b T) int {
			av, aok := extract(a)
			bv, bok := extract(b)
			switch {
			case !aok && !bok:
				return 0
			case !aok:
				return nullSign(nulls)
			case !bok:
				return -nullSign(nulls)
			}
			c := sign(compare(av, bv))
			if dir == Desc {
				c = -c
			}
			return c
		},
	}
}

// StringKey orders by a string value, byte-wise.
func StringKey[T any](name string, extract func(T) (string, bool), dir Direction, nulls NullPolicy) Key[T] {
	return NewKey(name, extract, strings.Compare, dir, nulls)
}

// FoldedStringKey orders by a string value, ignoring case.
func FoldedStringKey[T any](name string, extract func(T) (string, bool), dir Direction, nulls NullPolicy) Key[T] {
	return NewKey(name, extract, compareFolded, dir, nulls)
}

// IntKey orders by an integer value.
func IntKey[T any](name string, extract func(T) (int, bool), dir Direction, nulls NullPolicy) Key[T] {
	return NewKey(name, extract, cmp.Compare[int], dir, nulls)
}

// FloatKey orders by a float value. NaN counts as null.
func FloatKey[T any](name string, extract func(T) (float64, bool), dir Direction, nulls NullPolicy) Key[T] {
	withNaN := func(v T) (float64, bool) {
		f, ok := extract(v)
		return f, ok && !math.IsNaN(f)
	}
	return NewKey(name, withNaN, cmp.Compare[float64], dir, nulls)
}

// TimeKey orders by an instant.
func TimeKey[T any](name string, extract func(T) (time.Time, bool), dir Direction, nulls NullPolicy) Key[T] {
	return NewKey(name, extract, func(a, b time.Time) int { return a.Compare(b) }, dir, nulls)
}

// Build returns a comparator that applies keys left to right. It returns
// -1, 0 or 1.
func Build[T any](keys ...Key[T]) func(a, b T) int {
	return func(a, b T) int {
		for _, k := range keys {
			if c := k.compare(a, b); c != 0 {
				return c
			}
		}
		return 0
	}
}

// Sort returns a new slice with items stably ordered by keys. The input
// slice is left untouched.
func Sort[T any](items []T, keys ...Key[T]) []T {
	out := make([]T, len(items))
	copy(out, items)
	slices.SortStableFunc(out, Build(keys...))
	return out
}

func nullSign(p NullPolicy) int {
	if p == NullsFirst {
		return -1
	}
	return 1
}

func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	default:
		return 0
	}
}

func compareFolded(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
