// Package weighting annotates entities with inclusive percentile ranks over
// one or more numeric dimensions and a combined weighting.
//
// The percentile of a value x in a collection of n values is
// round(100 * count(v <= x) / n). Ties share a rank and the largest value
// always ranks 100.
package weighting

import (
	"math"
	"slices"
	"sort"
)

// Dimension extracts one numeric value from an entity.
type Dimension[T any] struct {
	Name  string
	Value func(T) float64
}

// Weighted is an entity annotated with its percentile per dimension and the
// rounded mean of those percentiles.
type Weighted[T any] struct {
	Item              T
	Percentiles       map[string]int
	CombinedWeighting int
}

// PercentileRanks returns the inclusive percentile rank of each value, in
// input order. NaN values rank 0 and never count as <= another value.
func PercentileRanks(values []float64) []int {
	out := make([]int, len(values))
	if len(values) == 0 {
		return out
	}

	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			sorted = append(sorted, v)
		}
	}
	slices.Sort(sorted)

	n := float64(len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		// index of the first value strictly greater than v
		atOrBelow := sort.Search(len(sorted), func(j int) bool { return sorted[j] > v })
		out[i] = int(math.Round(100 * float64(atOrBelow) / n))
	}
	return out
}

// Weigh ranks items on every dimension and combines the ranks. The result
// keeps input order. With no dimensions the combined weighting is 0.
func Weigh[T any](items []T, dims ...Dimension[T]) []Weighted[T] {
	out := make([]Weighted[T], len(items))
	for i, item := range items {
		out[i] = Weighted[T]{Item: item, Percentiles: make(map[string]int, len(dims))}
	}
	if len(items) == 0 || len(dims) == 0 {
		return out
	}

	values := make([]float64, len(items))
	sums := make([]int, len(items))
	for _, dim := range dims {
		for i, item := range items {
			values[i] = dim.Value(item)
		}
		for i, rank := range PercentileRanks(values) {
			out[i].Percentiles[dim.Name] = rank
			sums[i] += rank
		}
	}
	for i := range out {
		out[i].CombinedWeighting = int(math.Round(float64(sums[i]) / float64(len(dims))))
	}
	return out
}
