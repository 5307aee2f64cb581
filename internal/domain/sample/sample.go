package sample

import (
	"math"
	"sort"
)

// Sample is one plotted point.
type Sample struct {
	X float64
	Y float64
}

// Set holds samples keyed by X. Writing an existing X replaces its Y.
type Set struct {
	byX map[float64]float64
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{byX: make(map[float64]float64)}
}

// Put records y for x, overwriting any earlier value for the same x.
func (s *Set) Put(x, y float64) {
	s.byX[x] = y
}

// Len returns the number of distinct X values.
func (s *Set) Len() int { return len(s.byX) }

// Samples returns the samples in ascending X order.
func (s *Set) Samples() []Sample {
	out := make([]Sample, 0, len(s.byX))
	for x, y := range s.byX {
		out = append(out, Sample{X: x, Y: y})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].X < out[j].X })
	return out
}

// Values returns parallel X and Y slices in ascending X order.
func (s *Set) Values() (xs, ys []float64) {
	samples := s.Samples()
	xs = make([]float64, len(samples))
	ys = make([]float64, len(samples))
	for i, p := range samples {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}

// Bounds returns the min and max of X and Y. ok is false for an empty set.
func (s *Set) Bounds() (minX, maxX, minY, maxY float64, ok bool) {
	if len(s.byX) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for x, y := range s.byX {
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	return minX, maxX, minY, maxY, true
}
