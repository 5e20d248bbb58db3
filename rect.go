package kdtree

import (
	"math"
	"slices"
)

// HyperRectangle is an axis-aligned bounding box: Mins[d] <= Maxes[d] for
// every dimension d.
type HyperRectangle struct {
	Mins  []float64
	Maxes []float64
}

// boundingRectangle computes the tight bounds of the n points stored
// row-by-row in data.
func boundingRectangle(data []float64, n, dims int) HyperRectangle {
	r := HyperRectangle{
		Mins:  make([]float64, dims),
		Maxes: make([]float64, dims),
	}
	for d := 0; d < dims; d++ {
		r.Mins[d] = math.Inf(1)
		r.Maxes[d] = math.Inf(-1)
	}
	for i := 0; i < n; i++ {
		pt := data[i*dims : (i+1)*dims]
		for d, v := range pt {
			if v < r.Mins[d] {
				r.Mins[d] = v
			}
			if v > r.Maxes[d] {
				r.Maxes[d] = v
			}
		}
	}
	return r
}

// Clone returns a deep copy of r.
func (r HyperRectangle) Clone() HyperRectangle {
	return HyperRectangle{Mins: slices.Clone(r.Mins), Maxes: slices.Clone(r.Maxes)}
}

// Contains reports whether point lies inside r, boundaries included.
func (r HyperRectangle) Contains(point []float64) bool {
	for d, v := range point {
		if v < r.Mins[d] || v > r.Maxes[d] {
			return false
		}
	}
	return true
}

// widestDimension returns the dimension with the largest spread. Ties go
// to the lowest dimension index.
func (r HyperRectangle) widestDimension() int {
	splitDim := 0
	maxSpread := -1.0
	for d := range r.Mins {
		if spread := r.Maxes[d] - r.Mins[d]; spread > maxSpread {
			maxSpread = spread
			splitDim = d
		}
	}
	return splitDim
}

// minDistance returns the accumulated distance from point to the closest
// point of r; zero when point is inside r.
func minDistance[M DistanceMetric](m M, r HyperRectangle, point []float64) float64 {
	var acc float64
	for d, v := range point {
		var gap float64
		if v < r.Mins[d] {
			gap = r.Mins[d] - v
		} else if v > r.Maxes[d] {
			gap = v - r.Maxes[d]
		}
		acc = m.Combine(acc, m.Contribution(gap))
	}
	return acc
}
