package kdtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundingRectangle(t *testing.T) {
	data := []float64{
		0, 5,
		-2, 3,
		4, 9,
	}
	r := boundingRectangle(data, 3, 2)
	assert.Equal(t, []float64{-2, 3}, r.Mins)
	assert.Equal(t, []float64{4, 9}, r.Maxes)
	for i := 0; i < 3; i++ {
		assert.True(t, r.Contains(data[i*2:(i+1)*2]), "point %d not inside its bounding rectangle", i)
	}
}

func TestHyperRectangle_WidestDimension(t *testing.T) {
	r := HyperRectangle{Mins: []float64{0, 0, 0}, Maxes: []float64{1, 3, 3}}
	assert.Equal(t, 1, r.widestDimension(), "first of the tied dimensions")
}

func TestHyperRectangle_CloneIsIndependent(t *testing.T) {
	r := HyperRectangle{Mins: []float64{0}, Maxes: []float64{1}}
	c := r.Clone()
	c.Mins[0] = -5
	assert.Equal(t, 0.0, r.Mins[0], "Clone shares storage with the original")
}

func TestMinDistance(t *testing.T) {
	r := HyperRectangle{Mins: []float64{0, 0}, Maxes: []float64{2, 2}}

	tests := []struct {
		name   string
		metric DistanceMetric
		point  []float64
		want   float64 // accumulated form
	}{
		{"inside", EuclideanMetric{}, []float64{1, 1}, 0},
		{"on boundary", EuclideanMetric{}, []float64{2, 0}, 0},
		{"euclidean corner", EuclideanMetric{}, []float64{5, -4}, 9 + 16},
		{"euclidean side", EuclideanMetric{}, []float64{1, 3}, 1},
		{"manhattan corner", ManhattanMetric{}, []float64{5, -4}, 3 + 4},
		{"chebyshev corner", ChebyshevMetric{}, []float64{5, -4}, 4},
		{"minkowski corner", MinkowskiMetric{P: 3}, []float64{5, -4}, 27 + 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, minDistance(tt.metric, r, tt.point), floatTol)
		})
	}
}
