package kdtree

import (
	"log/slog"
	"math"
	"slices"
)

// radiusSlack is the relative margin around the radius inside which a
// candidate's reduced distance is finalized before it is compared.
const radiusSlack = 1e-9

// InRange returns the indices of all points within radius of query,
// boundary included, in ascending order. A point is within radius exactly
// when the tree's Metric().Distance to it is <= radius.
func (t *KDTree) InRange(query []float64, radius float64) ([]int, error) {
	if err := t.validateRangeQuery(query, radius); err != nil {
		return nil, err
	}
	var ids []int
	t.inRange(query, radius, func(id int) { ids = append(ids, id) })
	slices.Sort(ids)
	return ids, nil
}

// InRangeCount returns the number of points within radius of query,
// boundary included.
func (t *KDTree) InRangeCount(query []float64, radius float64) (int, error) {
	if err := t.validateRangeQuery(query, radius); err != nil {
		return 0, err
	}
	var count int
	t.inRange(query, radius, func(int) { count++ })
	return count, nil
}

func (t *KDTree) validateRangeQuery(query []float64, radius float64) error {
	err := t.validateQuery(query)
	if err == nil {
		err = validateRadius(radius)
	}
	if err != nil {
		logQueryRejected(t.logger, "in_range", slog.Float64("radius", radius), err)
	}
	return err
}

func validateRadius(radius float64) error {
	if math.IsNaN(radius) || radius < 0 {
		return invalidArgument("radius must be >= 0, got %v", radius)
	}
	return nil
}

// inRange dispatches on the concrete metric; the set is closed by
// DistanceMetric's unexported method.
func (t *KDTree) inRange(query []float64, radius float64, emit func(id int)) {
	switch m := t.metric.(type) {
	case EuclideanMetric:
		runInRange(t, m, query, radius, emit)
	case ManhattanMetric:
		runInRange(t, m, query, radius, emit)
	case ChebyshevMetric:
		runInRange(t, m, query, radius, emit)
	case MinkowskiMetric:
		runInRange(t, m, query, radius, emit)
	}
}

func runInRange[M DistanceMetric](t *KDTree, m M, query []float64, radius float64, emit func(int)) {
	s := rangeSearch[M]{
		t:      t,
		m:      m,
		query:  query,
		radius: radius,
		inner:  m.NormalizeRadius(radius * (1 - radiusSlack)),
		outer:  m.NormalizeRadius(radius * (1 + radiusSlack)),
		emit:   emit,
	}
	s.search(1, minDistance(m, t.bounds, query))
}

// rangeSearch is the state of one radius query. inner and outer bracket
// the radius in accumulated form: reduced distances up to inner are inside,
// those beyond outer are outside, and anything between is finalized and
// compared against radius itself.
type rangeSearch[M DistanceMetric] struct {
	t      *KDTree
	m      M
	query  []float64
	radius float64
	inner  float64
	outer  float64
	emit   func(int)
}

func (s *rangeSearch[M]) search(i int, minDist float64) {
	if minDist > s.outer {
		return
	}
	t := s.t
	if t.layout.isLeaf(i) {
		s.scanLeaf(i)
		return
	}

	node := t.nodes[i]
	p := s.query[node.SplitDim]
	splitDiff := p - node.SplitVal

	var near, far int
	var gap float64
	if splitDiff > 0 {
		near, far = 2*i+1, 2*i
		gap = max(0, p-node.Hi)
	} else {
		near, far = 2*i, 2*i+1
		gap = max(0, node.Lo-p)
	}

	s.search(near, minDist)
	s.search(far, s.m.Accumulate(minDist, s.m.Difference(s.m.Contribution(gap), s.m.Contribution(splitDiff))))
}

func (s *rangeSearch[M]) scanLeaf(i int) {
	t := s.t
	start, end := t.layout.leafRange(i)
	for slot := start; slot < end; slot++ {
		if s.within(s.m.ReducedDistance(s.query, t.pointAt(slot))) {
			s.emit(t.indices[slot])
		}
	}
}

func (s *rangeSearch[M]) within(d float64) bool {
	switch {
	case d <= s.inner:
		return true
	case d > s.outer:
		return false
	default:
		return s.m.Finalize(d) <= s.radius
	}
}
