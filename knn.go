package kdtree

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
)

// Neighbor is one result of a nearest-neighbor query.
type Neighbor struct {
	ID       int     // index of the point in the input
	Distance float64 // finalized distance to the query
}

// KNN returns the k points closest to query, sorted by ascending distance.
// Points at equal distance are ordered by the traversal, which is the same
// for every query on the same tree.
//
// When k exceeds the number of points the result holds every point; this is
// not an error.
func (t *KDTree) KNN(query []float64, k int) ([]Neighbor, error) {
	return t.KNNFiltered(query, k, nil)
}

// KNNFiltered is KNN restricted to the points for which skip returns false.
// A nil skip keeps every point. The result is shorter than k when fewer
// points survive the filter.
func (t *KDTree) KNNFiltered(query []float64, k int, skip func(id int) bool) ([]Neighbor, error) {
	if err := t.validateQuery(query); err != nil {
		logQueryRejected(t.logger, "knn", slog.Int("k", k), err)
		return nil, err
	}
	if err := validateK(k); err != nil {
		logQueryRejected(t.logger, "knn", slog.Int("k", k), err)
		return nil, err
	}
	return t.knn(query, min(k, t.n), skip), nil
}

// Nearest returns the point closest to query.
func (t *KDTree) Nearest(query []float64) (Neighbor, error) {
	res, err := t.KNN(query, 1)
	if err != nil {
		return Neighbor{}, err
	}
	return res[0], nil
}

// knn dispatches on the concrete metric once so the recursive search is
// instantiated per metric type. The set is closed by DistanceMetric's
// unexported method.
func (t *KDTree) knn(query []float64, k int, skip func(int) bool) []Neighbor {
	switch m := t.metric.(type) {
	case EuclideanMetric:
		return runKNN(t, m, query, k, skip)
	case ManhattanMetric:
		return runKNN(t, m, query, k, skip)
	case ChebyshevMetric:
		return runKNN(t, m, query, k, skip)
	case MinkowskiMetric:
		return runKNN(t, m, query, k, skip)
	}
	panic(fmt.Sprintf("kdtree: unsupported metric %T", t.metric))
}

func runKNN[M DistanceMetric](t *KDTree, m M, query []float64, k int, skip func(int) bool) []Neighbor {
	s := knnSearch[M]{
		t:     t,
		m:     m,
		query: query,
		skip:  skip,
		ids:   make([]int, k),
		dists: make([]float64, k),
	}
	for i := range s.ids {
		s.ids[i] = -1
		s.dists[i] = math.Inf(1)
	}

	s.search(1, minDistance(m, t.bounds, query))

	res := make([]Neighbor, 0, k)
	for i, id := range s.ids {
		if id < 0 {
			break
		}
		res = append(res, Neighbor{ID: id, Distance: m.Finalize(s.dists[i])})
	}
	return res
}

// knnSearch is the state of one KNN query. ids and dists form a sorted
// buffer of the best candidates so far, with accumulated distances; empty
// slots hold id -1 and distance +Inf.
type knnSearch[M DistanceMetric] struct {
	t     *KDTree
	m     M
	query []float64
	skip  func(int) bool
	ids   []int
	dists []float64
}

// worst is the accumulated distance a candidate must beat.
func (s *knnSearch[M]) worst() float64 { return s.dists[len(s.dists)-1] }

// search visits node i, whose rectangle is at least minDist (accumulated)
// away from the query.
func (s *knnSearch[M]) search(i int, minDist float64) {
	t := s.t
	if t.layout.isLeaf(i) {
		s.scanLeaf(i)
		return
	}

	node := t.nodes[i]
	p := s.query[node.SplitDim]
	splitDiff := p - node.SplitVal

	var near, far int
	var gap float64 // distance from p to the node's extent along SplitDim
	if splitDiff > 0 {
		near, far = 2*i+1, 2*i
		gap = max(0, p-node.Hi)
	} else {
		near, far = 2*i, 2*i+1
		gap = max(0, node.Lo-p)
	}

	s.search(near, minDist)

	farDist := s.m.Accumulate(minDist, s.m.Difference(s.m.Contribution(gap), s.m.Contribution(splitDiff)))
	if farDist < s.worst() {
		s.search(far, farDist)
	}
}

func (s *knnSearch[M]) scanLeaf(i int) {
	t := s.t
	start, end := t.layout.leafRange(i)
	for slot := start; slot < end; slot++ {
		id := t.indices[slot]
		if s.skip != nil && s.skip(id) {
			continue
		}
		if d := s.m.ReducedDistance(s.query, t.pointAt(slot)); d < s.worst() {
			s.insert(id, d)
		}
	}
}

// insert places a candidate into the sorted buffer, dropping the current
// worst. Candidates go after any entries at the same distance.
func (s *knnSearch[M]) insert(id int, d float64) {
	pos := sort.Search(len(s.dists), func(j int) bool { return s.dists[j] > d })
	copy(s.dists[pos+1:], s.dists[pos:])
	copy(s.ids[pos+1:], s.ids[pos:])
	s.dists[pos] = d
	s.ids[pos] = id
}

func validateK(k int) error {
	if k < 1 {
		return invalidArgument("k must be >= 1, got %d", k)
	}
	return nil
}

// validateQuery checks a query point against the tree.
func (t *KDTree) validateQuery(query []float64) error {
	if len(query) != t.dims {
		return &DimensionMismatchError{Expected: t.dims, Actual: len(query)}
	}
	for d, v := range query {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalidArgument("query has non-finite coordinate %v at dimension %d", v, d)
		}
	}
	return nil
}
