package kdtree

import (
	"log/slog"
	"math"
	"slices"
)

// SplitNode is an internal node of the tree. Points reachable through the
// left child have coordinate SplitDim <= SplitVal, points reachable through
// the right child have it >= SplitVal.
//
// Lo and Hi are the bounds of the node's own rectangle along SplitDim, before
// the split narrows it for the children. Queries use them to bound the
// distance to the far side without rebuilding the rectangle.
type SplitNode struct {
	Lo, Hi   float64
	SplitVal float64
	SplitDim int
}

// KDTree is an immutable KD-tree over a fixed set of points. It answers
// k-nearest-neighbor and radius queries under the metric it was built with.
//
// Points are kept in a flat row-major array. The tree itself is implicit:
// SplitNodes live in an array indexed from 1 (children of node i are 2i and
// 2i+1) and leaves are not materialized.
//
// A KDTree is safe for concurrent use by multiple goroutines.
type KDTree struct {
	data      []float64 // flat row-major point data (n * dims)
	n         int       // number of points
	dims      int       // dimensionality
	leafSize  int
	metric    DistanceMetric
	layout    treeLayout
	bounds    HyperRectangle
	nodes     []SplitNode // nodes[1..nInternal]; nodes[0] is unused
	indices   []int       // permutation: storage slot → original index
	slots     []int       // inverse of indices, only when reordered
	reordered bool
	logger    *slog.Logger
}

// New builds a KDTree from points, one slice per point. All points must have
// the same, non-zero dimensionality and finite coordinates. The input is
// copied; the caller may reuse it afterwards.
//
// Zero-valued cfg fields take their defaults (see [Config]), so a LeafSize of
// 0 builds with DefaultLeafSize rather than failing; a negative LeafSize
// fails with ErrInvalidArgument.
func New(points [][]float64, cfg Config) (*KDTree, error) {
	applyDefaults(&cfg)

	n := len(points)
	if n == 0 {
		err := invalidInput("no points")
		logBuildRejected(cfg.Logger, 0, 0, err)
		return nil, err
	}
	dims := len(points[0])
	flat := make([]float64, 0, n*dims)
	for i, p := range points {
		if len(p) != dims {
			err := invalidInput("point %d has %d coordinates, want %d", i, len(p), dims)
			logBuildRejected(cfg.Logger, n, dims, err)
			return nil, err
		}
		flat = append(flat, p...)
	}
	return build(flat, n, dims, cfg)
}

// NewFromFlat builds a KDTree from row-major data holding len(data)/dims
// points. When cfg.Reorder is false the tree references data directly
// instead of copying it, and data must not be modified for the lifetime
// of the tree.
func NewFromFlat(data []float64, dims int, cfg Config) (*KDTree, error) {
	applyDefaults(&cfg)

	if dims <= 0 {
		err := invalidInput("dimensionality must be > 0, got %d", dims)
		logBuildRejected(cfg.Logger, 0, dims, err)
		return nil, err
	}
	if len(data)%dims != 0 {
		err := invalidInput("data length %d is not a multiple of dims %d", len(data), dims)
		logBuildRejected(cfg.Logger, 0, dims, err)
		return nil, err
	}
	return build(data, len(data)/dims, dims, cfg)
}

// build validates the input and runs the builder over n points of row-major
// data.
func build(data []float64, n, dims int, cfg Config) (*KDTree, error) {
	if err := validateInput(data, n, dims, &cfg); err != nil {
		logBuildRejected(cfg.Logger, n, dims, err)
		return nil, err
	}

	layout := newTreeLayout(n, cfg.LeafSize)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	t := &KDTree{
		data:      data,
		n:         n,
		dims:      dims,
		leafSize:  cfg.LeafSize,
		metric:    cfg.Metric,
		layout:    layout,
		bounds:    boundingRectangle(data, n, dims),
		nodes:     make([]SplitNode, layout.nInternal+1),
		indices:   idx,
		reordered: cfg.Reorder,
		logger:    cfg.Logger,
	}

	b := builder{
		layout:  layout,
		src:     data,
		dims:    dims,
		indices: idx,
		nodes:   t.nodes,
		rect:    t.bounds.Clone(),
	}
	if cfg.Reorder {
		b.out = make([]float64, len(data))
		b.slots = make([]int, n)
	}
	b.build(1, 0, n)

	if cfg.Reorder {
		t.data = b.out
		t.slots = b.slots
	}

	logBuild(cfg.Logger, t)
	return t, nil
}

func validateInput(data []float64, n, dims int, cfg *Config) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if n == 0 {
		return invalidInput("no points")
	}
	if dims == 0 {
		return invalidInput("points have zero dimensions")
	}
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalidInput("point %d has non-finite coordinate %v at dimension %d", i/dims, v, i%dims)
		}
	}
	return nil
}

// pointAt returns the coordinates stored at a storage slot.
func (t *KDTree) pointAt(slot int) []float64 {
	if t.reordered {
		return t.data[slot*t.dims : (slot+1)*t.dims]
	}
	id := t.indices[slot]
	return t.data[id*t.dims : (id+1)*t.dims]
}

func (t *KDTree) Len() int               { return t.n }
func (t *KDTree) Dims() int              { return t.dims }
func (t *KDTree) LeafSize() int          { return t.leafSize }
func (t *KDTree) Reordered() bool        { return t.reordered }
func (t *KDTree) Metric() DistanceMetric { return t.metric }
func (t *KDTree) NumLeaves() int         { return t.layout.nLeaves }
func (t *KDTree) NumInternalNodes() int  { return t.layout.nInternal }

// Bounds returns a copy of the rectangle tightly enclosing all points.
func (t *KDTree) Bounds() HyperRectangle { return t.bounds.Clone() }

// Nodes returns a copy of the split table. Index 0 is unused so that
// Nodes()[i] is node i.
func (t *KDTree) Nodes() []SplitNode { return slices.Clone(t.nodes) }

// Indices returns a copy of the permutation from storage slot to original
// point index.
func (t *KDTree) Indices() []int { return slices.Clone(t.indices) }

// Point returns a copy of the coordinates of the point with original index
// id. It panics if id is out of range.
func (t *KDTree) Point(id int) []float64 {
	if t.reordered {
		return slices.Clone(t.pointAt(t.slots[id]))
	}
	return slices.Clone(t.data[id*t.dims : (id+1)*t.dims])
}

// LeafRange returns the storage slots [start, end) of leaf node i. ok is
// false when i does not name a leaf.
func (t *KDTree) LeafRange(i int) (start, end int, ok bool) {
	if i < 1 || i > t.layout.nNodes || !t.layout.isLeaf(i) {
		return 0, 0, false
	}
	start, end = t.layout.leafRange(i)
	return start, end, true
}
