// Package kdtree implements a static KD-tree for k-nearest-neighbor and
// fixed-radius search over points in D-dimensional space.
//
// The tree is built once from a fixed point set and is read-only afterwards.
// Construction recursively splits the widest dimension of the current
// bounding box at an order statistic chosen so that every leaf holds exactly
// LeafSize points, except one that holds the remainder. This lets the tree
// live in flat arrays: split nodes are addressed as in a binary heap and
// leaves are implied by their index.
//
// Basic usage:
//
//	cfg := kdtree.DefaultConfig()
//	cfg.LeafSize = 16
//	tree, err := kdtree.New(points, cfg)
//	// ...
//	neighbors, err := tree.KNN(query, 5)     // sorted by distance
//	ids, err := tree.InRange(query, 0.5)     // every point within 0.5
//
// # Metrics
//
// Distances come from the Minkowski family: EuclideanMetric,
// ManhattanMetric, ChebyshevMetric and MinkowskiMetric{P}. Queries compare
// distances in reduced form (e.g. squared Euclidean) and finalize only the
// distances they return.
//
// # Memory layout
//
// With Config.Reorder set, points are copied into traversal order so that
// leaf scans read contiguous memory. Without it the tree keeps the input
// layout and goes through an index permutation; results are identical.
//
// A built tree may be queried from any number of goroutines.
package kdtree
