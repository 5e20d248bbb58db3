package kdtree

import "math/bits"

// treeLayout is the arithmetic of the implicit tree. Nodes are numbered from
// 1; node i has children 2i and 2i+1. With nLeaves leaves the nodes
// 1..2*nLeaves-1 form a complete binary tree: every level is full except
// the deepest, which fills from the left. Nodes 1..nInternal are splits,
// the rest are leaves.
//
// Leaves, taken in in-order, own consecutive ranges of leafSize storage
// slots. Only the last leaf in in-order may hold fewer.
type treeLayout struct {
	n         int
	leafSize  int
	nLeaves   int
	nInternal int
	nNodes    int
	deepest   int // index of the first node on the deepest level
}

func newTreeLayout(n, leafSize int) treeLayout {
	nLeaves := (n + leafSize - 1) / leafSize
	nNodes := 2*nLeaves - 1
	return treeLayout{
		n:         n,
		leafSize:  leafSize,
		nLeaves:   nLeaves,
		nInternal: nLeaves - 1,
		nNodes:    nNodes,
		deepest:   1 << (bits.Len(uint(nNodes)) - 1),
	}
}

func (l treeLayout) isLeaf(i int) bool { return i > l.nInternal }

// leafRank returns the in-order position of leaf i among all leaves. Leaves
// on the deepest level come first, then those one level up.
func (l treeLayout) leafRank(i int) int {
	if i >= l.deepest {
		return i - l.deepest
	}
	return l.nNodes - l.deepest + 1 + i - l.nLeaves
}

// leafRange returns the half-open storage range [start, end) of leaf i.
func (l treeLayout) leafRange(i int) (start, end int) {
	start = l.leafRank(i) * l.leafSize
	return start, min(start+l.leafSize, l.n)
}

// splitIndex returns the first storage slot of the right subtree of the
// internal node i, which is where that node's split falls.
func (l treeLayout) splitIndex(i int) int {
	j := 2*i + 1
	for !l.isLeaf(j) {
		j *= 2
	}
	start, _ := l.leafRange(j)
	return start
}
