package kdtree

// builder holds the state of one tree construction. rect is narrowed on the
// way down and restored on the way back up, so at every call it is exactly
// the rectangle of the node being built.
type builder struct {
	layout  treeLayout
	src     []float64 // input points, row-major
	dims    int
	indices []int
	nodes   []SplitNode
	rect    HyperRectangle

	// Only set when reordering.
	out   []float64
	slots []int
}

// build constructs node i over the storage slots [low, high).
func (b *builder) build(i, low, high int) {
	if b.layout.isLeaf(i) {
		b.emitLeaf(low, high)
		return
	}

	splitDim := b.rect.widestDimension()
	mid := b.layout.splitIndex(i)
	selectNth(b.indices[low:high], b.src, b.dims, splitDim, mid-low)
	splitVal := b.src[b.indices[mid]*b.dims+splitDim]

	b.nodes[i] = SplitNode{
		Lo:       b.rect.Mins[splitDim],
		Hi:       b.rect.Maxes[splitDim],
		SplitVal: splitVal,
		SplitDim: splitDim,
	}

	saved := b.rect.Maxes[splitDim]
	b.rect.Maxes[splitDim] = splitVal
	b.build(2*i, low, mid)
	b.rect.Maxes[splitDim] = saved

	saved = b.rect.Mins[splitDim]
	b.rect.Mins[splitDim] = splitVal
	b.build(2*i+1, mid, high)
	b.rect.Mins[splitDim] = saved
}

// emitLeaf copies the points of a finished leaf into traversal order when
// reordering.
func (b *builder) emitLeaf(low, high int) {
	if b.out == nil {
		return
	}
	for slot := low; slot < high; slot++ {
		id := b.indices[slot]
		copy(b.out[slot*b.dims:(slot+1)*b.dims], b.src[id*b.dims:(id+1)*b.dims])
		b.slots[id] = slot
	}
}
