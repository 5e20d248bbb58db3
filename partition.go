package kdtree

// selectNth reorders idx so that idx[k] refers to the point whose coordinate
// along dim is the k-th smallest in idx. Every earlier position holds a
// coordinate <= that value and every later position one >= it. Points are
// read from the row-major data with the given dimensionality.
//
// This is Hoare's selection with a three-way partition, so runs of equal
// coordinates (duplicate points) do not degrade it to quadratic time.
func selectNth(idx []int, data []float64, dims, dim, k int) {
	coord := func(i int) float64 { return data[idx[i]*dims+dim] }

	lo, hi := 0, len(idx)-1
	for lo < hi {
		pivot := medianOfThree(coord(lo), coord(lo+(hi-lo)/2), coord(hi))

		// [lo, lt) < pivot, [lt, i) == pivot, (gt, hi] > pivot.
		lt, i, gt := lo, lo, hi
		for i <= gt {
			switch v := coord(i); {
			case v < pivot:
				idx[lt], idx[i] = idx[i], idx[lt]
				lt++
				i++
			case v > pivot:
				idx[i], idx[gt] = idx[gt], idx[i]
				gt--
			default:
				i++
			}
		}

		switch {
		case k < lt:
			hi = lt - 1
		case k > gt:
			lo = gt + 1
		default:
			return
		}
	}
}

func medianOfThree(a, b, c float64) float64 {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	if a > b {
		return a
	}
	return b
}
