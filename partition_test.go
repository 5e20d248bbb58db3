package kdtree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkSelected(t *testing.T, idx []int, data []float64, dims, dim, k int) {
	t.Helper()
	coords := make([]float64, len(idx))
	for i, id := range idx {
		coords[i] = data[id*dims+dim]
	}
	sorted := append([]float64(nil), coords...)
	sort.Float64s(sorted)

	require.Equal(t, sorted[k], coords[k], "position %d is not the order statistic", k)
	for i := 0; i < k; i++ {
		require.LessOrEqual(t, coords[i], coords[k], "position %d above pivot", i)
	}
	for i := k + 1; i < len(coords); i++ {
		require.GreaterOrEqual(t, coords[i], coords[k], "position %d below pivot", i)
	}
}

func identity(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func TestSelectNth_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	dims := 3
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(200)
		data := make([]float64, n*dims)
		for i := range data {
			data[i] = rng.Float64()
		}
		dim := rng.Intn(dims)
		k := rng.Intn(n)
		idx := identity(n)
		selectNth(idx, data, dims, dim, k)
		checkSelected(t, idx, data, dims, dim, k)
	}
}

func TestSelectNth_ManyDuplicates(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	n := 500
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(rng.Intn(3))
	}
	for _, k := range []int{0, 1, n / 3, n / 2, n - 1} {
		idx := identity(n)
		selectNth(idx, data, 1, 0, k)
		checkSelected(t, idx, data, 1, 0, k)
	}
}

func TestSelectNth_AllEqual(t *testing.T) {
	data := []float64{4, 4, 4, 4, 4, 4}
	idx := identity(len(data))
	selectNth(idx, data, 1, 0, 3)
	checkSelected(t, idx, data, 1, 0, 3)
}

func TestSelectNth_KeepsPermutation(t *testing.T) {
	data := []float64{9, 1, 8, 2, 7, 3, 6, 4, 5}
	idx := identity(len(data))
	selectNth(idx, data, 1, 0, 4)
	assert.ElementsMatch(t, identity(len(data)), idx)
	assert.Equal(t, 5.0, data[idx[4]])
}

func TestMedianOfThree(t *testing.T) {
	cases := [][4]float64{
		{1, 2, 3, 2}, {3, 2, 1, 2}, {2, 3, 1, 2}, {1, 3, 2, 2}, {5, 5, 1, 5}, {1, 1, 1, 1},
	}
	for _, c := range cases {
		assert.Equal(t, c[3], medianOfThree(c[0], c[1], c[2]), "medianOfThree(%v, %v, %v)", c[0], c[1], c[2])
	}
}
