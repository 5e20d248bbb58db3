package kdtree

import (
	"log/slog"

	"gonum.org/v1/gonum/mat"
)

// NewFromMatrix builds a KDTree whose points are the rows of m. The matrix
// is copied.
func NewFromMatrix(m mat.Matrix, cfg Config) (*KDTree, error) {
	applyDefaults(&cfg)

	n, dims := m.Dims()
	if n == 0 || dims == 0 {
		err := invalidInput("matrix is %d×%d", n, dims)
		logBuildRejected(cfg.Logger, n, dims, err)
		return nil, err
	}
	return build(flattenRows(m, n, dims), n, dims, cfg)
}

// KNNMatrix runs KNN for every row of queries, in order. k is checked
// even when queries has no rows.
func (t *KDTree) KNNMatrix(queries mat.Matrix, k int) ([][]Neighbor, error) {
	rows, cols := queries.Dims()
	if cols != t.dims {
		return nil, &DimensionMismatchError{Expected: t.dims, Actual: cols}
	}
	if err := validateK(k); err != nil {
		logQueryRejected(t.logger, "knn_matrix", slog.Int("k", k), err)
		return nil, err
	}
	out := make([][]Neighbor, rows)
	row := make([]float64, cols)
	for i := range out {
		mat.Row(row, i, queries)
		res, err := t.KNN(row, k)
		if err != nil {
			return nil, err
		}
		out[i] = res
	}
	return out, nil
}

// InRangeMatrix runs InRange for every row of queries, in order. radius is
// checked even when queries has no rows.
func (t *KDTree) InRangeMatrix(queries mat.Matrix, radius float64) ([][]int, error) {
	rows, cols := queries.Dims()
	if cols != t.dims {
		return nil, &DimensionMismatchError{Expected: t.dims, Actual: cols}
	}
	if err := validateRadius(radius); err != nil {
		logQueryRejected(t.logger, "in_range_matrix", slog.Float64("radius", radius), err)
		return nil, err
	}
	out := make([][]int, rows)
	row := make([]float64, cols)
	for i := range out {
		mat.Row(row, i, queries)
		res, err := t.InRange(row, radius)
		if err != nil {
			return nil, err
		}
		out[i] = res
	}
	return out, nil
}

// flattenRows copies the rows of m into a row-major slice.
func flattenRows(m mat.Matrix, n, dims int) []float64 {
	if d, ok := m.(mat.RawMatrixer); ok {
		raw := d.RawMatrix()
		if raw.Stride == dims {
			return append([]float64(nil), raw.Data[:n*dims]...)
		}
	}
	flat := make([]float64, n*dims)
	for i := 0; i < n; i++ {
		mat.Row(flat[i*dims:(i+1)*dims], i, m)
	}
	return flat
}
