package kdtree

import "math"

// DistanceMetric is a distance from the generalized Minkowski family: a
// per-coordinate transform, an accumulation across coordinates, and a final
// transform back to a true distance.
//
// Traversals work entirely in the accumulated ("reduced") form, e.g. squared
// distance for Euclidean, and only finalize the distances they report.
//
// The set of implementations is closed: EuclideanMetric, ManhattanMetric,
// ChebyshevMetric and MinkowskiMetric.
type DistanceMetric interface {
	// Distance returns the finalized distance between a and b.
	Distance(a, b []float64) float64

	// ReducedDistance returns the accumulated distance between a and b.
	ReducedDistance(a, b []float64) float64

	// Contribution maps a signed coordinate difference to its per-dimension
	// contribution.
	Contribution(diff float64) float64

	// Combine merges two per-dimension contributions.
	Combine(a, b float64) float64

	// Difference returns the update that replaces the contribution prev of
	// one dimension with next. The result is folded in with Accumulate.
	Difference(prev, next float64) float64

	// Accumulate folds an update produced by Difference into a running
	// lower bound.
	Accumulate(total, delta float64) float64

	// Finalize converts an accumulated distance to a true distance.
	Finalize(acc float64) float64

	// NormalizeRadius converts a true distance to the accumulated form.
	NormalizeRadius(r float64) float64

	minkowskiFamily()
}

// EuclideanMetric computes the Euclidean (L2) distance.
// ReducedDistance returns squared Euclidean distance (skips sqrt).
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 {
	return math.Sqrt(euclideanSumOfSquares(a, b))
}

func (EuclideanMetric) ReducedDistance(a, b []float64) float64 {
	return euclideanSumOfSquares(a, b)
}

func (EuclideanMetric) Contribution(diff float64) float64       { return diff * diff }
func (EuclideanMetric) Combine(a, b float64) float64            { return a + b }
func (EuclideanMetric) Difference(prev, next float64) float64   { return next - prev }
func (EuclideanMetric) Accumulate(total, delta float64) float64 { return total + delta }
func (EuclideanMetric) Finalize(acc float64) float64            { return math.Sqrt(acc) }
func (EuclideanMetric) NormalizeRadius(r float64) float64       { return r * r }
func (EuclideanMetric) minkowskiFamily()                        {}

func euclideanSumOfSquares(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// ManhattanMetric computes the Manhattan (L1 / city-block) distance.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}

func (m ManhattanMetric) ReducedDistance(a, b []float64) float64 { return m.Distance(a, b) }

func (ManhattanMetric) Contribution(diff float64) float64       { return math.Abs(diff) }
func (ManhattanMetric) Combine(a, b float64) float64            { return a + b }
func (ManhattanMetric) Difference(prev, next float64) float64   { return next - prev }
func (ManhattanMetric) Accumulate(total, delta float64) float64 { return total + delta }
func (ManhattanMetric) Finalize(acc float64) float64            { return acc }
func (ManhattanMetric) NormalizeRadius(r float64) float64       { return r }
func (ManhattanMetric) minkowskiFamily()                        {}

// ChebyshevMetric computes the Chebyshev (L-infinity) distance.
//
// Contributions combine with max rather than sum, so a bound update simply
// carries the new contribution and Accumulate takes the maximum.
type ChebyshevMetric struct{}

func (ChebyshevMetric) Distance(a, b []float64) float64 {
	var maxVal float64
	for i := range a {
		if v := math.Abs(a[i] - b[i]); v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

func (m ChebyshevMetric) ReducedDistance(a, b []float64) float64 { return m.Distance(a, b) }

func (ChebyshevMetric) Contribution(diff float64) float64       { return math.Abs(diff) }
func (ChebyshevMetric) Combine(a, b float64) float64            { return max(a, b) }
func (ChebyshevMetric) Difference(_, next float64) float64      { return next }
func (ChebyshevMetric) Accumulate(total, delta float64) float64 { return max(total, delta) }
func (ChebyshevMetric) Finalize(acc float64) float64            { return acc }
func (ChebyshevMetric) NormalizeRadius(r float64) float64       { return r }
func (ChebyshevMetric) minkowskiFamily()                        {}

// MinkowskiMetric computes the Minkowski distance parameterized by P.
// P must be finite and >= 1; the constructors reject anything else.
// ReducedDistance returns sum(|a[i]-b[i]|^P) without the final root.
type MinkowskiMetric struct {
	P float64
}

func (m MinkowskiMetric) Distance(a, b []float64) float64 {
	return math.Pow(m.rawSum(a, b), 1.0/m.P)
}

func (m MinkowskiMetric) ReducedDistance(a, b []float64) float64 {
	return m.rawSum(a, b)
}

func (m MinkowskiMetric) rawSum(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Pow(math.Abs(a[i]-b[i]), m.P)
	}
	return sum
}

func (m MinkowskiMetric) Contribution(diff float64) float64     { return math.Pow(math.Abs(diff), m.P) }
func (MinkowskiMetric) Combine(a, b float64) float64            { return a + b }
func (MinkowskiMetric) Difference(prev, next float64) float64   { return next - prev }
func (MinkowskiMetric) Accumulate(total, delta float64) float64 { return total + delta }
func (m MinkowskiMetric) Finalize(acc float64) float64          { return math.Pow(acc, 1.0/m.P) }
func (m MinkowskiMetric) NormalizeRadius(r float64) float64     { return math.Pow(r, m.P) }
func (MinkowskiMetric) minkowskiFamily()                        {}

// validateMetric rejects metrics whose hooks would not produce a valid
// lower bound.
func validateMetric(m DistanceMetric) error {
	if mk, ok := m.(MinkowskiMetric); ok {
		if math.IsNaN(mk.P) || math.IsInf(mk.P, 0) || mk.P < 1 {
			return invalidArgument("MinkowskiMetric.P must be finite and >= 1, got %v", mk.P)
		}
	}
	return nil
}
