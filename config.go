package kdtree

import "log/slog"

// DefaultLeafSize is the leaf capacity used when Config.LeafSize is zero.
const DefaultLeafSize = 10

// Config controls how a KDTree is built.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Metric is the distance used by every query on the tree.
	// Built-in: EuclideanMetric, ManhattanMetric, ChebyshevMetric,
	// MinkowskiMetric. Default: EuclideanMetric.
	Metric DistanceMetric

	// LeafSize is the maximum number of points stored in a leaf. Every leaf
	// holds exactly LeafSize points except one, which holds the remainder.
	// Zero selects DefaultLeafSize; negative values fail with
	// ErrInvalidArgument. Default: 10.
	LeafSize int

	// Reorder copies the point data into tree traversal order so leaf scans
	// read contiguous memory. When false the tree keeps the input layout and
	// reaches points through the index permutation. Query results are the
	// same either way. Default: true.
	Reorder bool

	// Logger receives build and query diagnostics. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Metric:   EuclideanMetric{},
		LeafSize: DefaultLeafSize,
		Reorder:  true,
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
// Reorder is taken as given.
func applyDefaults(cfg *Config) {
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.LeafSize == 0 {
		cfg.LeafSize = DefaultLeafSize
	}
	if cfg.Logger == nil {
		cfg.Logger = discardLogger()
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.LeafSize < 1 {
		return invalidArgument("LeafSize must be >= 1, got %d", cfg.LeafSize)
	}
	return validateMetric(cfg.Metric)
}
