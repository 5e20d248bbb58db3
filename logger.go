package kdtree

import (
	"context"
	"log/slog"
)

// discardLogger returns a logger whose handler drops every record.
func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// logBuild records the shape of a freshly built tree.
func logBuild(l *slog.Logger, t *KDTree) {
	l.LogAttrs(context.Background(), slog.LevelDebug, "kdtree built",
		slog.Int("n", t.n),
		slog.Int("dims", t.dims),
		slog.Int("leaf_size", t.leafSize),
		slog.Int("leaves", t.layout.nLeaves),
		slog.Int("internal_nodes", t.layout.nInternal),
		slog.Bool("reordered", t.reordered),
	)
}

// logBuildRejected records why a constructor refused its input.
func logBuildRejected(l *slog.Logger, n, dims int, err error) {
	l.LogAttrs(context.Background(), slog.LevelDebug, "kdtree build rejected",
		slog.Int("n", n),
		slog.Int("dims", dims),
		slog.Any("error", err),
	)
}

// logQueryRejected records a query that failed validation.
func logQueryRejected(l *slog.Logger, op string, attr slog.Attr, err error) {
	l.LogAttrs(context.Background(), slog.LevelDebug, "kdtree query rejected",
		slog.String("op", op),
		attr,
		slog.Any("error", err),
	)
}
