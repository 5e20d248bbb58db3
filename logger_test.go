package kdtree

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLogger_Build(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.LeafSize = 2
	cfg.Logger = bufferLogger(&buf)

	_, err := New([][]float64{{0, 0}, {1, 0}, {0, 1}, {5, 5}}, cfg)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "kdtree built")
	assert.Contains(t, out, "n=4")
	assert.Contains(t, out, "leaves=2")
	assert.Contains(t, out, "internal_nodes=1")
	assert.Contains(t, out, "reordered=true")
}

func TestLogger_Rejections(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Logger = bufferLogger(&buf)

	_, err := New(nil, cfg)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "kdtree build rejected")

	tree, err := New([][]float64{{0, 0}}, cfg)
	require.NoError(t, err)

	buf.Reset()
	_, err = tree.KNN([]float64{0, 0}, 0)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "op=knn")
	assert.Contains(t, buf.String(), "k=0")

	buf.Reset()
	_, err = tree.InRange([]float64{0, 0}, -2)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "op=in_range")
	assert.Contains(t, buf.String(), "radius=-2")
}

func TestLogger_NilDiscards(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logger = nil
	tree, err := New([][]float64{{1}}, cfg)
	require.NoError(t, err)
	assert.NotNil(t, tree.logger)
}
