package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestLogger_LoadMessages(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "json", "info")
	ctx := context.Background()

	l.LogClassSkipped(ctx, 3, "/data/vals3.dat", "missing")
	l.LogClassLoaded(ctx, 4, 2000, 1500)
	l.LogLoadComplete(ctx, "/data", 0)

	dec := json.NewDecoder(&buf)
	var records []map[string]any
	for dec.More() {
		var rec map[string]any
		require.NoError(t, dec.Decode(&rec))
		records = append(records, rec)
	}
	require.Len(t, records, 3)
	assert.Equal(t, "WARN", records[0]["level"])
	assert.Equal(t, float64(3), records[0]["class"])
	assert.Equal(t, true, records[1]["subsampled"])
	assert.Equal(t, "ERROR", records[2]["level"])
	assert.Equal(t, "no training data loaded", records[2]["msg"])
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}
