package dataset

import (
	"bytes"
	"context"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/gesture-knn/internal/logging"
	"github.com/viant/gesture-knn/vector"
)

func writeClassFile(t *testing.T, dir string, class int, samples []vector.Sample, extra ...byte) {
	t.Helper()
	data := append(vector.EncodeSamples(samples), extra...)
	require.NoError(t, os.WriteFile(FileName(dir, class), data, 0o644))
}

func seq(n int, base uint16) []vector.Sample {
	out := make([]vector.Sample, n)
	for i := range out {
		out[i] = vector.Sample{base, uint16(i)}
	}
	return out
}

func TestFileName(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "vals7.dat"), FileName("data", 7))
}

func TestReadClassFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing", func(t *testing.T) {
		_, err := ReadClassFile(FileName(dir, 0))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("empty", func(t *testing.T) {
		writeClassFile(t, dir, 1, nil)
		_, err := ReadClassFile(FileName(dir, 1))
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("partial record only", func(t *testing.T) {
		writeClassFile(t, dir, 2, nil, 1, 2, 3, 4, 5)
		_, err := ReadClassFile(FileName(dir, 2))
		assert.ErrorIs(t, err, ErrNoRecords)
	})

	t.Run("trailing bytes ignored", func(t *testing.T) {
		want := seq(3, 9)
		writeClassFile(t, dir, 3, want, 0xFF)
		got, err := ReadClassFile(FileName(dir, 3))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestSubsample(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	t.Run("at limit keeps all", func(t *testing.T) {
		in := seq(5, 0)
		assert.Equal(t, in, Subsample(in, 5, rng))
	})

	t.Run("over limit draws exactly limit from input", func(t *testing.T) {
		in := seq(50, 0)
		out := Subsample(in, 10, rng)
		require.Len(t, out, 10)
		for _, s := range out {
			assert.Contains(t, in, s)
		}
	})

	t.Run("with replacement", func(t *testing.T) {
		// 200 draws from 201 records repeat with overwhelming probability.
		in := seq(201, 0)
		out := Subsample(in, 200, rng)
		seen := map[vector.Sample]int{}
		for _, s := range out {
			seen[s]++
		}
		assert.Less(t, len(seen), len(out))
	})
}

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("skips missing classes", func(t *testing.T) {
		dir := t.TempDir()
		writeClassFile(t, dir, 0, seq(3, 0))
		writeClassFile(t, dir, 4, seq(2, 4))
		writeClassFile(t, dir, 5, nil)

		var buf bytes.Buffer
		loader := &Loader{MaxPerClass: 1500, Logger: logging.New(&buf, "text", "info")}
		set := loader.Load(ctx, dir)

		require.Equal(t, 5, set.Len())
		assert.Equal(t, []int{0, 0, 0, 4, 4}, set.Labels)
		assert.Equal(t, 3, set.PerClass[0])
		assert.Equal(t, 2, set.PerClass[4])
		assert.Equal(t, seq(3, 0), set.Samples[:3])
		assert.Contains(t, buf.String(), "class skipped")
		assert.Contains(t, buf.String(), "reason=empty")
		assert.Contains(t, buf.String(), "total=5")
	})

	t.Run("caps oversized class", func(t *testing.T) {
		dir := t.TempDir()
		writeClassFile(t, dir, 2, seq(30, 2))
		writeClassFile(t, dir, 3, seq(10, 3))

		loader := &Loader{MaxPerClass: 10, Rand: rand.New(rand.NewPCG(7, 7))}
		set := loader.Load(ctx, dir)
		assert.Equal(t, 10, set.PerClass[2])
		assert.Equal(t, 10, set.PerClass[3])
		assert.Equal(t, seq(10, 3), set.Samples[10:])
	})

	t.Run("nonexistent directory", func(t *testing.T) {
		set := (&Loader{MaxPerClass: 10}).Load(ctx, filepath.Join(t.TempDir(), "nope"))
		assert.Equal(t, 0, set.Len())
	})
}
