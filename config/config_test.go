package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/gesture-knn/classifier"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gesture.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 5, cfg.K)
	assert.Equal(t, 1500, cfg.MaxSamplesPerClass)
	assert.Equal(t, "data", cfg.DataDir)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("partial file keeps defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "k: 15\nlog:\n  format: json\n"))
		require.NoError(t, err)
		assert.Equal(t, 15, cfg.K)
		assert.Equal(t, 1500, cfg.MaxSamplesPerClass)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("invalid k", func(t *testing.T) {
		_, err := Load(writeConfig(t, "k: 0\n"))
		assert.ErrorIs(t, err, classifier.ErrInvalidK)
	})

	t.Run("invalid cap", func(t *testing.T) {
		_, err := Load(writeConfig(t, "max_samples_per_class: -1\n"))
		assert.ErrorIs(t, err, classifier.ErrInvalidMaxSamples)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := Load(writeConfig(t, "log:\n  format: xml\n"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "k: [\n"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
		assert.Error(t, err)
	})
}
