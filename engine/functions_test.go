package engine

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/gesture-knn/vector"
)

type fixedClassifier struct {
	label      int
	confidence float32
	seen       []vector.Sample
}

func (f *fixedClassifier) Classify(query vector.Sample) (int, float32) {
	f.seen = append(f.seen, query)
	return f.label, f.confidence
}

func TestRegisterSampleFunctionsAndUse(t *testing.T) {
	// Register globally before first connection so functions are available.
	require.NoError(t, RegisterSampleFunctions())
	require.NoError(t, RegisterSampleFunctions())

	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	a := vector.EncodeSample(vector.Sample{})
	b := vector.EncodeSample(vector.Sample{3, 4})

	var dist float64
	require.NoError(t, db.QueryRow(`SELECT emg_sqdist(?, ?)`, a, b).Scan(&dist))
	assert.Equal(t, 25.0, dist)

	var norm float64
	require.NoError(t, db.QueryRow(`SELECT emg_norm(?)`, b).Scan(&norm))
	assert.Equal(t, 25.0, norm)

	var null sql.NullFloat64
	require.NoError(t, db.QueryRow(`SELECT emg_norm(NULL)`).Scan(&null))
	assert.False(t, null.Valid)

	err = db.QueryRow(`SELECT emg_norm(?)`, []byte{1, 2, 3}).Scan(&norm)
	assert.Error(t, err)
}

func TestRegisterClassifierFunctions(t *testing.T) {
	fc := &fixedClassifier{label: 4, confidence: 0.75}
	require.NoError(t, RegisterClassifierFunctions("test_gesture", fc))
	assert.Error(t, RegisterClassifierFunctions("", fc))
	assert.Error(t, RegisterClassifierFunctions("nil_gesture", nil))

	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	_, err = db.ExecContext(ctx, `CREATE TABLE readings(id INTEGER, sample BLOB)`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO readings VALUES (1, ?)`, vector.EncodeSample(vector.Sample{1, 2, 3, 4, 5, 6, 7, 8}))
	require.NoError(t, err)

	var label int
	var confidence float64
	row := db.QueryRowContext(ctx, `SELECT test_gesture_classify(sample), test_gesture_confidence(sample) FROM readings WHERE id = 1`)
	require.NoError(t, row.Scan(&label, &confidence))
	assert.Equal(t, 4, label)
	assert.InDelta(t, 0.75, confidence, 1e-6)
	require.NotEmpty(t, fc.seen)
	assert.Equal(t, vector.Sample{1, 2, 3, 4, 5, 6, 7, 8}, fc.seen[0])
}
