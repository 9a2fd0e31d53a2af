package engine

import (
	"database/sql/driver"
	"fmt"
	"strings"

	sqlite "modernc.org/sqlite"

	"github.com/viant/gesture-knn/vector"
)

// Classifier is the part of classifier.Classifier used by the SQL functions.
type Classifier interface {
	Classify(query vector.Sample) (int, float32)
}

// RegisterSampleFunctions registers emg_sqdist(a, b) and emg_norm(a) with the
// driver so they are available on new connections opened after this call.
// Arguments are 16-byte sample BLOBs.
func RegisterSampleFunctions() error {
	if err := register(sqlite.RegisterDeterministicScalarFunction("emg_sqdist", 2, sqDistImpl)); err != nil {
		return err
	}
	return register(sqlite.RegisterDeterministicScalarFunction("emg_norm", 1, normImpl))
}

// RegisterClassifierFunctions registers <prefix>_classify(sample) returning
// the predicted label and <prefix>_confidence(sample) returning the vote
// fraction, both backed by c. Names must be unique per process.
func RegisterClassifierFunctions(prefix string, c Classifier) error {
	if prefix == "" {
		return fmt.Errorf("engine: function prefix is empty")
	}
	if c == nil {
		return fmt.Errorf("engine: classifier is nil")
	}
	classify := func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		s, ok, err := sampleArg(args, 0)
		if err != nil || !ok {
			return nil, err
		}
		label, _ := c.Classify(s)
		return int64(label), nil
	}
	confidence := func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		s, ok, err := sampleArg(args, 0)
		if err != nil || !ok {
			return nil, err
		}
		_, conf := c.Classify(s)
		return float64(conf), nil
	}
	if err := sqlite.RegisterScalarFunction(prefix+"_classify", 1, classify); err != nil {
		return fmt.Errorf("engine: register %s_classify: %w", prefix, err)
	}
	if err := sqlite.RegisterScalarFunction(prefix+"_confidence", 1, confidence); err != nil {
		return fmt.Errorf("engine: register %s_confidence: %w", prefix, err)
	}
	return nil
}

// register ignores duplicate registrations so the call is idempotent.
func register(err error) error {
	if err != nil && !strings.Contains(err.Error(), "already") {
		return err
	}
	return nil
}

func sampleArg(args []driver.Value, i int) (vector.Sample, bool, error) {
	if i >= len(args) {
		return vector.Sample{}, false, fmt.Errorf("engine: missing argument %d", i)
	}
	switch v := args[i].(type) {
	case nil:
		return vector.Sample{}, false, nil
	case []byte:
		s, err := vector.DecodeSample(v)
		if err != nil {
			return s, false, err
		}
		return s, true, nil
	default:
		return vector.Sample{}, false, fmt.Errorf("engine: unsupported argument type %T for sample; want BLOB", v)
	}
}

func sqDistImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("emg_sqdist: expected 2 arguments, got %d", len(args))
	}
	a, ok, err := sampleArg(args, 0)
	if err != nil || !ok {
		return nil, err
	}
	b, ok, err := sampleArg(args, 1)
	if err != nil || !ok {
		return nil, err
	}
	return vector.SquaredL2(a, b), nil
}

func normImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("emg_norm: expected 1 argument, got %d", len(args))
	}
	s, ok, err := sampleArg(args, 0)
	if err != nil || !ok {
		return nil, err
	}
	return vector.SquaredNorm(s), nil
}
