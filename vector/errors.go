package vector

import (
	"errors"
	"fmt"
)

// ErrInvalidLength is returned when a value slice or byte record does not
// have the size of one Sample.
var ErrInvalidLength = errors.New("vector: invalid sample length")

// LengthError reports the offending length. It matches ErrInvalidLength
// under errors.Is.
type LengthError struct {
	Want int
	Got  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("vector: invalid sample length: want %d, got %d", e.Want, e.Got)
}

func (e *LengthError) Is(target error) bool { return target == ErrInvalidLength }
