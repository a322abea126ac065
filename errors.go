package simplevector

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every *OutOfRangeError.
var ErrOutOfRange = errors.New("simplevector: index out of range")

// OutOfRangeError is returned by At when the index is not a live position.
type OutOfRangeError struct {
	Index int // requested index
	Size  int // vector size at the time of the call
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("simplevector: index %d out of range [0, %d)", e.Index, e.Size)
}

// Is makes errors.Is(err, ErrOutOfRange) hold.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
