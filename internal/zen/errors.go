package zen

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfBounds    = errors.New("index out of bounds")
	ErrNotCallable         = errors.New("accessor is not callable")
	ErrNoSuchAccessor      = errors.New("no such accessor")
	ErrIncompatibleElement = errors.New("incompatible element")
)

func newBoundsError(operation string, index int, length int) error {
	return fmt.Errorf("%w: %s(%d) on an array of length %d", ErrIndexOutOfBounds, operation, index, length)
}

func checkBounds(operation string, index int, length int) {
	if index < 0 || index >= length {
		panic(newBoundsError(operation, index, length))
	}
}
