package fenwick

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is the panic value for an index outside
	// [0, End()].
	ErrIndexOutOfRange = errors.New("fenwick: index out of range")

	// ErrPreconditionViolated is the panic value for a malformed range
	// or a negative element observed by a rank query.
	ErrPreconditionViolated = errors.New("fenwick: precondition violated")
)

// The check methods below are assertion grade: they cost nothing unless
// the fenwickcheck build tag is set. Release callers are responsible for
// upholding the preconditions themselves.

func (t *Tree[T]) checkIndex(idx int) {
	if !debugChecks {
		return
	}
	if idx < 0 || idx >= t.size {
		panic(fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, idx, t.size))
	}
}

func (t *Tree[T]) checkRange(i, j int) {
	if !debugChecks {
		return
	}
	if i < 0 || j >= t.size {
		panic(fmt.Errorf("%w: range [%d, %d], size %d", ErrIndexOutOfRange, i, j, t.size))
	}
	if i > j {
		panic(fmt.Errorf("%w: inverted range [%d, %d]", ErrPreconditionViolated, i, j))
	}
}

func (t *Tree[T]) checkNonNegative() {
	if !debugChecks {
		return
	}
	var zero T
	for _, v := range t.data {
		if v < zero {
			panic(fmt.Errorf("%w: rank queries need non-negative elements", ErrPreconditionViolated))
		}
	}
}
