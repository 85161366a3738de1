package opentime

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by errors reporting that a curve was evaluated
	// outside of its domain.
	ErrOutOfRange = errors.New("opentime: time outside of curve domain")
	// ErrUnknownOID is returned when a node id doesn't refer to an allocated
	// node of a topology.
	ErrUnknownOID = errors.New("opentime: unknown node id")
	// ErrSingular is returned when a transform with zero scale would have to
	// be inverted.
	ErrSingular = errors.New("opentime: transform is not invertible")
)

// OutOfRangeError describes the evaluation of a curve at a time outside of
// its domain.
type OutOfRangeError struct {
	T      Seconds
	Domain Interval
}

func (err *OutOfRangeError) Error() string {
	if err.Domain.Start.IsNaN() {
		return fmt.Sprintf("opentime: time %g outside of empty curve", float64(err.T))
	}
	return fmt.Sprintf("opentime: time %g outside of curve domain [%g, %g]",
		float64(err.T), float64(err.Domain.Start), float64(err.Domain.End))
}

func (err *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}
