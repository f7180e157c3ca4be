package internal

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// ComputeNofBatches divides the size of the range (high - low) by n. If n is 0,
// a default is used that takes runtime.GOMAXPROCS(0) into account.
func ComputeNofBatches(low, high, n int) (batches int) {
	switch size := high - low; {
	case size > 0:
		switch {
		case n == 0:
			batches = 2 * runtime.GOMAXPROCS(0)
		case n > 0:
			batches = n
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
		if batches > size {
			batches = size
		}
	case size == 0:
		batches = 1
	default:
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	return
}

// ComputeGrainSize returns the number of elements each of the default number
// of batches covers for a collection of the given size, but never less than
// minimum.
func ComputeGrainSize(size, minimum int) int {
	batches := ComputeNofBatches(0, size, 0)
	grain := (size + batches - 1) / batches
	if grain < minimum {
		return minimum
	}
	return grain
}

// wrappedError and wrappedString mark panic values that already carry a
// stack trace, so that nested recoveries pass them on unchanged.
type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string { return e.msg }

func (e *wrappedError) Unwrap() error { return e.err }

type runtimeError struct{ *wrappedError }

func (runtimeError) RuntimeError() {}

type wrappedString string

func (s wrappedString) String() string { return string(s) }

// WrapPanic adds stack trace information to a recovered panic. Values
// that WrapPanic returned before are returned as is. Wrapped errors
// unwrap to the original error, and wrapped runtime errors are still
// runtime errors.
func WrapPanic(p interface{}) interface{} {
	switch p.(type) {
	case nil, *wrappedError, runtimeError, wrappedString:
		return p
	}
	s := fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
	err, isError := p.(error)
	if !isError {
		return wrappedString(s)
	}
	w := &wrappedError{msg: s, err: err}
	if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
		return runtimeError{w}
	}
	return w
}
