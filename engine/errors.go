package engine

import "github.com/pkg/errors"

// FatalError marks a violated precondition in the search/evaluation
// layer (a zero-depth search request, a cache lookup with no matching
// entry). Mirrors board.FatalError as a separate type of this package.
type FatalError struct {
	cause error
}

func newFatalError(format string, args ...interface{}) *FatalError {
	return &FatalError{cause: errors.Errorf(format, args...)}
}

func (e *FatalError) Error() string {
	return e.cause.Error()
}

func (e *FatalError) Unwrap() error {
	return e.cause
}

func fatalf(format string, args ...interface{}) {
	panic(newFatalError(format, args...))
}
