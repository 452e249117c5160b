package board

import "github.com/pkg/errors"

// FatalError marks a violated precondition or an unparseable external
// input. The core never recovers from one of these: callers that can
// hand the engine malformed data (FEN strings, move strings) are
// expected to validate first, and internal invariant breaks are bugs,
// not degraded-mode conditions.
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
