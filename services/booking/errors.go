package booking

import (
	"errors"
	"fmt"
)

// Engine error codes. These are business outcomes, not faults: the engine
// never retries them. Store failures are surfaced as ordinary wrapped
// errors so callers cannot mistake a timeout for a conflict.
const (
	CodeNotFound     = "notFound"
	CodeInvalidRange = "invalidRange"
	CodeUnavailable  = "unavailable"
	CodeConflict     = "conflict"
	CodeForbidden    = "forbidden"
	CodeInvalidState = "invalidState"
)

// EngineError is a typed business-rule failure from the booking engine.
type EngineError struct {
	Code    string
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newEngineError(code, format string, args ...interface{}) error {
	return &EngineError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrCode returns the engine error code carried by err, or "" if err is
// not an EngineError (e.g. a store failure).
func ErrCode(err error) string {
	var ee *EngineError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ""
}
