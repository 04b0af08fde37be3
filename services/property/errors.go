package property

import (
	"errors"
	"fmt"
)

// Service error codes, mirrored by the HTTP layer onto status codes.
const (
	CodeNotFound     = "notFound"
	CodeForbidden    = "forbidden"
	CodeInvalidInput = "invalidInput"
)

// ServiceError is a typed business-rule failure from the property service.
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newServiceError(code, format string, args ...interface{}) error {
	return &ServiceError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrCode returns the service error code carried by err, or "".
func ErrCode(err error) string {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
