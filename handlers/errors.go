package handlers

import (
	"net/http"

	"stayhub/services/booking"
	"stayhub/services/property"
)

// statusForEngineError maps booking engine error codes onto HTTP statuses.
// Errors without a code are store failures and surface as 500.
func statusForEngineError(err error) int {
	switch booking.ErrCode(err) {
	case booking.CodeNotFound:
		return http.StatusNotFound
	case booking.CodeInvalidRange:
		return http.StatusBadRequest
	case booking.CodeUnavailable, booking.CodeConflict, booking.CodeInvalidState:
		return http.StatusConflict
	case booking.CodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// statusForPropertyError maps property service error codes onto HTTP statuses.
func statusForPropertyError(err error) int {
	switch property.ErrCode(err) {
	case property.CodeNotFound:
		return http.StatusNotFound
	case property.CodeForbidden:
		return http.StatusForbidden
	case property.CodeInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
