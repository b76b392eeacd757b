package dto

import (
	"net/http"
	"strings"
)

// Error codes surfaced by the API. Domain error codes pass through
// unchanged so clients can react to the specific failure.
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeValidation = "VALIDATION_ERROR"
)

// errorCodeHTTPStatus maps error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeValidation: http.StatusBadRequest,

	"NOT_FOUND":      http.StatusNotFound,
	"ALREADY_EXISTS": http.StatusConflict,
	"CONFLICT":       http.StatusConflict,
	"INVALID_STATE":  http.StatusUnprocessableEntity,

	"GENERATION_FAILED": http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code. Codes with
// an INVALID_ prefix are input errors and map to 400; anything unknown
// is treated as an internal error.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
