package errors

import "net/http"

// codeMapping maps error codes onto HTTP statuses.
// Duplicate keys and upstream sync failures are reported as 400.
var codeMapping = map[string]int{
	ErrInternal:        http.StatusInternalServerError,
	ErrNotFound:        http.StatusNotFound,
	ErrInvalidArgument: http.StatusBadRequest,
	ErrAlreadyExists:   http.StatusBadRequest,
	ErrUpstreamFailed:  http.StatusBadRequest,
	ErrConflict:        http.StatusConflict,
	ErrTimeout:         http.StatusGatewayTimeout,
	ErrNotImplemented:  http.StatusNotImplemented,
}

// GetCodeMapping returns the HTTP status for code, defaulting to 500.
func GetCodeMapping(code string) int {
	if status, ok := codeMapping[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
