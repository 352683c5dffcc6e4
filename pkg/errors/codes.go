package errors

// Common error codes shared by every layer.
const (
	ErrInternal        = "INTERNAL"
	ErrNotFound        = "NOT_FOUND"
	ErrInvalidArgument = "INVALID_ARGUMENT"
	ErrAlreadyExists   = "ALREADY_EXISTS"
	ErrUpstreamFailed  = "UPSTREAM_FAILED"
	ErrConflict        = "CONFLICT"
	ErrTimeout         = "TIMEOUT"
	ErrNotImplemented  = "NOT_IMPLEMENTED"
)
