package dto

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// TrendDateLayout labels chart points ("Jan 02").
const TrendDateLayout = "Jan 02"

// MessageResponse is returned by deletes and other acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse documents the error body written by the HTTP error handler.
type ErrorResponse struct {
	Error string `json:"error"`
}
