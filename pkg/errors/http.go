package errors

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ToHTTPStatus converts an error code to an HTTP status.
func ToHTTPStatus(code string) int {
	return GetCodeMapping(code)
}

// ToHTTPError converts any error into an echo.HTTPError.
// AppErrors keep their client message; other errors become 500.
func ToHTTPError(err error) *echo.HTTPError {
	if err == nil {
		return nil
	}

	if echoErr, ok := err.(*echo.HTTPError); ok {
		return echoErr
	}

	var appErr *AppError
	if As(err, &appErr) {
		he := echo.NewHTTPError(ToHTTPStatus(appErr.Code()), clientMessage(appErr))
		he.Internal = err
		return he
	}

	he := echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	he.Internal = err
	return he
}

func clientMessage(appErr *AppError) string {
	// upstream causes are actionable for the caller (bad token, missing org)
	if appErr.Code() == ErrUpstreamFailed && appErr.err != nil {
		return appErr.Error()
	}
	return appErr.message
}

// FromHTTPError converts an echo.HTTPError into an AppError.
func FromHTTPError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if As(err, &appErr) {
		return err
	}

	if echoErr, ok := err.(*echo.HTTPError); ok {
		msg, ok := echoErr.Message.(string)
		if !ok {
			msg = "HTTP error"
		}
		return NewAppError(httpStatusToCode(echoErr.Code), msg, nil)
	}

	return NewAppError(ErrInternal, err.Error(), err)
}

func httpStatusToCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		return ErrInvalidArgument
	case http.StatusConflict:
		return ErrConflict
	case http.StatusGatewayTimeout:
		return ErrTimeout
	case http.StatusNotImplemented:
		return ErrNotImplemented
	default:
		return ErrInternal
	}
}
