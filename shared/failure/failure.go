package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is an error that carries the HTTP status it should be answered with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Failure) Error() string {
	return e.Message
}

func newFailure(code int, message string) *Failure {
	return &Failure{Code: code, Message: message}
}

// fromError keeps nil as nil so callers can wrap a result unconditionally.
func fromError(code int, err error) error {
	if err == nil {
		return nil
	}

	return newFailure(code, err.Error())
}

// BadRequest turns a validation error into a 400.
func BadRequest(err error) error {
	return fromError(http.StatusBadRequest, err)
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg)
}

func BadRequestf(format string, args ...any) error {
	return newFailure(http.StatusBadRequest, fmt.Sprintf(format, args...))
}

// InternalError turns err into a 500 that keeps its message.
func InternalError(err error) error {
	return fromError(http.StatusInternalServerError, err)
}

// NotFound reports a missing entity; message is shown to the client.
func NotFound(message string) error {
	return newFailure(http.StatusNotFound, message)
}

// Conflict reports a state that blocks the request, such as a row still in use.
func Conflict(message string) error {
	return newFailure(http.StatusConflict, message)
}

func Conflictf(format string, args ...any) error {
	return newFailure(http.StatusConflict, fmt.Sprintf(format, args...))
}

// GetCode returns the status carried anywhere in err's chain, or 500.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsClientError reports whether err carries a 4xx code and is safe to show verbatim.
func IsClientError(err error) bool {
	code := GetCode(err)

	return code >= http.StatusBadRequest && code < http.StatusInternalServerError
}
