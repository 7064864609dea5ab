package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/logger"
)

var production atomic.Bool

// Data wraps a successful payload.
type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

// Error carries the message shown to the caller. Debug holds the raw error
// for 5xx responses outside production.
type Error struct {
	Error *string `json:"error,omitempty"`
	Debug *string `json:"debug,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// SetProduction hides internal error details from callers when enabled.
func SetProduction(enabled bool) {
	production.Store(enabled)
}

func WithMessage(w http.ResponseWriter, code int, message string) {
	write(w, code, Message{Message: &message})
}

func WithJSON(w http.ResponseWriter, code int, payload any) {
	write(w, code, Data[any]{Data: &payload})
}

// WithError answers with the status carried by err. Client errors are
// shown verbatim; anything else is logged and, in production, replaced
// by a generic message.
func WithError(w http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	write(w, code, errorBody(err))
}

func errorBody(err error) Error {
	msg := err.Error()

	if failure.IsClientError(err) {
		return Error{Error: &msg}
	}

	logger.ErrorWithStack(err)

	if production.Load() {
		generic := constant.ResponseErrorInternal

		return Error{Error: &generic}
	}

	debug := fmt.Sprintf("%+v", err)

	return Error{Error: &msg, Debug: &debug}
}

// StatusFor downgrades a success code to 207 when a batch finished with failures.
func StatusFor(code int, partial bool) int {
	if partial {
		return http.StatusMultiStatus
	}

	return code
}

func WithRequestLimitExceeded(w http.ResponseWriter) {
	WithMessage(w, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(w http.ResponseWriter) {
	WithMessage(w, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(w http.ResponseWriter) {
	WithMessage(w, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

// write marshals before touching the header so an encoding failure does not
// leave a half-written response.
func write(w http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		http.Error(w, constant.ResponseErrorInternal, http.StatusInternalServerError)

		return
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
