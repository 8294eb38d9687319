// Package errs provides types and support related to web v1 functionality.
package errs

import (
	"errors"
	"net/http"

	"github.com/ardanlabs/questhub/business/core/game"
	"github.com/ardanlabs/questhub/foundation/validate"
)

// Response is the form used for API responses from failures in the API.
type Response struct {
	Error  string            `json:"error"`
	Kind   game.Kind         `json:"kind,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Trusted is used to pass an error during the request through the
// application with web specific context.
type Trusted struct {
	Err    error
	Status int
}

// NewTrusted wraps a provided error with an HTTP status code. This
// function should be used when handlers encounter expected errors.
func NewTrusted(err error, status int) error {
	return &Trusted{err, status}
}

// Error implements the error interface. It uses the default message of the
// wrapped error. This is what will be shown in the services' logs.
func (re *Trusted) Error() string {
	return re.Err.Error()
}

// Unwrap returns the wrapped error.
func (re *Trusted) Unwrap() error {
	return re.Err
}

// IsTrusted checks if an error of type Trusted exists.
func IsTrusted(err error) bool {
	var re *Trusted
	return errors.As(err, &re)
}

// GetTrusted returns a copy of the Trusted pointer.
func GetTrusted(err error) *Trusted {
	var re *Trusted
	if !errors.As(err, &re) {
		return nil
	}
	return re
}

// =============================================================================

// Classify converts an error into the response and status sent to the
// client. Field and game validation errors are bad requests, except for
// unknown ids which are not found. Anything not recognized is an internal
// error and its message is not exposed.
func Classify(err error) (Response, int) {
	switch {
	case validate.IsFieldErrors(err):
		fe := validate.GetFieldErrors(err)
		return Response{Error: "data validation error", Fields: fe.Fields()}, http.StatusBadRequest

	case game.IsValidation(err):
		kind := game.KindOf(err)
		status := http.StatusBadRequest
		if kind == game.KindNotFound {
			status = http.StatusNotFound
		}
		return Response{Error: err.Error(), Kind: kind}, status

	case IsTrusted(err):
		re := GetTrusted(err)
		return Response{Error: re.Error()}, re.Status
	}

	return Response{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError
}
