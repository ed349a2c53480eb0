// Package apierr carries an HTTP status and a stable error code alongside
// the underlying error so handlers can map service failures onto the API
// surface without string matching.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeInvalidRequest        = "invalid_request"
	CodeNotFound              = "not_found"
	CodeUnsupportedModel      = "unsupported_model"
	CodeProviderNotConfigured = "provider_not_configured"
	CodeProviderError         = "provider_error"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func Validation(field string) *Error {
	return New(http.StatusBadRequest, CodeInvalidRequest, fmt.Errorf("%s is required", field))
}

func NotFound(what string) *Error {
	return New(http.StatusNotFound, CodeNotFound, fmt.Errorf("%s not found", what))
}

func UnsupportedModel(model string) *Error {
	return New(http.StatusBadRequest, CodeUnsupportedModel, fmt.Errorf("unsupported model: %s", model))
}

func ProviderNotConfigured(err error) *Error {
	return New(http.StatusInternalServerError, CodeProviderNotConfigured, err)
}

func Provider(err error) *Error {
	return New(http.StatusInternalServerError, CodeProviderError, err)
}

// From returns err as an *Error, wrapping anything else as a 500.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return New(http.StatusInternalServerError, "internal_error", err)
}
