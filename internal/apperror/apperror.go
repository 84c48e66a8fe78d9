package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a class of failure independent of its message.
type Code string

const (
	CodeNotFound            Code = "NOT_FOUND"
	CodeValidation          Code = "VALIDATION_FAILED"
	CodeConflict            Code = "CONFLICT"
	CodeForbidden           Code = "FORBIDDEN"
	CodeUnauthorized        Code = "UNAUTHORIZED"
	CodeUpstreamUnavailable Code = "UPSTREAM_UNAVAILABLE"
	CodeCyclicHierarchy     Code = "CYCLIC_HIERARCHY"
	CodeTranslationMissing  Code = "TRANSLATION_MISSING"
	CodeInternal            Code = "INTERNAL_ERROR"
)

// Error is a structured failure surfaced by repositories and services.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same code, so sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Wrap attaches a cause and returns a copy.
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.Err = err
	return &c
}

var (
	ErrNotFound            = &Error{Code: CodeNotFound, Message: "resource not found", Status: http.StatusNotFound}
	ErrValidation          = &Error{Code: CodeValidation, Message: "validation failed", Status: http.StatusBadRequest}
	ErrConflict            = &Error{Code: CodeConflict, Message: "resource already exists", Status: http.StatusConflict}
	ErrForbidden           = &Error{Code: CodeForbidden, Message: "access denied", Status: http.StatusForbidden}
	ErrUnauthorized        = &Error{Code: CodeUnauthorized, Message: "authentication required", Status: http.StatusUnauthorized}
	ErrUpstreamUnavailable = &Error{Code: CodeUpstreamUnavailable, Message: "upstream unavailable", Status: http.StatusServiceUnavailable}
	ErrCyclicHierarchy     = &Error{Code: CodeCyclicHierarchy, Message: "hierarchy contains a cycle", Status: http.StatusInternalServerError}
	ErrTranslationMissing  = &Error{Code: CodeTranslationMissing, Message: "translation missing", Status: http.StatusNotFound}
)

func newf(base *Error, format string, args ...any) *Error {
	return &Error{Code: base.Code, Status: base.Status, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return newf(ErrNotFound, format, args...)
}

func Validation(format string, args ...any) *Error {
	return newf(ErrValidation, format, args...)
}

func Conflict(format string, args ...any) *Error {
	return newf(ErrConflict, format, args...)
}

func Forbidden(format string, args ...any) *Error {
	return newf(ErrForbidden, format, args...)
}

func Unauthorized(format string, args ...any) *Error {
	return newf(ErrUnauthorized, format, args...)
}

func Upstream(format string, args ...any) *Error {
	return newf(ErrUpstreamUnavailable, format, args...)
}

func CyclicHierarchy(format string, args ...any) *Error {
	return newf(ErrCyclicHierarchy, format, args...)
}

// StatusOf maps err to an HTTP status; unknown errors are 500.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Status != 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}

// From returns the first *Error in err's chain, or a generic internal error.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Code: CodeInternal, Message: "internal server error", Status: http.StatusInternalServerError, Err: err}
}
