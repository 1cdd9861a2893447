package errors

import "net/http"

// Kind classifies where a failure came from.
type Kind int

const (
	// KindValidation is a problem with the caller's input.
	KindValidation Kind = iota + 1
	// KindUpstream is a non-success answer from the scheduling API.
	KindUpstream
	// KindTransport is a network failure talking to the scheduling API.
	KindTransport
	// KindInternal is a local parse or decode failure.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUpstream:
		return "upstream"
	case KindTransport:
		return "transport"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Kind    Kind
	Code    int
	Message string
	// Details holds the raw upstream body for KindUpstream errors.
	Details string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(kind Kind, code int, message string) *HTTPError {
	return &HTTPError{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// Helpers for the four kinds. Only validation errors surface as 4xx.
var (
	ErrValidation = func(msg string) *HTTPError { return NewHTTPError(KindValidation, http.StatusBadRequest, msg) }
	ErrTransport  = func(err error) *HTTPError {
		return NewHTTPError(KindTransport, http.StatusInternalServerError, err.Error())
	}
	ErrInternal = func(err error) *HTTPError {
		return NewHTTPError(KindInternal, http.StatusInternalServerError, err.Error())
	}
)

// ErrUpstream wraps a rejected upstream call, keeping the raw body verbatim.
func ErrUpstream(msg, body string) *HTTPError {
	e := NewHTTPError(KindUpstream, http.StatusInternalServerError, msg)
	e.Details = body
	return e
}
