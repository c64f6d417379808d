package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is the single error type returned by the client.
type Error struct {
	// Code classifies the failure.
	Code ErrorCode `json:"code"`
	// Message is a human-readable message. For response errors it is the
	// server's error text when one was sent, otherwise the reason phrase.
	Message string `json:"message"`
	// RequestURI is the URI of the failed call, if the failure is tied to one.
	RequestURI string `json:"request_uri,omitempty"`
	// StatusCode is the HTTP status of a response error.
	StatusCode int `json:"status_code,omitempty"`
	// Body is the raw response body of a response error.
	Body string `json:"body,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.RequestURI != "" {
		fmt.Fprintf(&b, " [%s]", e.RequestURI)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, " (cause: %v)", e.Cause)
	}
	return b.String()
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// Is matches the code sentinels, honouring the code hierarchy, so that
// errors.Is(err, ErrResponse) holds for a NotFound error.
func (e *Error) Is(target error) bool {
	s, ok := target.(sentinel)
	return ok && e.Code.Is(ErrorCode(s))
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithRequestURI sets the request URI and returns the receiver.
func (e *Error) WithRequestURI(uri string) *Error {
	e.RequestURI = uri
	return e
}

// WithBody sets the raw response body and returns the receiver.
func (e *Error) WithBody(body string) *Error {
	e.Body = body
	return e
}

type sentinel ErrorCode

func (s sentinel) Error() string { return string(s) }

// Sentinels for use with errors.Is.
var (
	ErrRequest         error = sentinel(ErrCodeRequest)
	ErrResponse        error = sentinel(ErrCodeResponse)
	ErrUnauthorized    error = sentinel(ErrCodeUnauthorized)
	ErrNotFound        error = sentinel(ErrCodeNotFound)
	ErrAlreadyExists   error = sentinel(ErrCodeAlreadyExists)
	ErrParse           error = sentinel(ErrCodeParse)
	ErrConfiguration   error = sentinel(ErrCodeConfiguration)
	ErrInvalidArgument error = sentinel(ErrCodeInvalidArgument)
)

// New creates a new Error.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// --- Request / response constructors ---

// RequestFailed creates an error for a call that failed in transport.
func RequestFailed(uri string, cause error) *Error {
	return &Error{
		Code: ErrCodeRequest, Message: "an error occurred while sending the request",
		RequestURI: uri, Cause: cause,
	}
}

// NoResponse creates an error for a call that completed without a response.
func NoResponse(uri string) *Error {
	return &Error{Code: ErrCodeRequest, Message: "no response", RequestURI: uri}
}

// Response creates an error for a generic non-success response.
func Response(statusCode int, message string) *Error {
	return &Error{Code: ErrCodeResponse, Message: message, StatusCode: statusCode}
}

// Unauthorized creates an error for a 401 response.
func Unauthorized(message string) *Error {
	return &Error{Code: ErrCodeUnauthorized, Message: message, StatusCode: http.StatusUnauthorized}
}

// NotFound creates an error for a 404 response.
func NotFound(message string) *Error {
	return &Error{Code: ErrCodeNotFound, Message: message, StatusCode: http.StatusNotFound}
}

// AlreadyExists creates an error for a 422 response to a create call whose
// target already exists.
func AlreadyExists(message string) *Error {
	return &Error{Code: ErrCodeAlreadyExists, Message: message, StatusCode: http.StatusUnprocessableEntity}
}

// FromStatus classifies a non-success status into the matching response error.
func FromStatus(statusCode int, message string) *Error {
	switch statusCode {
	case http.StatusUnauthorized:
		return Unauthorized(message)
	case http.StatusNotFound:
		return NotFound(message)
	default:
		return Response(statusCode, message)
	}
}

// --- Local constructors ---

// Parse creates an error for a JSON payload that could not be handled.
func Parse(message string, cause error) *Error {
	return &Error{Code: ErrCodeParse, Message: message, Cause: cause}
}

// Configuration creates an error for invalid configuration.
func Configuration(message string) *Error {
	return &Error{Code: ErrCodeConfiguration, Message: message}
}

// InvalidArgument creates an error for an invalid operation argument.
func InvalidArgument(name, reason string) *Error {
	return &Error{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid argument %s: %s", name, reason)}
}

// --- Inspection ---

// AsError converts an error to an *Error if possible.
func AsError(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func hasCode(err error, code ErrorCode) bool {
	e, ok := AsError(err)
	return ok && e.Code.Is(code)
}

// IsRequestError reports whether err is a request failure, including every response failure.
func IsRequestError(err error) bool { return hasCode(err, ErrCodeRequest) }

// IsResponseError reports whether err is a non-success response.
func IsResponseError(err error) bool { return hasCode(err, ErrCodeResponse) }

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool { return hasCode(err, ErrCodeUnauthorized) }

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool { return hasCode(err, ErrCodeNotFound) }

// IsAlreadyExists reports whether err is an already-exists failure.
func IsAlreadyExists(err error) bool { return hasCode(err, ErrCodeAlreadyExists) }

// IsParseError reports whether err is a parse failure.
func IsParseError(err error) bool { return hasCode(err, ErrCodeParse) }

// IsConfigurationError reports whether err is a configuration failure.
func IsConfigurationError(err error) bool { return hasCode(err, ErrCodeConfiguration) }

// IsInvalidArgument reports whether err is an invalid argument failure.
func IsInvalidArgument(err error) bool { return hasCode(err, ErrCodeInvalidArgument) }

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	if e, ok := AsError(err); ok {
		return e.StatusCode
	}
	return 0
}
