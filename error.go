package rhttp

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is an error code that mirrors the http status codes. It can be used to create errors to pass around across
// middleware layers to handle errors structurally.
type Code int

const (
	CodeUnknown              Code = 0
	CodeBadRequest           Code = http.StatusBadRequest           // RFC 9110, 15.5.1
	CodeUnauthorized         Code = http.StatusUnauthorized         // RFC 9110, 15.5.2
	CodeForbidden            Code = http.StatusForbidden            // RFC 9110, 15.5.4
	CodeNotFound             Code = http.StatusNotFound             // RFC 9110, 15.5.5
	CodeMethodNotAllowed     Code = http.StatusMethodNotAllowed     // RFC 9110, 15.5.6
	CodeNotAcceptable        Code = http.StatusNotAcceptable        // RFC 9110, 15.5.7
	CodeConflict             Code = http.StatusConflict             // RFC 9110, 15.5.10
	CodeGone                 Code = http.StatusGone                 // RFC 9110, 15.5.11
	CodeUnsupportedMediaType Code = http.StatusUnsupportedMediaType // RFC 9110, 15.5.16
	CodeUnprocessableEntity  Code = http.StatusUnprocessableEntity  // RFC 9110, 15.5.21
	CodeTooManyRequests      Code = http.StatusTooManyRequests      // RFC 6585, 4

	CodeInternalServerError Code = http.StatusInternalServerError // RFC 9110, 15.6.1
	CodeNotImplemented      Code = http.StatusNotImplemented      // RFC 9110, 15.6.2
	CodeBadGateway          Code = http.StatusBadGateway          // RFC 9110, 15.6.3
	CodeServiceUnavailable  Code = http.StatusServiceUnavailable  // RFC 9110, 15.6.4
)

// Sentinel errors identifying the mediation failure kinds. Several kinds share
// a status code so the code alone cannot distinguish them; match with
// errors.Is instead.
var (
	// ErrMethodNotAllowed reports an effective method absent from the action map.
	ErrMethodNotAllowed = errors.New("method not allowed")
	// ErrServerMisconfigured reports an action mapped to a name without a registered handler.
	ErrServerMisconfigured = errors.New("no handler registered for resolved action")
	// ErrNoContentType reports a POST or PUT without a Content-Type header.
	ErrNoContentType = errors.New("no content type provided")
	// ErrUnsupportedMediaType reports a request content type without a registered parser.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	// ErrMalformedBody reports a request body that parsed to nothing.
	ErrMalformedBody = errors.New("malformed request body")
	// ErrNotAcceptable reports a GET request with no negotiable response type.
	ErrNotAcceptable = errors.New("not acceptable")
	// ErrRendererFailure reports that every negotiated renderer failed.
	ErrRendererFailure = errors.New("all negotiated renderers failed")
	// ErrEncoding reports a failed encode or decode inside a renderer.
	ErrEncoding = errors.New("encoding failed")
)

// Error describes an http error.
type Error struct {
	code   Code
	err    error
	header http.Header
}

// NewError inits a new error given the error code.
func NewError(c Code, underlying error) *Error {
	return &Error{code: c, err: underlying}
}

// WithHeader attaches a header to the error. The transport boundary writes
// attached headers onto the error response before the status line. The 405
// path uses this to carry the Allow header.
func (e *Error) WithHeader(key, value string) *Error {
	if e.header == nil {
		e.header = make(http.Header)
	}

	e.header.Set(key, value)

	return e
}

// Header returns the headers attached to the error, possibly nil.
func (e *Error) Header() http.Header { return e.header }

func (e *Error) Code() Code    { return e.code }
func (e *Error) Unwrap() error { return e.err }

func (e *Error) Error() string {
	status := http.StatusText(int(e.Code()))
	if status == "" {
		status = "Unknown"
	}

	return fmt.Sprintf("%s: %s", status, e.err.Error())
}

// CodeOf returns the error's status code if it is or wraps an [*Error] and
// [CodeUnknown] otherwise.
func CodeOf(err error) Code {
	if herr, ok := asError(err); ok {
		return herr.Code()
	}
	return CodeUnknown
}

// asError uses errors.As to unwrap any error and look for an rhttp *Error.
func asError(err error) (*Error, bool) {
	var herr *Error
	ok := errors.As(err, &herr)
	return herr, ok
}
