package adapter

import "errors"

// Transport-level errors. HTTP statuses and network failures are mapped to
// these values; the body text, if any, is appended after ": ".
var (
	ErrBadRequest       = errors.New("bad request")
	ErrUnauthorized     = errors.New("client unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrUnprocessable    = errors.New("unprocessable entity")
	ErrServer           = errors.New("server error")
	ErrUnexpectedStatus = errors.New("unexpected http status")

	// ErrNetwork means no response was received at all.
	ErrNetwork = errors.New("network unreachable")

	// ErrTimeout means the request did not complete within its deadline.
	ErrTimeout = errors.New("request timed out")

	// ErrDecode means the response could not be decoded or contained an
	// ambiguous value that the client refuses to guess about.
	ErrDecode = errors.New("malformed response")
)
