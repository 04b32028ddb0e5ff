package adapter

import "errors"

// Sentinel errors returned by [ServerAdapter] implementations.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrIntegrityCheckFailed is returned when a hash key is configured and
	// the HashSHA256 response header is missing or does not match the body.
	ErrIntegrityCheckFailed = errors.New("response integrity check failed")

	// ErrMalformedResponse is returned when a 2xx body cannot be decoded.
	ErrMalformedResponse = errors.New("malformed response")
)
