package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side verification errors. All of them are transport failures from
// the point of view of the form.
var (
	ErrSimulatedTransportFailure = errors.New("simulated transport failure")
	ErrUnexpectedOutcome         = errors.New("unexpected verification outcome")
	ErrNoServerAdapter           = errors.New("remote verification requires a server adapter")
	ErrUnknownVerifierMode       = errors.New("unknown verifier mode")
)
