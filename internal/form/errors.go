package form

import "errors"

// ErrVerifierPanicked wraps a panic raised inside the verification call.
var ErrVerifierPanicked = errors.New("verification service panicked")
