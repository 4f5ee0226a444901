package service

import "errors"

// Error kinds surfaced by the generation pipeline. Callers match on these
// with errors.Is; the wrapped message carries the detail.
var (
	// ErrInvalidInput covers empty/missing inputs and out-of-range
	// temperatures, detected before any remote call.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAuthentication covers missing or rejected credentials.
	ErrAuthentication = errors.New("authentication failed")

	// ErrTransient covers network, timeout and service-unavailable
	// failures. The pipeline never retries; callers may.
	ErrTransient = errors.New("transient upstream failure")

	// ErrEmptyResult covers responses that carried no usable text.
	ErrEmptyResult = errors.New("model returned no usable text")
)
