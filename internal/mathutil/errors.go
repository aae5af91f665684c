package mathutil

import "errors"

// ErrInvalidArgument is returned for negative or out-of-domain rates, time
// steps and frequencies. The root package re-exports it so callers can test
// with errors.Is regardless of which layer produced the error.
var ErrInvalidArgument = errors.New("invalid argument")
