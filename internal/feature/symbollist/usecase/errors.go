package usecase

import "errors"

// ErrUpstreamUnavailable is returned when the exchange metadata endpoint cannot be reached
// or returns a response that cannot be used.
var ErrUpstreamUnavailable = errors.New("upstream exchange unavailable")
