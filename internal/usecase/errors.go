package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrMalformedUpstreamRecord marks a single provider record missing
	// required fields; the rest of the batch proceeds.
	ErrMalformedUpstreamRecord = errors.New("malformed upstream record")
	// ErrUpstreamUnavailable covers transport failures, timeouts and
	// non-2xx responses from the sports-data provider.
	ErrUpstreamUnavailable = errors.New("upstream provider unavailable")
	// ErrStoreUnavailable is raised only when the store cannot be
	// reached at all for the final read.
	ErrStoreUnavailable = errors.New("store unavailable")
)
