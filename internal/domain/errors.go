package domain

import "errors"

var (
	// ErrMalformedRecord is returned when a required product field is missing
	// or unparseable. The comparison engine degrades instead of failing.
	ErrMalformedRecord = errors.New("malformed product record")

	// ErrRewriterUnavailable covers connection failures, timeouts and
	// malformed responses from the optional rewriter. Always resolved by
	// fallback, never surfaced to API callers.
	ErrRewriterUnavailable = errors.New("rewriter unavailable")

	// ErrInvalidConfig indicates an out-of-range threshold or missing
	// required setting. The one error class that aborts startup.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when a page is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
