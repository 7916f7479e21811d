package domain

import "errors"

var (
	// ErrInvalidRequest signals a search request that must not reach the engine
	// (empty query text, unknown mode).
	ErrInvalidRequest = errors.New("invalid search request")
	// ErrEngineUnavailable signals a failed call to the search engine.
	// The pipeline never retries; retry policy belongs to the engine client.
	ErrEngineUnavailable = errors.New("search engine unavailable")
	// ErrProfileNotFound signals a missing user profile. Upstream this degrades
	// to a non-personalized search, never to a failed request.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
)
