package llmprovider

import "errors"

var (
	// ErrNoProvidersConfigured is returned when the manager has no providers
	ErrNoProvidersConfigured = errors.New("no LLM providers configured")

	// ErrAllProvidersFailed is returned when every provider in the
	// fallback chain failed
	ErrAllProvidersFailed = errors.New("all LLM providers failed")

	// ErrUnknownProvider is returned by the factory for an unrecognized
	// provider name
	ErrUnknownProvider = errors.New("unknown LLM provider")
)
