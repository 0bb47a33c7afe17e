package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrUnknownTemplate indicates the requested template key is not registered
	ErrUnknownTemplate = errors.New("unknown template")

	// ErrInvalidState indicates a generation request transition out of order
	ErrInvalidState = errors.New("invalid generation state")

	// ErrInvalidInput indicates the input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrExtractionTimeout indicates the extraction service did not answer in time
	ErrExtractionTimeout = errors.New("extraction timed out")

	// ErrExtractionFailed indicates the extraction service answered with an error
	ErrExtractionFailed = errors.New("extraction failed")

	// ErrAssemblyFailed indicates the document writer rejected the plan
	ErrAssemblyFailed = errors.New("assembly failed")

	// ErrUnauthorized indicates authentication failed or missing
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTokenExpired indicates the auth token has expired
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid indicates the auth token is malformed or invalid
	ErrTokenInvalid = errors.New("token invalid")

	// ErrServiceUnavailable indicates the extraction service could not be reached
	ErrServiceUnavailable = errors.New("service unavailable")
)
