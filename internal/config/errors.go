package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrInvalidMaxDepth is returned when the crawl depth is negative.
	// Depth 0 is valid and means homepage only.
	ErrInvalidMaxDepth = errors.New("invalid max depth: must be non-negative")

	// ErrInvalidMaxPages is returned when the page ceiling is not positive.
	// A ceiling of zero would produce an empty crawl for every site.
	ErrInvalidMaxPages = errors.New("invalid max pages: must be positive")

	// ErrInvalidFetchTimeout is returned when the fetch timeout is not
	// positive. A zero timeout would fail every render immediately.
	ErrInvalidFetchTimeout = errors.New("invalid fetch timeout: must be positive")

	// ErrInvalidQueueFactor is returned when the queue factor is below 1.
	// A factor below 1 could halt the queue before the page ceiling.
	ErrInvalidQueueFactor = errors.New("invalid queue factor: must be at least 1")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	// Zero concurrency would mean no analyses run at all.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrInvalidRenderer is returned for unknown renderer kinds.
	ErrInvalidRenderer = errors.New(`invalid renderer: must be "browser" or "static"`)
)
