package sim

import "errors"

// Error kinds surfaced by the core. All are per-operation, locally
// recoverable conditions; callers aggregate them into statistics rather than
// treating them as fatal.
var (
	// ErrInvalidInput marks input rejected synchronously (negative access
	// count, unknown enum string, duplicate placement).
	ErrInvalidInput = errors.New("invalid input")

	// ErrOverloaded is returned when a retrieval exceeds the concurrency
	// ceiling. Never retried or queued internally.
	ErrOverloaded = errors.New("system overloaded: too many concurrent requests")

	// ErrUnknownTier marks a tier missing from the manager's configuration.
	ErrUnknownTier = errors.New("unknown storage tier")
)
