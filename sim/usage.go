package sim

import (
	"fmt"
	"time"
)

// usageWindow is the observation window for access-frequency classification.
// An artifact untouched for longer than this is Low regardless of volume.
const usageWindow = 30 * 24 * time.Hour

// Access-count thresholds within the observation window.
const (
	highAccessThreshold   = 10 // strictly more than this is High
	mediumAccessThreshold = 1  // at least this many is Medium
)

// EvaluateUsage derives the usage frequency from an artifact's access
// bookkeeping. Pure and deterministic given its inputs; now is passed
// explicitly so callers control the clock.
//
// Precedence: staleness beyond the 30-day window dominates volume, then
// volume thresholds apply.
func EvaluateUsage(accessCount int, lastAccessed, now time.Time) (UsageFrequency, error) {
	if accessCount < 0 {
		return UsageLow, fmt.Errorf("%w: negative access count %d", ErrInvalidInput, accessCount)
	}
	if now.Sub(lastAccessed) > usageWindow {
		return UsageLow, nil
	}
	switch {
	case accessCount > highAccessThreshold:
		return UsageHigh, nil
	case accessCount >= mediumAccessThreshold:
		return UsageMedium, nil
	default:
		return UsageLow, nil
	}
}
