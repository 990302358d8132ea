package sim

import (
	"fmt"
	"time"
)

// Classify maps an artifact's importance and usage frequency to a storage
// tier. Stateless and deterministic.
//
// The ordering is significant: Critical importance overrides a Low usage
// signal, and Standard importance alone is enough to avoid Cold.
func Classify(importance Importance, usage UsageFrequency) StorageTier {
	if importance == ImportanceCritical || usage == UsageHigh {
		return TierHot
	}
	if usage == UsageMedium || importance == ImportanceStandard {
		return TierWarm
	}
	return TierCold
}

// ClassifyAndAssign evaluates an artifact's usage at the given time and
// returns its storage tier.
func ClassifyAndAssign(a *Artifact, now time.Time) (StorageTier, error) {
	usage, err := EvaluateUsage(a.AccessCount, a.LastAccessed, now)
	if err != nil {
		return TierCold, fmt.Errorf("artifact %s: %w", a.ID, err)
	}
	return Classify(a.Importance, usage), nil
}

// ProcessArtifacts classifies a batch of artifacts and returns one display
// record per artifact. Artifacts that fail usage evaluation are skipped and
// reported in the error, after all valid artifacts have been processed.
func ProcessArtifacts(artifacts []*Artifact, now time.Time) ([]Record, error) {
	records := make([]Record, 0, len(artifacts))
	var firstErr error
	for _, a := range artifacts {
		usage, err := EvaluateUsage(a.AccessCount, a.LastAccessed, now)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("artifact %s: %w", a.ID, err)
			}
			continue
		}
		tier := Classify(a.Importance, usage)
		records = append(records, Record{
			ID:             a.ID,
			Name:           a.Name,
			Type:           a.Type.String(),
			UsageFrequency: usage.String(),
			Importance:     a.Importance.String(),
			AssignedTier:   tier.String(),
		})
	}
	return records, firstErr
}
