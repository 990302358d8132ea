package sim

import (
	"math/rand"
	"sync"
	"time"
)

// LatencyModel estimates the retrieval cost for a storage tier.
// Two implementations exist: JitterLatencyModel (base cost with uniform
// variability, the production model) and FixedLatencyModel (deterministic,
// for tests).
type LatencyModel interface {
	// RetrievalCost returns the simulated latency of one retrieval from
	// the given tier.
	RetrievalCost(tier StorageTier) time.Duration
}

// JitterLatencyModel scales a tier-specific base cost by a uniform jitter
// factor in [1-jitter, 1+jitter]. Safe for concurrent use; the RNG is
// guarded because rand.Rand is not.
type JitterLatencyModel struct {
	base   map[StorageTier]time.Duration
	jitter float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewJitterLatencyModel builds the model from per-tier base costs and a
// seeded RNG so runs are reproducible.
func NewJitterLatencyModel(base map[StorageTier]time.Duration, jitter float64, seed int64) *JitterLatencyModel {
	b := make(map[StorageTier]time.Duration, len(base))
	for tier, d := range base {
		b[tier] = d
	}
	return &JitterLatencyModel{
		base:   b,
		jitter: jitter,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (m *JitterLatencyModel) RetrievalCost(tier StorageTier) time.Duration {
	m.mu.Lock()
	factor := 1 - m.jitter + 2*m.jitter*m.rng.Float64()
	m.mu.Unlock()
	return time.Duration(float64(m.base[tier]) * factor)
}

// FixedLatencyModel returns the base cost unmodified. Used in tests that
// need reproducible latency assertions.
type FixedLatencyModel struct {
	Base map[StorageTier]time.Duration
}

func (m *FixedLatencyModel) RetrievalCost(tier StorageTier) time.Duration {
	return m.Base[tier]
}
