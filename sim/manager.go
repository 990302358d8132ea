package sim

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// tierState is one tier's capacity accounting. Each tier is independently
// lockable so placements into different tiers never contend.
type tierState struct {
	mu       sync.Mutex
	capacity float64
	used     float64
}

// assignment records where an artifact lives and how many units it reserves,
// so Remove can release exactly what Place committed.
type assignment struct {
	tier StorageTier
	size float64
}

// ResourceManager tracks per-tier capacity and usage, admits or rejects
// artifact placements, and scales tier capacity when utilization crosses the
// configured threshold.
//
// Invariants, held at every observable point:
//   - used <= capacity for every tier
//   - capacity only grows (no downscaling)
//   - an artifact has at most one current tier assignment
type ResourceManager struct {
	tiers     map[StorageTier]*tierState
	sizes     map[ArtifactType]float64
	threshold float64 // utilization fraction that trips scaling
	growth    float64 // capacity growth fraction per scale event

	amu         sync.Mutex
	assignments map[string]assignment
}

// UsageSnapshot is a point-in-time view of all tiers' capacity and usage.
type UsageSnapshot struct {
	Capacities map[StorageTier]float64
	Usage      map[StorageTier]float64
}

// NewResourceManager builds a manager from a validated configuration.
func NewResourceManager(cfg *SimConfig) *ResourceManager {
	tiers := make(map[StorageTier]*tierState, len(StorageTiers))
	for tier, tc := range cfg.TierSettings() {
		tiers[tier] = &tierState{capacity: tc.Capacity}
	}
	return &ResourceManager{
		tiers:       tiers,
		sizes:       cfg.SizeTable(),
		threshold:   cfg.ScaleThreshold,
		growth:      cfg.ScaleGrowth,
		assignments: make(map[string]assignment),
	}
}

// Place reserves capacity for the artifact in the given tier. Returns false
// (with nil error) when the tier cannot fit the artifact even after scaling;
// the caller decides any fallback, the manager never cascades to another tier.
//
// Scaling policy is scale-then-check: when the projected usage reaches the
// utilization threshold, capacity grows by the growth fraction before the
// admission check, whether or not the growth is enough to admit the pending
// artifact. Over-provisioning past the immediate need is intentional.
func (m *ResourceManager) Place(a *Artifact, tier StorageTier) (bool, error) {
	ts, ok := m.tiers[tier]
	if !ok {
		return false, fmt.Errorf("place %s: %w: %v", a.ID, ErrUnknownTier, tier)
	}
	size, ok := m.sizes[a.Type]
	if !ok {
		return false, fmt.Errorf("place %s: %w: no size for type %v", a.ID, ErrInvalidInput, a.Type)
	}

	// Claim the artifact id first so concurrent placements of the same id
	// cannot both commit.
	m.amu.Lock()
	if prev, dup := m.assignments[a.ID]; dup {
		m.amu.Unlock()
		return false, fmt.Errorf("place %s: %w: already assigned to %v", a.ID, ErrInvalidInput, prev.tier)
	}
	m.assignments[a.ID] = assignment{tier: tier, size: size}
	m.amu.Unlock()

	ts.mu.Lock()
	if ts.used+size >= m.threshold*ts.capacity {
		m.scaleLocked(tier, ts)
	}
	if ts.used+size > ts.capacity {
		ts.mu.Unlock()
		m.amu.Lock()
		delete(m.assignments, a.ID)
		m.amu.Unlock()
		return false, nil
	}
	ts.used += size
	ts.mu.Unlock()
	return true, nil
}

// scaleLocked grows the tier's capacity by the growth fraction. Caller holds
// the tier lock.
func (m *ResourceManager) scaleLocked(tier StorageTier, ts *tierState) {
	ts.capacity += ts.capacity * m.growth
	logrus.Infof("scaled %v capacity to %.2f units", tier, ts.capacity)
}

// Remove releases the capacity reserved for the artifact, if any. Capacity
// itself never shrinks. Returns whether an assignment existed.
func (m *ResourceManager) Remove(artifactID string) bool {
	m.amu.Lock()
	as, ok := m.assignments[artifactID]
	if !ok {
		m.amu.Unlock()
		return false
	}
	delete(m.assignments, artifactID)
	m.amu.Unlock()

	ts := m.tiers[as.tier]
	ts.mu.Lock()
	ts.used -= as.size
	ts.mu.Unlock()
	return true
}

// TierOf reports the artifact's current tier assignment.
func (m *ResourceManager) TierOf(artifactID string) (StorageTier, bool) {
	m.amu.Lock()
	defer m.amu.Unlock()
	as, ok := m.assignments[artifactID]
	return as.tier, ok
}

// UsageStats returns a snapshot of every tier's capacity and usage.
func (m *ResourceManager) UsageStats() UsageSnapshot {
	snap := UsageSnapshot{
		Capacities: make(map[StorageTier]float64, len(m.tiers)),
		Usage:      make(map[StorageTier]float64, len(m.tiers)),
	}
	for tier, ts := range m.tiers {
		ts.mu.Lock()
		snap.Capacities[tier] = ts.capacity
		snap.Usage[tier] = ts.used
		ts.mu.Unlock()
	}
	return snap
}
