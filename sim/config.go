package sim

import (
	"fmt"
	"time"
)

// TierConfig holds one storage tier's cost and capacity parameters.
type TierConfig struct {
	BaseLatencyMs float64 `yaml:"base_latency_ms"`
	Capacity      float64 `yaml:"capacity"` // abstract size units
}

// BaseLatency returns the tier's base retrieval cost as a duration.
func (c TierConfig) BaseLatency() time.Duration {
	return time.Duration(c.BaseLatencyMs * float64(time.Millisecond))
}

// SimConfig is the full simulator configuration, loaded from YAML or built
// from Defaults(). All policy knobs live here; nothing is hardcoded in the
// engine.
type SimConfig struct {
	Seed int64 `yaml:"seed"`

	// Tier parameters, keyed by lower-case tier name (hot, warm, cold).
	Tiers map[string]TierConfig `yaml:"tiers"`

	// Size units reserved per artifact type, keyed by lower-case type name.
	ArtifactSizes map[string]float64 `yaml:"artifact_sizes"`

	ScaleThreshold float64 `yaml:"scale_threshold"` // utilization fraction that trips scaling
	ScaleGrowth    float64 `yaml:"scale_growth"`    // capacity growth fraction per scale event

	MaxConcurrentRetrievals int64   `yaml:"max_concurrent_retrievals"`
	Jitter                  float64 `yaml:"jitter"` // latency variability fraction, e.g. 0.1 = ±10%
}

// Defaults returns the built-in configuration matching the documented
// defaults: 10/50/200ms tier latencies, 100/500/1000 unit capacities,
// photograph=1 document=0.5 video=5 sizes, 0.8 threshold, 0.5 growth,
// 1000 concurrent retrievals, ±10% jitter.
func Defaults() *SimConfig {
	return &SimConfig{
		Seed: 42,
		Tiers: map[string]TierConfig{
			"hot":  {BaseLatencyMs: 10, Capacity: 100},
			"warm": {BaseLatencyMs: 50, Capacity: 500},
			"cold": {BaseLatencyMs: 200, Capacity: 1000},
		},
		ArtifactSizes: map[string]float64{
			"photograph": 1,
			"document":   0.5,
			"video":      5,
		},
		ScaleThreshold:          0.8,
		ScaleGrowth:             0.5,
		MaxConcurrentRetrievals: 1000,
		Jitter:                  0.1,
	}
}

var tierNames = map[StorageTier]string{
	TierHot:  "hot",
	TierWarm: "warm",
	TierCold: "cold",
}

// TierSettings resolves the per-tier config map into tier-keyed form.
// Validate must have passed first.
func (c *SimConfig) TierSettings() map[StorageTier]TierConfig {
	out := make(map[StorageTier]TierConfig, len(StorageTiers))
	for _, tier := range StorageTiers {
		out[tier] = c.Tiers[tierNames[tier]]
	}
	return out
}

// SizeTable resolves the per-type size map into type-keyed form.
// Validate must have passed first.
func (c *SimConfig) SizeTable() map[ArtifactType]float64 {
	out := make(map[ArtifactType]float64, len(ArtifactTypes))
	for name, size := range c.ArtifactSizes {
		t, err := ParseArtifactType(name)
		if err != nil {
			continue
		}
		out[t] = size
	}
	return out
}

// BaseLatencies resolves tier base retrieval costs into tier-keyed form.
func (c *SimConfig) BaseLatencies() map[StorageTier]time.Duration {
	out := make(map[StorageTier]time.Duration, len(StorageTiers))
	for tier, tc := range c.TierSettings() {
		out[tier] = tc.BaseLatency()
	}
	return out
}

// Validate checks the configuration for internal consistency. Returns the
// first problem found, wrapped with enough context to locate it in the file.
func (c *SimConfig) Validate() error {
	for _, tier := range StorageTiers {
		name := tierNames[tier]
		tc, ok := c.Tiers[name]
		if !ok {
			return fmt.Errorf("tiers: missing entry for %q", name)
		}
		if tc.Capacity <= 0 {
			return fmt.Errorf("tiers.%s: capacity must be positive, got %v", name, tc.Capacity)
		}
		if tc.BaseLatencyMs <= 0 {
			return fmt.Errorf("tiers.%s: base_latency_ms must be positive, got %v", name, tc.BaseLatencyMs)
		}
	}
	// Retrieval cost must increase with tier coldness.
	if !(c.Tiers["hot"].BaseLatencyMs < c.Tiers["warm"].BaseLatencyMs &&
		c.Tiers["warm"].BaseLatencyMs < c.Tiers["cold"].BaseLatencyMs) {
		return fmt.Errorf("tiers: base latencies must satisfy hot < warm < cold")
	}
	for _, t := range ArtifactTypes {
		name := sizeKeyForType(t)
		size, ok := c.ArtifactSizes[name]
		if !ok {
			return fmt.Errorf("artifact_sizes: missing entry for %q", name)
		}
		if size <= 0 {
			return fmt.Errorf("artifact_sizes.%s: size must be positive, got %v", name, size)
		}
	}
	if c.ScaleThreshold <= 0 || c.ScaleThreshold > 1 {
		return fmt.Errorf("scale_threshold must be in (0, 1], got %v", c.ScaleThreshold)
	}
	if c.ScaleGrowth < 0 {
		return fmt.Errorf("scale_growth must be non-negative, got %v", c.ScaleGrowth)
	}
	if c.MaxConcurrentRetrievals <= 0 {
		return fmt.Errorf("max_concurrent_retrievals must be positive, got %d", c.MaxConcurrentRetrievals)
	}
	if c.Jitter < 0 || c.Jitter >= 1 {
		return fmt.Errorf("jitter must be in [0, 1), got %v", c.Jitter)
	}
	return nil
}

func sizeKeyForType(t ArtifactType) string {
	switch t {
	case Photograph:
		return "photograph"
	case Document:
		return "document"
	default:
		return "video"
	}
}
