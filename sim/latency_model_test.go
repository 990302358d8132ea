package sim

import (
	"testing"
	"time"
)

func defaultBases() map[StorageTier]time.Duration {
	return map[StorageTier]time.Duration{
		TierHot:  10 * time.Millisecond,
		TierWarm: 50 * time.Millisecond,
		TierCold: 200 * time.Millisecond,
	}
}

func TestJitterLatencyModel_WithinBand(t *testing.T) {
	m := NewJitterLatencyModel(defaultBases(), 0.1, 42)
	for i := 0; i < 10000; i++ {
		for tier, base := range defaultBases() {
			cost := m.RetrievalCost(tier)
			lo := time.Duration(float64(base) * 0.9)
			hi := time.Duration(float64(base) * 1.1)
			if cost < lo || cost > hi {
				t.Fatalf("tier %v: cost %v outside [%v, %v]", tier, cost, lo, hi)
			}
		}
	}
}

func TestJitterLatencyModel_SeededReproducibility(t *testing.T) {
	a := NewJitterLatencyModel(defaultBases(), 0.1, 7)
	b := NewJitterLatencyModel(defaultBases(), 0.1, 7)
	for i := 0; i < 100; i++ {
		if got, want := a.RetrievalCost(TierCold), b.RetrievalCost(TierCold); got != want {
			t.Fatalf("draw %d: %v != %v", i, got, want)
		}
	}
}

func TestJitterLatencyModel_ZeroJitterIsExact(t *testing.T) {
	m := NewJitterLatencyModel(defaultBases(), 0, 1)
	if got := m.RetrievalCost(TierWarm); got != 50*time.Millisecond {
		t.Errorf("got %v, want 50ms", got)
	}
}

func TestJitterLatencyModel_TierOrdering(t *testing.T) {
	// ±10% bands around 10/50/200ms never overlap, so every draw preserves
	// Hot < Warm < Cold.
	m := NewJitterLatencyModel(defaultBases(), 0.1, 3)
	for i := 0; i < 1000; i++ {
		hot := m.RetrievalCost(TierHot)
		warm := m.RetrievalCost(TierWarm)
		cold := m.RetrievalCost(TierCold)
		if !(hot < warm && warm < cold) {
			t.Fatalf("draw %d: ordering violated: %v %v %v", i, hot, warm, cold)
		}
	}
}

func TestFixedLatencyModel(t *testing.T) {
	m := &FixedLatencyModel{Base: defaultBases()}
	if got := m.RetrievalCost(TierCold); got != 200*time.Millisecond {
		t.Errorf("got %v, want 200ms", got)
	}
}
