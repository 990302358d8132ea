package workload

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sds-sim/sds-sim/sim"
)

func TestRetrievalStats_Counts(t *testing.T) {
	s := NewRetrievalStats()
	s.Observe(sim.TierHot, 10*time.Millisecond)
	s.Observe(sim.TierHot, 12*time.Millisecond)
	s.Observe(sim.TierCold, 200*time.Millisecond)
	s.Reject()
	s.Reject()
	s.Fail()

	sum := s.Summary()
	assert.Equal(t, 3, sum.Completed)
	assert.Equal(t, 2, sum.Rejected)
	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, 2, sum.PerTier[sim.TierHot].Count)
	assert.Equal(t, 0, sum.PerTier[sim.TierWarm].Count)
	assert.Equal(t, 1, sum.PerTier[sim.TierCold].Count)
}

func TestRetrievalStats_Averages(t *testing.T) {
	s := NewRetrievalStats()
	s.Observe(sim.TierWarm, 40*time.Millisecond)
	s.Observe(sim.TierWarm, 60*time.Millisecond)

	sum := s.Summary()
	assert.InDelta(t, 0.050, sum.Avg, 1e-9)
	assert.InDelta(t, 0.050, sum.PerTier[sim.TierWarm].Avg, 1e-9)
}

func TestRetrievalStats_QuantilesNearConstantData(t *testing.T) {
	s := NewRetrievalStats()
	for i := 0; i < 1000; i++ {
		s.Observe(sim.TierHot, 10*time.Millisecond)
	}
	sum := s.Summary()
	// DDSketch guarantees 1% relative accuracy.
	assert.InDelta(t, 0.010, sum.P50, 0.010*0.02)
	assert.InDelta(t, 0.010, sum.P95, 0.010*0.02)
	assert.InDelta(t, 0.010, sum.P99, 0.010*0.02)
}

func TestRetrievalStats_EmptySummary(t *testing.T) {
	sum := NewRetrievalStats().Summary()
	assert.Equal(t, 0, sum.Completed)
	assert.Equal(t, 0.0, sum.Avg)
	assert.Equal(t, 0.0, sum.P99)
}
