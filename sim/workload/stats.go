package workload

import (
	"sync"
	"time"

	"github.com/DataDog/sketches-go/ddsketch"
	"github.com/sirupsen/logrus"

	"github.com/sds-sim/sds-sim/sim"
)

// sketchAccuracy is the DDSketch relative accuracy for latency quantiles.
const sketchAccuracy = 0.01

// RetrievalStats aggregates latency observations and rejections across
// concurrent retrieval operations. Safe for concurrent use.
type RetrievalStats struct {
	mu         sync.Mutex
	sketch     *ddsketch.DDSketch
	tierSketch map[sim.StorageTier]*ddsketch.DDSketch
	tierSum    map[sim.StorageTier]float64
	tierCount  map[sim.StorageTier]int
	sum        float64
	count      int
	rejected   int
	failed     int
}

func NewRetrievalStats() *RetrievalStats {
	s := &RetrievalStats{
		tierSketch: make(map[sim.StorageTier]*ddsketch.DDSketch),
		tierSum:    make(map[sim.StorageTier]float64),
		tierCount:  make(map[sim.StorageTier]int),
	}
	s.sketch = newSketch()
	for _, tier := range sim.StorageTiers {
		s.tierSketch[tier] = newSketch()
	}
	return s
}

func newSketch() *ddsketch.DDSketch {
	sketch, err := ddsketch.NewDefaultDDSketch(sketchAccuracy)
	if err != nil {
		logrus.Fatalf("failed to create latency sketch: %v", err)
	}
	return sketch
}

// Observe records one successful retrieval's latency.
func (s *RetrievalStats) Observe(tier sim.StorageTier, latency time.Duration) {
	secs := latency.Seconds()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.sketch.Add(secs); err != nil {
		logrus.Debugf("sketch add: %v", err)
	}
	if err := s.tierSketch[tier].Add(secs); err != nil {
		logrus.Debugf("tier sketch add: %v", err)
	}
	s.sum += secs
	s.count++
	s.tierSum[tier] += secs
	s.tierCount[tier]++
}

// Reject records one retrieval rejected at admission.
func (s *RetrievalStats) Reject() {
	s.mu.Lock()
	s.rejected++
	s.mu.Unlock()
}

// Fail records one retrieval that was admitted but did not complete
// (e.g. cancellation).
func (s *RetrievalStats) Fail() {
	s.mu.Lock()
	s.failed++
	s.mu.Unlock()
}

// TierLatencySummary is the per-tier view of retrieval latencies, in seconds.
type TierLatencySummary struct {
	Count int
	Avg   float64
	P50   float64
	P95   float64
	P99   float64
}

// LatencySummary is the aggregate view of one retrieval test's latencies.
type LatencySummary struct {
	Completed int
	Rejected  int
	Failed    int
	Avg       float64
	P50       float64
	P95       float64
	P99       float64
	PerTier   map[sim.StorageTier]TierLatencySummary
}

// Summary snapshots the collected statistics.
func (s *RetrievalStats) Summary() LatencySummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := LatencySummary{
		Completed: s.count,
		Rejected:  s.rejected,
		Failed:    s.failed,
		PerTier:   make(map[sim.StorageTier]TierLatencySummary, len(s.tierSketch)),
	}
	if s.count > 0 {
		out.Avg = s.sum / float64(s.count)
		out.P50, out.P95, out.P99 = quantiles(s.sketch)
	}
	for _, tier := range sim.StorageTiers {
		ts := TierLatencySummary{Count: s.tierCount[tier]}
		if ts.Count > 0 {
			ts.Avg = s.tierSum[tier] / float64(ts.Count)
			ts.P50, ts.P95, ts.P99 = quantiles(s.tierSketch[tier])
		}
		out.PerTier[tier] = ts
	}
	return out
}

func quantiles(sketch *ddsketch.DDSketch) (p50, p95, p99 float64) {
	p50, _ = sketch.GetValueAtQuantile(0.50)
	p95, _ = sketch.GetValueAtQuantile(0.95)
	p99, _ = sketch.GetValueAtQuantile(0.99)
	return p50, p95, p99
}
