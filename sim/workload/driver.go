package workload

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sds-sim/sds-sim/sim"
)

// IngestDriver feeds generated artifacts through classify→place at a target
// rate and collects scalability statistics.
type IngestDriver struct {
	Manager   *sim.ResourceManager
	Generator *Generator
	Sampler   ArrivalSampler

	rng *rand.Rand
}

// NewIngestDriver wires an ingest driver. seed feeds the arrival sampler's
// RNG only; artifact randomness comes from the generator.
func NewIngestDriver(manager *sim.ResourceManager, gen *Generator, sampler ArrivalSampler, seed int64) *IngestDriver {
	return &IngestDriver{
		Manager:   manager,
		Generator: gen,
		Sampler:   sampler,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// IngestResult aggregates one ingestion run.
type IngestResult struct {
	RunID             string
	TotalArtifacts    int
	Elapsed           time.Duration
	TierCounts        map[sim.StorageTier]int
	Rejections        int
	AvgClassification time.Duration
	StdClassification time.Duration
	Stats             sim.UsageSnapshot
}

// Run classifies and places total artifacts, pacing by the arrival sampler.
// Classification time is measured per artifact; placement rejections are
// counted, not treated as failures.
func (d *IngestDriver) Run(ctx context.Context, total int, now time.Time) (*IngestResult, error) {
	res := &IngestResult{
		RunID:          uuid.NewString(),
		TotalArtifacts: total,
		TierCounts:     make(map[sim.StorageTier]int),
	}
	classTimes := make([]float64, 0, total)
	start := time.Now()

	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a := d.Generator.Next()

		classStart := time.Now()
		tier, err := sim.ClassifyAndAssign(a, now)
		classTimes = append(classTimes, float64(time.Since(classStart)))
		if err != nil {
			return nil, fmt.Errorf("classify artifact %s: %w", a.ID, err)
		}

		placed, err := d.Manager.Place(a, tier)
		if err != nil {
			return nil, fmt.Errorf("place artifact %s: %w", a.ID, err)
		}
		if placed {
			res.TierCounts[tier]++
		} else {
			res.Rejections++
		}

		if iat := d.Sampler.SampleIAT(d.rng); iat > 0 {
			if err := sleepCtx(ctx, iat); err != nil {
				return nil, err
			}
		}
	}

	res.Elapsed = time.Since(start)
	res.AvgClassification = time.Duration(sim.CalculateMean(classTimes))
	res.StdClassification = time.Duration(sim.CalculateStdev(classTimes))
	res.Stats = d.Manager.UsageStats()
	return res, nil
}

// Print displays the ingestion run analysis.
func (r *IngestResult) Print() {
	fmt.Println("=== Ingestion Test Analysis ===")
	fmt.Printf("Run ID                      : %s\n", r.RunID)
	fmt.Printf("Total Artifacts Processed   : %d\n", r.TotalArtifacts)
	fmt.Printf("Elapsed Time                : %.2f s\n", r.Elapsed.Seconds())
	fmt.Printf("Placement Rejections        : %d\n", r.Rejections)
	fmt.Printf("Average Classification Time : %v\n", r.AvgClassification)
	if r.StdClassification > 0 {
		fmt.Printf("Classification Time Stdev   : %v\n", r.StdClassification)
	}
	fmt.Println("Storage Tier Distribution:")
	for _, tier := range sim.StorageTiers {
		fmt.Printf("  %-13v: %d artifacts\n", tier, r.TierCounts[tier])
	}
	fmt.Println("Storage Usage and Capacity:")
	for _, tier := range sim.StorageTiers {
		used := r.Stats.Usage[tier]
		capacity := r.Stats.Capacities[tier]
		fmt.Printf("  %-13v: %.2f/%.2f units (%.1f%%)\n", tier, used, capacity, used/capacity*100)
	}
}

// RetrieveDriver issues concurrent retrievals against pre-classified
// artifacts at a target rate and aggregates latency statistics.
type RetrieveDriver struct {
	Controller *sim.AdmissionController
	Sampler    ArrivalSampler

	artifacts []*sim.Artifact
	tiers     map[string]sim.StorageTier
	rng       *rand.Rand
}

// NewRetrieveDriver classifies the given artifacts once up front (mirroring
// a warmed catalog) and wires the retrieval driver.
func NewRetrieveDriver(controller *sim.AdmissionController, sampler ArrivalSampler, artifacts []*sim.Artifact, now time.Time, seed int64) (*RetrieveDriver, error) {
	tiers := make(map[string]sim.StorageTier, len(artifacts))
	for _, a := range artifacts {
		tier, err := sim.ClassifyAndAssign(a, now)
		if err != nil {
			return nil, fmt.Errorf("classify artifact %s: %w", a.ID, err)
		}
		tiers[a.ID] = tier
	}
	return &RetrieveDriver{
		Controller: controller,
		Sampler:    sampler,
		artifacts:  artifacts,
		tiers:      tiers,
		rng:        rand.New(rand.NewSource(seed)),
	}, nil
}

// RetrieveResult aggregates one retrieval run.
type RetrieveResult struct {
	RunID         string
	TotalRequests int
	Elapsed       time.Duration
	Throughput    float64 // completed+rejected per second
	ErrorRate     float64
	Latencies     LatencySummary
}

// Run launches total retrievals, pacing submissions by the arrival sampler.
// Overload rejections are aggregated into the error rate, never retried.
func (d *RetrieveDriver) Run(ctx context.Context, total int) (*RetrieveResult, error) {
	if len(d.artifacts) == 0 {
		return nil, fmt.Errorf("retrieval test: no artifacts to retrieve")
	}
	stats := NewRetrievalStats()
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			break
		}
		a := d.artifacts[d.rng.Intn(len(d.artifacts))]
		tier := d.tiers[a.ID]
		g.Go(func() error {
			latency, err := d.Controller.Retrieve(gctx, a.ID, tier)
			switch {
			case err == nil:
				stats.Observe(tier, latency)
			case errors.Is(err, sim.ErrOverloaded):
				stats.Reject()
			default:
				stats.Fail()
				logrus.Debugf("retrieval %s: %v", a.ID, err)
			}
			// Rejections and faults are data, not run failures.
			return nil
		})

		if iat := d.Sampler.SampleIAT(d.rng); iat > 0 {
			if err := sleepCtx(ctx, iat); err != nil {
				break
			}
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	summary := stats.Summary()
	res := &RetrieveResult{
		RunID:         uuid.NewString(),
		TotalRequests: total,
		Elapsed:       elapsed,
		Latencies:     summary,
	}
	if elapsed > 0 {
		res.Throughput = float64(total) / elapsed.Seconds()
	}
	if total > 0 {
		res.ErrorRate = float64(summary.Rejected+summary.Failed) / float64(total)
	}
	return res, nil
}

// Print displays the retrieval run analysis.
func (r *RetrieveResult) Print() {
	fmt.Println("=== Retrieval Test Analysis ===")
	fmt.Printf("Run ID          : %s\n", r.RunID)
	fmt.Printf("Total Requests  : %d\n", r.TotalRequests)
	fmt.Printf("Elapsed Time    : %.2f s\n", r.Elapsed.Seconds())
	fmt.Printf("Throughput      : %.2f requests/s\n", r.Throughput)
	fmt.Printf("Error Rate      : %.2f%%\n", r.ErrorRate*100)
	if r.Latencies.Completed > 0 {
		fmt.Printf("Average Latency : %.2f ms\n", r.Latencies.Avg*1000)
		fmt.Printf("Latency p50/p95/p99 : %.2f / %.2f / %.2f ms\n",
			r.Latencies.P50*1000, r.Latencies.P95*1000, r.Latencies.P99*1000)
	}
	fmt.Println("Tier-Specific Performance:")
	for _, tier := range sim.StorageTiers {
		ts := r.Latencies.PerTier[tier]
		fmt.Printf("  %-13v: %d requests, Avg Latency: %.2f ms\n", tier, ts.Count, ts.Avg*1000)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
