package sim

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
)

// AdmissionController bounds concurrent retrieval operations with a
// fail-fast ceiling: a retrieval past the limit is rejected immediately,
// never queued. Admitted retrievals suspend for their simulated latency
// without blocking other admitted operations.
type AdmissionController struct {
	sem   *semaphore.Weighted
	max   int64
	model LatencyModel

	inFlight atomic.Int64

	// sleep performs the simulated latency suspension. Overridable in tests
	// so concurrency assertions don't race against real timers.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewAdmissionController builds a controller with the given concurrency
// ceiling and injected cost model.
func NewAdmissionController(maxConcurrent int64, model LatencyModel) *AdmissionController {
	return &AdmissionController{
		sem:   semaphore.NewWeighted(maxConcurrent),
		max:   maxConcurrent,
		model: model,
		sleep: sleepFor,
	}
}

func sleepFor(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Retrieve simulates retrieving an artifact from the given tier and returns
// the incurred latency. Fails immediately with ErrOverloaded when the
// concurrency ceiling is reached. The admission slot is released on every
// exit path, including cancellation.
func (c *AdmissionController) Retrieve(ctx context.Context, artifactID string, tier StorageTier) (time.Duration, error) {
	if !c.sem.TryAcquire(1) {
		return 0, fmt.Errorf("retrieve %s: %w", artifactID, ErrOverloaded)
	}
	defer c.sem.Release(1)
	c.inFlight.Add(1)
	defer c.inFlight.Add(-1)

	latency := c.model.RetrievalCost(tier)
	if err := c.sleep(ctx, latency); err != nil {
		return 0, fmt.Errorf("retrieve %s: %w", artifactID, err)
	}
	return latency, nil
}

// InFlight reports the number of currently admitted retrievals.
// Always in [0, MaxConcurrent].
func (c *AdmissionController) InFlight() int64 {
	return c.inFlight.Load()
}

// MaxConcurrent reports the admission ceiling.
func (c *AdmissionController) MaxConcurrent() int64 {
	return c.max
}
