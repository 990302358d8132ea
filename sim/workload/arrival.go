package workload

import (
	"math/rand"
	"time"
)

// ArrivalSampler generates inter-arrival times for a load driver.
type ArrivalSampler interface {
	// SampleIAT returns the next inter-arrival time. Never negative.
	SampleIAT(rng *rand.Rand) time.Duration
}

// FixedSampler emits a constant inter-arrival time (the original harness
// behavior: one operation every 1/rate seconds).
type FixedSampler struct {
	Interval time.Duration
}

func (s *FixedSampler) SampleIAT(_ *rand.Rand) time.Duration {
	return s.Interval
}

// PoissonSampler generates exponentially-distributed inter-arrival times,
// for open-loop load with realistic burstiness.
type PoissonSampler struct {
	ratePerSec float64
}

func NewPoissonSampler(ratePerSec float64) *PoissonSampler {
	return &PoissonSampler{ratePerSec: ratePerSec}
}

func (s *PoissonSampler) SampleIAT(rng *rand.Rand) time.Duration {
	if s.ratePerSec <= 0 {
		return 0
	}
	return time.Duration(rng.ExpFloat64() / s.ratePerSec * float64(time.Second))
}

// NewArrivalSampler selects a sampler by process name. An empty string or
// "fixed" gives constant pacing at the target rate; "poisson" gives
// exponential inter-arrival times. Rate <= 0 means unpaced (zero interval).
func NewArrivalSampler(process string, ratePerSec float64) ArrivalSampler {
	if ratePerSec <= 0 {
		return &FixedSampler{Interval: 0}
	}
	switch process {
	case "poisson":
		return NewPoissonSampler(ratePerSec)
	default:
		return &FixedSampler{Interval: time.Duration(float64(time.Second) / ratePerSec)}
	}
}
