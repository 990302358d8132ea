package workload

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/sds-sim/sds-sim/sim"
)

// Generator produces random artifacts for load tests. Deterministic given
// the same seed and reference time.
type Generator struct {
	rng *rand.Rand
	now time.Time
	n   int
}

// NewGenerator creates a generator with its own seeded RNG. now anchors the
// last-accessed timestamps so generated artifacts classify identically across
// a run.
func NewGenerator(seed int64, now time.Time) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

// Next generates one artifact: uniform type and importance, access count in
// [0, 20], last accessed up to 60 days back.
func (g *Generator) Next() *sim.Artifact {
	id := g.n
	g.n++
	t := sim.ArtifactTypes[g.rng.Intn(len(sim.ArtifactTypes))]
	return &sim.Artifact{
		ID:           fmt.Sprintf("A%04d", id),
		Name:         fmt.Sprintf("Artifact_%d.%s", id, strings.ToLower(t.String())),
		Type:         t,
		AccessCount:  g.rng.Intn(21),
		LastAccessed: g.now.Add(-time.Duration(g.rng.Intn(61)) * 24 * time.Hour),
		Importance:   sim.Importances[g.rng.Intn(len(sim.Importances))],
	}
}

// Batch generates num artifacts.
func (g *Generator) Batch(num int) []*sim.Artifact {
	artifacts := make([]*sim.Artifact, 0, num)
	for i := 0; i < num; i++ {
		artifacts = append(artifacts, g.Next())
	}
	return artifacts
}
