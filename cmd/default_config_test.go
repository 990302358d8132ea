package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	sim "github.com/sds-sim/sds-sim/sim"
)

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg := LoadConfig("")
	assert.Equal(t, sim.Defaults(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_ReadsYAML(t *testing.T) {
	yamlText := `
seed: 7
tiers:
  hot:  {base_latency_ms: 5,   capacity: 200}
  warm: {base_latency_ms: 25,  capacity: 800}
  cold: {base_latency_ms: 100, capacity: 2000}
artifact_sizes:
  photograph: 2
  document: 1
  video: 10
scale_threshold: 0.9
scale_growth: 0.25
max_concurrent_retrievals: 500
jitter: 0.05
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yamlText), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfig(path)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 200.0, cfg.Tiers["hot"].Capacity)
	assert.Equal(t, 5.0, cfg.Tiers["hot"].BaseLatencyMs)
	assert.Equal(t, 10.0, cfg.ArtifactSizes["video"])
	assert.Equal(t, 0.9, cfg.ScaleThreshold)
	assert.Equal(t, 0.25, cfg.ScaleGrowth)
	assert.Equal(t, int64(500), cfg.MaxConcurrentRetrievals)
	assert.Equal(t, 0.05, cfg.Jitter)
}
