package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	sim "github.com/sds-sim/sds-sim/sim"
)

// LoadConfig returns the simulator configuration: the built-in defaults when
// path is empty, otherwise the YAML file at path. The file must be complete;
// strict field checking makes typos fail loudly instead of silently falling
// back to defaults.
func LoadConfig(path string) *sim.SimConfig {
	if path == "" {
		return sim.Defaults()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Fatalf("Failed to read config file: %v", err)
	}

	var cfg sim.SimConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		logrus.Fatalf("Failed to parse config YAML: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid config %s: %v", path, err)
	}
	return &cfg
}

// PrintRecords displays classification results in the prototype's format.
func PrintRecords(records []sim.Record) {
	fmt.Println("Classification and Storage Assignment Results:")
	for _, r := range records {
		fmt.Printf("Artifact %s (%s):\n", r.ID, r.Name)
		fmt.Printf("  Type: %s\n", r.Type)
		fmt.Printf("  Usage Frequency: %s\n", r.UsageFrequency)
		fmt.Printf("  Importance: %s\n", r.Importance)
		fmt.Printf("  Assigned Tier: %s\n", r.AssignedTier)
		fmt.Println()
	}
}
