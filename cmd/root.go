package cmd

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/sds-sim/sds-sim/sim"
	"github.com/sds-sim/sds-sim/sim/workload"
)

var (
	// Shared CLI flags
	logLevel   string // Log verbosity level
	configPath string // Optional YAML config overriding built-in defaults
	seed       int64  // Seed for random artifact generation

	// classify flags
	numArtifacts int // Number of artifacts to classify

	// ingest flags
	ingestRate     float64 // Artifacts per minute
	ingestDuration float64 // Duration in minutes
	ingestRealtime bool    // Pace ingestion in real time
	arrivalProcess string  // Arrival process (fixed, poisson)

	// retrieve flags
	retrieveRate     float64 // Requests per second
	retrieveDuration float64 // Duration in seconds
	catalogSize      int     // Number of artifacts in the retrieval catalog
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sds-sim",
	Short: "Storage tiering and retrieval simulator",
}

// setupLogging applies the --log flag before any subcommand runs.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// classifyCmd classifies a generated batch of artifacts and prints records.
var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a batch of artifacts into storage tiers",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		cfg := LoadConfig(configPath)
		if seed != 0 {
			cfg.Seed = seed
		}

		now := time.Now()
		gen := workload.NewGenerator(cfg.Seed, now)
		records, err := sim.ProcessArtifacts(gen.Batch(numArtifacts), now)
		if err != nil {
			logrus.Fatalf("classification failed: %v", err)
		}
		PrintRecords(records)
	},
}

// ingestCmd runs the scalability test: classify and place artifacts at a
// target rate, then report tier distribution and capacity stats.
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Run the artifact ingestion scalability test",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		cfg := LoadConfig(configPath)
		if seed != 0 {
			cfg.Seed = seed
		}

		total := int(ingestRate * ingestDuration)
		logrus.Infof("Starting ingestion test: %.0f artifacts/min for %.1f min (%d artifacts)",
			ingestRate, ingestDuration, total)

		var sampler workload.ArrivalSampler = &workload.FixedSampler{}
		if ingestRealtime {
			sampler = workload.NewArrivalSampler(arrivalProcess, ingestRate/60)
		}

		now := time.Now()
		manager := sim.NewResourceManager(cfg)
		driver := workload.NewIngestDriver(manager, workload.NewGenerator(cfg.Seed, now), sampler, cfg.Seed)
		res, err := driver.Run(context.Background(), total, now)
		if err != nil {
			logrus.Fatalf("ingestion test failed: %v", err)
		}
		res.Print()
		logrus.Info("Ingestion test complete.")
	},
}

// retrieveCmd runs the retrieval performance test: issue retrievals against a
// classified catalog at a target rate, then report latency stats.
var retrieveCmd = &cobra.Command{
	Use:   "retrieve",
	Short: "Run the retrieval performance test",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		cfg := LoadConfig(configPath)
		if seed != 0 {
			cfg.Seed = seed
		}

		total := int(retrieveRate * retrieveDuration)
		logrus.Infof("Starting retrieval test: %.0f requests/s for %.1f s (%d requests), ceiling %d",
			retrieveRate, retrieveDuration, total, cfg.MaxConcurrentRetrievals)

		now := time.Now()
		gen := workload.NewGenerator(cfg.Seed, now)
		model := sim.NewJitterLatencyModel(cfg.BaseLatencies(), cfg.Jitter, cfg.Seed)
		controller := sim.NewAdmissionController(cfg.MaxConcurrentRetrievals, model)
		sampler := workload.NewArrivalSampler(arrivalProcess, retrieveRate)

		driver, err := workload.NewRetrieveDriver(controller, sampler, gen.Batch(catalogSize), now, cfg.Seed)
		if err != nil {
			logrus.Fatalf("retrieval test setup failed: %v", err)
		}
		res, err := driver.Run(context.Background(), total)
		if err != nil {
			logrus.Fatalf("retrieval test failed: %v", err)
		}
		res.Print()
		logrus.Info("Retrieval test complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config (built-in defaults when empty)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Seed for random artifact generation (0 = config seed)")

	classifyCmd.Flags().IntVar(&numArtifacts, "num-artifacts", 10, "Number of artifacts to classify")

	ingestCmd.Flags().Float64Var(&ingestRate, "rate", 100, "Artifact ingestion rate (artifacts per minute)")
	ingestCmd.Flags().Float64Var(&ingestDuration, "duration", 5, "Test duration (minutes)")
	ingestCmd.Flags().BoolVar(&ingestRealtime, "realtime", false, "Pace ingestion in real time instead of running flat out")
	ingestCmd.Flags().StringVar(&arrivalProcess, "arrival", "fixed", "Arrival process (fixed, poisson)")

	retrieveCmd.Flags().Float64Var(&retrieveRate, "rate", 100, "Retrieval request rate (requests per second)")
	retrieveCmd.Flags().Float64Var(&retrieveDuration, "duration", 30, "Test duration (seconds)")
	retrieveCmd.Flags().IntVar(&catalogSize, "catalog-size", 1000, "Number of artifacts in the retrieval catalog")
	retrieveCmd.Flags().StringVar(&arrivalProcess, "arrival", "fixed", "Arrival process (fixed, poisson)")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(retrieveCmd)
}
