// Package sim provides the core engine of the storage tiering and retrieval
// simulator.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - classifier.go: usage + importance → storage tier decision table
//   - manager.go: per-tier capacity accounting with threshold-triggered scaling
//   - admission.go: fail-fast concurrency bounding for retrievals
//
// # Architecture
//
// The sim package holds the decision engine, resource manager, and admission
// controller; workload generation and the load drivers that exercise them
// live in sim/workload.
//
// # Key Interfaces
//
// LatencyModel is the one extension point: it supplies the simulated
// retrieval cost per tier. The production JitterLatencyModel draws a uniform
// factor around a tier base cost; tests inject FixedLatencyModel for
// reproducible assertions.
package sim
