// Package benchmark - inference latency measurement.
package benchmark

import (
	"runtime"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// Scenario defines a latency measurement run.
type Scenario struct {
	Name string `json:"name"`
	// WarmupRuns is the number of untimed passes before measurement.
	WarmupRuns int `json:"warmup_runs"`
	// Iterations is the number of timed passes.
	Iterations int `json:"iterations"`
}

// DefaultScenario performs 10 warm-up passes and 100 timed passes.
func DefaultScenario() Scenario {
	return Scenario{
		Name:       "inference",
		WarmupRuns: 10,
		Iterations: 100,
	}
}

// Result captures per-pass latencies and summary statistics.
type Result struct {
	Scenario        Scenario        `json:"scenario"`
	Timestamp       time.Time       `json:"timestamp"`
	Passes          []time.Duration `json:"passes"`
	TotalDuration   time.Duration   `json:"total_duration"`
	Mean            time.Duration   `json:"mean"`
	StdDev          time.Duration   `json:"std_dev"`
	PassesPerSecond float64         `json:"passes_per_second"`
	MemoryStats     MemoryMetrics   `json:"memory_stats"`
}

// MemoryMetrics captures memory usage statistics.
type MemoryMetrics struct {
	AllocBytes      uint64 `json:"alloc_bytes"`
	TotalAllocBytes uint64 `json:"total_alloc_bytes"`
	SysBytes        uint64 `json:"sys_bytes"`
	NumGC           uint32 `json:"num_gc"`
}

// Run executes fn through the scenario's warm-up and timed passes.
// Warm-up passes are untimed. Any pass failure aborts the measurement.
func Run(scenario Scenario, fn func() error) (*Result, error) {
	if scenario.Iterations <= 0 {
		return nil, errors.Errorf("iterations must be positive, got %d", scenario.Iterations)
	}

	for i := 0; i < scenario.WarmupRuns; i++ {
		if err := fn(); err != nil {
			return nil, errors.Wrapf(err, "warm-up pass %d failed", i)
		}
	}

	passes := make([]time.Duration, scenario.Iterations)
	seconds := make([]float64, scenario.Iterations)
	var total time.Duration

	for i := range passes {
		start := time.Now()
		if err := fn(); err != nil {
			return nil, errors.Wrapf(err, "timed pass %d failed", i)
		}
		passes[i] = time.Since(start)
		seconds[i] = passes[i].Seconds()
		total += passes[i]
	}

	mean, std := stat.MeanStdDev(seconds, nil)

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return &Result{
		Scenario:        scenario,
		Timestamp:       time.Now(),
		Passes:          passes,
		TotalDuration:   total,
		Mean:            time.Duration(mean * float64(time.Second)),
		StdDev:          time.Duration(std * float64(time.Second)),
		PassesPerSecond: float64(scenario.Iterations) / total.Seconds(),
		MemoryStats: MemoryMetrics{
			AllocBytes:      mem.Alloc,
			TotalAllocBytes: mem.TotalAlloc,
			SysBytes:        mem.Sys,
			NumGC:           mem.NumGC,
		},
	}, nil
}
