package bench

import (
	"time"

	"github.com/yaoapp/jsbench/workload"
)

// Option the session option
type Option struct {
	Iterations int    `json:"iterations,omitempty" yaml:"iterations,omitempty"` // the executions per strategy per run. the default value is 1000
	Runs       int    `json:"runs,omitempty" yaml:"runs,omitempty"`             // the number of runs. the default value is 5
	Unit       string `json:"unit,omitempty" yaml:"unit,omitempty"`             // the reported unit, us or ms. the default value is us
}

// Executor runs a prepared workload once
type Executor interface {
	Exec(w *workload.Workload) error
}

// Strategy one of the two compared ways to execute a workload
type Strategy interface {
	Name() string
	Label() string
	Measure(iterations int) (time.Duration, error)
}

// Pair the strategies compared by a session case, the baseline is the one
// expected to be faster
type Pair struct {
	Baseline  Strategy
	Candidate Strategy
}

// Environment owns the engine of a session. Prepare compiles the workload and
// returns the strategies, Close releases the engine
type Environment interface {
	Prepare(w *workload.Workload) (*Pair, error)
	Close() error
}

// RunResult one measured duration
type RunResult struct {
	Run      int           `json:"run"`
	Strategy string        `json:"strategy"`
	Duration time.Duration `json:"duration"`
}

// RunPair the two results of one run
type RunPair struct {
	Run       int       `json:"run"`
	Baseline  RunResult `json:"baseline"`
	Candidate RunResult `json:"candidate"`
}

// StrategySummary the aggregated durations of one strategy
type StrategySummary struct {
	Strategy string        `json:"strategy"`
	Label    string        `json:"label"`
	Total    time.Duration `json:"total"`
	Average  float64       `json:"average_us"`
}

// Summary the aggregated result of a session case
type Summary struct {
	Title     string          `json:"title"`
	Runs      int             `json:"runs"`
	Baseline  StrategySummary `json:"baseline"`
	Candidate StrategySummary `json:"candidate"`
	Ratio     float64         `json:"ratio"`
	Results   []RunPair       `json:"results"`
}

// State the session state
type State uint8

const (
	// StateInit the environment is being set up
	StateInit State = iota

	// StateReady the workload is compiled
	StateReady

	// StateRunBaseline the baseline strategy is measured
	StateRunBaseline

	// StateRunCandidate the candidate strategy is measured
	StateRunCandidate

	// StateReportRun the run is reported
	StateReportRun

	// StateAggregate the runs are aggregated
	StateAggregate

	// StateReportSummary the summary is reported
	StateReportSummary

	// StateDone the environment is torn down
	StateDone
)
