package bench

import (
	"time"

	"github.com/go-errors/errors"
)

// Aggregate fold the runs into a summary. The ratio is computed from the two
// averages, not from the per-run ratios
func Aggregate(title string, pair *Pair, runs []RunPair) (*Summary, error) {
	if len(runs) == 0 {
		return nil, errors.Errorf("%w: %s has no runs to aggregate", ErrInvalidOption, title)
	}

	summary := &Summary{
		Title:     title,
		Runs:      len(runs),
		Baseline:  StrategySummary{Strategy: pair.Baseline.Name(), Label: pair.Baseline.Label()},
		Candidate: StrategySummary{Strategy: pair.Candidate.Name(), Label: pair.Candidate.Label()},
		Results:   runs,
	}

	for _, run := range runs {
		summary.Baseline.Total += run.Baseline.Duration
		summary.Candidate.Total += run.Candidate.Duration
	}

	summary.Baseline.Average = micros(summary.Baseline.Total) / float64(len(runs))
	summary.Candidate.Average = micros(summary.Candidate.Total) / float64(len(runs))
	summary.Ratio = summary.Candidate.Average / summary.Baseline.Average
	return summary, nil
}

// Ratio the candidate duration over the baseline duration of the run
func (run RunPair) Ratio() float64 {
	return float64(run.Candidate.Duration) / float64(run.Baseline.Duration)
}

func micros(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}
