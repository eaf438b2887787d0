package bench

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"
)

// Reporter writes the runs and the summaries of a session
type Reporter struct {
	Writer    io.Writer
	Unit      string
	JSON      bool
	Color     bool
	summaries []*Summary
}

// NewReporter create a reporter, a nil writer means os.Stdout
func NewReporter(writer io.Writer, unit string, asJSON bool) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	if unit == "" {
		unit = Microseconds
	}
	return &Reporter{Writer: writer, Unit: unit, JSON: asJSON}
}

// Case the title of a session case
func (r *Reporter) Case(index int, title string) {
	if r.JSON {
		return
	}
	if index > 0 {
		fmt.Fprintln(r.Writer)
	}
	r.heading().Fprintf(r.Writer, "%s:\n", title)
}

// Run a run block
func (r *Reporter) Run(run RunPair, pair *Pair) {
	if r.JSON {
		return
	}
	baseline, candidate := r.whole(run.Baseline.Duration), r.whole(run.Candidate.Duration)
	fmt.Fprintf(r.Writer, "Run %d:\n", run.Run)
	fmt.Fprintf(r.Writer, "  %s time: %d %s\n", pair.Baseline.Label(), baseline, r.unitName())
	fmt.Fprintf(r.Writer, "  %s time: %d %s\n", pair.Candidate.Label(), candidate, r.unitName())
	fmt.Fprintf(r.Writer, "  Ratio: %s\n\n", number(r.ratio(run, baseline, candidate)))
}

// Summary the summary block
func (r *Reporter) Summary(summary *Summary) {
	r.summaries = append(r.summaries, summary)
	if r.JSON {
		return
	}
	r.heading().Fprintf(r.Writer, "Average results over %d runs:\n", summary.Runs)
	fmt.Fprintf(r.Writer, "  Avg %s time: %s %s\n", summary.Baseline.Label, number(r.average(summary.Baseline.Average)), r.unitName())
	fmt.Fprintf(r.Writer, "  Avg %s time: %s %s\n", summary.Candidate.Label, number(r.average(summary.Candidate.Average)), r.unitName())
	fmt.Fprintf(r.Writer, "  Avg Ratio: %s\n", number(summary.Ratio))
}

// Flush write the summaries as JSON when the reporter is in JSON mode
func (r *Reporter) Flush() error {
	if !r.JSON {
		return nil
	}
	data, err := jsoniter.MarshalIndent(r.summaries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.Writer, string(data))
	return err
}

func (r *Reporter) heading() *color.Color {
	c := color.New(color.Bold)
	if !r.Color {
		c.DisableColor()
	}
	return c
}

func (r *Reporter) whole(d time.Duration) int64 {
	if r.Unit == Milliseconds {
		return d.Milliseconds()
	}
	return d.Microseconds()
}

// ratio of the printed whole units, so the line reads as the quotient of the
// two times above it. Below one unit the printed values are 0 and the exact
// durations are used
func (r *Reporter) ratio(run RunPair, baseline, candidate int64) float64 {
	if baseline == 0 || candidate == 0 {
		return run.Ratio()
	}
	return float64(candidate) / float64(baseline)
}

func (r *Reporter) average(us float64) float64 {
	if r.Unit == Milliseconds {
		return us / 1000
	}
	return us
}

func (r *Reporter) unitName() string {
	if r.Unit == Milliseconds {
		return "milliseconds"
	}
	return "microseconds"
}

// number six significant digits, exponent form for large values
func number(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
