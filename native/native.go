// Package native is the compiled baseline of the JavaScript workloads, the
// same numeric loop as scripts/test.js without an engine.
package native

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"time"
)

// Result a timed computation
type Result struct {
	N       int           `json:"n"`
	Value   float64       `json:"value"`
	Elapsed time.Duration `json:"elapsed"`
}

// Compute the sum of sqrt(i)*sin(i) for i in [0, n). The terms are collected
// first and summed afterwards, as the JavaScript workload does
func Compute(n int) float64 {
	if n <= 0 {
		return 0
	}

	terms := make([]float64, n)
	for i := range terms {
		x := float64(i)
		terms[i] = math.Sqrt(x) * math.Sin(x)
	}

	sum := 0.0
	for _, term := range terms {
		sum += term
	}
	return sum
}

// Run time Compute
func Run(n int) Result {
	start := time.Now()
	value := Compute(n)
	return Result{N: n, Value: value, Elapsed: time.Since(start)}
}

// Report print the result
func (r Result) Report(w io.Writer) {
	fmt.Fprintf(w, "Complex Computation took %d milliseconds\n", r.Elapsed.Milliseconds())
	fmt.Fprintf(w, "Result: %s\n", strconv.FormatFloat(r.Value, 'g', 6, 64))
}
