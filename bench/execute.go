package bench

import (
	"time"

	"github.com/go-errors/errors"
	"github.com/yaoapp/jsbench/workload"
)

// Execute run the workload iterations times in a row and return the time the
// whole loop took. The first failing execution aborts the loop
func Execute(exec Executor, w *workload.Workload, iterations int) (time.Duration, error) {
	if iterations <= 0 {
		return 0, errors.Errorf("%w: iterations must be positive, got %d", ErrInvalidOption, iterations)
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		if err := exec.Exec(w); err != nil {
			return 0, errors.Errorf("%w: %s (%s) iteration %d: %w", ErrExecute, w.Name, w.Kind, i+1, err)
		}
	}
	return time.Since(start), nil
}

type strategy struct {
	name     string
	label    string
	exec     Executor
	workload *workload.Workload
}

// NewStrategy a strategy executing the workload in the current process
func NewStrategy(name string, label string, exec Executor, w *workload.Workload) Strategy {
	return &strategy{name: name, label: label, exec: exec, workload: w}
}

func (s *strategy) Name() string {
	return s.name
}

func (s *strategy) Label() string {
	return s.label
}

func (s *strategy) Measure(iterations int) (time.Duration, error) {
	return Execute(s.exec, s.workload, iterations)
}
