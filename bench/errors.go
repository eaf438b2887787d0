package bench

import (
	"errors"

	goerrors "github.com/go-errors/errors"
)

var (
	// ErrSetup the session could not be set up, nothing was measured
	ErrSetup = goerrors.New("setup failed")

	// ErrCompile the workload could not be compiled
	ErrCompile = goerrors.New("compile failed")

	// ErrExecute an execution failed inside a timed loop
	ErrExecute = goerrors.New("execute failed")

	// ErrInvalidOption the option can not be used
	ErrInvalidOption = goerrors.New("invalid option")

	// ErrSessionDone the session already ran
	ErrSessionDone = goerrors.New("session is done")
)

// classify wrap err with kind unless it was classified already
func classify(kind error, err error) error {
	for _, known := range []error{ErrSetup, ErrCompile, ErrExecute, ErrInvalidOption} {
		if errors.Is(err, known) {
			return err
		}
	}
	return goerrors.Errorf("%w: %w", kind, err)
}
