package bench

import (
	"github.com/go-errors/errors"
	"github.com/yaoapp/jsbench/workload"
	"github.com/yaoapp/kun/log"
)

// Engine the engine capabilities the precompile benchmark needs
type Engine interface {
	Executor
	Name() string
	Compile(w *workload.Workload) (*workload.Workload, error)
	Close() error
}

type precompile struct {
	engine Engine
}

// Precompile the environment comparing a workload compiled once (baseline)
// with the same workload parsed from source on every execution (candidate)
func Precompile(engine Engine) Environment {
	return &precompile{engine: engine}
}

func (env *precompile) Prepare(w *workload.Workload) (*Pair, error) {
	compiled, err := env.engine.Compile(w)
	if err != nil {
		return nil, errors.Errorf("%w: %w", ErrCompile, err)
	}

	log.Trace("[bench] %s compiled by %s", w.Name, env.engine.Name())
	return &Pair{
		Baseline:  NewStrategy("bytecode", "Bytecode execution", env.engine, compiled),
		Candidate: NewStrategy("rawstring", "Raw string execution", env.engine, w),
	}, nil
}

func (env *precompile) Close() error {
	return env.engine.Close()
}
