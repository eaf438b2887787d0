package worker

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/yaoapp/jsbench/bench"
	"github.com/yaoapp/jsbench/runtime/console"
	v8 "github.com/yaoapp/jsbench/runtime/v8"
	"github.com/yaoapp/jsbench/workload"
	"github.com/yaoapp/kun/log"
)

// Strategy names of the JIT comparison
const (
	JIT   = "jit"
	NoJIT = "nojit"
)

// NewEnvironment create the JIT environment. binary is the executable that
// serves the worker subcommand, usually os.Executable()
func NewEnvironment(ctx context.Context, binary, consoleMode string, stdout io.Writer, logger *slog.Logger) (*Environment, error) {
	if binary == "" {
		var err error
		binary, err = os.Executable()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", bench.ErrSetup, err)
		}
	}

	// syntax check only, it never prints
	engine, err := v8.New(&v8.Option{Console: string(console.Silent)})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", bench.ErrSetup, err)
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return &Environment{
		Binary:  binary,
		Console: consoleMode,
		Stdout:  stdout,
		Logger:  logger,
		engine:  engine,
		ctx:     ctx,
	}, nil
}

// Prepare reject a broken workload in the parent, then return the JIT and the
// no JIT runners
func (env *Environment) Prepare(w *workload.Workload) (*bench.Pair, error) {
	if _, err := env.engine.Compile(w); err != nil {
		return nil, fmt.Errorf("%w: %w", bench.ErrCompile, err)
	}

	log.Trace("[worker] %s checked, binary %s", w.Origin, env.Binary)
	req := Request{Console: env.Console, Flags: env.Flags}
	jit := NewRunner(env.ctx, JIT, "JIT execution", env.Binary, env.Env, req, w, env.Stdout, env.Logger)

	req.Jitless = true
	nojit := NewRunner(env.ctx, NoJIT, "No JIT execution", env.Binary, env.Env, req, w, env.Stdout, env.Logger)
	return &bench.Pair{Baseline: jit, Candidate: nojit}, nil
}

// Close release the local engine
func (env *Environment) Close() error {
	return env.engine.Close()
}
