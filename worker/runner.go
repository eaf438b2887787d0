package worker

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/yaoapp/jsbench/workload"
)

// NewRunner create a Runner measuring the workload with binary. Env is
// appended to the inherited environment
func NewRunner(
	ctx context.Context,
	name, label, binary string,
	env []string,
	req Request,
	w *workload.Workload,
	stdout io.Writer,
	logger *slog.Logger,
) *Runner {
	if stdout == nil {
		stdout = os.Stdout
	}
	if logger == nil {
		logger = slog.Default()
	}
	req.Strategy = name
	req.Origin = w.Origin
	return &Runner{
		name:     name,
		label:    label,
		Binary:   binary,
		Env:      env,
		Request:  req,
		Workload: w,
		Stdout:   stdout,
		Logger:   logger.With(slog.String("strategy", name)),
		ctx:      ctx,
	}
}

// Name the strategy name
func (r *Runner) Name() string {
	return r.name
}

// Label the strategy label
func (r *Runner) Label() string {
	return r.label
}

// Measure run the worker process and return the duration it measured. The
// process start up is not part of the duration
func (r *Runner) Measure(iterations int) (time.Duration, error) {
	resultFile, err := os.CreateTemp("", "jsbench-result-*.json")
	if err != nil {
		return 0, fmt.Errorf("create result file: %w", err)
	}
	resultFile.Close()
	defer os.Remove(resultFile.Name())

	req := r.Request
	req.Iterations = iterations

	cmd := exec.CommandContext(r.ctx, r.Binary, req.Args(resultFile.Name())...)
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}

	var stderr bytes.Buffer
	cmd.Stdin = strings.NewReader(r.Workload.Source)
	cmd.Stdout = r.Stdout
	cmd.Stderr = &stderr

	r.Logger.Debug("starting worker",
		slog.String("binary", r.Binary),
		slog.Int("iterations", iterations),
		slog.Bool("jitless", req.Jitless),
	)

	wallStart := time.Now()
	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("worker %s failed: %w\nstderr: %s", r.name, err, stderr.String())
	}

	file, err := os.Open(resultFile.Name())
	if err != nil {
		return 0, fmt.Errorf("open %s result: %w", r.name, err)
	}
	defer file.Close()

	result, err := parseResult(r.name, file)
	if err != nil {
		return 0, fmt.Errorf("parse %s result: %w", r.name, err)
	}

	elapsed := time.Duration(result.ElapsedNs)
	r.Logger.Debug("worker finished",
		slog.Duration("elapsed", elapsed),
		slog.Duration("wall_time", time.Since(wallStart)),
		slog.Any("flags", result.Flags),
	)
	return elapsed, nil
}

// Args the command line of the worker subcommand
func (req Request) Args(resultFile string) []string {
	args := []string{
		"worker",
		"--strategy", req.Strategy,
		"--iterations", strconv.Itoa(req.Iterations),
		"--origin", req.Origin,
		"--result", resultFile,
	}
	if req.Console != "" {
		args = append(args, "--console", req.Console)
	}
	if req.Jitless {
		args = append(args, "--jitless")
	}
	for _, flag := range req.Flags {
		args = append(args, "--v8-flag="+flag)
	}
	return args
}
