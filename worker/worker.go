package worker

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/yaoapp/jsbench/bench"
	v8 "github.com/yaoapp/jsbench/runtime/v8"
	"github.com/yaoapp/jsbench/workload"
	"github.com/yaoapp/kun/log"
)

// Serve measure the request inside the worker process. Every iteration parses,
// compiles and runs the source
func Serve(req Request, source io.Reader, stdout io.Writer, resultFile string) error {
	data, err := io.ReadAll(source)
	if err != nil {
		return fmt.Errorf("%w: read workload %w", bench.ErrSetup, err)
	}

	option := &v8.Option{Console: req.Console, Jitless: req.Jitless, Flags: req.Flags, Writer: stdout}
	engine, err := v8.New(option)
	if err != nil {
		return fmt.Errorf("%w: %w", bench.ErrSetup, err)
	}
	defer engine.Close()

	w := workload.New(req.Strategy, req.Origin, string(data))
	elapsed, err := bench.Execute(engine, w, req.Iterations)
	if err != nil {
		return err
	}

	result := Result{
		ID:         uuid.New().String(),
		Strategy:   req.Strategy,
		Iterations: req.Iterations,
		ElapsedNs:  elapsed.Nanoseconds(),
		Flags:      option.V8Flags(),
	}
	log.Trace("[worker] %s %d iterations in %v", req.Strategy, req.Iterations, elapsed)
	return writeResult(resultFile, result)
}

func writeResult(file string, result Result) error {
	data, err := jsoniter.Marshal(result)
	if err != nil {
		return err
	}
	return os.WriteFile(file, data, 0o644)
}

func parseResult(strategy string, r io.Reader) (*Result, error) {
	var result Result
	if err := jsoniter.NewDecoder(r).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}

	if result.Strategy == "" {
		result.Strategy = strategy
	}

	if result.ElapsedNs < 0 {
		return nil, fmt.Errorf("negative elapsed time %d", result.ElapsedNs)
	}

	return &result, nil
}
