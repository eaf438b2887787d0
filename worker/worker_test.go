package worker

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaoapp/jsbench/bench"
	"github.com/yaoapp/jsbench/logger"
	"github.com/yaoapp/jsbench/workload"
)

const helperEnv = "JSBENCH_WORKER_PROCESS=1"

// TestMain lets the test binary serve the worker subcommand
func TestMain(m *testing.M) {
	if os.Getenv("JSBENCH_WORKER_PROCESS") == "1" {
		root := &cobra.Command{Use: "jsbench", SilenceUsage: true}
		root.AddCommand(Command())
		root.SetArgs(os.Args[1:])
		if err := root.Execute(); err != nil {
			os.Exit(1)
		}
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func TestParseResult(t *testing.T) {
	input := `{
		"id": "2b1f",
		"strategy": "nojit",
		"iterations": 3,
		"elapsed_ns": 1500000,
		"flags": ["--jitless"]
	}`

	result, err := parseResult("nojit", strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "nojit", result.Strategy)
	assert.Equal(t, 3, result.Iterations)
	assert.Equal(t, int64(1500000), result.ElapsedNs)
	assert.Equal(t, []string{"--jitless"}, result.Flags)
}

func TestParseResultFillsStrategy(t *testing.T) {
	result, err := parseResult("jit", strings.NewReader(`{"elapsed_ns": 10}`))
	require.NoError(t, err)
	assert.Equal(t, "jit", result.Strategy)
}

func TestParseResultInvalid(t *testing.T) {
	_, err := parseResult("jit", strings.NewReader(`not json at all`))
	assert.Error(t, err)

	_, err = parseResult("jit", strings.NewReader(`{"elapsed_ns": -1}`))
	assert.Error(t, err)
}

func TestRequestArgs(t *testing.T) {
	req := Request{Strategy: NoJIT, Jitless: true, Iterations: 2, Console: "stdout", Origin: "test.js"}
	assert.Equal(t, []string{
		"worker",
		"--strategy", "nojit",
		"--iterations", "2",
		"--origin", "test.js",
		"--result", "/tmp/r.json",
		"--console", "stdout",
		"--jitless",
	}, req.Args("/tmp/r.json"))

	args := Request{Strategy: JIT, Iterations: 1, Origin: "<input>"}.Args("r.json")
	assert.NotContains(t, args, "--jitless")
	assert.NotContains(t, args, "--console")
}

func TestServe(t *testing.T) {
	file := filepath.Join(t.TempDir(), "result.json")
	var out bytes.Buffer
	req := Request{Strategy: JIT, Iterations: 3, Console: "stdout", Origin: "fibonacci.js"}
	err := Serve(req, strings.NewReader(workload.Fibonacci), &out, file)
	require.NoError(t, err)
	assert.Equal(t, "6765\n6765\n6765\n", out.String())

	data, err := os.Open(file)
	require.NoError(t, err)
	defer data.Close()

	result, err := parseResult(JIT, data)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Iterations)
	assert.Greater(t, result.ElapsedNs, int64(0))
	assert.NotEmpty(t, result.ID)
}

func TestServeRuntimeError(t *testing.T) {
	file := filepath.Join(t.TempDir(), "result.json")
	req := Request{Strategy: JIT, Iterations: 2, Origin: "throw.js"}
	err := Serve(req, strings.NewReader(`throw new Error("boom")`), nil, file)
	assert.True(t, errors.Is(err, bench.ErrExecute))
	assert.NoFileExists(t, file)
}

func newEnvironment(t *testing.T, out *bytes.Buffer) *Environment {
	env, err := NewEnvironment(context.Background(), os.Args[0], "stdout", out, logger.New())
	require.NoError(t, err)
	env.Env = []string{helperEnv}
	return env
}

func TestRunner(t *testing.T) {
	var out bytes.Buffer
	env := newEnvironment(t, &out)
	defer env.Close()

	pair, err := env.Prepare(workload.New("fibonacci", "", workload.Fibonacci))
	require.NoError(t, err)
	assert.Equal(t, JIT, pair.Baseline.Name())
	assert.Equal(t, NoJIT, pair.Candidate.Name())
	assert.Equal(t, "No JIT execution", pair.Candidate.Label())

	for _, strategy := range []bench.Strategy{pair.Baseline, pair.Candidate} {
		elapsed, err := strategy.Measure(2)
		require.NoError(t, err, strategy.Name())
		assert.Greater(t, elapsed, time.Duration(0))
	}
	assert.Equal(t, 4, strings.Count(out.String(), "6765\n"))
}

func TestRunnerFailure(t *testing.T) {
	var out bytes.Buffer
	env := newEnvironment(t, &out)
	defer env.Close()

	pair, err := env.Prepare(workload.New("throw", "", `throw new Error("boom")`))
	require.NoError(t, err)

	_, err = pair.Baseline.Measure(1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worker jit failed")
	assert.Contains(t, err.Error(), "boom")
}

func TestPrepareCompileError(t *testing.T) {
	env := newEnvironment(t, &bytes.Buffer{})
	defer env.Close()

	_, err := env.Prepare(workload.New("broken", "", "function ( {"))
	assert.True(t, errors.Is(err, bench.ErrCompile))
}

func TestJITSession(t *testing.T) {
	var out bytes.Buffer
	env := newEnvironment(t, &out)

	c := workload.Case{Title: "test.js", Workload: workload.New("test", "test.js", workload.Fibonacci)}
	session := bench.NewSession(env, bench.NewReporter(&out, bench.Milliseconds, false), bench.Option{Iterations: 1, Runs: 3}, c)
	summaries, err := session.Run()
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, JIT, summaries[0].Baseline.Strategy)
	assert.Equal(t, NoJIT, summaries[0].Candidate.Strategy)

	text := out.String()
	assert.Equal(t, 3, strings.Count(text, "  JIT execution time: "))
	assert.Equal(t, 3, strings.Count(text, "  No JIT execution time: "))
	assert.Contains(t, text, "Average results over 3 runs:")
	assert.Equal(t, 6, strings.Count(text, "6765\n"))
}
