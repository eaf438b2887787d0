package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/yaoapp/jsbench/bench"
	"github.com/yaoapp/jsbench/logger"
	"github.com/yaoapp/jsbench/runtime/console"
	"github.com/yaoapp/jsbench/worker"
	"github.com/yaoapp/jsbench/workload"
)

var jitDefaults = bench.Option{Iterations: 1, Runs: 3, Unit: bench.Milliseconds}

func newJITCmd() *cobra.Command {
	cfg := &config{Option: jitDefaults, Console: string(console.Stdout), File: "scripts/test.js"}

	cmd := &cobra.Command{
		Use:   "jit",
		Short: "Compare V8 with and without the JIT compiler",
		Long: `Run a script file with the JIT enabled and with --jitless. V8 flags are
process wide, each strategy runs in its own worker process. The timing
includes the compilation of the script. The default file is relative to the
working directory, run it from the repository root.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.load(cmd, jitDefaults); err != nil {
				return err
			}
			return runJIT(cmd, cfg)
		},
	}

	cfg.bind(cmd)
	cmd.Flags().StringVarP(&cfg.File, "file", "f", cfg.File, "the script file, .js or .ts")
	return cmd
}

func runJIT(cmd *cobra.Command, cfg *config) error {
	w, err := workload.Load(cfg.File)
	if errors.Is(err, workload.ErrOpen) {
		return fmt.Errorf("Failed to open file: %s", cfg.File)
	}
	if err != nil {
		return err
	}

	env, err := worker.NewEnvironment(cmd.Context(), "", cfg.Console, cmd.OutOrStdout(), logger.New())
	if err != nil {
		return err
	}
	env.Flags = cfg.Flags

	reporter := bench.NewReporter(cmd.OutOrStdout(), cfg.Unit, cfg.JSON)
	reporter.Color = !color.NoColor
	c := workload.Case{Title: filepath.Base(cfg.File), Workload: w}
	session := bench.NewSession(env, reporter, cfg.Option, c)
	_, err = session.Run()
	return err
}
