package main

import (
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/yaoapp/jsbench/bench"
	"github.com/yaoapp/jsbench/runtime"
	"github.com/yaoapp/jsbench/runtime/console"
	"github.com/yaoapp/jsbench/workload"
)

var precompileDefaults = bench.Option{Iterations: 1000, Runs: 5, Unit: bench.Microseconds}

func newPrecompileCmd() *cobra.Command {
	cfg := &config{Option: precompileDefaults, Engine: "v8", Console: string(console.Silent)}

	cmd := &cobra.Command{
		Use:   "precompile",
		Short: "Compare precompiled bytecode with reparsed source",
		Long: `Run the built-in Fibonacci and Complex scripts, compiled once outside the
timed loop against compiled on every iteration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.load(cmd, precompileDefaults); err != nil {
				return err
			}
			return runPrecompile(cfg, cmd.OutOrStdout())
		},
	}

	cfg.bind(cmd)
	cmd.Flags().StringVarP(&cfg.Engine, "engine", "e", cfg.Engine, "JavaScript engine, v8 or otto")
	cmd.Flags().BoolVar(&cfg.Cache, "cache", false, "keep the V8 compilation cache, the raw string runs are then parsed once")
	return cmd
}

func runPrecompile(cfg *config, out io.Writer) error {
	engine, err := runtime.Open(runtime.Option{
		Engine:  cfg.Engine,
		Console: cfg.Console,
		Flags:   cfg.Flags,
		Writer:  out,

		CompilationCache: cfg.Cache,
	})
	if err != nil {
		return err
	}

	reporter := bench.NewReporter(out, cfg.Unit, cfg.JSON)
	reporter.Color = !color.NoColor
	session := bench.NewSession(bench.Precompile(engine), reporter, cfg.Option, workload.Builtin()...)
	_, err = session.Run()
	return err
}
