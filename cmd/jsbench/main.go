// Package main is the jsbench command line, micro-benchmarks of JavaScript
// engine execution strategies.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/yaoapp/jsbench/worker"
	"github.com/yaoapp/kun/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "jsbench",
		Short: "Micro-benchmarks of JavaScript engine execution strategies",
		Long: `jsbench compares two ways of executing the same script in an embedded
JavaScript engine: precompiled bytecode against reparsed source, and JIT
against interpreter only. The native subcommand times the numeric loop of
scripts/test.js without an engine.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetLevel(log.WarnLevel)
			if verbose {
				log.SetLevel(log.TraceLevel)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print the trace logs")
	root.AddCommand(newPrecompileCmd(), newJITCmd(), newNativeCmd(), worker.Command())
	return root
}
