package worker

import (
	"os"

	"github.com/spf13/cobra"
)

// Command the hidden worker subcommand
func Command() *cobra.Command {
	var (
		req        Request
		resultFile string
	)

	cmd := &cobra.Command{
		Use:    "worker",
		Short:  "Measure one strategy, the workload is read from stdin",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Serve(req, cmd.InOrStdin(), os.Stdout, resultFile)
		},
	}

	cmd.Flags().StringVar(&req.Strategy, "strategy", JIT, "strategy name")
	cmd.Flags().IntVar(&req.Iterations, "iterations", 1, "iterations of the timed loop")
	cmd.Flags().BoolVar(&req.Jitless, "jitless", false, "run V8 without the JIT compiler")
	cmd.Flags().StringVar(&req.Console, "console", "", "console mode, silent or stdout")
	cmd.Flags().StringVar(&req.Origin, "origin", "<input>", "script origin in stack traces")
	cmd.Flags().StringArrayVar(&req.Flags, "v8-flag", nil, "extra V8 flag, repeatable")
	cmd.Flags().StringVar(&resultFile, "result", "", "file the JSON result is written to")
	cmd.MarkFlagRequired("result")
	return cmd
}
