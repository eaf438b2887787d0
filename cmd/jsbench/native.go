package main

import (
	"github.com/spf13/cobra"
	"github.com/yaoapp/jsbench/native"
	"github.com/yaoapp/kun/log"
)

func newNativeCmd() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "native",
		Short: "Time the sqrt*sin loop of test.js without an engine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 0 {
				log.Warn("[native] n should not be negative, use 0")
				n = 0
			}
			native.Run(n).Report(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().IntVar(&n, "n", 1000000, "number of terms")
	return cmd
}
