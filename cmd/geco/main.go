// Command geco writes benchmark instances as LP files.
//
//	geco list
//	geco generate setcover/yang --param m=60 --seed 1 --count 10 --out ./lp
//	geco sweep --config sweep.yaml
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by all subcommands.
type app struct {
	verbose bool
	logger  *zap.Logger
	out     io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "geco",
		Short: "Seeded benchmark instances for combinatorial optimization",
		Long: `geco turns (variant, parameters, seed) into reproducible MIP instances
and writes them in LP format. The same inputs always produce byte-identical files.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetOut(out)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(a.listCmd())
	root.AddCommand(a.generateCmd())
	root.AddCommand(a.sweepCmd())
	return root
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
