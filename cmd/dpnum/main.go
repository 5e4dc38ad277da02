// dpnum exposes the numeric building blocks of differentially private
// mechanisms on the command line: describing a sample, normal
// quantiles, grid snapping, checked integer sums, and byte mixing.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "devel"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the state shared by all subcommands.
type app struct {
	verbose bool
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "dpnum",
		Short: "Numeric diagnostics for differentially private mechanisms",
		Long: `dpnum exposes the numeric helpers used by differentially private
mechanisms: sample statistics, normal quantiles, power-of-two grid
snapping, overflow-checked sums, and cyclic byte XOR.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if a.verbose {
				a.log = newLogger(cmd.ErrOrStderr())
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(a.describeCmd())
	rootCmd.AddCommand(a.qnormCmd())
	rootCmd.AddCommand(a.snapCmd())
	rootCmd.AddCommand(a.sumCmd())
	rootCmd.AddCommand(a.xorCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// newLogger returns a development logger writing to w.
func newLogger(w io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core, zap.Development())
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dpnum %s\n", version)
		},
	}
}
