package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/privacylab/go-dpmath/mathx"
	"github.com/privacylab/go-dpmath/safemath"
	"github.com/privacylab/go-dpmath/vec"
)

func parseFloats(args []string) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, arg := range args {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, err
		}
		xs[i] = x
	}
	return xs, nil
}

// numericArgs separates the help and verbose flags from the positional
// arguments of a command whose arguments may be negative numbers.
// Such commands disable flag parsing, since "-5" would otherwise be
// read as a shorthand flag. Everything after "--" is positional.
func (a *app) numericArgs(cmd *cobra.Command, args []string) (rest []string, help bool) {
	for i, arg := range args {
		switch arg {
		case "-h", "--help":
			return nil, true
		case "-v", "--verbose":
			a.verbose = true
			a.log = newLogger(cmd.ErrOrStderr())
		case "--":
			return append(rest, args[i+1:]...), false
		default:
			rest = append(rest, arg)
		}
	}
	return rest, false
}

func (a *app) qnormCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "qnorm p...",
		Short: "Print standard normal quantiles",
		Long: `Qnorm prints the quantile of the standard normal distribution for
each probability p, which must lie strictly between 0 and 1.`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			args, help := a.numericArgs(cmd, args)
			if help {
				return cmd.Help()
			}
			if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
				return err
			}
			ps, err := parseFloats(args)
			if err != nil {
				return err
			}
			for _, p := range ps {
				z, err := mathx.Qnorm(p)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%v\t%.9g\n", p, z)
			}
			return nil
		},
	}
}

func (a *app) snapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snap granularity x...",
		Short: "Round values onto a power-of-two grid",
		Long: `Snap rounds each x to the nearest multiple of the smallest power of
two at least granularity. Ties round toward +Inf.`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			args, help := a.numericArgs(cmd, args)
			if help {
				return cmd.Help()
			}
			if err := cobra.MinimumNArgs(2)(cmd, args); err != nil {
				return err
			}
			xs, err := parseFloats(args)
			if err != nil {
				return err
			}
			if !(xs[0] > 0) {
				return fmt.Errorf("granularity %v: must be positive", xs[0])
			}
			g := mathx.NextPowerOfTwo(xs[0])
			a.log.Debug("snap", zap.Float64("granularity", g), zap.String("xs", vec.String(xs[1:])))
			for _, x := range xs[1:] {
				fmt.Fprintf(cmd.OutOrStdout(), "%v\n", mathx.RoundToNearestMultiple(x, g))
			}
			return nil
		},
	}
}

func (a *app) sumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum",
		Short: "Sum newline-separated int64 values on stdin, failing on overflow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var xs []int64
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for line := 1; scanner.Scan(); line++ {
				l := strings.TrimSpace(scanner.Text())
				if l == "" {
					continue
				}
				x, err := strconv.ParseInt(l, 10, 64)
				if err != nil {
					return fmt.Errorf("line %d: %w", line, err)
				}
				xs = append(xs, x)
			}
			if err := scanner.Err(); err != nil {
				return err
			}
			a.log.Debug("read counts", zap.String("xs", vec.String(xs)))

			total, err := safemath.Sum(xs).Value()
			if err != nil {
				return fmt.Errorf("%w (saturated at %d)", err, total)
			}
			fmt.Fprintln(cmd.OutOrStdout(), total)
			return nil
		},
	}
}

func (a *app) xorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "xor a b",
		Short: "Print the hex XOR of two strings, repeating the shorter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString([]byte(vec.XorStrings(args[0], args[1]))))
			return nil
		},
	}
}
