package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/privacylab/go-dpmath/mathx"
	"github.com/privacylab/go-dpmath/stats"
	"github.com/privacylab/go-dpmath/vec"
)

var defaultQuantiles = []float64{0, .01, .05, .25, .5, .75, .95, .99, 1}

type describeOptions struct {
	quantiles   []float64
	confidence  float64
	granularity float64
}

func (a *app) describeCmd() *cobra.Command {
	var opts describeOptions

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Describe the distribution of newline-separated numbers on stdin",
		Long: `Describe reads newline-separated numbers from stdin and prints their
count, sum, mean, population variance and standard deviation, the
requested order statistics, and a distribution-free confidence
interval for the median. NaN and infinite inputs are dropped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !(opts.confidence > 0 && opts.confidence <= 1) {
				return fmt.Errorf("--confidence %v: must be in (0, 1]", opts.confidence)
			}
			s, err := a.readSample(cmd.InOrStdin())
			if err != nil {
				return err
			}
			return a.describe(cmd.OutOrStdout(), s, opts)
		},
	}

	cmd.Flags().Float64SliceVar(&opts.quantiles, "quantiles", defaultQuantiles, "order statistics to print, in [0, 1]")
	cmd.Flags().Float64Var(&opts.confidence, "confidence", 0.95, "confidence level of the median interval")
	cmd.Flags().Float64Var(&opts.granularity, "granularity", 0, "snap printed values to multiples of the next power of two >= this")

	return cmd
}

func (a *app) readSample(r io.Reader) (stats.Sample, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return stats.Sample{}, fmt.Errorf("line %d: %w", line, err)
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		return stats.Sample{}, err
	}

	finite := make([]bool, len(xs))
	for i, x := range xs {
		finite[i] = !math.IsNaN(x) && !math.IsInf(x, 0)
	}
	kept, err := vec.Filter(xs, finite)
	if err != nil {
		return stats.Sample{}, err
	}
	if dropped := len(xs) - len(kept); dropped > 0 {
		a.log.Warn("dropped non-finite values", zap.Int("dropped", dropped))
	}
	a.log.Debug("read sample", zap.Int("n", len(kept)), zap.String("xs", vec.String(kept)))

	return stats.Sample{Xs: kept}, nil
}

func (a *app) describe(w io.Writer, s stats.Sample, opts describeOptions) error {
	mean, err := stats.Mean(s.Xs)
	if err != nil {
		return err
	}
	s.Sort()

	snap := func(x float64) float64 { return x }
	if opts.granularity > 0 {
		g := mathx.NextPowerOfTwo(opts.granularity)
		a.log.Debug("snapping output", zap.Float64("granularity", g))
		snap = func(x float64) float64 { return mathx.RoundToNearestMultiple(x, g) }
	}

	fmt.Fprintf(w, "N %d  sum %.6g  mean %.6g", len(s.Xs), snap(s.Sum()), snap(mean))
	fmt.Fprintf(w, "  std dev %.6g  variance %.6g\n", snap(s.StdDev()), snap(s.Variance()))
	fmt.Fprintln(w)

	labels := map[float64]string{0: "min", 0.5: "median", 1: "max"}
	for _, q := range opts.quantiles {
		x, err := stats.OrderStatistic(q, s.Xs)
		if err != nil {
			return fmt.Errorf("quantile %v: %w", q, err)
		}
		label, ok := labels[q]
		if !ok {
			label = fmt.Sprintf("%g%%ile", q*100)
		}
		fmt.Fprintf(w, "%8s %.6g\n", label, snap(x))
	}
	fmt.Fprintln(w)

	ci := stats.OrderStatisticCI(len(s.Xs), 0.5, opts.confidence)
	lo, hi, err := ci.FromSample(s)
	if err != nil {
		return err
	}
	a.log.Debug("median interval", zap.Int("lo_order", ci.LoOrder), zap.Int("hi_order", ci.HiOrder), zap.Bool("ambiguous", ci.Ambiguous))
	fmt.Fprintf(w, "median %g%% CI [%.6g, %.6g] (actual %.4g%%)\n", opts.confidence*100, snap(lo), snap(hi), ci.Confidence*100)

	return nil
}
