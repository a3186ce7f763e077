// Command primevector factors arbitrary-precision integers from the
// command line: trial division, deterministic-witness Miller-Rabin, and
// parallel Brent-rho rounds, rendered as text blocks or JSON lines.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/drsaoudimo/Prime-Vector-Analyzer/factor"
	"github.com/drsaoudimo/Prime-Vector-Analyzer/report"
	"github.com/drsaoudimo/Prime-Vector-Analyzer/rho"
)

// cliOptions carries every flag; a fresh set per command keeps tests
// isolated from each other and from main.
type cliOptions struct {
	timeout    time.Duration
	lanes      int
	iterations uint64
	batch      uint64
	seed       int64
	asJSON     bool
	verbose    bool
}

// searchOptions maps the flag set onto an engine configuration.
func (o *cliOptions) searchOptions() factor.Options {
	return factor.Options{Search: rho.Options{
		Lanes:         o.lanes,
		Timeout:       o.timeout,
		MaxIterations: o.iterations,
		BatchSize:     o.batch,
		Seed:          o.seed,
	}}
}

// newRootCmd assembles the primevector command tree.
func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "primevector N [N ...]",
		Short: "Factor integers into ascending prime multisets",
		Long: `primevector factors arbitrary-precision integers into ascending prime
multisets using trial division, deterministic-witness Miller-Rabin
classification, and parallel Brent-rho divisor rounds.

Inputs are base-10 digit strings (minimum value 1). Factors the search
cannot split within its budget are reported as "(unresolved)" composites;
the product of the printed factors always reconstructs the input. Multiple
inputs are factorized concurrently, each with its own engine, and printed
in argument order.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
				Level:      level,
				TimeFormat: "15:04:05",
			})))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().DurationVar(&opts.timeout, "timeout", rho.DefaultTimeout,
		"wall-clock budget per divisor round")
	cmd.Flags().IntVar(&opts.lanes, "lanes", 0,
		"search lanes per round (0 = max(4, GOMAXPROCS))")
	cmd.Flags().Uint64Var(&opts.iterations, "iterations", rho.DefaultMaxIterations,
		"per-lane iteration ceiling")
	cmd.Flags().Uint64Var(&opts.batch, "batch", rho.DefaultBatchSize,
		"iteration steps between gcd evaluations")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0,
		"lane parameter seed (0 = fixed default stream)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false,
		"emit one JSON object per input instead of text blocks")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"log factorization progress to stderr")

	return cmd
}

// run factors every argument concurrently and renders results in
// argument order.
func run(cmd *cobra.Command, args []string, opts *cliOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engOpts := opts.searchOptions()

	// One engine and one slot per input: concurrent calls share nothing,
	// and indexed writes keep the output in argument order.
	results := make([]factor.Result, len(args))
	g, gctx := errgroup.WithContext(ctx)
	for i, arg := range args {
		i, arg := i, arg
		g.Go(func() error {
			slog.Debug("factorizing", "input", arg)

			res, err := factor.New(engOpts).FactorizeString(gctx, arg)
			if err != nil {
				return fmt.Errorf("%s: %w", arg, err)
			}
			if !res.Resolved {
				slog.Warn("factorization incomplete",
					"input", arg, "elapsed", res.Elapsed)
			}
			slog.Debug("factorized",
				"input", arg,
				"class", report.Classify(res).String(),
				"factors", len(res.Factors),
				"elapsed", res.Elapsed)

			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return render(cmd, opts, results)
}

// render writes results to stdout: JSON lines or blank-line separated
// text blocks.
func render(cmd *cobra.Command, opts *cliOptions, results []factor.Result) error {
	out := cmd.OutOrStdout()

	if opts.asJSON {
		enc := json.NewEncoder(out)
		for _, res := range results {
			if err := enc.Encode(report.Summarize(res)); err != nil {
				return err
			}
		}

		return nil
	}

	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprint(out, report.Text(res))
	}

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
