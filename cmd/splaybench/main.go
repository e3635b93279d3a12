package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/g-m-twostay/sortedlist/Trees/measure"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(out io.Writer) *cli.App {
	def := measure.DefaultConfig()
	return &cli.App{
		Name:  "splaybench",
		Usage: "check that SplayList operations scale logarithmically",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "ops",
				Usage:   "comma separated operations to measure, all if empty",
				EnvVars: []string{"SPLAYBENCH_OPS"},
			},
			&cli.IntFlag{
				Name:    "try-count",
				Usage:   "batches timed per list size",
				Value:   def.TryCount,
				EnvVars: []string{"SPLAYBENCH_TRY_COUNT"},
			},
			&cli.IntFlag{
				Name:    "repeat-mean",
				Usage:   "mean number of operations per batch",
				Value:   def.RepeatMeanCount,
				EnvVars: []string{"SPLAYBENCH_REPEAT_MEAN"},
			},
			&cli.IntFlag{
				Name:    "min-size",
				Usage:   "list size of the first step",
				Value:   def.MinSize,
				EnvVars: []string{"SPLAYBENCH_MIN_SIZE"},
			},
			&cli.IntFlag{
				Name:    "steps",
				Usage:   "number of size doublings",
				Value:   def.StepCount,
				EnvVars: []string{"SPLAYBENCH_STEPS"},
			},
			&cli.IntFlag{
				Name:    "spread",
				Usage:   "elements are drawn from [0, spread*size)",
				Value:   def.Spread,
				EnvVars: []string{"SPLAYBENCH_SPREAD"},
			},
			&cli.Int64Flag{
				Name:        "seed",
				Usage:       "random seed, time based if unset",
				Value:       def.Seed,
				DefaultText: "now",
				EnvVars:     []string{"SPLAYBENCH_SEED"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level",
				Value:   "info",
				EnvVars: []string{"SPLAYBENCH_LOG_LEVEL"},
			},
		},
		Writer: out,
		Action: run,
	}
}

func run(cctx *cli.Context) error {
	ctx, cancel := signal.NotifyContext(cctx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	level, err := zapcore.ParseLevel(cctx.String("log-level"))
	if err != nil {
		return err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	rawlog, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer rawlog.Sync()
	logger := rawlog.Sugar().With("source", "splaybench")

	ops, err := parseOps(cctx.String("ops"))
	if err != nil {
		return err
	}
	cfg := measure.Config{
		TryCount:        cctx.Int("try-count"),
		RepeatMeanCount: cctx.Int("repeat-mean"),
		MinSize:         cctx.Int("min-size"),
		StepCount:       cctx.Int("steps"),
		Spread:          cctx.Int("spread"),
		Seed:            cctx.Int64("seed"),
	}
	logger.Infow("starting", "config", cfg, "ops", len(ops))

	results, err := measure.IntBenchmark(cfg, logger).Run(ctx, ops...)
	printResults(cctx.App.Writer, results)
	return err
}

func parseOps(s string) ([]measure.Op, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var ops []measure.Op
	for _, name := range strings.Split(s, ",") {
		op, err := measure.ParseOp(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func printResults(out io.Writer, results []measure.Result) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintln(w, "LABEL\tOP\tSIZES\tMEAN FIRST (ms)\tMEAN LAST (ms)\tSLOPE (µs/doubling)\tRSQ")
	for _, r := range results {
		first, last := r.Steps[0], r.Steps[len(r.Steps)-1]
		fmt.Fprintf(w, "%s\t%v\t%d..%d\t%.6f\t%.6f\t%.6f\t%.6f\n", r.Label, r.Op, first.Size, last.Size,
			first.MeanMicros/1e3, last.MeanMicros/1e3, r.Slope, r.RSquared)
	}
}
