// Package measure checks that the operations of a Trees.SortedList scale
// logarithmically. For each operation it times batches on lists of
// geometrically growing size and fits a line of the mean time per operation
// against log2 of the size; a good fit means logarithmic cost.
package measure

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/g-m-twostay/sortedlist/Trees"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

// Config of a Benchmark. Step i measures lists of size MinSize<<i.
type Config struct {
	TryCount        int   // batches timed per step
	RepeatMeanCount int   // mean number of operations per batch
	MinSize         int   // list size of the first step
	StepCount       int   // number of doublings measured
	Spread          int   // elements are drawn from [0, Spread*size)
	Seed            int64 // seed of every random source
}

func DefaultConfig() Config {
	return Config{
		TryCount:        256,
		RepeatMeanCount: 32,
		MinSize:         1024,
		StepCount:       11,
		Spread:          16,
		Seed:            time.Now().UnixNano(),
	}
}

func (c Config) Validate() error {
	switch {
	case c.TryCount < 1:
		return fmt.Errorf("try count %d must be positive", c.TryCount)
	case c.RepeatMeanCount < 2:
		return fmt.Errorf("repeat mean count %d must be at least 2", c.RepeatMeanCount)
	case c.MinSize < 1:
		return fmt.Errorf("min size %d must be positive", c.MinSize)
	case c.StepCount < 2:
		return fmt.Errorf("step count %d must be at least 2 to fit a line", c.StepCount)
	case c.Spread < 1:
		return fmt.Errorf("spread %d must be positive", c.Spread)
	case c.MinSize<<(c.StepCount-1) <= 0 || c.Spread*(c.MinSize<<(c.StepCount-1)) <= 0:
		return fmt.Errorf("min size %d with %d steps overflows", c.MinSize, c.StepCount)
	}
	return nil
}

// Benchmark of one kind of SortedList.
type Benchmark[E any] struct {
	Label string
	// NewList returns a list holding about size elements. Lists that reject
	// some of them are measured at their actual size.
	NewList func(size int) Trees.SortedList[E]
	// Element returns an element for operations taking one, for a list of size.
	Element func(size int) E
	// Query returns a query for operations taking one, for a list of size.
	Query  func(size int) Trees.Query[E]
	Config Config
	Log    *zap.SugaredLogger

	rand *rand.Rand
}

// Step is the measurement of one list size.
type Step struct {
	Size       int
	Ops        int
	Net        time.Duration
	MeanMicros float64 // mean µs per operation
}

// Result of one Op. Slope is µs per doubling of the size.
type Result struct {
	Label     string
	Op        Op
	Steps     []Step
	Intercept float64
	Slope     float64
	RSquared  float64
}

// Run measures each of ops in turn, all of them if ops is empty. ctx is checked
// between steps.
func (u *Benchmark[E]) Run(ctx context.Context, ops ...Op) ([]Result, error) {
	if err := u.Config.Validate(); err != nil {
		return nil, err
	}
	if u.NewList == nil {
		return nil, fmt.Errorf("benchmark %q has no list constructor", u.Label)
	}
	if u.Log == nil {
		u.Log = zap.NewNop().Sugar()
	}
	if u.rand == nil {
		u.rand = rand.New(rand.NewSource(u.Config.Seed))
	}
	if len(ops) == 0 {
		ops = AllOps()
	}
	results := make([]Result, 0, len(ops))
	for _, op := range ops {
		b := u.batchOf(op)
		if b == nil {
			return results, fmt.Errorf("unknown op %v", op)
		}
		if op.takesQuery() && u.Query == nil {
			return results, fmt.Errorf("op %v needs a query generator", op)
		} else if op.takesElement() && u.Element == nil {
			return results, fmt.Errorf("op %v needs an element generator", op)
		}
		r, err := u.verifyLg(ctx, op, b)
		if err != nil {
			return results, fmt.Errorf("measuring %v: %w", op, err)
		}
		results = append(results, r)
	}
	return results, nil
}

// verifyLg warms up over every size once, then times every size and fits the
// line. If the op is logarithmic, the mean grows linearly with the step.
func (u *Benchmark[E]) verifyLg(ctx context.Context, op Op, b batch[E]) (Result, error) {
	cfg := u.Config
	for step := range cfg.StepCount {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		list := u.NewList(cfg.MinSize << step)
		size := list.Size()
		for range cfg.TryCount {
			b(list, size)
		}
	}

	res := Result{Label: u.Label, Op: op, Steps: make([]Step, 0, cfg.StepCount)}
	xs, ys := make([]float64, cfg.StepCount), make([]float64, cfg.StepCount)
	for step := range cfg.StepCount {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		list := u.NewList(cfg.MinSize << step)
		// equal elements are rejected, so the list may be smaller than asked.
		size := list.Size()
		s := Step{Size: size}
		for range cfg.TryCount {
			start := time.Now()
			s.Ops += b(list, size)
			s.Net += time.Since(start)
		}
		s.MeanMicros = float64(s.Net.Nanoseconds()) / 1e3 / float64(s.Ops)
		res.Steps = append(res.Steps, s)
		xs[step], ys[step] = float64(step), s.MeanMicros
		u.Log.Infow("measured step", "label", u.Label, "op", op.String(), "size", size,
			"mean_ms", s.MeanMicros/1e3, "net_ms", float64(s.Net.Microseconds())/1e3)
	}
	res.Intercept, res.Slope = stat.LinearRegression(xs, ys, nil, false)
	res.RSquared = stat.RSquared(xs, ys, nil, res.Intercept, res.Slope)
	u.Log.Infow("fitted", "label", u.Label, "op", op.String(), "slope_us", res.Slope, "rsq", res.RSquared)
	return res, nil
}
