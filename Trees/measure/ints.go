package measure

import (
	"math/rand"

	"github.com/g-m-twostay/sortedlist/Trees"
	"github.com/g-m-twostay/sortedlist/internal/bitarr"
	"go.uber.org/zap"
)

// IntBenchmark measures Trees.SplayList[int]. Lists of size n hold n distinct
// elements drawn from [0, Spread*n); elements and queries for the operations are
// drawn from the same range, so about 1 in Spread of them hit a stored element.
func IntBenchmark(cfg Config, log *zap.SugaredLogger) *Benchmark[int] {
	r := rand.New(rand.NewSource(cfg.Seed))
	return &Benchmark[int]{
		Label: "SplayList",
		NewList: func(size int) Trees.SortedList[int] {
			return distinctInts(r, size, cfg.Spread*size)
		},
		Element: func(size int) int {
			return r.Intn(cfg.Spread * size)
		},
		Query: func(size int) Trees.Query[int] {
			q := r.Intn(cfg.Spread * size)
			return func(e int) int {
				return q - e
			}
		},
		Config: cfg,
		Log:    log,
		rand:   rand.New(rand.NewSource(cfg.Seed + 1)),
	}
}

// distinctInts returns a list of n distinct ints from [0, m). m must be at
// least n.
func distinctInts(r *rand.Rand, n, m int) *Trees.SplayList[int] {
	drawn := bitarr.New(m)
	list := Trees.New[int]()
	for list.Size() < n {
		if v := r.Intn(m); !drawn.Swap(v) {
			list.Insert(v)
		}
	}
	return list
}
