package measure

import (
	"fmt"
	"strings"

	"github.com/g-m-twostay/sortedlist/Trees"
)

// Op is an operation of Trees.SortedList whose cost is measured.
type Op uint8

const (
	Insert Op = iota
	InsertAll
	Get
	Iterate
	IndexOf
	IndexOfQuery
	Lower
	LowerQuery
	LowerIndex
	LowerIndexQuery
	Floor
	FloorQuery
	FloorIndex
	FloorIndexQuery
	Higher
	HigherQuery
	HigherIndex
	HigherIndexQuery
	Ceiling
	CeilingQuery
	CeilingIndex
	CeilingIndexQuery
	numOps
)

var opNames = [numOps]string{
	"insert", "insert-all", "get", "iterate", "index-of", "index-of-query",
	"lower", "lower-query", "lower-index", "lower-index-query",
	"floor", "floor-query", "floor-index", "floor-index-query",
	"higher", "higher-query", "higher-index", "higher-index-query",
	"ceiling", "ceiling-query", "ceiling-index", "ceiling-index-query",
}

func (o Op) String() string {
	if o < numOps {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// ParseOp is the inverse of Op.String, case insensitive.
func ParseOp(s string) (Op, error) {
	for i, n := range opNames {
		if strings.EqualFold(n, s) {
			return Op(i), nil
		}
	}
	return 0, fmt.Errorf("unknown op %q", s)
}

// takesQuery reports whether o is one of the *Query ops.
func (o Op) takesQuery() bool {
	return o >= IndexOfQuery && o < numOps && (o-IndexOfQuery)%2 == 0
}

func (o Op) takesElement() bool {
	return o == Insert || o == InsertAll || o >= IndexOf && o < numOps && !o.takesQuery()
}

// AllOps in declaration order.
func AllOps() []Op {
	ops := make([]Op, numOps)
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}

// batch runs one batch of op on list of the given size and returns how many
// operations it counted. The count is always at least 1.
type batch[E any] func(list Trees.SortedList[E], size int) int

// batchOf returns the batch for op. Batches repeat the operation a random
// number of times averaging Config.RepeatMeanCount.
func (u *Benchmark[E]) batchOf(op Op) batch[E] {
	repeat := func(f func(Trees.SortedList[E], int)) batch[E] {
		return func(list Trees.SortedList[E], size int) int {
			n := 1 + u.rand.Intn(2*(u.Config.RepeatMeanCount-1))
			for range n {
				f(list, size)
			}
			return n
		}
	}
	elem := func(f func(Trees.SortedList[E], E)) batch[E] {
		return repeat(func(list Trees.SortedList[E], size int) { f(list, u.Element(size)) })
	}
	query := func(f func(Trees.SortedList[E], Trees.Query[E])) batch[E] {
		return repeat(func(list Trees.SortedList[E], size int) { f(list, u.Query(size)) })
	}
	switch op {
	case Insert:
		return elem(func(l Trees.SortedList[E], v E) { l.Insert(v) })
	case InsertAll:
		return func(list Trees.SortedList[E], size int) int {
			vs := make([]E, 1+u.rand.Intn(2*(u.Config.RepeatMeanCount-1)))
			for i := range vs {
				vs[i] = u.Element(size)
			}
			list.InsertAll(vs...)
			return len(vs)
		}
	case Get:
		return repeat(func(l Trees.SortedList[E], size int) { l.Get(u.rand.Intn(size)) })
	case Iterate:
		return func(list Trees.SortedList[E], _ int) int {
			n := 0
			for range list.All() {
				n++
			}
			return max(n, 1)
		}
	case IndexOf:
		return elem(func(l Trees.SortedList[E], v E) { l.IndexOf(v) })
	case IndexOfQuery:
		return query(func(l Trees.SortedList[E], q Trees.Query[E]) { l.IndexOfFunc(q) })
	case Lower:
		return elem(func(l Trees.SortedList[E], v E) { l.Lower(v) })
	case LowerQuery:
		return query(func(l Trees.SortedList[E], q Trees.Query[E]) { l.LowerFunc(q) })
	case LowerIndex:
		return elem(func(l Trees.SortedList[E], v E) { l.LowerIndex(v) })
	case LowerIndexQuery:
		return query(func(l Trees.SortedList[E], q Trees.Query[E]) { l.LowerIndexFunc(q) })
	case Floor:
		return elem(func(l Trees.SortedList[E], v E) { l.Floor(v) })
	case FloorQuery:
		return query(func(l Trees.SortedList[E], q Trees.Query[E]) { l.FloorFunc(q) })
	case FloorIndex:
		return elem(func(l Trees.SortedList[E], v E) { l.FloorIndex(v) })
	case FloorIndexQuery:
		return query(func(l Trees.SortedList[E], q Trees.Query[E]) { l.FloorIndexFunc(q) })
	case Higher:
		return elem(func(l Trees.SortedList[E], v E) { l.Higher(v) })
	case HigherQuery:
		return query(func(l Trees.SortedList[E], q Trees.Query[E]) { l.HigherFunc(q) })
	case HigherIndex:
		return elem(func(l Trees.SortedList[E], v E) { l.HigherIndex(v) })
	case HigherIndexQuery:
		return query(func(l Trees.SortedList[E], q Trees.Query[E]) { l.HigherIndexFunc(q) })
	case Ceiling:
		return elem(func(l Trees.SortedList[E], v E) { l.Ceiling(v) })
	case CeilingQuery:
		return query(func(l Trees.SortedList[E], q Trees.Query[E]) { l.CeilingFunc(q) })
	case CeilingIndex:
		return elem(func(l Trees.SortedList[E], v E) { l.CeilingIndex(v) })
	case CeilingIndexQuery:
		return query(func(l Trees.SortedList[E], q Trees.Query[E]) { l.CeilingIndexFunc(q) })
	}
	return nil
}
