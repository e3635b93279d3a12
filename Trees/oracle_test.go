package Trees

import (
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// The tests here run random operations against the list and against other
// ordered containers, and compare every answer.

const (
	oracleOps   = 30000
	oracleRange = 4000
)

// rankIn counts the items of t smaller than v.
func rankIn(t *btree.BTreeG[int], v int) (r int) {
	t.AscendLessThan(v, func(int) bool {
		r++
		return true
	})
	return
}

func TestAgainstBTree(t *testing.T) {
	list, ref := New[int](), btree.NewOrderedG[int](8)
	for i := range oracleOps {
		v := rg.Intn(oracleRange)
		switch rg.Intn(5) {
		case 0, 1:
			_, had := ref.ReplaceOrInsert(v)
			if got := list.Insert(v); got == had {
				t.Fatalf("op %d: Insert(%d) = %v, stored before: %v", i, v, got, had)
			}
		case 2:
			_, had := ref.Delete(v)
			if got := list.Remove(v); got != had {
				t.Fatalf("op %d: Remove(%d) = %v, want %v", i, v, got, had)
			}
		case 3:
			if ref.Len() == 0 {
				continue
			}
			k := rg.Intn(ref.Len())
			var want int
			n := 0
			ref.Ascend(func(a int) bool {
				if n == k {
					want = a
					return false
				}
				n++
				return true
			})
			if got, _ := list.RemoveAt(k); got != want {
				t.Fatalf("op %d: RemoveAt(%d) = %d, want %d", i, k, got, want)
			}
			ref.Delete(want)
		default:
			want := -1
			if ref.Has(v) {
				want = rankIn(ref, v)
			}
			if got := list.IndexOf(v); got != want {
				t.Fatalf("op %d: IndexOf(%d) = %d, want %d", i, v, got, want)
			}
		}
		if list.Size() != ref.Len() {
			t.Fatalf("op %d: size %d, want %d", i, list.Size(), ref.Len())
		}
	}
	if err := list.CheckInvariants(); err != nil {
		t.Fatal(err)
	}
	i := 0
	ref.Ascend(func(a int) bool {
		if got, _ := list.Peek(i); got != a {
			t.Errorf("Peek(%d) = %d, want %d", i, got, a)
		}
		i++
		return true
	})
}

func TestNavigationAgainstRedBlack(t *testing.T) {
	list, ref := New[int](), redblacktree.NewWithIntComparator()
	for range oracleRange / 2 {
		v := rg.Intn(oracleRange)
		list.Insert(v)
		ref.Put(v, struct{}{})
	}
	check := func(name string, v, got int, ok bool, n *redblacktree.Node, found bool) {
		t.Helper()
		if ok != found {
			t.Fatalf("%s(%d) found %v, want %v", name, v, ok, found)
		}
		if ok && got != n.Key.(int) {
			t.Fatalf("%s(%d) = %d, want %d", name, v, got, n.Key.(int))
		}
	}
	for range oracleOps {
		v := rg.Intn(oracleRange+20) - 10
		fl, flOk := ref.Floor(v)
		ce, ceOk := ref.Ceiling(v)
		lo, loOk := ref.Floor(v - 1)
		hi, hiOk := ref.Ceiling(v + 1)

		got, ok := list.Floor(v)
		check("Floor", v, got, ok, fl, flOk)
		got, ok = list.Ceiling(v)
		check("Ceiling", v, got, ok, ce, ceOk)
		got, ok = list.Lower(v)
		check("Lower", v, got, ok, lo, loOk)
		got, ok = list.Higher(v)
		check("Higher", v, got, ok, hi, hiOk)
	}
	if err := list.CheckInvariants(); err != nil {
		t.Fatal(err)
	}
}

func TestIndexesAgainstLLRB(t *testing.T) {
	list, ref := New[int](), llrb.New()
	for range oracleRange / 2 {
		v := rg.Intn(oracleRange)
		list.Insert(v)
		ref.ReplaceOrInsert(llrb.Int(v))
	}
	// lessThan counts the items of ref below v.
	lessThan := func(v int) (r int) {
		ref.AscendLessThan(llrb.Int(v), func(llrb.Item) bool {
			r++
			return true
		})
		return
	}
	for range oracleOps / 3 {
		v := rg.Intn(oracleRange+20) - 10
		below, has := lessThan(v), ref.Has(llrb.Int(v))
		lower, floor, higher, ceiling := below-1, below-1, below, below
		if has {
			floor, higher = below, below+1
		}
		if got := list.LowerIndex(v); got != lower {
			t.Fatalf("LowerIndex(%d) = %d, want %d", v, got, lower)
		}
		if got := list.FloorIndex(v); got != floor {
			t.Fatalf("FloorIndex(%d) = %d, want %d", v, got, floor)
		}
		if got := list.HigherIndex(v); got != higher {
			t.Fatalf("HigherIndex(%d) = %d, want %d", v, got, higher)
		}
		if got := list.CeilingIndex(v); got != ceiling {
			t.Fatalf("CeilingIndex(%d) = %d, want %d", v, got, ceiling)
		}
	}
}
