package Trees

import (
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// compares with https://github.com/google/btree, https://github.com/emirpasic/gods
// and https://github.com/petar/GoLLRB. None of them answers rank queries, so
// only the operations they share are compared.

var (
	bAddN = 1 << 16
	bQryN = bAddN / 2
)

func benchValues() []int {
	return rg.Perm(bAddN)
}

func BenchmarkSplayList_Insert(b *testing.B) {
	vs := benchValues()
	b.ResetTimer()
	for range b.N {
		list := New[int]()
		for _, v := range vs {
			list.Insert(v)
		}
	}
}

func BenchmarkBTree_Insert(b *testing.B) {
	vs := benchValues()
	b.ResetTimer()
	for range b.N {
		tree := btree.NewOrderedG[int](32)
		for _, v := range vs {
			tree.ReplaceOrInsert(v)
		}
	}
}

func BenchmarkRedBlack_Insert(b *testing.B) {
	vs := benchValues()
	b.ResetTimer()
	for range b.N {
		tree := redblacktree.NewWithIntComparator()
		for _, v := range vs {
			tree.Put(v, nil)
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	vs := benchValues()
	b.ResetTimer()
	for range b.N {
		tree := llrb.New()
		for _, v := range vs {
			tree.ReplaceOrInsert(llrb.Int(v))
		}
	}
}

var sideEff int

func BenchmarkSplayList_Floor(b *testing.B) {
	list := From(benchValues()...)
	b.ResetTimer()
	for range b.N {
		for range bQryN {
			sideEff, _ = list.Floor(rg.Intn(bAddN * 2))
		}
	}
}

func BenchmarkBTree_Floor(b *testing.B) {
	tree := btree.NewOrderedG[int](32)
	for _, v := range benchValues() {
		tree.ReplaceOrInsert(v)
	}
	b.ResetTimer()
	for range b.N {
		for range bQryN {
			tree.DescendLessOrEqual(rg.Intn(bAddN*2), func(a int) bool {
				sideEff = a
				return false
			})
		}
	}
}

func BenchmarkRedBlack_Floor(b *testing.B) {
	tree := redblacktree.NewWithIntComparator()
	for _, v := range benchValues() {
		tree.Put(v, nil)
	}
	b.ResetTimer()
	for range b.N {
		for range bQryN {
			if n, ok := tree.Floor(rg.Intn(bAddN * 2)); ok {
				sideEff = n.Key.(int)
			}
		}
	}
}

func BenchmarkLLRB_Floor(b *testing.B) {
	tree := llrb.New()
	for _, v := range benchValues() {
		tree.ReplaceOrInsert(llrb.Int(v))
	}
	b.ResetTimer()
	for range b.N {
		for range bQryN {
			tree.DescendLessOrEqual(llrb.Int(rg.Intn(bAddN*2)), func(i llrb.Item) bool {
				sideEff = int(i.(llrb.Int))
				return false
			})
		}
	}
}

// the splay list's strength: nearby indexes are cheap after an access.
func BenchmarkSplayList_GetSequential(b *testing.B) {
	list := From(benchValues()...)
	b.ResetTimer()
	for range b.N {
		for i := range bAddN {
			sideEff, _ = list.Get(i)
		}
	}
}

func BenchmarkSplayList_GetRandom(b *testing.B) {
	list := From(benchValues()...)
	b.ResetTimer()
	for range b.N {
		for range bAddN {
			sideEff, _ = list.Get(rg.Intn(bAddN))
		}
	}
}

func BenchmarkSplayList_Remove(b *testing.B) {
	vs := benchValues()
	for range b.N {
		b.StopTimer()
		list := From(vs...)
		b.StartTimer()
		for _, v := range vs {
			list.Remove(v)
		}
	}
}
