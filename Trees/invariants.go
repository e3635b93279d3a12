package Trees

import "fmt"

// CheckInvariants [SortedList.CheckInvariants]. Verifies that the elements are
// in non-decreasing order and that every node counts 1 plus its children. Both
// are local properties, so a single in-order walk covers them. The walk is
// iterative and works on trees of any shape, but it's O(n) and meant for tests.
// Time: O(n); Space: O(D)
func (u *SplayList[E]) CheckInvariants() error {
	var (
		st   []*node[E]
		prev *node[E]
	)
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if cur.sz != cur.l.size()+cur.r.size()+1 {
			return &CorruptError{fmt.Sprintf("node %v counts %d, its children %d and %d", cur.v, cur.sz, cur.l.size(), cur.r.size())}
		}
		if prev != nil && u.cmp(prev.v, cur.v) > 0 {
			return &CorruptError{fmt.Sprintf("%v is placed before %v", prev.v, cur.v)}
		}
		prev = cur
		for next := cur.r; next != nil; next = next.l {
			st = append(st, next)
		}
	}
	return nil
}

// Corrupt returns whether the tree has corrupt structures.
func (u *SplayList[E]) Corrupt() bool {
	return u.CheckInvariants() != nil
}
