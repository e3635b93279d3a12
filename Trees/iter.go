package Trees

import "iter"

// All [SortedList.All]. The walk keeps its own stack and never modifies the
// tree, so loops over All may nest, and yield may panic or inspect the list.
// Time: O(n) per iteration; Space: O(D)
func (u *SplayList[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		walk(u.root, yield, func(n *node[E]) *node[E] { return n.l }, func(n *node[E]) *node[E] { return n.r })
	}
}

// Backward [SortedList.Backward]. Same as All, mirrored.
func (u *SplayList[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		walk(u.root, yield, func(n *node[E]) *node[E] { return n.r }, func(n *node[E]) *node[E] { return n.l })
	}
}

// walk visits cur's subtree in order, where first gives the child visited
// before a node and second the child visited after it.
func walk[E any](cur *node[E], yield func(E) bool, first, second func(*node[E]) *node[E]) {
	var st []*node[E]
	for cur != nil || len(st) > 0 {
		for ; cur != nil; cur = first(cur) {
			st = append(st, cur)
		}
		cur = st[len(st)-1]
		st = st[:len(st)-1]
		if !yield(cur.v) {
			return
		}
		cur = second(cur)
	}
}

// morris visits the subtree of cur in ascending order in O(1) space by
// threading it temporarily. f must not touch the tree and is always run to the
// end, so the threads are gone when morris returns.
func morris[E any](cur *node[E], f func(E)) {
	for cur != nil {
		if cur.l == nil {
			f(cur.v)
			cur = cur.r
			continue
		}
		prev := cur.l
		for prev.r != nil && prev.r != cur {
			prev = prev.r
		}
		if prev.r == nil {
			prev.r = cur
			cur = cur.l
		} else {
			prev.r = nil
			f(cur.v)
			cur = cur.r
		}
	}
}

// InOrder [SortedList.InOrder]. It keeps its own stack rather than threading
// the tree, so f may be abandoned at any point.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *SplayList[E]) InOrder() func() (E, bool) {
	var st []*node[E]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (r E, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for next := cur.r; next != nil; next = next.l {
			st = append(st, next)
		}
		return cur.v, true
	}
}

// Values returns the elements in ascending order.
// Time: O(n); Space: O(1) besides the result
func (u *SplayList[E]) Values() []E {
	vs := make([]E, 0, u.Size())
	morris(u.root, func(v E) { vs = append(vs, v) })
	return vs
}
