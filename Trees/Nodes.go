package Trees

// A node in the SplayList.
// sz is the number of nodes in the subtree rooted here, including itself.
// v never changes once the node is created.
type node[E any] struct {
	v    E
	l, r *node[E]
	sz   int
}

// size of the subtree rooted at n. A nil n is an empty subtree.
func (n *node[E]) size() int {
	if n == nil {
		return 0
	}
	return n.sz
}

// rotateLeft performs a left rotation on n and returns the new subtree root.
// The subtree's total count moves to the new root and n's count is recomputed,
// so no node outside the two involved needs fixing.
// Time: O(1); Space: O(1)
func rotateLeft[E any](n *node[E]) *node[E] {
	rc := n.r
	n.r = rc.l
	rc.l = n
	rc.sz = n.sz
	n.sz = n.l.size() + n.r.size() + 1
	return rc
}

// rotateRight performs a right rotation on n and returns the new subtree root.
// Time: O(1); Space: O(1)
func rotateRight[E any](n *node[E]) *node[E] {
	lc := n.l
	n.l = lc.r
	lc.r = n
	lc.sz = n.sz
	n.sz = n.l.size() + n.r.size() + 1
	return lc
}

// fixRightSpine recomputes sz along the path from n that takes the right child
// whenever there is one and the left child otherwise. This is the shape of the
// left tree assembled by a top-down splay: every node off that path already
// has a correct count, so walking it twice (once to total, once to assign) is
// enough.
func fixRightSpine[E any](n *node[E]) {
	c := 0
	for y := n; y != nil; {
		c++
		if y.r != nil {
			c += y.l.size()
			y = y.r
		} else {
			y = y.l
		}
	}
	for y := n; y != nil; {
		y.sz = c
		c--
		if y.r != nil {
			c -= y.l.size()
			y = y.r
		} else {
			y = y.l
		}
	}
}

// fixLeftSpine is the mirror of fixRightSpine for the right tree.
func fixLeftSpine[E any](n *node[E]) {
	c := 0
	for y := n; y != nil; {
		c++
		if y.l != nil {
			c += y.r.size()
			y = y.l
		} else {
			y = y.r
		}
	}
	for y := n; y != nil; {
		y.sz = c
		c--
		if y.l != nil {
			c -= y.r.size()
			y = y.l
		} else {
			y = y.r
		}
	}
}
