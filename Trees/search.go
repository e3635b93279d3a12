package Trees

// Query locates a position in a SplayList without building an element. It
// reports how the sought position compares with e: negative if it lies before
// e, zero if e matches, positive if it lies after e. A Query must be monotonic
// over the list's order, e.g. comparing only a key prefix of E.
type Query[E any] func(e E) int

// found is what search stopped at: the value v of rank i, and c, the sign of
// the query against v. An empty tree gives i=-1, c=1.
type found[E any] struct {
	v E
	i int
	c int
}

// search walks down following q until a match or a missing child. It doesn't
// splay.
// Time: O(D); Space: O(1)
func (u *SplayList[E]) search(q Query[E]) (f found[E]) {
	t := u.root
	if t == nil {
		f.i, f.c = -1, 1
		return
	}
	for f.c = q(t.v); f.c != 0; f.c = q(t.v) {
		if f.c < 0 {
			if t.l == nil {
				break
			}
			t = t.l
		} else {
			if t.r == nil {
				break
			}
			f.i += 1 + t.l.size()
			t = t.r
		}
	}
	f.v = t.v
	f.i += t.l.size()
	return
}

// peek returns the element of rank i without splaying. i must be in range.
// Time: O(D); Space: O(1)
func (u *SplayList[E]) peek(i int) E {
	for t := u.root; ; {
		if ls := t.l.size(); i < ls {
			t = t.l
		} else if i > ls {
			i -= ls + 1
			t = t.r
		} else {
			return t.v
		}
	}
}

// of turns v into a Query under the list's comparator.
func (u *SplayList[E]) of(v E) Query[E] {
	return func(e E) int {
		return u.cmp(v, e)
	}
}
