package Trees

// Top-down splaying. Nodes passed on the way down are hung onto two spines
// below a stack-local header: hdr.r collects the nodes smaller than the target
// (linked through their r fields, tail l), hdr.l the larger ones (linked through
// their l fields, tail r). Rotations keep counts right for every node they touch,
// the spines are repaired by assemble.

// splayBy brings the node closest to q to the root. u.root must not be nil.
// Time: amortized O(log n); Space: O(1)
func (u *SplayList[E]) splayBy(q Query[E]) {
	var hdr node[E]
	l, r, t := &hdr, &hdr, u.root
	for c := q(t.v); c != 0; c = q(t.v) {
		if c < 0 {
			if t.l == nil {
				break
			}
			if q(t.l.v) < 0 { // zig-zig
				t = rotateRight(t)
				if t.l == nil {
					break
				}
			}
			r.l = t // link right
			r, t = t, t.l
		} else {
			if t.r == nil {
				break
			}
			if q(t.r.v) > 0 { // zag-zag
				t = rotateLeft(t)
				if t.r == nil {
					break
				}
			}
			l.r = t // link left
			l, t = t, t.r
		}
	}
	u.assemble(&hdr, l, r, t)
}

// splayAt brings the node of rank i to the root. u.root must not be nil.
// With i>=Size() the maximum surfaces, which removal relies on.
// Time: amortized O(log n); Space: O(1)
func (u *SplayList[E]) splayAt(i int) {
	var hdr node[E]
	l, r, t := &hdr, &hdr, u.root
	for c := i - t.l.size(); c != 0; c = i - t.l.size() {
		if c < 0 {
			if t.l == nil {
				break
			}
			if i < t.l.l.size() {
				t = rotateRight(t)
				if t.l == nil {
					break
				}
			}
			r.l = t
			r, t = t, t.l
		} else {
			i -= 1 + t.l.size()
			if t.r == nil {
				break
			}
			if i > t.r.l.size() {
				i -= 1 + t.r.l.size()
				t = rotateLeft(t)
				if t.r == nil {
					break
				}
			}
			l.r = t
			l, t = t, t.r
		}
	}
	u.assemble(&hdr, l, r, t)
}

// assemble makes t the root, hangs the two spines under it and repairs the
// counts along them.
func (u *SplayList[E]) assemble(hdr, l, r, t *node[E]) {
	l.r, r.l = t.l, t.r
	t.l, t.r = hdr.r, hdr.l
	fixRightSpine(t.l)
	fixLeftSpine(t.r)
	t.sz = t.l.size() + t.r.size() + 1
	u.root = t
}
