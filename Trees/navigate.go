package Trees

// The navigation family needs one search each. When search stops on the wrong
// side of the query, the answer is the neighbour at i-1 or i+1, fetched with a
// splaying Get so the neighbourhood stays hot.

// Lower [SortedList.Lower]
func (u *SplayList[E]) Lower(v E) (E, bool) {
	return u.LowerFunc(u.of(v))
}

// LowerFunc [SortedList.LowerFunc]
func (u *SplayList[E]) LowerFunc(q Query[E]) (r E, ok bool) {
	if u.root == nil {
		return
	}
	if f := u.search(q); f.c > 0 {
		return f.v, true
	} else if f.i > 0 {
		return u.at(f.i - 1), true
	}
	return
}

// LowerIndex [SortedList.LowerIndex]
func (u *SplayList[E]) LowerIndex(v E) int {
	return u.LowerIndexFunc(u.of(v))
}

// LowerIndexFunc [SortedList.LowerIndexFunc]
func (u *SplayList[E]) LowerIndexFunc(q Query[E]) int {
	if f := u.search(q); f.c > 0 {
		return f.i
	} else {
		return f.i - 1
	}
}

// Floor [SortedList.Floor]
func (u *SplayList[E]) Floor(v E) (E, bool) {
	return u.FloorFunc(u.of(v))
}

// FloorFunc [SortedList.FloorFunc]
func (u *SplayList[E]) FloorFunc(q Query[E]) (r E, ok bool) {
	if u.root == nil {
		return
	}
	if f := u.search(q); f.c >= 0 {
		return f.v, true
	} else if f.i > 0 {
		return u.at(f.i - 1), true
	}
	return
}

// FloorIndex [SortedList.FloorIndex]
func (u *SplayList[E]) FloorIndex(v E) int {
	return u.FloorIndexFunc(u.of(v))
}

// FloorIndexFunc [SortedList.FloorIndexFunc]
func (u *SplayList[E]) FloorIndexFunc(q Query[E]) int {
	if f := u.search(q); f.c >= 0 {
		return f.i
	} else {
		return f.i - 1
	}
}

// Higher [SortedList.Higher]
func (u *SplayList[E]) Higher(v E) (E, bool) {
	return u.HigherFunc(u.of(v))
}

// HigherFunc [SortedList.HigherFunc]
func (u *SplayList[E]) HigherFunc(q Query[E]) (r E, ok bool) {
	if u.root == nil {
		return
	}
	if f := u.search(q); f.c < 0 {
		return f.v, true
	} else if f.i+1 < u.root.sz {
		return u.at(f.i + 1), true
	}
	return
}

// HigherIndex [SortedList.HigherIndex]
func (u *SplayList[E]) HigherIndex(v E) int {
	return u.HigherIndexFunc(u.of(v))
}

// HigherIndexFunc [SortedList.HigherIndexFunc]
func (u *SplayList[E]) HigherIndexFunc(q Query[E]) int {
	if f := u.search(q); f.c < 0 {
		return f.i
	} else {
		return f.i + 1
	}
}

// Ceiling [SortedList.Ceiling]
func (u *SplayList[E]) Ceiling(v E) (E, bool) {
	return u.CeilingFunc(u.of(v))
}

// CeilingFunc [SortedList.CeilingFunc]
func (u *SplayList[E]) CeilingFunc(q Query[E]) (r E, ok bool) {
	if u.root == nil {
		return
	}
	if f := u.search(q); f.c <= 0 {
		return f.v, true
	} else if f.i+1 < u.root.sz {
		return u.at(f.i + 1), true
	}
	return
}

// CeilingIndex [SortedList.CeilingIndex]
func (u *SplayList[E]) CeilingIndex(v E) int {
	return u.CeilingIndexFunc(u.of(v))
}

// CeilingIndexFunc [SortedList.CeilingIndexFunc]
func (u *SplayList[E]) CeilingIndexFunc(q Query[E]) int {
	if f := u.search(q); f.c <= 0 {
		return f.i
	} else {
		return f.i + 1
	}
}
