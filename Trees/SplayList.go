package Trees

import (
	"cmp"
	"reflect"

	"golang.org/x/exp/constraints"
)

// SplayList is a SortedList backed by a splay tree in which every node also
// counts its subtree, so both by-index and by-value operations are amortized
// O(log n). Splaying is done top-down in a single pass, and the counts along
// the two spines it reassembles are repaired afterwards by walking just those
// paths.
// Because of splaying, accessing an index or value makes the indexes and values
// near it cheaper to access next.
// Equal elements can't be stored together: inserting an element equal to a
// stored one is rejected.
// The zero value is not usable, create one with New or NewFunc.
type SplayList[E any] struct {
	root *node[E]
	cmp  func(a, b E) int
}

var _ SortedList[int] = (*SplayList[int])(nil)

// New returns an empty SplayList in the natural order of E.
func New[E constraints.Ordered]() *SplayList[E] {
	return &SplayList[E]{cmp: cmp.Compare[E]}
}

// NewFunc returns an empty SplayList ordered by cmp, which must be a strict weak
// ordering returning a negative number when a<b, 0 when a==b and a positive
// number when a>b.
func NewFunc[E any](cmp func(a, b E) int) *SplayList[E] {
	return &SplayList[E]{cmp: cmp}
}

// From builds a SplayList from vs in natural order by inserting them one by one.
func From[E constraints.Ordered](vs ...E) *SplayList[E] {
	u := New[E]()
	u.InsertAll(vs...)
	return u
}

// Size returns the size of the list.
// Time: O(1); Space: O(1)
func (u *SplayList[E]) Size() int {
	return u.root.size()
}

func (u *SplayList[E]) inRange(index int) error {
	if index < 0 || index >= u.root.size() {
		return &IndexOutOfRangeError{index, u.root.size()}
	}
	return nil
}

// Get [SortedList.Get]. The element is splayed to the root.
// Time: amortized O(log n)
func (u *SplayList[E]) Get(index int) (v E, err error) {
	if err = u.inRange(index); err == nil {
		u.splayAt(index)
		v = u.root.v
	}
	return
}

// Peek [SortedList.Peek]
// Time: O(D); Space: O(1)
func (u *SplayList[E]) Peek(index int) (v E, err error) {
	if err = u.inRange(index); err == nil {
		v = u.peek(index)
	}
	return
}

// at is Get for an index already known to be in range.
func (u *SplayList[E]) at(index int) E {
	u.splayAt(index)
	return u.root.v
}

// First [SortedList.First]
func (u *SplayList[E]) First() (v E, ok bool) {
	if ok = u.root != nil; ok {
		v = u.at(0)
	}
	return
}

// Last [SortedList.Last]
func (u *SplayList[E]) Last() (v E, ok bool) {
	if ok = u.root != nil; ok {
		v = u.at(u.root.sz - 1)
	}
	return
}

// Insert [SortedList.Insert]
// Time: amortized O(log n)
func (u *SplayList[E]) Insert(v E) bool {
	if isNil(v) {
		panic(&InvalidArgumentError{"Insert"})
	}
	defer u.debugCheck()
	if u.root == nil {
		u.root = &node[E]{v: v, sz: 1}
		return true
	}
	u.splayBy(u.of(v))
	c := u.cmp(v, u.root.v)
	if c == 0 {
		return false
	}
	// after splaying, the old root keeps at most one child on v's side; it
	// moves over to n.
	o := u.root
	n := &node[E]{v: v, sz: o.sz + 1}
	if c < 0 {
		n.r = o
		if o.l != nil {
			o.sz -= o.l.sz
			n.l, o.l = o.l, nil
		}
	} else {
		n.l = o
		if o.r != nil {
			o.sz -= o.r.sz
			n.r, o.r = o.r, nil
		}
	}
	u.root = n
	return true
}

// InsertAll [SortedList.InsertAll]
func (u *SplayList[E]) InsertAll(vs ...E) bool {
	m := false
	for _, v := range vs {
		m = u.Insert(v) || m
	}
	return m
}

// detachRoot removes the root after it was splayed there by reSplay's target.
// The left subtree is splayed again with the same target, which now addresses
// its maximum, and the right subtree is hung under that maximum.
func (u *SplayList[E]) detachRoot(reSplay func()) {
	if u.root.l == nil {
		u.root = u.root.r
		return
	}
	t := u.root.r
	u.root = u.root.l
	reSplay()
	u.root.r = t
	u.root.sz += t.size()
}

// RemoveAt [SortedList.RemoveAt]
// Time: amortized O(log n)
func (u *SplayList[E]) RemoveAt(index int) (v E, err error) {
	if err = u.inRange(index); err != nil {
		return
	}
	defer u.debugCheck()
	u.splayAt(index)
	v = u.root.v
	u.detachRoot(func() { u.splayAt(index) })
	return
}

// Remove [SortedList.Remove]. Panics with InvalidArgumentError if v is nil.
// Time: amortized O(log n)
func (u *SplayList[E]) Remove(v E) bool {
	if isNil(v) {
		panic(&InvalidArgumentError{"Remove"})
	}
	if u.root == nil {
		return false
	}
	defer u.debugCheck()
	q := u.of(v)
	u.splayBy(q)
	if q(u.root.v) != 0 {
		return false
	}
	u.detachRoot(func() { u.splayBy(q) })
	return true
}

// Clear the list. The nodes are left to the garbage collector.
// Time: O(1)
func (u *SplayList[E]) Clear() {
	u.root = nil
}

// Contains [SortedList.Contains]. Doesn't splay. A nil v is never contained.
func (u *SplayList[E]) Contains(v E) bool {
	return u.root != nil && !isNil(v) && u.search(u.of(v)).c == 0
}

// IndexOf [SortedList.IndexOf]. Doesn't splay. A nil v has index -1.
func (u *SplayList[E]) IndexOf(v E) int {
	if isNil(v) {
		return -1
	}
	return u.IndexOfFunc(u.of(v))
}

// IndexOfFunc [SortedList.IndexOfFunc]. Doesn't splay.
func (u *SplayList[E]) IndexOfFunc(q Query[E]) int {
	if f := u.search(q); f.c == 0 {
		return f.i
	}
	return -1
}

// Add [SortedList.Add]
func (u *SplayList[E]) Add(E) error {
	return &UnsupportedOperationError{"Add"}
}

// AddAt [SortedList.AddAt]
func (u *SplayList[E]) AddAt(int, E) error {
	return &UnsupportedOperationError{"AddAt"}
}

// AddAll [SortedList.AddAll]
func (u *SplayList[E]) AddAll(...E) error {
	return &UnsupportedOperationError{"AddAll"}
}

// isNil reports whether v is a nil interface, pointer, map, slice, func or chan.
func isNil[E any](v E) bool {
	rv := reflect.ValueOf(any(v))
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
