package Trees

import "iter"

// SortedList represents a random-access list that keeps its elements in
// ascending order. The index of an element is determined by the order, so
// there's no way to place an element at a chosen index.
// Receivers that has a bool as a second return value indicates whether the
// first return value is defined. For example, calling Lower on a value smaller
// than every element returns (x E, false), and x should not be used.
// Index variants of the navigation methods never fail; instead they return -1
// (Lower, Floor) or Size() (Higher, Ceiling) when there's no such element,
// which is also where the query would be inserted.
// Every method taking an element has a Func form taking a Query, which is
// compared against stored elements without building an element.
// Implementations are not safe for concurrent use, and most reads restructure
// the list, so even readers must be serialized.
type SortedList[E any] interface {
	//Size of the list.
	Size() int
	//Get the element at index. Fails with ErrOutOfRange unless 0<=index<Size().
	Get(index int) (E, error)
	//Peek is Get without any restructuring.
	Peek(index int) (E, error)
	//First element of the list.
	First() (E, bool)
	//Last element of the list.
	Last() (E, bool)

	//Insert v at its sorted position. Returns false if an equal element is
	//already stored. Panics with InvalidArgumentError if v is nil.
	Insert(v E) bool
	//InsertAll vs, returning true if any of them was inserted.
	InsertAll(vs ...E) bool
	//RemoveAt removes and returns the element at index.
	RemoveAt(index int) (E, error)
	//Remove the element equal to v, returning true if there was one.
	Remove(v E) bool
	//Clear the list.
	Clear()

	//Contains an element equal to v.
	Contains(v E) bool
	//IndexOf the element equal to v, or -1.
	IndexOf(v E) int
	//IndexOfFunc returns the index of the element matching q, or -1.
	IndexOfFunc(q Query[E]) int

	//Lower returns the greatest element less than v.
	Lower(v E) (E, bool)
	LowerFunc(q Query[E]) (E, bool)
	LowerIndex(v E) int
	LowerIndexFunc(q Query[E]) int
	//Floor returns the greatest element less than or equal to v.
	Floor(v E) (E, bool)
	FloorFunc(q Query[E]) (E, bool)
	FloorIndex(v E) int
	FloorIndexFunc(q Query[E]) int
	//Higher returns the smallest element greater than v.
	Higher(v E) (E, bool)
	HigherFunc(q Query[E]) (E, bool)
	HigherIndex(v E) int
	HigherIndexFunc(q Query[E]) int
	//Ceiling returns the smallest element greater than or equal to v.
	Ceiling(v E) (E, bool)
	CeilingFunc(q Query[E]) (E, bool)
	CeilingIndex(v E) int
	CeilingIndexFunc(q Query[E]) int

	//All yields the elements in ascending order. The list must not be
	//modified during the iteration.
	All() iter.Seq[E]
	//Backward yields the elements in descending order.
	Backward() iter.Seq[E]
	//InOrder returns a closure f acting like an iterator: val, valid=f().
	//val is meaningful only if valid is true. valid can't turn true after it
	//first became false.
	InOrder() func() (E, bool)
	//Values in ascending order.
	Values() []E

	//Add always fails with UnsupportedOperationError.
	Add(v E) error
	//AddAt always fails with UnsupportedOperationError.
	AddAt(index int, v E) error
	//AddAll always fails with UnsupportedOperationError.
	AddAll(vs ...E) error

	//CheckInvariants returns a CorruptError describing the first broken
	//structural property, or nil.
	CheckInvariants() error
}
