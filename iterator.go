package vector

import "iter"

// Cursor is the comparison capability shared by Iterator and ConstIterator.
// It exposes the raw location a cursor references so the two kinds can be
// compared interchangeably; it is satisfied only by types in this package.
type Cursor[T any] interface {
	location() ([]T, int)
}

// Iterator is a mutable forward cursor into a vector's buffer.
//
// A cursor is a raw location only: the backing buffer plus an offset. It
// does not keep its vector alive in any logical sense and does not detect
// staleness; see the package documentation for the invalidation rules. The
// zero Iterator references the null location.
type Iterator[T any] struct {
	buf []T
	pos int
}

// ConstIterator is the read-only counterpart of Iterator. It is the only
// kind that supports Sub, and the kind Insert and Erase accept.
type ConstIterator[T any] struct {
	buf []T
	pos int
}

func (it Iterator[T]) location() ([]T, int)      { return it.buf, it.pos }
func (it ConstIterator[T]) location() ([]T, int) { return it.buf, it.pos }

// sameBuffer reports whether two buffers are the same allocation. Empty
// buffers all compare as the null location.
func sameBuffer[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return len(a) == 0 && len(b) == 0
	}
	return &a[0] == &b[0]
}

// Equal reports whether two cursors of either kind reference the same raw
// location.
func Equal[T any](a, b Cursor[T]) bool {
	abuf, apos := a.location()
	bbuf, bpos := b.location()
	return sameBuffer(abuf, bbuf) && apos == bpos
}

// Deref returns a mutable reference to the referenced slot. Dereferencing at
// or past End is undefined: it may yield stale storage or panic.
func (it Iterator[T]) Deref() *T {
	return &it.buf[it.pos]
}

// Next returns the cursor advanced by one slot.
func (it Iterator[T]) Next() Iterator[T] {
	it.pos++
	return it
}

// Inc advances the cursor in place and returns the location it had before
// the advance.
func (it *Iterator[T]) Inc() Iterator[T] {
	prev := *it
	it.pos++
	return prev
}

// Equal reports whether it and other reference the same raw location; other
// may be of either cursor kind.
func (it Iterator[T]) Equal(other Cursor[T]) bool {
	return Equal[T](it, other)
}

// Const widens the cursor to its read-only kind at the same location. There
// is no conversion in the other direction.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{buf: it.buf, pos: it.pos}
}

// Deref returns the value in the referenced slot. Dereferencing at or past
// CEnd is undefined: it may yield stale storage or panic.
func (it ConstIterator[T]) Deref() T {
	return it.buf[it.pos]
}

// Next returns the cursor advanced by one slot.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	it.pos++
	return it
}

// Inc advances the cursor in place and returns the location it had before
// the advance.
func (it *ConstIterator[T]) Inc() ConstIterator[T] {
	prev := *it
	it.pos++
	return prev
}

// Equal reports whether it and other reference the same raw location; other
// may be of either cursor kind.
func (it ConstIterator[T]) Equal(other Cursor[T]) bool {
	return Equal[T](it, other)
}

// Sub returns the signed slot offset from other to it. Both cursors must
// reference the same buffer; the result for cursors into different buffers
// is meaningless.
func (it ConstIterator[T]) Sub(other ConstIterator[T]) int {
	return it.pos - other.pos
}

// Begin returns a mutable cursor at the first live slot. Equal to End when
// the vector is empty.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{buf: v.buf}
}

// End returns a mutable cursor one past the last live slot. It bounds the
// live range and must not be dereferenced.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{buf: v.buf, pos: v.sz}
}

// CBegin returns a read-only cursor at the first live slot.
func (v *Vector[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{buf: v.buf}
}

// CEnd returns a read-only cursor one past the last live slot.
func (v *Vector[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{buf: v.buf, pos: v.sz}
}

// All returns a forward range-over-func view of the live elements, for
//
//	for i, val := range v.All() { ... }
//
// The usual invalidation rules apply: the vector must not be reallocated or
// edited during the traversal.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.sz; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}
