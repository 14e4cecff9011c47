package vector

// Vector is a contiguous growable sequence of T.
//
// The zero value is an empty vector with no backing buffer and is ready to
// use. The backing buffer's length is the capacity; the logical size is
// tracked separately so that slots in [size, capacity) remain raw storage.
type Vector[T any] struct {
	sz  int
	buf []T // len(buf) is the capacity; nil exactly when capacity is 0
}

// New returns an empty vector with size 0, capacity 0 and no buffer.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithCapacity returns an empty vector whose buffer already holds n slots,
// so the first n appends never reallocate. Values of n <= 0 are treated as 0.
//
// The n slots are raw storage in the container model: unspecified until
// written and never read before then. (Go zero-fills the allocation, see the
// package note on initialization.)
func WithCapacity[T any](n int) *Vector[T] {
	if n <= 0 {
		return &Vector[T]{}
	}
	return &Vector[T]{buf: make([]T, n)}
}

// Of returns a vector populated with vs in order. Size and capacity both
// equal len(vs). The variadic slice is copied, not adopted.
func Of[T any](vs ...T) *Vector[T] {
	if len(vs) == 0 {
		return &Vector[T]{}
	}
	buf := make([]T, len(vs))
	copy(buf, vs)
	return &Vector[T]{sz: len(vs), buf: buf}
}

// Clone returns a deep copy. The copy's capacity equals the source's
// capacity, not merely its size, and the buffers are independent.
func (v *Vector[T]) Clone() *Vector[T] {
	if v.buf == nil {
		return &Vector[T]{}
	}
	buf := make([]T, len(v.buf))
	copy(buf, v.buf[:v.sz])
	return &Vector[T]{sz: v.sz, buf: buf}
}

// Assign replaces v's contents with a copy of other, by building the copy
// first and then exchanging internal state with it. The displaced buffer is
// released when the temporary is collected, so v.Assign(v) is safe and a
// no-op in effect.
func (v *Vector[T]) Assign(other *Vector[T]) {
	tmp := other.Clone()
	v.sz, tmp.sz = tmp.sz, v.sz
	v.buf, tmp.buf = tmp.buf, v.buf
}

// Len returns the count of logically live elements.
func (v *Vector[T]) Len() int {
	return v.sz
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return len(v.buf)
}

// IsEmpty reports whether the vector holds no live elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.sz == 0
}

// Clear drops all live elements by setting the size to 0. The buffer and
// capacity are retained for reuse and the slot contents are left in place.
func (v *Vector[T]) Clear() {
	v.sz = 0
}
