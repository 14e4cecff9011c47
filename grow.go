package vector

// grownCapacity returns the next capacity step: cap + cap/2 + 1. The +1 term
// makes the step from 0 yield 1, so the first append never needs a special
// case, and rules out stagnation at any small capacity.
func grownCapacity(c int) int {
	return c + c/2 + 1
}

// reallocate replaces the backing buffer with one of n slots, preserving the
// first sz elements in order. It is the only place a buffer is allocated or
// released outside the constructors. Requests below the live size are
// ignored.
func (v *Vector[T]) reallocate(n int) {
	if n < v.sz {
		return
	}
	if n == 0 {
		v.buf = nil
		return
	}
	buf := make([]T, n)
	copy(buf, v.buf[:v.sz])
	v.buf = buf
}

// Reserve grows the capacity to exactly n when n exceeds the current
// capacity, preserving all live elements in order. Smaller values are a
// no-op; Reserve never shrinks.
func (v *Vector[T]) Reserve(n int) {
	if n > len(v.buf) {
		v.reallocate(n)
	}
}

// ShrinkToFit reallocates so that the capacity equals the size. A vector
// that is already tight is left untouched.
func (v *Vector[T]) ShrinkToFit() {
	if v.sz < len(v.buf) {
		v.reallocate(v.sz)
	}
}

// PushBack appends val, growing the buffer by grownCapacity when full.
// Growth invalidates all previously issued cursors and element references.
func (v *Vector[T]) PushBack(val T) {
	if v.sz >= len(v.buf) {
		v.reallocate(grownCapacity(len(v.buf)))
	}
	v.buf[v.sz] = val
	v.sz++
}

// PopBack removes the last live element. The slot's content is left in
// place; only the size changes. Returns ErrEmpty when there is nothing to
// remove, leaving the vector unchanged.
func (v *Vector[T]) PopBack() error {
	if v.sz == 0 {
		return ErrEmpty
	}
	v.sz--
	return nil
}
