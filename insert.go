package vector

// cursorIndex translates pos into an element index by its distance from
// CBegin. ok is false when pos references a different buffer than v's, or a
// slot before the first.
func (v *Vector[T]) cursorIndex(pos ConstIterator[T]) (int, bool) {
	if !sameBuffer(pos.buf, v.buf) {
		return 0, false
	}
	d := pos.Sub(v.CBegin())
	return d, d >= 0
}

// Insert places val at the slot pos references, shifting that slot and
// everything after it one to the right. pos must lie in [CBegin, CEnd];
// otherwise Insert returns ErrIteratorOutOfBounds and changes nothing.
//
// When the buffer is full it grows first, by the same step as PushBack,
// invalidating all previously issued cursors including pos itself - pos is
// consumed before the growth. The returned cursor references the inserted
// element in the current buffer.
func (v *Vector[T]) Insert(pos ConstIterator[T], val T) (Iterator[T], error) {
	d, ok := v.cursorIndex(pos)
	if !ok || d > v.sz {
		return Iterator[T]{}, ErrIteratorOutOfBounds
	}
	if v.sz >= len(v.buf) {
		v.reallocate(grownCapacity(len(v.buf)))
	}
	// Shift from the high end down so no source slot is overwritten before
	// it is copied.
	for i := v.sz; i > d; i-- {
		v.buf[i] = v.buf[i-1]
	}
	v.buf[d] = val
	v.sz++
	return Iterator[T]{buf: v.buf, pos: d}, nil
}

// Erase removes the element pos references, shifting everything after it
// one to the left. pos must lie in [CBegin, CEnd); otherwise - including on
// an empty vector - Erase returns ErrIteratorOutOfBounds and changes
// nothing.
//
// The returned cursor references the element that followed the erased one,
// or equals End when the last element was erased. The vacated slot at the
// old size keeps its shifted-out content.
func (v *Vector[T]) Erase(pos ConstIterator[T]) (Iterator[T], error) {
	d, ok := v.cursorIndex(pos)
	if !ok || d >= v.sz {
		return Iterator[T]{}, ErrIteratorOutOfBounds
	}
	for i := d; i < v.sz-1; i++ {
		v.buf[i] = v.buf[i+1]
	}
	v.sz--
	return Iterator[T]{buf: v.buf, pos: d}, nil
}
