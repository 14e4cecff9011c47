package vector

// At returns the value at index i, or ErrIndexOutOfBounds when i does not
// address a live element.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.sz {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return v.buf[i], nil
}

// Ref returns a mutable reference to the slot at index i, or
// ErrIndexOutOfBounds when i does not address a live element.
//
// The reference points into the backing buffer and is invalidated by any
// reallocation, exactly like a cursor.
func (v *Vector[T]) Ref(i int) (*T, error) {
	if i < 0 || i >= v.sz {
		return nil, ErrIndexOutOfBounds
	}
	return &v.buf[i], nil
}

// Set overwrites the live element at index i, or returns
// ErrIndexOutOfBounds when i does not address one.
func (v *Vector[T]) Set(i int, val T) error {
	if i < 0 || i >= v.sz {
		return ErrIndexOutOfBounds
	}
	v.buf[i] = val
	return nil
}
