package vector

import "errors"

var (
	// ErrEmpty is returned by PopBack when there is no element to remove.
	ErrEmpty = errors.New("vector: vector is empty")

	// ErrIndexOutOfBounds is returned by indexed access with an index at or
	// past the logical size.
	ErrIndexOutOfBounds = errors.New("vector: index out of bounds")

	// ErrIteratorOutOfBounds is returned by Insert and Erase when the cursor
	// does not lie in the operation's valid range for this vector.
	ErrIteratorOutOfBounds = errors.New("vector: iterator out of bounds")
)
