package vector

/*

# A contiguous growable sequence container

This package provides Vector[T]: a generic, contiguous, growable sequence with
value storage, amortized-cost append, bounds-checked random access, positional
insert/erase, and a forward cursor protocol with mutable and read-only
variants.

It follows the `go-merklelog` style:

- small, composable operations
- explicit index arithmetic on a single backing buffer
- a burden of knowledge on the caller for hot paths

## Size and capacity

A vector tracks a logical size and an allocated capacity, with
`0 <= Len() <= Cap()` after every operation. Slots in `[Len(), Cap())` are
raw storage: they may hold stale values from earlier operations and are never
read by any query. Clear keeps the buffer and capacity for reuse; only
ShrinkToFit gives storage back.

Growth is funneled through one internal reallocation routine. When an append
or insert finds the buffer full, capacity grows to

	cap + cap/2 + 1

The +1 term guarantees progress from capacity 0, so the very first append
always succeeds without a special case.

Note on initialization: the Go allocator zero-fills new buffers, so slots past
the logical size start as zero values rather than the uninitialized storage a
systems allocator would hand back. The logical model is unchanged - those
slots are unspecified and never read - but the zero-fill cost on allocation
cannot be avoided in Go.

## Cursors and invalidation

Begin/End (and CBegin/CEnd for the read-only kind) bound the live range. A
cursor is a raw location: a reference into the backing buffer plus an offset.
It holds no owning reference to the vector and records no generation or
revision.

Consequently invalidation is NOT detected. Any reallocation (growth,
Reserve, ShrinkToFit) invalidates every previously issued cursor and element
reference; Insert and Erase additionally invalidate cursors at or after the
edited slot even when no reallocation happens, because elements shift.
Using a stale cursor is undefined: it may observe stale storage, observe the
wrong element, or panic. Staying inside the valid window is the caller's
responsibility.

Mutable and read-only cursors compare equal across kinds, and a mutable
cursor widens to a read-only one via Const. There is no narrowing in the
other direction. Distance (Sub) is defined on the read-only kind only.

## Concurrency

None. The container performs no internal locking and is not safe for
concurrent mutation, nor concurrent read-while-mutate. Callers that share a
vector across goroutines own the coordination.

*/
