package simplevector

// Buffer exclusively owns a single contiguous allocation of slots.
// It tracks capacity only; how many slots hold meaningful values is the
// owner's business. The zero value is an empty buffer with no allocation.
type Buffer[T any] struct {
	slots []T
}

// NewBuffer allocates a buffer of exactly capacity slots.
// A capacity of 0 allocates nothing.
func NewBuffer[T any](capacity int) *Buffer[T] {
	return &Buffer[T]{slots: allocSlots[T](capacity)}
}

// Cap returns the number of slots owned by the buffer.
func (b *Buffer[T]) Cap() int {
	return len(b.slots)
}

// Get returns a pointer to slot i. Only i < Cap() is valid; nothing here
// knows which slots are live.
func (b *Buffer[T]) Get(i int) *T {
	return &b.slots[i]
}

// Slots returns every slot of the allocation.
// The returned slice aliases the buffer and is invalidated by Swap, Take and Release.
func (b *Buffer[T]) Slots() []T {
	return b.slots
}

// Swap exchanges the allocations of b and other in O(1).
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// Take transfers ownership of the allocation to the returned buffer.
// b is left empty with capacity 0.
func (b *Buffer[T]) Take() Buffer[T] {
	var out Buffer[T]
	out.Swap(b)
	return out
}

// Release drops the allocation. The buffer remains usable as an empty buffer.
func (b *Buffer[T]) Release() {
	b.slots = nil
}
