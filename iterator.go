package simplevector

import (
	"iter"
	"unsafe"
)

// Iterator is a random-access position within a vector's allocation.
// It behaves like a pointer: any reallocation or shift of the vector
// (Reserve, growth in Resize/PushBack/Insert, Insert, Erase, Clear)
// invalidates it, and using it afterwards is a contract violation.
type Iterator[T any] struct {
	slots []T // allocation the iterator was taken from
	off   int
}

// Ptr returns a pointer to the element at the iterator.
func (it Iterator[T]) Ptr() *T {
	return &it.slots[it.off]
}

// Value returns the element at the iterator.
func (it Iterator[T]) Value() T {
	return it.slots[it.off]
}

// Set overwrites the element at the iterator.
func (it Iterator[T]) Set(value T) {
	it.slots[it.off] = value
}

// Next returns the iterator one position forward.
func (it Iterator[T]) Next() Iterator[T] {
	it.off++
	return it
}

// Prev returns the iterator one position back.
func (it Iterator[T]) Prev() Iterator[T] {
	it.off--
	return it
}

// Add returns the iterator moved by n positions.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.off += n
	return it
}

// Offset returns the position of the iterator relative to Begin().
func (it Iterator[T]) Offset() int {
	return it.off
}

// Distance returns it - other. Both must come from the same allocation.
func (it Iterator[T]) Distance(other Iterator[T]) int {
	return it.off - other.off
}

// Equal reports whether it and other refer to the same position of the
// same allocation.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.off == other.off && sameAllocation(it.slots, other.slots)
}

// Less reports whether it precedes other.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.off < other.off
}

// Const returns a read-only iterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it: it}
}

// ConstIterator is an Iterator that cannot modify the element it refers to.
type ConstIterator[T any] struct {
	it Iterator[T]
}

// Value returns the element at the iterator.
func (c ConstIterator[T]) Value() T {
	return c.it.Value()
}

// Next returns the iterator one position forward.
func (c ConstIterator[T]) Next() ConstIterator[T] {
	return c.it.Next().Const()
}

// Prev returns the iterator one position back.
func (c ConstIterator[T]) Prev() ConstIterator[T] {
	return c.it.Prev().Const()
}

// Add returns the iterator moved by n positions.
func (c ConstIterator[T]) Add(n int) ConstIterator[T] {
	return c.it.Add(n).Const()
}

// Offset returns the position of the iterator relative to CBegin().
func (c ConstIterator[T]) Offset() int {
	return c.it.off
}

// Distance returns c - other.
func (c ConstIterator[T]) Distance(other ConstIterator[T]) int {
	return c.it.Distance(other.it)
}

// Equal reports whether c and other refer to the same position.
func (c ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return c.it.Equal(other.it)
}

// Less reports whether c precedes other.
func (c ConstIterator[T]) Less(other ConstIterator[T]) bool {
	return c.it.Less(other.it)
}

// Begin returns an iterator to the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return v.iterAt(0)
}

// End returns an iterator one past the last element.
func (v *Vector[T]) End() Iterator[T] {
	return v.iterAt(v.size)
}

// CBegin returns a read-only iterator to the first element.
func (v *Vector[T]) CBegin() ConstIterator[T] {
	return v.Begin().Const()
}

// CEnd returns a read-only iterator one past the last element.
func (v *Vector[T]) CEnd() ConstIterator[T] {
	return v.End().Const()
}

// All returns an iterator over index/value pairs of the live elements.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.buf.Get(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.buf.Get(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs from last to first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, *v.buf.Get(i)) {
				return
			}
		}
	}
}

func (v *Vector[T]) iterAt(off int) Iterator[T] {
	return Iterator[T]{slots: v.buf.Slots(), off: off}
}

// sameAllocation reports whether a and b share a backing allocation.
func sameAllocation[T any](a, b []T) bool {
	return unsafe.SliceData(a) == unsafe.SliceData(b)
}
