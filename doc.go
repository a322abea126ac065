// Package simplevector implements a generic dynamic array (vector) built on
// an explicitly owned slot buffer rather than on append.
//
// # Overview
//
// A Vector[T] owns exactly one Buffer[T], a single contiguous allocation of
// slots, and tracks how many of those slots hold live elements. Size and
// capacity are separate: slots [0, Size()) are live, slots
// [Size(), Capacity()) are allocated but hold unspecified values.
//
// # Basic Usage
//
//	v := simplevector.Of(1, 2, 3)
//	v.PushBack(4)             // [1 2 3 4]
//	p, err := v.At(10)        // err matches simplevector.ErrOutOfRange
//	*v.Index(0) = 10          // unchecked fast path
//
//	w := simplevector.NewReserved[string](simplevector.Reserve(64))
//	_ = w.Capacity()          // 64, Size() == 0
//
//	it := v.Insert(v.Begin().Add(1), 7)
//	v.Erase(it)
//
// # Growth
//
// Capacity never shrinks on its own. PushBack doubles capacity (starting at
// 1) as soon as at most one spare slot remains, Insert doubles it when the
// vector is full, Resize past capacity grows to max(newSize, 2*Capacity())
// and Reserve grows to exactly the requested capacity. A run of N pushes
// performs O(N) element moves in total.
//
// # Copy and Ownership Transfer
//
// Clone and Assign copy elements into a fresh allocation. Move and
// MoveAssign hand the allocation to another vector in O(1) and leave the
// source empty with capacity 0. Swap exchanges two vectors in O(1).
//
// # Contract Violations
//
// Index, Get, Insert, Erase and PopBack do not report misuse as errors.
// Out-of-range positions and PopBack on an empty vector panic or produce
// unspecified results, as raw slice indexing does. At is the checked
// accessor and returns an *OutOfRangeError instead.
//
// Iterators are invalidated by every operation that reallocates (Reserve,
// growth in Resize, PushBack and Insert) or shifts elements (Insert, Erase,
// Clear).
//
// # Thread Safety
//
// Vector is not goroutine-safe. Concurrent use of one vector requires
// external synchronization.
//
// # Metrics
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Reallocations: %d\n", m.Reallocations)
package simplevector
