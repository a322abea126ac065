package simplevector

import "fmt"

// Vector is a dynamic array of T. Not goroutine-safe.
//
// Slots [0, Size()) hold live elements. Slots [Size(), Capacity()) are
// allocated but their contents are unspecified. The zero value is an empty
// vector with no allocation.
type Vector[T any] struct {
	buf  Buffer[T]
	size int

	// growth accounting, see Metrics
	reallocs int
	moves    int
}

// ReserveProxy carries a capacity request for NewReserved.
// It keeps "reserve n slots" from reading like "construct n elements".
type ReserveProxy struct {
	capacity int
}

// Reserve wraps capacity for NewReserved.
func Reserve(capacity int) ReserveProxy {
	return ReserveProxy{capacity: capacity}
}

// Capacity returns the wrapped capacity request.
func (r ReserveProxy) Capacity() int {
	return r.capacity
}

func newVector[T any](capacity, size int) *Vector[T] {
	return &Vector[T]{buf: *NewBuffer[T](capacity), size: size}
}

// New returns an empty vector. No allocation is performed.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSize returns a vector of n zero values with capacity n.
func NewSize[T any](n int) *Vector[T] {
	var zero T
	return NewFilled(n, zero)
}

// NewFilled returns a vector of n copies of value with capacity n.
func NewFilled[T any](n int, value T) *Vector[T] {
	v := newVector[T](n, n)
	fillSlots(v.live(), value)
	return v
}

// Of returns a vector holding values in order, with size and capacity
// equal to len(values).
func Of[T any](values ...T) *Vector[T] {
	v := newVector[T](len(values), len(values))
	copy(v.live(), values)
	return v
}

// NewReserved returns an empty vector whose capacity is allocated up front.
func NewReserved[T any](r ReserveProxy) *Vector[T] {
	return newVector[T](r.capacity, 0)
}

// Clone returns a copy of v in a fresh allocation of the same capacity.
// Elements are copied by assignment; use CloneFunc when T holds references
// that must not be shared.
func (v *Vector[T]) Clone() *Vector[T] {
	c := newVector[T](v.Capacity(), v.size)
	copy(c.live(), v.live())
	return c
}

// CloneFunc is like Clone but copies each live element through clone.
func (v *Vector[T]) CloneFunc(clone func(T) T) *Vector[T] {
	c := newVector[T](v.Capacity(), v.size)
	dst := c.live()
	for i, x := range v.live() {
		dst[i] = clone(x)
	}
	return c
}

// Move transfers v's allocation and elements to a new vector in O(1).
// v is left empty with capacity 0 and remains usable.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{buf: v.buf.Take(), size: v.size}
	v.size = 0
	return m
}

// Assign replaces the contents of v with a copy of rhs.
// The copy is built before v is touched, so a failed allocation leaves v
// unchanged. Assigning a vector to itself does nothing.
func (v *Vector[T]) Assign(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	tmp := rhs.Clone()
	v.Swap(tmp)
}

// MoveAssign releases v's allocation and takes over rhs's in O(1).
// rhs is left empty with capacity 0. Assigning a vector to itself does nothing.
func (v *Vector[T]) MoveAssign(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	v.buf.Release()
	v.buf = rhs.buf.Take()
	v.size = rhs.size
	rhs.size = 0
}

// Index returns a pointer to element i without checking it against Size.
// The caller must ensure 0 <= i < Size(); anything else is a contract
// violation.
func (v *Vector[T]) Index(i int) *T {
	return v.buf.Get(i)
}

// Get returns a copy of element i. Like Index, i is not checked against Size.
func (v *Vector[T]) Get(i int) T {
	return *v.buf.Get(i)
}

// At returns a pointer to element i, or an *OutOfRangeError if i is not in
// [0, Size()).
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, &OutOfRangeError{Index: i, Size: v.size}
	}
	return v.buf.Get(i), nil
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of allocated slots.
func (v *Vector[T]) Capacity() int {
	return v.buf.Cap()
}

// IsEmpty reports whether Size() == 0.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Clear truncates v to zero elements. Capacity is unchanged.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Resize sets the number of live elements to newSize.
//
// Shrinking only truncates. Growing within capacity zeroes the newly exposed
// slots. Growing to newSize >= Capacity() reallocates to
// max(newSize, 2*Capacity()) slots.
func (v *Vector[T]) Resize(newSize int) {
	if newSize < 0 {
		panic("simplevector: negative size")
	}
	switch {
	case newSize <= v.size:
		v.size = newSize
	case newSize < v.Capacity():
		clear(v.buf.Slots()[v.size:newSize])
		v.size = newSize
	default:
		// the fresh allocation is already zeroed past the moved elements
		v.regrow(max(newSize, 2*v.Capacity()))
		v.size = newSize
	}
}

// Reserve grows the allocation to exactly newCapacity slots when newCapacity
// exceeds Capacity(). Size is unchanged. Smaller requests do nothing.
func (v *Vector[T]) Reserve(newCapacity int) {
	if newCapacity > v.Capacity() {
		v.regrow(newCapacity)
	}
}

// Slice returns the live elements as a slice aliasing v's storage.
// It is invalidated by the same operations that invalidate iterators.
func (v *Vector[T]) Slice() []T {
	return v.live()
}

// String formats the live elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.live())
}

// regrow moves the live elements into a new allocation of capacity slots
// and adopts it.
func (v *Vector[T]) regrow(capacity int) {
	nb := NewBuffer[T](capacity)
	v.moves += moveSlots(nb.Slots(), v.live())
	v.buf.Swap(nb)
	nb.Release()
	v.reallocs++
}

func (v *Vector[T]) live() []T {
	return v.buf.Slots()[:v.size]
}
