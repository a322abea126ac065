package simplevector

// PushBack appends value.
//
// The value is placed in place only while more than one spare slot remains;
// otherwise capacity doubles (or becomes 1 from empty) first. Doubling keeps
// a run of N pushes at O(N) element moves.
func (v *Vector[T]) PushBack(value T) {
	if v.size+1 >= v.Capacity() {
		v.Reserve(max(1, 2*v.Capacity()))
	}
	*v.buf.Get(v.size) = value
	v.size++
}

// Insert places value before pos and returns an iterator to it.
// pos must satisfy Begin() <= pos < End() for this vector; appending at
// End() is PushBack's job. Existing iterators are invalidated.
func (v *Vector[T]) Insert(pos Iterator[T], value T) Iterator[T] {
	i := v.offsetOf(pos)
	if v.size == v.Capacity() {
		v.Reserve(max(1, 2*v.Capacity()))
	}
	s := v.buf.Slots()
	copy(s[i+1:v.size+1], s[i:v.size])
	s[i] = value
	v.size++
	return v.iterAt(i)
}

// PopBack removes the last element. Calling it on an empty vector is a
// contract violation and panics.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("simplevector: PopBack on empty vector")
	}
	v.size--
	var zero T
	*v.buf.Get(v.size) = zero
}

// Erase removes the element at pos and returns an iterator to the element
// that followed it, or End() if pos was the last element.
// pos must satisfy Begin() <= pos < End() for this vector.
func (v *Vector[T]) Erase(pos Iterator[T]) Iterator[T] {
	i := v.offsetOf(pos)
	s := v.buf.Slots()
	copy(s[i:v.size-1], s[i+1:v.size])
	v.size--
	var zero T
	s[v.size] = zero
	return v.iterAt(i)
}

// Swap exchanges the contents of v and other in O(1). No element is copied.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
}

// offsetOf validates that pos is a dereferenceable position of v.
func (v *Vector[T]) offsetOf(pos Iterator[T]) int {
	if !sameAllocation(pos.slots, v.buf.Slots()) {
		panic("simplevector: iterator does not belong to this vector")
	}
	if pos.off < 0 || pos.off >= v.size {
		panic("simplevector: iterator out of range")
	}
	return pos.off
}
