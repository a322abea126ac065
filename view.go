package simplevector

import "iter"

// View is a read-only handle on a vector. Nothing reachable through a View
// can modify the vector's elements.
type View[T any] struct {
	v *Vector[T]
}

// View returns a read-only handle on v.
func (v *Vector[T]) View() View[T] {
	return View[T]{v: v}
}

// Get returns a copy of element i without checking it against Size.
func (w View[T]) Get(i int) T {
	return w.v.Get(i)
}

// At returns a copy of element i, or an *OutOfRangeError if i is not in
// [0, Size()).
func (w View[T]) At(i int) (T, error) {
	p, err := w.v.At(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

func (w View[T]) Size() int { return w.v.Size() }
func (w View[T]) Capacity() int { return w.v.Capacity() }
func (w View[T]) IsEmpty() bool { return w.v.IsEmpty() }
func (w View[T]) CBegin() ConstIterator[T] { return w.v.CBegin() }
func (w View[T]) CEnd() ConstIterator[T] { return w.v.CEnd() }
func (w View[T]) All() iter.Seq2[int, T] { return w.v.All() }
func (w View[T]) Values() iter.Seq[T] { return w.v.Values() }

// Clone returns an independent mutable copy of the viewed vector.
func (w View[T]) Clone() *Vector[T] {
	return w.v.Clone()
}
