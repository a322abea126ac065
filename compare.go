package simplevector

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Ordering compares vectors of T from two element primitives: Eq for
// equality and Lt for strict less-than. Every other relation is derived
// from those two:
//
//	NotEqual       = !Equal
//	LessOrEqual    = Less || Equal
//	Greater        = !LessOrEqual
//	GreaterOrEqual = !Less
type Ordering[T any] struct {
	Eq func(a, b T) bool
	Lt func(a, b T) bool
}

// Natural returns the Ordering given by the == and < operators.
func Natural[T constraints.Ordered]() Ordering[T] {
	return Ordering[T]{
		Eq: func(a, b T) bool { return a == b },
		Lt: func(a, b T) bool { return a < b },
	}
}

// Equal reports whether a and b have the same size and pairwise equal elements.
func (o Ordering[T]) Equal(a, b *Vector[T]) bool {
	return slices.EqualFunc(a.live(), b.live(), o.Eq)
}

// Less reports whether a sorts lexicographically before b.
// Only Lt is consulted; a proper prefix is less than the longer vector.
func (o Ordering[T]) Less(a, b *Vector[T]) bool {
	x, y := a.live(), b.live()
	for i := 0; i < len(x) && i < len(y); i++ {
		if o.Lt(x[i], y[i]) {
			return true
		}
		if o.Lt(y[i], x[i]) {
			return false
		}
	}
	return len(x) < len(y)
}

func (o Ordering[T]) NotEqual(a, b *Vector[T]) bool {
	return !o.Equal(a, b)
}

func (o Ordering[T]) LessOrEqual(a, b *Vector[T]) bool {
	return o.Less(a, b) || o.Equal(a, b)
}

func (o Ordering[T]) Greater(a, b *Vector[T]) bool {
	return !o.LessOrEqual(a, b)
}

func (o Ordering[T]) GreaterOrEqual(a, b *Vector[T]) bool {
	return !o.Less(a, b)
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.live(), b.live())
}

// NotEqual is !Equal.
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// Less reports whether a sorts lexicographically before b.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return Natural[T]().Less(a, b)
}

// LessOrEqual reports whether a is Less than or Equal to b.
func LessOrEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return Natural[T]().LessOrEqual(a, b)
}

// Greater reports whether a sorts lexicographically after b.
func Greater[T constraints.Ordered](a, b *Vector[T]) bool {
	return Natural[T]().Greater(a, b)
}

// GreaterOrEqual reports whether a is not Less than b.
func GreaterOrEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return Natural[T]().GreaterOrEqual(a, b)
}
