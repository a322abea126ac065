package simplevector

import (
	"math"
	"unsafe"
)

// maxAllocBytes bounds the byte size of a single slot allocation.
const maxAllocBytes = uintptr(math.MaxInt)

// allocSlots returns a fresh zeroed allocation of exactly n slots of T.
// n == 0 allocates nothing and returns nil. A negative n, or a request whose
// byte size does not fit in the address space, is a fatal allocation error.
func allocSlots[T any](n int) []T {
	if n < 0 {
		panic("simplevector: negative allocation size")
	}
	if n == 0 {
		return nil
	}
	var zero T
	elemSize := unsafe.Sizeof(zero)
	if elemSize > 0 && uintptr(n) > maxAllocBytes/elemSize {
		panic("simplevector: allocation size out of range")
	}
	return make([]T, n)
}

// fillSlots assigns value to every slot of s.
func fillSlots[T any](s []T, value T) {
	for i := range s {
		s[i] = value
	}
}

// moveSlots relocates src into the front of dst and zeroes src so the old
// allocation no longer keeps elements reachable. It returns the number of
// elements moved.
func moveSlots[T any](dst, src []T) int {
	n := copy(dst, src)
	clear(src[:n])
	return n
}

// bytesFor returns the number of bytes n slots of T occupy.
func bytesFor[T any](n int) int {
	var zero T
	return int(unsafe.Sizeof(zero)) * n
}
