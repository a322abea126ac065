package simplevector

// Utilization returns the ratio of live elements to allocated slots (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Bytes returns the size of the allocation in bytes.
func (v *Vector[T]) Bytes() int {
	return bytesFor[T](v.Capacity())
}

// Metrics returns a snapshot of vector statistics.
//
// Reallocations and ElementMoves accumulate over the lifetime of the Vector
// value they were counted on: Clone and Move start from zero, while Swap,
// Assign and MoveAssign leave each side's counters where they were.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Size:          v.size,
		Capacity:      v.Capacity(),
		Bytes:         v.Bytes(),
		Reallocations: v.reallocs,
		ElementMoves:  v.moves,
		Utilization:   v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Size          int     // Live elements
	Capacity      int     // Allocated slots
	Bytes         int     // Bytes held by the allocation
	Reallocations int     // Allocations adopted by growth
	ElementMoves  int     // Elements relocated by growth
	Utilization   float64 // Ratio of Size to Capacity (0.0-1.0)
}
