package simplevector

import (
	"math/bits"
	"testing"
)

func TestPushBackGrowth(t *testing.T) {
	v := New[int]()
	wantCaps := []int{1, 2, 4, 8, 8, 8, 8, 16, 16}

	for i, wantCap := range wantCaps {
		v.PushBack(i)
		if v.Size() != i+1 {
			t.Errorf("push %d: Size() = %d, want %d", i, v.Size(), i+1)
		}
		if v.Capacity() != wantCap {
			t.Errorf("push %d: Capacity() = %d, want %d", i, v.Capacity(), wantCap)
		}
	}
	checkElems(t, v, 0, 1, 2, 3, 4, 5, 6, 7, 8)
}

func TestPushBackAmortized(t *testing.T) {
	const n = 10000
	v := New[int]()
	for i := 0; i < n; i++ {
		v.PushBack(i)
		if c := v.Capacity(); bits.OnesCount(uint(c)) != 1 {
			t.Fatalf("push %d: Capacity() = %d, want a power of two", i, c)
		}
		if v.Size() > v.Capacity() {
			t.Fatalf("push %d: Size() %d exceeds Capacity() %d", i, v.Size(), v.Capacity())
		}
	}

	m := v.Metrics()
	if m.ElementMoves >= 2*n {
		t.Errorf("ElementMoves = %d over %d pushes, want < %d", m.ElementMoves, n, 2*n)
	}
	if m.Reallocations > bits.Len(uint(n))+2 {
		t.Errorf("Reallocations = %d over %d pushes", m.Reallocations, n)
	}
}

func TestPushBackOntoLiteral(t *testing.T) {
	v := Of(1, 2, 3)
	v.PushBack(4)

	checkElems(t, v, 1, 2, 3, 4)
	if v.Capacity() < 4 {
		t.Errorf("Capacity() = %d, want >= 4", v.Capacity())
	}
}

func TestPushBackWithinReserve(t *testing.T) {
	v := NewReserved[string](Reserve(4))
	v.PushBack("a")
	v.PushBack("b")
	v.PushBack("c")
	if v.Capacity() != 4 || v.Metrics().Reallocations != 0 {
		t.Errorf("Capacity() = %d after 3 pushes into 4 reserved slots, want 4 with no reallocation", v.Capacity())
	}

	// the last free slot is kept as slack
	v.PushBack("d")
	if v.Capacity() != 8 {
		t.Errorf("Capacity() = %d after filling reserve, want 8", v.Capacity())
	}
	checkElems(t, v, "a", "b", "c", "d")
}

func TestInsert(t *testing.T) {
	t.Run("grows when full", func(t *testing.T) {
		v := Of(1, 2, 4)
		it := v.Insert(v.Begin().Add(2), 3)

		checkElems(t, v, 1, 2, 3, 4)
		if v.Capacity() != 6 {
			t.Errorf("Capacity() = %d, want 6", v.Capacity())
		}
		if it.Offset() != 2 || it.Value() != 3 {
			t.Errorf("Insert returned offset %d value %d, want 2, 3", it.Offset(), it.Value())
		}
	})

	t.Run("front without growth", func(t *testing.T) {
		v := NewReserved[int](Reserve(8))
		v.PushBack(1)
		v.PushBack(2)
		v.PushBack(3)

		it := v.Insert(v.Begin(), 0)
		checkElems(t, v, 0, 1, 2, 3)
		if v.Capacity() != 8 {
			t.Errorf("Capacity() = %d, want 8", v.Capacity())
		}
		if !it.Equal(v.Begin()) {
			t.Errorf("Insert returned offset %d, want 0", it.Offset())
		}
	})

	t.Run("before last", func(t *testing.T) {
		v := Of("a", "c")
		v.Insert(v.End().Prev(), "b")
		checkElems(t, v, "a", "b", "c")
	})
}

func TestInsertContractViolations(t *testing.T) {
	other := Of(1, 2, 3)
	tests := []struct {
		name   string
		insert func()
	}{
		{"at end", func() {
			v := Of(1, 2)
			v.Insert(v.End(), 3)
		}},
		{"into empty", func() {
			v := New[int]()
			v.Insert(v.Begin(), 1)
		}},
		{"before begin", func() {
			v := Of(1, 2)
			v.Insert(v.Begin().Prev(), 0)
		}},
		{"foreign iterator", func() {
			v := Of(1, 2)
			v.Insert(other.Begin(), 0)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("Expected panic on invalid insert position")
				}
			}()
			tt.insert()
		})
	}
}

func TestErase(t *testing.T) {
	v := Of(1, 2, 3, 4)

	it := v.Erase(v.Begin().Add(1))
	checkElems(t, v, 1, 3, 4)
	if it.Value() != 3 {
		t.Errorf("Erase returned iterator at %d, want 3", it.Value())
	}

	it = v.Erase(v.End().Prev())
	checkElems(t, v, 1, 3)
	if !it.Equal(v.End()) {
		t.Errorf("Erase of last element returned offset %d, want End()", it.Offset())
	}

	v.Erase(v.Begin())
	v.Erase(v.Begin())
	if !v.IsEmpty() || v.Capacity() != 4 {
		t.Errorf("after erasing all size = %d, cap = %d, want 0, 4", v.Size(), v.Capacity())
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on Erase(End())")
		}
	}()
	v.Erase(v.End())
}

func TestInsertEraseInverse(t *testing.T) {
	for pos := 0; pos < 3; pos++ {
		v := Of(1, 2, 3)
		orig := v.Get(pos)

		ins := v.Insert(v.Begin().Add(pos), 99)
		got := v.Erase(ins)

		checkElems(t, v, 1, 2, 3)
		if got.Offset() != pos || got.Value() != orig {
			t.Errorf("pos %d: Erase(Insert()) at offset %d value %d, want %d, %d",
				pos, got.Offset(), got.Value(), pos, orig)
		}
	}
}

func TestPopBack(t *testing.T) {
	v := Of(1, 2, 3)
	v.PopBack()
	checkElems(t, v, 1, 2)
	if v.Capacity() != 3 {
		t.Errorf("Capacity after PopBack() = %d, want 3", v.Capacity())
	}

	v.PopBack()
	v.PopBack()
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on PopBack of empty vector")
		}
	}()
	v.PopBack()
}

func TestSwap(t *testing.T) {
	a := Of(1, 2)
	b := Of(3, 4, 5)
	b.Reserve(10)
	pa, pb := a.Index(0), b.Index(0)

	a.Swap(b)

	checkElems(t, a, 3, 4, 5)
	checkElems(t, b, 1, 2)
	if a.Capacity() != 10 || b.Capacity() != 2 {
		t.Errorf("caps after Swap = (%d, %d), want (10, 2)", a.Capacity(), b.Capacity())
	}
	if a.Index(0) != pb || b.Index(0) != pa {
		t.Error("Swap copied elements instead of exchanging allocations")
	}
}
