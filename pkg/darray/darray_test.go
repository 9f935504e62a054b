package darray

import (
	"testing"
)

func TestPushPop(t *testing.T) {
	var a Array[int]

	s := a.Push(3)
	if len(s) != 3 {
		t.Fatalf("Push(3): want 3 elements, got %d", len(s))
	}
	s[0], s[1], s[2] = 1, 2, 3
	if got := a.Len(); got != 3 {
		t.Errorf("Len: want: %d, got: %d", 3, got)
	}

	p := a.Pop(2)
	if len(p) != 2 || p[0] != 2 || p[1] != 3 {
		t.Errorf("Pop(2): want [2 3], got %v", p)
	}
	if got := a.Len(); got != 1 {
		t.Errorf("Len after Pop: want: %d, got: %d", 1, got)
	}
	if a.Pop(5) != nil {
		t.Errorf("Pop beyond length: want nil")
	}
}

func TestAt(t *testing.T) {
	var a Array[int]
	copy(a.Push(4), []int{10, 20, 30, 40})

	atTests := []struct {
		i    int
		want int
		ok   bool
	}{
		{0, 10, true},
		{3, 40, true},
		{4, 0, false},
		{-1, 40, true},
		{-4, 10, true},
		{-5, 0, false},
	}

	for _, tt := range atTests {
		e := a.At(tt.i)
		if (e != nil) != tt.ok {
			t.Errorf("At(%d): presence: want: %v, got: %v", tt.i, tt.ok, e != nil)
			continue
		}
		if tt.ok && *e != tt.want {
			t.Errorf("At(%d): want: %d, got: %d", tt.i, tt.want, *e)
		}
	}
}

func TestSetLenGrowth(t *testing.T) {
	var a Array[int]

	a.SetLen(1)
	c := cap(a.data)
	for i := 0; i < 100; i++ {
		a.SetLen(a.Len() + 1)
		if cap(a.data) < c {
			t.Fatalf("capacity shrank during growth: %d to %d", c, cap(a.data))
		}
		c = cap(a.data)
	}
	if got := a.Len(); got != 101 {
		t.Errorf("Len: want: %d, got: %d", 101, got)
	}

	// Shrinking then regrowing must expose zero values, not stale ones.
	*a.At(100) = 77
	a.SetLen(100)
	a.SetLen(101)
	if got := *a.At(100); got != 0 {
		t.Errorf("regrown element: want: %d, got: %d", 0, got)
	}
}

func TestSetCap(t *testing.T) {
	var a Array[int]
	copy(a.Push(5), []int{1, 2, 3, 4, 5})

	a.SetCap(3)
	if got := a.Len(); got != 3 {
		t.Errorf("Len after SetCap(3): want: %d, got: %d", 3, got)
	}
	if got := *a.At(2); got != 3 {
		t.Errorf("At(2) after SetCap: want: %d, got: %d", 3, got)
	}

	a.SetCap(0)
	if a.Len() != 0 || a.data != nil {
		t.Errorf("SetCap(0) did not release the storage")
	}
}

func TestSplice(t *testing.T) {
	var a Array[int]
	copy(a.Push(6), []int{1, 2, 3, 4, 5, 6})

	// Replace [3 4] with one zero-valued slot.
	ins := a.Splice(2, 2, 1)
	if len(ins) != 1 {
		t.Fatalf("Splice: want 1 inserted element, got %d", len(ins))
	}
	ins[0] = 99

	want := []int{1, 2, 99, 5, 6}
	if a.Len() != len(want) {
		t.Fatalf("Len after Splice: want: %d, got: %d", len(want), a.Len())
	}
	for i, w := range want {
		if got := *a.At(i); got != w {
			t.Errorf("At(%d) after Splice: want: %d, got: %d", i, w, got)
		}
	}

	// Pure insertion in the middle.
	copy(a.Splice(1, 0, 2), []int{7, 8})
	want = []int{1, 7, 8, 2, 99, 5, 6}
	for i, w := range want {
		if got := *a.At(i); got != w {
			t.Errorf("At(%d) after insertion: want: %d, got: %d", i, w, got)
		}
	}

	// Pure removal at the end, addressed negatively.
	a.Splice(-2, 2, 0)
	if got := a.Len(); got != 5 {
		t.Errorf("Len after removal: want: %d, got: %d", 5, got)
	}
	if got := *a.At(-1); got != 99 {
		t.Errorf("At(-1) after removal: want: %d, got: %d", 99, got)
	}
}

func TestRemoveSwap(t *testing.T) {
	var a Array[int]
	copy(a.Push(4), []int{1, 2, 3, 4})

	x, ok := a.RemoveSwap(1)
	if !ok || x != 2 {
		t.Errorf("RemoveSwap(1): want 2, got %d (%v)", x, ok)
	}
	if got := *a.At(1); got != 4 {
		t.Errorf("At(1) after RemoveSwap: want: %d, got: %d", 4, got)
	}
	if got := a.Len(); got != 3 {
		t.Errorf("Len after RemoveSwap: want: %d, got: %d", 3, got)
	}

	// Removing the last element swaps with itself.
	x, ok = a.RemoveSwap(-1)
	if !ok || x != 3 {
		t.Errorf("RemoveSwap(-1): want 3, got %d (%v)", x, ok)
	}
	if _, ok := a.RemoveSwap(10); ok {
		t.Errorf("RemoveSwap out of bounds: want failure")
	}
}

func TestSwap(t *testing.T) {
	var a Array[string]
	copy(a.Push(3), []string{"a", "b", "c"})

	a.Swap(0, -1)
	if *a.At(0) != "c" || *a.At(2) != "a" {
		t.Errorf("Swap(0, -1): got %v", a.Data())
	}
}
