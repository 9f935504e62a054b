// Package heap provides a generic binary min-heap ordered by a
// comparison function supplied at construction, plus an in-place
// heapsort over plain slices.
package heap

// Heap is a binary heap of elements of type E. The element with the
// smallest value according to less sits at index 0. A Heap is not
// safe for concurrent use.
type Heap[E any] struct {
	data []E
	less func(a, b E) bool
}

// New returns an empty heap ordered by less. It does not allocate
// element memory and cannot fail.
func New[E any](less func(a, b E) bool) *Heap[E] {
	if less == nil {
		panic("heap: nil less function")
	}
	return &Heap[E]{less: less}
}

// Len returns the number of elements in the heap.
func (h *Heap[E]) Len() int {
	return len(h.data)
}

// At returns a pointer to the ith element in storage order, or nil
// if the index is out of bounds. Changing the ordering key of the
// element through the pointer must be followed by Update(i).
func (h *Heap[E]) At(i int) *E {
	if i < 0 || i >= len(h.data) {
		return nil
	}
	return &h.data[i]
}

// Insert adds x to the heap.
func (h *Heap[E]) Insert(x E) {
	h.data = append(h.data, x)
	h.up(len(h.data) - 1)
}

// Remove removes and returns the ith element. It reports false if
// the index is out of bounds. Remove(0) pops the minimum.
func (h *Heap[E]) Remove(i int) (E, bool) {
	var zero E
	if i < 0 || i >= len(h.data) {
		return zero, false
	}

	n := len(h.data) - 1
	if n != i {
		h.data[i], h.data[n] = h.data[n], h.data[i]
		if !h.down(i, n) {
			h.up(i)
		}
	}
	x := h.data[n]
	h.data[n] = zero
	h.data = h.data[:n]
	return x, true
}

// Update restores the heap ordering after the ith element changed.
func (h *Heap[E]) Update(i int) {
	if !h.down(i, len(h.data)) {
		h.up(i)
	}
}

func (h *Heap[E]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.less(h.data[j], h.data[i]) {
			break
		}
		h.data[i], h.data[j] = h.data[j], h.data[i]
		j = i
	}
}

func (h *Heap[E]) down(i0, n int) bool {
	i := i0
	for {
		j := 2*i + 1 // left child
		if j >= n || j < 0 { // j < 0 after overflow
			break
		}
		if k := j + 1; k < n && h.less(h.data[k], h.data[j]) {
			j = k // right child
		}
		if !h.less(h.data[j], h.data[i]) {
			break
		}
		h.data[i], h.data[j] = h.data[j], h.data[i]
		i = j
	}
	return i > i0
}

// Sort sorts s in ascending order according to cmp, which must
// return a negative number when a orders before b, zero when they
// match and a positive number otherwise. The sort is in-place and
// not stable.
func Sort[E any](s []E, cmp func(a, b E) int) {
	// Heapify with the comparison reversed: repeatedly removing the
	// maximum to the end of the shrinking heap leaves the slice in
	// ascending order.
	h := Heap[E]{
		data: s,
		less: func(a, b E) bool { return cmp(a, b) > 0 },
	}
	for i := len(s) / 2; i > 0; i-- {
		h.down(i-1, len(s))
	}
	for n := len(s) - 1; n > 0; n-- {
		h.data[0], h.data[n] = h.data[n], h.data[0]
		h.down(0, n)
	}
}
