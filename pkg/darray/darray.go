// Package darray provides a generic dynamic array with amortized
// growth and a small set of structural operations (splice, swap
// removal) that plain slices make verbose.
package darray

// Array is a growable array of elements of type E. The zero value is
// an empty array ready for use; it owns no memory until the first
// growth. An Array is not safe for concurrent use.
type Array[E any] struct {
	data []E
}

// Len returns the number of elements.
func (a *Array[E]) Len() int {
	return len(a.data)
}

// Data returns the underlying elements. The slice is valid until the
// next growth of the array.
func (a *Array[E]) Data() []E {
	return a.data
}

// index translates a possibly negative index, counting from the end
// of the array.
func (a *Array[E]) index(i int) int {
	if i < 0 {
		i += len(a.data)
	}
	return i
}

// At returns a pointer to the ith element, or nil if the index is
// out of bounds. Negative indices address the array from its end:
// At(-1) is the last element.
func (a *Array[E]) At(i int) *E {
	i = a.index(i)
	if i < 0 || i >= len(a.data) {
		return nil
	}
	return &a.data[i]
}

// SetCap resizes the backing storage to exactly n elements,
// truncating the array if it is longer. SetCap(0) releases the
// storage.
func (a *Array[E]) SetCap(n int) {
	if n <= 0 {
		a.data = nil
		return
	}
	length := len(a.data)
	if length > n {
		length = n
	}
	data := make([]E, length, n)
	copy(data, a.data)
	a.data = data
}

// SetLen resizes the array to n elements. Growth beyond the current
// capacity reallocates by half the capacity plus a small constant,
// so repeated growth is amortized. New elements are zero valued.
func (a *Array[E]) SetLen(n int) {
	if n <= cap(a.data) {
		// Reslicing up reexposes stale values; clear them.
		var zero E
		data := a.data[:n]
		for i := len(a.data); i < n; i++ {
			data[i] = zero
		}
		a.data = data
		return
	}
	grow := cap(a.data) + cap(a.data)/2 + 8
	if grow < n {
		grow = n
	}
	data := make([]E, n, grow)
	copy(data, a.data)
	a.data = data
}

// Push grows the array by n elements and returns the slice of
// appended elements for the caller to fill.
func (a *Array[E]) Push(n int) []E {
	length := len(a.data)
	a.SetLen(length + n)
	return a.data[length:]
}

// Pop shrinks the array by n elements and returns the removed
// elements. The returned slice is valid until the next growth. Pop
// returns nil if the array holds fewer than n elements.
func (a *Array[E]) Pop(n int) []E {
	if n < 0 || len(a.data) < n {
		return nil
	}
	popped := a.data[len(a.data)-n:]
	a.data = a.data[:len(a.data)-n]
	return popped
}

// Splice removes rem elements and inserts ins zero-valued elements
// at index off, growing or shrinking the array as necessary. It
// returns the slice of inserted elements. Negative off counts from
// the end of the array.
func (a *Array[E]) Splice(off, rem, ins int) []E {
	off = a.index(off)
	length := len(a.data)

	// Resize first: the tail stays addressable in the backing array
	// even when the slice shrinks, and a reallocation carries it over.
	a.SetLen(length - rem + ins)
	copy(a.data[off+ins:], a.data[off+rem:length])

	inserted := a.data[off : off+ins]
	for i := range inserted {
		var zero E
		inserted[i] = zero
	}
	return inserted
}

// RemoveSwap removes the ith element by moving the last element into
// its place. Order is not preserved but the operation is constant
// time. It returns the removed element and reports false if the
// index is out of bounds.
func (a *Array[E]) RemoveSwap(i int) (E, bool) {
	var zero E
	i = a.index(i)
	if i < 0 || i >= len(a.data) {
		return zero, false
	}
	x := a.data[i]
	last := len(a.data) - 1
	a.data[i] = a.data[last]
	a.data[last] = zero
	a.data = a.data[:last]
	return x, true
}

// Swap exchanges the elements at indices i and j. Negative indices
// count from the end of the array.
func (a *Array[E]) Swap(i, j int) {
	i, j = a.index(i), a.index(j)
	a.data[i], a.data[j] = a.data[j], a.data[i]
}
