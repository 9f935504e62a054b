// Package htable provides Table, a generic hash table with open
// addressing. Collisions are resolved by probing alternate slots of
// the same backing array, so the table stays cache friendly and never
// chains allocations.
//
// The caller supplies the hashing capability as an Interface value.
// The following requirements are the caller's responsibility:
//   - keys equal under Equals must produce equal Hash values
//   - Hash must be a pure function of the key bytes and the seed
//   - a Table is not safe for concurrent use and must be synchronized
//     externally
package htable

import (
	"fmt"
)

// Interface is the hashing capability of a Table. Hash computes the
// hash code of a key, folding in the table seed. Equals reports
// whether key matches the key the entry was inserted under.
type Interface[K, E any] interface {
	Hash(key K, seed uint64) uint64
	Equals(key K, entry E) bool
}

// ErrCapacity is returned by Reserve when the requested capacity is
// smaller than the current number of entries.
var ErrCapacity = fmt.Errorf("requested capacity is smaller than the number of entries")

// Slot tags. Hash codes below tagUsed are reserved to mark free
// slots, so stored hashes are clamped to tagUsed. An empty slot
// terminates probing, a tombstone does not.
const (
	tagEmpty uint64 = 0
	tagTomb  uint64 = 1
	tagUsed  uint64 = 2
)

const (
	// shiftMin is log2 of the smallest allocated table.
	shiftMin = 3

	// mult spreads hash codes over the slots (Fibonacci hashing).
	// The slot of a hash is the top shift bits of hash*mult.
	mult = 0x93c467e37db0c7a3
)

func size(shift int) int { return 1 << shift }

// capacity returns floor(0.75 * size) for a given shift.
func capacity(shift int) int { return 3 << (shift - 2) }

// Table is a hash table mapping keys of type K to entries of type E.
// Entries are stored in a slot array parallel to a compact array of
// hash tags sharing the same probe sequence, so lookups touch only
// the tags until a plausible match is found.
//
// A fresh table owns no slot memory: nothing is allocated until the
// first insertion or a growing Reserve.
type Table[K, E any] struct {
	tags []uint64
	data []E

	length int
	// room counts first-time insertions allowed before the next
	// rehash, i.e. floor(0.75*size) - length. Reusing a tombstone
	// does not consume it.
	room  int
	mask  int
	shift int

	seed   uint64
	hasher Interface[K, E]
}

// New returns an empty table. The seed is folded into every hash
// computation; supply a random seed if the table may be under attack.
// New does not allocate slot memory and cannot fail.
func New[K, E any](seed uint64, hasher Interface[K, E]) *Table[K, E] {
	if hasher == nil {
		panic("htable: nil hasher")
	}
	return &Table[K, E]{
		mask:   -1,
		shift:  shiftMin,
		seed:   seed,
		hasher: hasher,
	}
}

// Reset releases the slot memory. On return the table is empty and
// in the same state as a new table.
func (t *Table[K, E]) Reset() {
	t.tags = nil
	t.data = nil
	t.length = 0
	t.room = 0
	t.mask = -1
	t.shift = shiftMin
}

// Len returns the number of entries.
func (t *Table[K, E]) Len() int {
	return t.length
}

// hashOf clamps the hash code of key so it cannot collide with the
// free slot tags.
func (t *Table[K, E]) hashOf(key K) uint64 {
	hash := t.hasher.Hash(key, t.seed)
	if hash < tagUsed {
		hash = tagUsed
	}
	return hash
}

// slot returns the first probed slot for a hash code.
func (t *Table[K, E]) slot(hash uint64) int {
	return int((hash * mult) >> (64 - uint(t.shift)))
}

// rehash rebuilds the table at the given shift, dropping tombstones.
// Entries migrate by their stored hash tag; keys are not hashed nor
// compared again.
func (t *Table[K, E]) rehash(shift int) {
	n := size(shift)
	tags := make([]uint64, n)
	data := make([]E, n)
	mask := n - 1

	for j, tag := range t.tags {
		if tag < tagUsed {
			continue
		}
		i := int((tag * mult) >> (64 - uint(shift)))
		for step := 1; ; step++ {
			if tags[i] == tagEmpty {
				tags[i] = tag
				data[i] = t.data[j]
				break
			}
			i = (i + step) & mask
		}
	}

	t.tags = tags
	t.data = data
	t.room = capacity(shift) - t.length
	t.mask = mask
	t.shift = shift
}

// Reserve resizes the table to hold at least n entries without
// further automatic growth. It may shrink the table, but not below
// the current number of entries: in that case it returns ErrCapacity
// and leaves the table unchanged.
func (t *Table[K, E]) Reserve(n int) error {
	if n < t.length {
		return ErrCapacity
	}
	shift := shiftMin
	if capacity(t.shift) <= n {
		shift = t.shift
	}
	for capacity(shift) < n {
		shift++
	}
	if shift != t.shift {
		t.rehash(shift)
	}
	return nil
}

// Enter inserts key in the table and returns a pointer to its entry
// storage. If the key is already present, Enter returns the existing
// entry and found is true; otherwise the slot is newly reserved and
// the caller is expected to fill it. Enter may grow the table, which
// invalidates all previously returned entry pointers.
func (t *Table[K, E]) Enter(key K) (entry *E, found bool) {
	// Rehash when the insertion budget runs out. Grow only if the
	// table is more than half full at the current size; otherwise a
	// same-size pass just reclaims the tombstones.
	if t.room == 0 {
		shift := t.shift
		if t.length > capacity(shift)/2 {
			shift++
		}
		t.rehash(shift)
	}

	hash := t.hashOf(key)
	i := t.slot(hash)
	j := -1
	for step := 1; ; step++ {
		switch tag := t.tags[i]; {
		case tag == tagEmpty:
			if j < 0 {
				t.room--
			} else {
				// Reuse the first tombstone seen on the
				// probe path; its slot was already budgeted
				// at the last rehash.
				i = j
			}
			t.tags[i] = hash
			t.length++
			return &t.data[i], false
		case tag == tagTomb:
			if j < 0 {
				j = i
			}
		case tag == hash && t.hasher.Equals(key, t.data[i]):
			return &t.data[i], true
		}
		i = (i + step) & t.mask
	}
}

// Find returns a pointer to the entry stored under key, or nil if the
// key is absent. The pointer is valid until the next mutation of the
// table.
func (t *Table[K, E]) Find(key K) *E {
	if len(t.tags) == 0 {
		return nil
	}
	hash := t.hashOf(key)
	i := t.slot(hash)
	for step := 1; ; step++ {
		switch tag := t.tags[i]; {
		case tag == tagEmpty:
			return nil
		case tag == hash && t.hasher.Equals(key, t.data[i]):
			return &t.data[i]
		}
		i = (i + step) & t.mask
	}
}

// Delete removes the entry stored under key and returns a pointer to
// it, or nil if the key is absent. The entry bytes stay intact until
// a later insertion reuses the slot, so the caller may still inspect
// them. The slot becomes a tombstone; tombstones are reclaimed by the
// next rehash.
func (t *Table[K, E]) Delete(key K) *E {
	if len(t.tags) == 0 {
		return nil
	}
	hash := t.hashOf(key)
	i := t.slot(hash)
	for step := 1; ; step++ {
		switch tag := t.tags[i]; {
		case tag == tagEmpty:
			return nil
		case tag == hash && t.hasher.Equals(key, t.data[i]):
			t.tags[i] = tagTomb
			t.length--
			return &t.data[i]
		}
		i = (i + step) & t.mask
	}
}

// Walk calls action once for every entry, in slot order. The action
// must not mutate the table.
func (t *Table[K, E]) Walk(action func(entry *E)) {
	for j, tag := range t.tags {
		if tag >= tagUsed {
			action(&t.data[j])
		}
	}
}

// Yield returns a pointer to the first entry at slot position *iter
// or after, advancing *iter to its slot, or nil when no entry
// remains. It enables an external iteration loop:
//
//	for i := 0; ; i++ {
//		e := t.Yield(&i)
//		if e == nil {
//			break
//		}
//		...
//	}
//
// Mutating the table invalidates the cursor.
func (t *Table[K, E]) Yield(iter *int) *E {
	for j := *iter; j < len(t.tags); j++ {
		if t.tags[j] >= tagUsed {
			*iter = j
			return &t.data[j]
		}
	}
	return nil
}
