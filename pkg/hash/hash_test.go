package hash

import (
	"crypto/rand"
	"errors"
	"fmt"
	"testing"
)

var xxx = []byte("e:0e1f461bbefa6e07cc2ef06b9ee1ed25101e24d4345af266ed2f5a58bcd26c5e")

func makeSalt() ([]byte, error) {
	var s = make([]byte, SaltLength)

	if n, err := rand.Read(s); err != nil {
		return nil, err
	} else if n != SaltLength {
		return nil, fmt.Errorf("requested %d rand bytes and got %d", SaltLength, n)
	} else {
		return s, nil
	}
}

func TestNew(t *testing.T) {
	salt, err := makeSalt()
	if err != nil {
		t.Fatal(err)
	}

	for _, typ := range []int{FNV1a, Murmur3, Metro, Sip, Highway, City, XX, Blake3} {
		h, err := New(typ, salt)
		if err != nil {
			t.Errorf("New(%d): %v", typ, err)
			continue
		}
		if got, want := h.Hash64(xxx), h.Hash64(xxx); got != want {
			t.Errorf("New(%d): hash is not deterministic: %#x != %#x", typ, got, want)
		}
	}

	if _, err := New(42, salt); !errors.Is(err, ErrUnknownHash) {
		t.Errorf("New(42): want ErrUnknownHash, got %v", err)
	}
	if _, err := New(Murmur3, salt[:SaltLength-1]); !errors.Is(err, ErrSaltLengthMismatch) {
		t.Errorf("New with short salt: want ErrSaltLengthMismatch, got %v", err)
	}
}

func TestSaltChangesHash(t *testing.T) {
	s1, err := makeSalt()
	if err != nil {
		t.Fatal(err)
	}
	s2, err := makeSalt()
	if err != nil {
		t.Fatal(err)
	}

	for _, typ := range []int{FNV1a, Murmur3, Metro, Sip, Highway, City, XX, Blake3} {
		h1, _ := New(typ, s1)
		h2, _ := New(typ, s2)
		if h1.Hash64(xxx) == h2.Hash64(xxx) {
			t.Errorf("hasher %d: same hash for two different salts", typ)
		}
	}
}

// Official vectors for unseeded FNV1a, from
// http://www.isthe.com/chongo/tech/comp/fnv/index.html
func TestFNV1aVectors(t *testing.T) {
	fnv1aTests := []struct {
		in   string
		want uint64
	}{
		{"", 0xcbf29ce484222325},
		{"a", 0xaf63dc4c8601ec8c},
		{"foobar", 0x85944171f73967e8},
	}

	for _, tt := range fnv1aTests {
		if got := fnv1aSum64([]byte(tt.in), fnv1aSeed); got != tt.want {
			t.Errorf("fnv1a(%q): want: %#x, got: %#x", tt.in, tt.want, got)
		}
	}
}

func BenchmarkFNV1a(b *testing.B) {
	s, _ := makeSalt()
	h, _ := NewFNV1aHasher(s)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Hash64(xxx)
	}
}

func BenchmarkMurmur3(b *testing.B) {
	s, _ := makeSalt()
	h, _ := NewMurmur3Hasher(s)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Hash64(xxx)
	}
}

func BenchmarkMetro(b *testing.B) {
	s, _ := makeSalt()
	h, _ := NewMetroHasher(s)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Hash64(xxx)
	}
}

func BenchmarkSip(b *testing.B) {
	s, _ := makeSalt()
	h, _ := NewSipHasher(s)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Hash64(xxx)
	}
}

func BenchmarkHighway(b *testing.B) {
	s, _ := makeSalt()
	h, _ := NewHighwayHasher(s)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Hash64(xxx)
	}
}

func BenchmarkCity(b *testing.B) {
	s, _ := makeSalt()
	h, _ := NewCityHasher(s)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Hash64(xxx)
	}
}

func BenchmarkXX(b *testing.B) {
	s, _ := makeSalt()
	h, _ := NewXXHasher(s)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Hash64(xxx)
	}
}

func BenchmarkBlake3(b *testing.B) {
	s, _ := makeSalt()
	h, _ := NewBlake3Hasher(s)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Hash64(xxx)
	}
}
