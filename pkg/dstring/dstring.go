// Package dstring provides a mutable byte string with amortized
// growth, formatted append and a few line-oriented helpers.
package dstring

import (
	"bytes"
	"fmt"
)

// String is a growable byte string. The zero value is an empty
// string ready for use; it owns no memory until the first growth. A
// String is not safe for concurrent use.
type String struct {
	buf []byte
}

// Len returns the number of bytes.
func (s *String) Len() int {
	return len(s.buf)
}

// Str returns the contents as a Go string.
func (s *String) Str() string {
	return string(s.buf)
}

// Bytes returns the underlying bytes. The slice is valid until the
// next growth of the string.
func (s *String) Bytes() []byte {
	return s.buf
}

// At returns a pointer to the ith byte, or nil if the index is out
// of bounds. Negative indices address the string from its end.
func (s *String) At(i int) *byte {
	if i < 0 {
		i += len(s.buf)
	}
	if i < 0 || i >= len(s.buf) {
		return nil
	}
	return &s.buf[i]
}

// SetCap resizes the backing storage to exactly n bytes, truncating
// the string if it is longer. SetCap(0) releases the storage.
func (s *String) SetCap(n int) {
	if n <= 0 {
		s.buf = nil
		return
	}
	length := len(s.buf)
	if length > n {
		length = n
	}
	buf := make([]byte, length, n)
	copy(buf, s.buf)
	s.buf = buf
}

// SetLen resizes the string to n bytes. Growth beyond the current
// capacity reallocates by half the capacity plus a small constant.
// New bytes are zero.
func (s *String) SetLen(n int) {
	if n <= cap(s.buf) {
		buf := s.buf[:n]
		for i := len(s.buf); i < n; i++ {
			buf[i] = 0
		}
		s.buf = buf
		return
	}
	grow := cap(s.buf) + cap(s.buf)/2 + 4
	if grow < n {
		grow = n
	}
	buf := make([]byte, n, grow)
	copy(buf, s.buf)
	s.buf = buf
}

// SetStr replaces the contents with a copy of p.
func (s *String) SetStr(p []byte) {
	s.SetLen(len(p))
	copy(s.buf, p)
}

// Concat appends p to the string.
func (s *String) Concat(p []byte) {
	length := len(s.buf)
	s.SetLen(length + len(p))
	copy(s.buf[length:], p)
}

// Concatf appends a formatted string.
func (s *String) Concatf(format string, args ...any) {
	s.buf = fmt.Appendf(s.buf, format, args...)
}

// Printf replaces the contents with a formatted string.
func (s *String) Printf(format string, args ...any) {
	s.buf = fmt.Appendf(s.buf[:0], format, args...)
}

// Chomp removes a trailing line feed and carriage return. It returns
// the number of removed bytes.
func (s *String) Chomp() int {
	n := 0
	if l := len(s.buf); l > 0 && s.buf[l-1] == '\n' {
		s.buf = s.buf[:l-1]
		n++
	}
	if l := len(s.buf); l > 0 && s.buf[l-1] == '\r' {
		s.buf = s.buf[:l-1]
		n++
	}
	return n
}

// Compare compares s with t byte-wise, returning an integer lesser
// than, equal to or greater than 0 if s is found to be less than, to
// match or to be greater than t.
func (s *String) Compare(t *String) int {
	return bytes.Compare(s.buf, t.buf)
}
