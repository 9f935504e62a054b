// Package base64 implements encoding and decoding with the standard
// base64 alphabet and '=' padding.
package base64

import (
	"fmt"
)

const (
	encoding = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	padding  = '='
	invalid  = 0xff
)

// ErrInvalidByte is returned by Decode when the input is not valid
// base64 data.
var ErrInvalidByte = fmt.Errorf("illegal base64 data")

var decoding [256]byte

func init() {
	for i := range decoding {
		decoding[i] = invalid
	}
	for i := 0; i < len(encoding); i++ {
		decoding[encoding[i]] = byte(i)
	}
}

// EncodedLen returns the length in bytes of the base64 encoding of
// an input buffer of length n.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum length in bytes of the decoded data
// corresponding to n bytes of base64-encoded data.
func DecodedLen(n int) int {
	return n / 4 * 3
}

// Encode encodes src, writing EncodedLen(len(src)) bytes to dst, and
// returns the number of bytes written.
func Encode(dst, src []byte) int {
	d := 0
	n := len(src) / 3 * 3
	for s := 0; s < n; s += 3 {
		val := uint32(src[s])<<16 | uint32(src[s+1])<<8 | uint32(src[s+2])

		dst[d+0] = encoding[val>>18&0x3f]
		dst[d+1] = encoding[val>>12&0x3f]
		dst[d+2] = encoding[val>>6&0x3f]
		dst[d+3] = encoding[val>>0&0x3f]
		d += 4
	}

	switch len(src) - n {
	case 1:
		val := uint32(src[n]) << 16
		dst[d+0] = encoding[val>>18&0x3f]
		dst[d+1] = encoding[val>>12&0x3f]
		dst[d+2] = padding
		dst[d+3] = padding
		d += 4
	case 2:
		val := uint32(src[n])<<16 | uint32(src[n+1])<<8
		dst[d+0] = encoding[val>>18&0x3f]
		dst[d+1] = encoding[val>>12&0x3f]
		dst[d+2] = encoding[val>>6&0x3f]
		dst[d+3] = padding
		d += 4
	}
	return d
}

// AppendEncode appends the base64 encoding of src to dst and returns
// the extended buffer.
func AppendEncode(dst, src []byte) []byte {
	n := len(dst)
	dst = append(dst, make([]byte, EncodedLen(len(src)))...)
	Encode(dst[n:], src)
	return dst
}

// Decode decodes src, writing at most DecodedLen(len(src)) bytes to
// dst. It returns the number of bytes written and ErrInvalidByte if
// src is not a padded base64 quantum sequence.
func Decode(dst, src []byte) (int, error) {
	if len(src) < 4 || len(src)%4 != 0 {
		return 0, ErrInvalidByte
	}

	d := 0
	n := len(src) - 4
	for s := 0; s < n; s += 4 {
		c0 := decoding[src[s+0]]
		c1 := decoding[src[s+1]]
		c2 := decoding[src[s+2]]
		c3 := decoding[src[s+3]]
		if c0|c1|c2|c3 == invalid {
			return 0, ErrInvalidByte
		}
		val := uint32(c0)<<18 | uint32(c1)<<12 | uint32(c2)<<6 | uint32(c3)

		dst[d+0] = byte(val >> 16)
		dst[d+1] = byte(val >> 8)
		dst[d+2] = byte(val >> 0)
		d += 3
	}

	// Final quantum; padding may shorten it to one or two bytes.
	c0 := decoding[src[n+0]]
	c1 := decoding[src[n+1]]
	if c0 == invalid || c1 == invalid {
		return 0, ErrInvalidByte
	}
	val := uint32(c0)<<18 | uint32(c1)<<12
	dst[d] = byte(val >> 16)
	d++
	if src[n+2] == padding {
		if src[n+3] != padding {
			return 0, ErrInvalidByte
		}
		return d, nil
	}

	c2 := decoding[src[n+2]]
	if c2 == invalid {
		return 0, ErrInvalidByte
	}
	val |= uint32(c2) << 6
	dst[d] = byte(val >> 8)
	d++
	if src[n+3] == padding {
		return d, nil
	}

	c3 := decoding[src[n+3]]
	if c3 == invalid {
		return 0, ErrInvalidByte
	}
	val |= uint32(c3)
	dst[d] = byte(val)
	d++
	return d, nil
}
