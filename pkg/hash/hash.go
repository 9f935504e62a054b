// Package hash provides seeded 64-bit hash functions over byte
// slices, suitable as the hashing capability of the container
// packages. All hashers are constructed from a fixed-length salt so
// that two tables built with different salts disagree on every hash
// code.
package hash

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
	"github.com/hungrybirder/cityhash"
	"github.com/minio/highwayhash"
	"github.com/shivakar/metrohash"
	"github.com/twmb/murmur3"
	"github.com/zeebo/blake3"
)

// SaltLength is the number of salt bytes every constructor expects.
const SaltLength = 32

// Hash function families understood by New.
const (
	FNV1a = iota
	Murmur3
	Metro
	Sip
	Highway
	City
	XX
	Blake3
)

var (
	ErrUnknownHash        = fmt.Errorf("cannot create a hasher of unknown hash type")
	ErrSaltLengthMismatch = fmt.Errorf("provided salt is not %d length", SaltLength)
)

// Hasher implements different non cryptographic hashing functions
type Hasher interface {
	Hash64([]byte) uint64
}

// New creates a hasher of type t seeded with salt.
func New(t int, salt []byte) (Hasher, error) {
	switch t {
	case FNV1a:
		return NewFNV1aHasher(salt)
	case Murmur3:
		return NewMurmur3Hasher(salt)
	case Metro:
		return NewMetroHasher(salt)
	case Sip:
		return NewSipHasher(salt)
	case Highway:
		return NewHighwayHasher(salt)
	case City:
		return NewCityHasher(salt)
	case XX:
		return NewXXHasher(salt)
	case Blake3:
		return NewBlake3Hasher(salt)
	default:
		return nil, ErrUnknownHash
	}
}

// FNV1a parameters for 64 bits, from
// http://www.isthe.com/chongo/tech/comp/fnv/index.html
const (
	fnv1aSeed = 0xcbf29ce484222325
	fnv1aMult = 0x00000100000001b3
)

// fnv64 implementation of Hasher
type fnv64 struct {
	seed uint64
}

// NewFNV1aHasher returns an FNV1a hasher whose internal state is
// seeded by chaining the salt through the hash.
func NewFNV1aHasher(salt []byte) (fnv64, error) {
	if len(salt) != SaltLength {
		return fnv64{}, ErrSaltLengthMismatch
	}

	return fnv64{seed: fnv1aSum64(salt, fnv1aSeed)}, nil
}

func (f fnv64) Hash64(p []byte) uint64 {
	return fnv1aSum64(p, f.seed)
}

func fnv1aSum64(p []byte, seed uint64) uint64 {
	for _, c := range p {
		seed = fnv1aMult * (seed ^ uint64(c))
	}
	return seed
}

// murmur64 implementation of Hasher
type murmur64 struct {
	salt []byte
}

// NewMurmur3Hasher returns a Murmur3 hasher that uses salt as a
// prefix to the bytes being summed.
func NewMurmur3Hasher(salt []byte) (murmur64, error) {
	if len(salt) != SaltLength {
		return murmur64{}, ErrSaltLengthMismatch
	}

	return murmur64{salt: salt}, nil
}

func (m murmur64) Hash64(p []byte) uint64 {
	// prepend the salt in m and then Sum
	return murmur3.Sum64(append(m.salt, p...))
}

// metro implementation of Hasher
type metro struct {
	salt []byte
}

// NewMetroHasher returns a MetroHash64 hasher that uses salt as a
// prefix to the bytes being summed.
func NewMetroHasher(salt []byte) (metro, error) {
	if len(salt) != SaltLength {
		return metro{}, ErrSaltLengthMismatch
	}

	return metro{salt: salt}, nil
}

func (m metro) Hash64(p []byte) uint64 {
	h := metrohash.NewMetroHash64()
	h.Write(m.salt)
	h.Write(p)
	return h.Sum64()
}

// siphash64 implementation of Hasher
type siphash64 struct {
	key0, key1 uint64
}

// NewSipHasher returns a SipHash-2-4 hasher keyed from the first 16
// bytes of the salt. SipHash withstands hash flooding, which makes it
// the recommended choice for tables fed with untrusted keys.
func NewSipHasher(salt []byte) (siphash64, error) {
	if len(salt) != SaltLength {
		return siphash64{}, ErrSaltLengthMismatch
	}
	var key0 = binary.BigEndian.Uint64(salt[:8])
	var key1 = binary.BigEndian.Uint64(salt[8:16])

	return siphash64{key0: key0, key1: key1}, nil
}

func (s siphash64) Hash64(p []byte) uint64 {
	return siphash.Hash(s.key0, s.key1, p)
}

// highway implementation of Hasher
type highway struct {
	key []byte
}

// NewHighwayHasher returns a HighwayHash hasher that uses the whole
// salt as its 32 byte key.
func NewHighwayHasher(salt []byte) (highway, error) {
	if len(salt) != SaltLength {
		return highway{}, ErrSaltLengthMismatch
	}

	return highway{key: salt}, nil
}

func (h highway) Hash64(p []byte) uint64 {
	return highwayhash.Sum64(p, h.key)
}

// city implementation of Hasher
type city struct {
	seed uint64
}

// NewCityHasher returns a CityHash64 hasher seeded from the first 8
// bytes of the salt.
func NewCityHasher(salt []byte) (city, error) {
	if len(salt) != SaltLength {
		return city{}, ErrSaltLengthMismatch
	}

	return city{seed: binary.BigEndian.Uint64(salt[:8])}, nil
}

func (c city) Hash64(p []byte) uint64 {
	return cityhash.CityHash64WithSeed(p, uint32(len(p)), c.seed)
}

// xx implementation of Hasher
type xx struct {
	salt []byte
}

// NewXXHasher returns an xxHash hasher that uses salt as a prefix to
// the bytes being summed.
func NewXXHasher(salt []byte) (xx, error) {
	if len(salt) != SaltLength {
		return xx{}, ErrSaltLengthMismatch
	}

	return xx{salt: salt}, nil
}

func (x xx) Hash64(p []byte) uint64 {
	h := xxhash.New()
	h.Write(x.salt)
	h.Write(p)
	return h.Sum64()
}

// b3 implementation of Hasher
type b3 struct {
	salt []byte
}

// NewBlake3Hasher returns a hasher truncating a salted Blake3 digest
// to 64 bits. It is much slower than the other hashers but
// cryptographically strong.
func NewBlake3Hasher(salt []byte) (b3, error) {
	if len(salt) != SaltLength {
		return b3{}, ErrSaltLengthMismatch
	}

	return b3{salt: salt}, nil
}

func (b b3) Hash64(p []byte) uint64 {
	h := blake3.New()
	h.Write(b.salt)
	h.Write(p)

	var sum [8]byte
	h.Digest().Read(sum[:])
	return binary.LittleEndian.Uint64(sum[:])
}
