// internal/prng/prng.go
//
// Deterministic pseudo-random generator keyed by a string seed.
// Responsibilities:
//   - Derive 128 bits of state from SHA-256(seed), split into four big-endian words.
//   - Produce xoshiro128** output with exact uint32 wraparound semantics.
//   - Offer unbiased bounded integers via rejection sampling.
//
// Notes:
//   - Output must stay bit-for-bit stable: stored boards are regenerated from it.
//   - A *Rand is not safe for concurrent use; create one per generation call.
package prng

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"math/bits"
)

// ErrInvalidBound is returned by Intn for bounds outside (0, 2^32].
var ErrInvalidBound = errors.New("prng: bound must be a positive number no larger than 2^32")

// fallback replaces an all-zero state; xoshiro never leaves the zero state.
var fallback = [4]uint32{0x9e3779b9, 0x243f6a88, 0xb7e15162, 0x8aed2a6b}

const twoTo32 = 1 << 32

// Rand is a xoshiro128** generator.
type Rand struct {
	s [4]uint32
}

// New returns a generator seeded from the SHA-256 digest of seed.
func New(seed string) *Rand {
	sum := sha256.Sum256([]byte(seed))
	return fromDigest(sum[:16])
}

// fromDigest loads four big-endian words from the first 16 bytes of d.
func fromDigest(d []byte) *Rand {
	r := &Rand{}
	for i := range r.s {
		r.s[i] = binary.BigEndian.Uint32(d[i*4:])
	}
	if r.s[0]|r.s[1]|r.s[2]|r.s[3] == 0 {
		r.s = fallback
	}
	return r
}

// Uint32 returns the next 32 bits of output and advances the state.
func (r *Rand) Uint32() uint32 {
	s := &r.s
	result := bits.RotateLeft32(s[1]*5, 7) * 9
	t := s[1] << 9

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]
	s[2] ^= t
	s[3] = bits.RotateLeft32(s[3], 11)

	return result
}

// Float64 returns a value in [0, 1) with 32 bits of precision.
func (r *Rand) Float64() float64 {
	return float64(r.Uint32()) / twoTo32
}

// Intn returns an unbiased integer in [0, bound).
// Draws at or above the largest multiple of bound that fits in 2^32 are rejected.
func (r *Rand) Intn(bound int) (int, error) {
	if bound <= 0 || uint64(bound) > twoTo32 {
		return 0, ErrInvalidBound
	}
	b := uint64(bound)
	threshold := twoTo32 - twoTo32%b
	for {
		v := uint64(r.Uint32())
		if v < threshold {
			return int(v % b), nil
		}
	}
}

// Uint64 joins two draws, high word first, so a *Rand can back a
// math/rand/v2.Rand when callers need shuffles or permutations.
func (r *Rand) Uint64() uint64 {
	hi := uint64(r.Uint32())
	return hi<<32 | uint64(r.Uint32())
}

// state exposes the raw words for tests in this package.
func (r *Rand) state() [4]uint32 { return r.s }
