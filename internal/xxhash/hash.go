// Package xxhash implements the single-key xxHash32 variant used to derive
// reproducible pseudo-random values from an integer seed and key.
package xxhash

import "math"

// xxHash32 primes.
const (
	prime32_2 uint32 = 2246822519
	prime32_3 uint32 = 3266489917
	prime32_4 uint32 = 668265263
	prime32_5 uint32 = 374761393
)

const (
	keyLength   = 4  // bytes hashed per key
	rotateShift = 17 // rotate-left for the single-lane round
)

// Sum returns the xxHash32 of the 4-byte little-endian encoding of data
// using seed. It is equivalent to running the reference xxHash32 over a
// 4-byte buffer.
func Sum(data, seed int32) uint32 {
	h := uint32(seed) + prime32_5
	h += keyLength
	h += uint32(data) * prime32_3
	h = rotl32(h, rotateShift) * prime32_4
	h ^= h >> 15
	h *= prime32_2
	h ^= h >> 13
	h *= prime32_3
	h ^= h >> 16
	return h
}

func rotl32(x uint32, r uint) uint32 {
	return x<<r | x>>(32-r)
}

// Hash is a seeded hash function. The zero value is a valid hash with seed 0.
type Hash struct {
	Seed int32
}

// New returns a Hash for seed.
func New(seed int32) Hash {
	return Hash{Seed: seed}
}

// Sum returns the 32-bit hash of key.
func (h Hash) Sum(key int32) uint32 {
	return Sum(key, h.Seed)
}

// RangeN returns the hash reinterpreted as int32 modulo max. The sign of
// the result follows the hash, as with Go's truncated % operator.
func (h Hash) RangeN(maxVal, key int32) int32 {
	if maxVal == 0 {
		return 0
	}
	return int32(h.Sum(key)) % maxVal
}

// Range maps key into [min, max) using the signed truncated modulo of the
// hash, so negative hash values can land below min. max == min returns min.
func (h Hash) Range(minVal, maxVal, key int32) int32 {
	span := maxVal - minVal
	if span == 0 {
		return minVal
	}
	return int32(h.Sum(key))%span + minVal
}

// Value01 maps key to [0, 1].
func (h Hash) Value01(key int32) float64 {
	return float64(h.Sum(key)) / math.MaxUint32
}

// RangeFloat maps key to [min, max].
func (h Hash) RangeFloat(minVal, maxVal float64, key int32) float64 {
	return h.Value01(key)*(maxVal-minVal) + minVal
}
