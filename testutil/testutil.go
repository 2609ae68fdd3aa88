package testutil

import (
	"math/rand"
	"sync"
)

// Alphabets for Text.
const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	Prose     = "abcdefghijklmnopqrstuvwxyz     ,.\n"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Bytes returns n uniformly random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := make([]byte, n)
	_, _ = r.rand.Read(b)
	return b
}

// Text returns n bytes drawn from alphabet.
func (r *RNG) Text(n int, alphabet string) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.rand.Intn(len(alphabet))]
	}
	return b
}

// Plant copies src into dst at off, clipped to dst, and returns dst.
func (r *RNG) Plant(dst, src []byte, off int) []byte {
	if off < 0 || off >= len(dst) {
		return dst
	}
	copy(dst[off:], src)
	return dst
}

// PlantRandom copies src into dst at a random offset where it fits
// entirely and returns that offset, or -1 if src is longer than dst.
func (r *RNG) PlantRandom(dst, src []byte) int {
	if len(src) > len(dst) {
		return -1
	}
	off := r.Intn(len(dst) - len(src) + 1)
	copy(dst[off:], src)
	return off
}
