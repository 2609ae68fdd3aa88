package bloom

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	// NumHashes is the number of bit positions set per value.
	NumHashes = 10

	// H1 and H2 are the primes of the bit-index hash family.
	H1 uint64 = 4189793
	H2 uint64 = 3296731
)

// ErrTooFewBits is returned when a filter is created with zero bits.
var ErrTooFewBits = errors.New("bloom: bit count must be at least 1")

// Filter is a bit-packed Bloom filter over uint64 values.
type Filter struct {
	bits    []byte // ceil(numBits/8) bytes, MSB-first within each byte
	numBits uint64
	count   uint32 // values added
}

// New creates a zeroed filter with numBits bits.
func New(numBits uint64) (*Filter, error) {
	if numBits == 0 {
		return nil, ErrTooFewBits
	}
	return &Filter{
		bits:    make([]byte, (numBits+7)/8),
		numBits: numBits,
	}, nil
}

// HashI returns the i-th hash of x, before reduction modulo the bit count.
func HashI(i int, x uint64) uint64 {
	ui := uint64(i)
	return (x % H1) + ui*(x%H2) + 1 + ui*ui
}

// Add inserts value into the filter.
// After Add(x), MayContain(x) always returns true.
func (f *Filter) Add(value uint64) {
	for i := 0; i < NumHashes; i++ {
		bit := HashI(i, value) % f.numBits
		f.bits[bit>>3] |= 1 << (7 - bit&7)
	}
	f.count++
}

// MayContain reports whether value might be in the filter.
// Returns false: definitely NOT in set.
// Returns true: maybe in set, caller must verify.
func (f *Filter) MayContain(value uint64) bool {
	for i := 0; i < NumHashes; i++ {
		bit := HashI(i, value) % f.numBits
		if f.bits[bit>>3]&(1<<(7-bit&7)) == 0 {
			return false
		}
	}
	return true
}

// Test reports whether bit b is set.
func (f *Filter) Test(b uint64) bool {
	if b >= f.numBits {
		return false
	}
	return f.bits[b>>3]&(1<<(7-b&7)) != 0
}

// NumBits returns the declared capacity in bits.
func (f *Filter) NumBits() uint64 {
	return f.numBits
}

// Count returns the number of values added to the filter.
func (f *Filter) Count() uint32 {
	return f.count
}

// SizeBytes returns the size of the bit array in bytes.
func (f *Filter) SizeBytes() int {
	return len(f.bits)
}

// OnesCount returns the number of set bits.
func (f *Filter) OnesCount() int {
	n := 0
	for _, b := range f.bits {
		for ; b != 0; b &= b - 1 {
			n++
		}
	}
	return n
}

// EstimatedFalsePositiveRate returns the expected false positive rate
// for the current number of added values: (1 - e^(-k*n/m))^k.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	if f.count == 0 {
		return 0
	}
	kn := float64(NumHashes) * float64(f.count)
	m := float64(f.numBits)
	return math.Pow(1-math.Exp(-kn/m), NumHashes)
}

// Prefix returns a copy of the whole bytes covering the first nbits bits.
// Only bytes fully inside the declared capacity are returned.
func (f *Filter) Prefix(nbits int) []byte {
	if nbits <= 0 {
		return nil
	}
	n := nbits >> 3
	if full := int(f.numBits >> 3); n > full {
		n = full
	}
	out := make([]byte, n)
	copy(out, f.bits[:n])
	return out
}

// Format renders Prefix(nbits) as lowercase hex bytes, each followed by a space.
func (f *Filter) Format(nbits int) string {
	return FormatBytes(f.Prefix(nbits))
}

// FormatBytes renders b as lowercase hex bytes, each followed by a space.
func FormatBytes(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 3)
	for _, v := range b {
		fmt.Fprintf(&sb, "%02x ", v)
	}
	return sb.String()
}

// Clear resets the filter to the empty state.
func (f *Filter) Clear() {
	clear(f.bits)
	f.count = 0
}
