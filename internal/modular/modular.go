package modular

import (
	"errors"
	"math/bits"
)

// DefaultPrime is the default modulus for window hashing.
const DefaultPrime uint64 = 5003943032159437

// maxModulus is the largest modulus for which P*256 still fits in 64 bits.
const maxModulus = (1<<64 - 1) / 256

var (
	// ErrModulusTooSmall is returned for a modulus below 2.
	ErrModulusTooSmall = errors.New("modular: modulus must be at least 2")
	// ErrModulusTooLarge is returned when P*256 would overflow 64 bits.
	ErrModulusTooLarge = errors.New("modular: modulus too large (P*256 overflows)")
)

// Modulus performs arithmetic modulo P.
type Modulus struct {
	p uint64
}

// New returns a Modulus for p.
func New(p uint64) (Modulus, error) {
	if p < 2 {
		return Modulus{}, ErrModulusTooSmall
	}
	if p > maxModulus {
		return Modulus{}, ErrModulusTooLarge
	}
	return Modulus{p: p}, nil
}

// MustNew is like New but panics on an invalid modulus.
func MustNew(p uint64) Modulus {
	m, err := New(p)
	if err != nil {
		panic(err)
	}
	return m
}

// P returns the modulus.
func (m Modulus) P() uint64 { return m.p }

// Add returns (a+b) mod P. Requires a, b < P.
func (m Modulus) Add(a, b uint64) uint64 {
	s := a + b
	if s >= m.p {
		s -= m.p
	}
	return s
}

// Sub returns (a-b) mod P. Requires a, b < P.
func (m Modulus) Sub(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return a + m.p - b
}

// Mul returns (a*b) mod P with a single reduction of the 128-bit product.
func (m Modulus) Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi >= m.p {
		// Rem64 requires hi < p; fold the high word first.
		hi %= m.p
	}
	return bits.Rem64(hi, lo, m.p)
}

// Reduce returns x mod P.
func (m Modulus) Reduce(x uint64) uint64 {
	return x % m.p
}

// Pow returns base^exp mod P.
func (m Modulus) Pow(base, exp uint64) uint64 {
	result := uint64(1) % m.p
	base %= m.p
	for exp > 0 {
		if exp&1 == 1 {
			result = m.Mul(result, base)
		}
		base = m.Mul(base, base)
		exp >>= 1
	}
	return result
}
