// Package rollinghash computes polynomial hashes over fixed-length byte
// windows and updates them in O(1) as the window slides by one byte.
//
// The hash of a k-byte window w is
//
//	H(w) = Σ w[j] * 256^(k-1-j)  (mod P)
//
// Sliding from w[0:k] to w[1:k+1] drops w[0] and appends w[k]:
//
//	H' = (H - w[0]*256^(k-1)) * 256 + w[k]  (mod P)
package rollinghash

import (
	"errors"

	"github.com/hupe1980/rkmatch/internal/modular"
)

// Base is the polynomial base: one digit per byte value.
const Base = 256

// ErrInvalidWindow is returned for a window length below 1.
var ErrInvalidWindow = errors.New("rollinghash: window length must be positive")

// Hasher hashes windows of a fixed length k.
type Hasher struct {
	mod       modular.Modulus
	k         int
	highPower uint64 // Base^(k-1) mod P
}

// New returns a Hasher for k-byte windows.
func New(mod modular.Modulus, k int) (*Hasher, error) {
	if k <= 0 {
		return nil, ErrInvalidWindow
	}
	return &Hasher{
		mod:       mod,
		k:         k,
		highPower: mod.Pow(Base, uint64(k-1)),
	}, nil
}

// K returns the window length.
func (h *Hasher) K() int { return h.k }

// HighPower returns Base^(k-1) mod P.
func (h *Hasher) HighPower() uint64 { return h.highPower }

// Modulus returns the modulus used for hashing.
func (h *Hasher) Modulus() modular.Modulus { return h.mod }

// Hash computes the hash of window directly. window must hold exactly k bytes.
func (h *Hasher) Hash(window []byte) uint64 {
	var v uint64
	for _, b := range window[:h.k] {
		v = h.mod.Add(h.mod.Mul(v, Base), h.mod.Reduce(uint64(b)))
	}
	return v
}

// HashAt computes the hash of the window of buf starting at offset.
func (h *Hasher) HashAt(buf []byte, offset int) uint64 {
	return h.Hash(buf[offset : offset+h.k])
}

// Roll returns the hash of the next window given the hash of the previous
// one, the byte leaving on the left and the byte entering on the right.
func (h *Hasher) Roll(prev uint64, leaving, entering byte) uint64 {
	v := h.mod.Sub(prev, h.mod.Mul(uint64(leaving), h.highPower))
	v = h.mod.Mul(v, Base)
	return h.mod.Add(v, h.mod.Reduce(uint64(entering)))
}

// Windows returns the number of k-byte windows in a buffer of length n.
func (h *Hasher) Windows(n int) int {
	if n < h.k {
		return 0
	}
	return n - h.k + 1
}

// Scan calls fn with the offset and hash of every k-byte window of text, in
// order. The first window is hashed directly, all later ones by rolling.
// Scanning stops early when fn returns false.
func (h *Hasher) Scan(text []byte, fn func(offset int, hash uint64) bool) {
	windows := h.Windows(len(text))
	if windows == 0 {
		return
	}

	v := h.Hash(text)
	if !fn(0, v) {
		return
	}
	for i := 1; i < windows; i++ {
		v = h.Roll(v, text[i-1], text[i+h.k-1])
		if !fn(i, v) {
			return
		}
	}
}
