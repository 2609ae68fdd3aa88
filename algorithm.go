package rkmatch

import (
	"fmt"
	"strings"
)

// Algorithm selects the chunk matching strategy.
type Algorithm int

const (
	// Naive compares every chunk at every offset of the target.
	Naive Algorithm = iota
	// RabinKarp matches each chunk with a rolling hash, verifying hash hits.
	RabinKarp
	// Batch matches all chunks in a single pass through a Bloom filter.
	Batch
)

// String returns the canonical name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Naive:
		return "naive"
	case RabinKarp:
		return "rabin-karp"
	case Batch:
		return "batch"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Valid reports whether a is a known algorithm.
func (a Algorithm) Valid() bool {
	return a >= Naive && a <= Batch
}

// ParseAlgorithm accepts the numeric selectors 0, 1, 2 or the names
// "naive", "rabin-karp" (or "rk") and "batch".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "naive", "simple":
		return Naive, nil
	case "1", "rabin-karp", "rabinkarp", "rk":
		return RabinKarp, nil
	case "2", "batch", "rkbatch", "bloom":
		return Batch, nil
	}
	return 0, fmt.Errorf("%w: %q (choose from 0 1 2)", ErrInvalidAlgorithm, s)
}
