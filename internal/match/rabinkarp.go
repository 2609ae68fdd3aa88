package match

import (
	"bytes"

	"github.com/hupe1980/rkmatch/internal/rollinghash"
)

// TraceHashes is the number of leading window hashes RabinKarpTrace records.
const TraceHashes = 5

// RabinKarp reports whether pattern occurs in text. pattern must be exactly
// h.K() bytes. Every hash hit is verified byte-for-byte, so hash collisions
// never produce a match.
func RabinKarp(h *rollinghash.Hasher, pattern, text []byte) bool {
	found, _ := RabinKarpTrace(h, pattern, text, 0)
	return found
}

// RabinKarpTrace is RabinKarp that also returns the hashes of the first
// traceN windows it scanned (fewer if the scan ends earlier).
func RabinKarpTrace(h *rollinghash.Hasher, pattern, text []byte, traceN int) (bool, []uint64) {
	k := h.K()
	if len(pattern) != k {
		return false, nil
	}

	var trace []uint64
	if traceN > 0 {
		trace = make([]uint64, 0, min(traceN, h.Windows(len(text))))
	}

	want := h.Hash(pattern)
	found := false
	h.Scan(text, func(offset int, hash uint64) bool {
		if len(trace) < traceN {
			trace = append(trace, hash)
		}
		if hash == want && bytes.Equal(text[offset:offset+k], pattern) {
			found = true
			return false
		}
		return true
	})
	return found, trace
}

// RabinKarpCount returns how many query chunks occur somewhere in text.
func RabinKarpCount(h *rollinghash.Hasher, query, text []byte) int {
	matched := 0
	for _, c := range Chunks(query, h.K()) {
		if RabinKarp(h, c.Data, text) {
			matched++
		}
	}
	return matched
}
