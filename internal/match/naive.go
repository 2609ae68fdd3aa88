package match

import "bytes"

// Naive reports whether pattern occurs in text, comparing at every offset.
func Naive(pattern, text []byte) bool {
	k := len(pattern)
	if k == 0 || k > len(text) {
		return false
	}
	for i := 0; i+k <= len(text); i++ {
		if bytes.Equal(text[i:i+k], pattern) {
			return true
		}
	}
	return false
}

// NaiveCount returns how many query chunks occur somewhere in text.
func NaiveCount(query, text []byte, k int) int {
	matched := 0
	for _, c := range Chunks(query, k) {
		if Naive(c.Data, text) {
			matched++
		}
	}
	return matched
}

// NaivePairs counts every (chunk, offset) pair where the chunk occurs in
// text at that offset. It is the brute-force reference for Batch.
func NaivePairs(query, text []byte, k int) int {
	chunks := Chunks(query, k)
	pairs := 0
	for i := 0; i+k <= len(text); i++ {
		window := text[i : i+k]
		for _, c := range chunks {
			if bytes.Equal(window, c.Data) {
				pairs++
			}
		}
	}
	return pairs
}
