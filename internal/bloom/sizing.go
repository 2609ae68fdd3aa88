package bloom

// MinBits is the smallest filter BitsFor will size.
const MinBits = 8

// BitsPerChunk is the number of filter bits budgeted per query chunk.
const BitsPerChunk = 10

// BitsFor returns the filter size for a query of queryLen bytes split into
// chunks of k bytes: ten bits per chunk, rounded down to a whole byte.
//
// Short queries would round down to zero bits, so the result is clamped to
// MinBits.
func BitsFor(queryLen, k int) uint64 {
	if queryLen <= 0 || k <= 0 {
		return MinBits
	}
	bits := uint64(queryLen) * BitsPerChunk / uint64(k)
	bits = (bits >> 3) << 3
	if bits < MinBits {
		return MinBits
	}
	return bits
}
