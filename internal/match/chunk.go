package match

// Chunk is a k-byte, non-overlapping segment of the query document.
type Chunk struct {
	Index  int    // Position in chunk order
	Offset int    // Byte offset in the query
	Data   []byte // Query bytes, not copied
}

// NumChunks returns the number of whole k-byte chunks in n bytes.
func NumChunks(n, k int) int {
	if k <= 0 || n < k {
		return 0
	}
	return n / k
}

// Chunks splits query into whole k-byte chunks with stride k.
// A trailing partial chunk is discarded.
func Chunks(query []byte, k int) []Chunk {
	n := NumChunks(len(query), k)
	if n == 0 {
		return nil
	}
	chunks := make([]Chunk, n)
	for i := range chunks {
		off := i * k
		chunks[i] = Chunk{Index: i, Offset: off, Data: query[off : off+k : off+k]}
	}
	return chunks
}
