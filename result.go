package rkmatch

import (
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
)

// BloomStats summarizes how the Bloom filter pruned target windows in a
// batch match.
type BloomStats struct {
	Bits            uint64  // Filter capacity
	Queries         uint64  // Windows tested against the filter
	DefiniteNos     uint64  // Windows rejected by the filter
	MaybeYes        uint64  // Windows passed on to verification
	FalsePositives  uint64  // Passed windows equal to no chunk
	ObservedFPRate  float64 // FalsePositives / MaybeYes
	EstimatedFPRate float64 // Theoretical rate for the populated filter
	PrunedPercent   float64 // DefiniteNos / Queries * 100
}

// Result is the outcome of a single Match.
type Result struct {
	Algorithm   Algorithm
	ChunkSize   int
	TotalChunks int
	// Matched is the reported count. For Batch it counts chunk-to-window
	// pairs; otherwise chunks found at least once.
	Matched int
	// Distinct holds the indices of chunks found at least once.
	Distinct *roaring.Bitmap
	// FilterPrefix is the first 160 bits of the Bloom filter (Batch only).
	FilterPrefix []byte
	// BloomStats is set for Batch only.
	BloomStats *BloomStats
	Duration   time.Duration
}

// Ratio returns Matched/TotalChunks, or 0 when the query has no whole chunk.
func (r *Result) Ratio() float64 {
	if r.TotalChunks == 0 {
		return 0
	}
	return float64(r.Matched) / float64(r.TotalChunks)
}

// String renders the report line, e.g. "0.75 matched: 3 out of 4".
func (r *Result) String() string {
	return fmt.Sprintf("%.2f matched: %d out of %d", r.Ratio(), r.Matched, r.TotalChunks)
}
