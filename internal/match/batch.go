package match

import (
	"bytes"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/rkmatch/internal/bloom"
	"github.com/hupe1980/rkmatch/internal/rollinghash"
)

// PrefixBits is the number of leading filter bits captured in BatchResult.
const PrefixBits = 160

// BatchResult is the outcome of a Batch scan.
type BatchResult struct {
	// Matches counts confirmed chunk-to-window matches. A chunk found at
	// three offsets contributes three.
	Matches int
	// Chunks is the number of whole query chunks inserted into the filter.
	Chunks int
	// Distinct holds the indices of chunks confirmed at least once.
	Distinct *roaring.Bitmap
	// FilterPrefix is the first PrefixBits bits of the populated filter,
	// captured before the target was scanned.
	FilterPrefix []byte
	// FilterBits is the filter capacity in bits.
	FilterBits uint64
	// Stats records how the filter pruned windows.
	Stats bloom.Stats
}

// Batch matches every k-byte chunk of query against text in one pass.
//
// Each chunk hash is inserted into a Bloom filter of numBits bits. Every
// window of text whose hash the filter may contain is compared against all
// chunks, and each equal chunk counts as one match. beforeScan, if not nil,
// observes the populated filter before the scan starts.
func Batch(h *rollinghash.Hasher, numBits uint64, query, text []byte, beforeScan func(*bloom.Filter)) (*BatchResult, error) {
	f, err := bloom.New(numBits)
	if err != nil {
		return nil, err
	}

	chunks := Chunks(query, h.K())
	for _, c := range chunks {
		f.Add(h.Hash(c.Data))
	}

	res := &BatchResult{
		Chunks:       len(chunks),
		Distinct:     roaring.New(),
		FilterPrefix: f.Prefix(PrefixBits),
		FilterBits:   numBits,
	}
	if beforeScan != nil {
		beforeScan(f)
	}

	k := h.K()
	h.Scan(text, func(offset int, hash uint64) bool {
		if !f.MayContain(hash) {
			res.Stats.Update(false, false)
			return true
		}
		window := text[offset : offset+k]
		confirmed := false
		for _, c := range chunks {
			if bytes.Equal(window, c.Data) {
				res.Matches++
				res.Distinct.Add(uint32(c.Index))
				confirmed = true
			}
		}
		res.Stats.Update(true, confirmed)
		return true
	})

	return res, nil
}
