package rkmatch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/rkmatch/internal/bloom"
	"github.com/hupe1980/rkmatch/internal/conv"
	"github.com/hupe1980/rkmatch/internal/match"
	"github.com/hupe1980/rkmatch/internal/modular"
	"github.com/hupe1980/rkmatch/internal/rollinghash"
)

// Matcher matches query documents against targets with a fixed algorithm,
// chunk size and modulus. A Matcher holds no per-match state and is safe for
// concurrent use unless a trace writer is configured.
type Matcher struct {
	opts   options
	hasher *rollinghash.Hasher
	logger *Logger
}

// New validates the options and returns a Matcher.
func New(optFns ...Option) (*Matcher, error) {
	o := applyOptions(optFns)

	if !o.algorithm.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAlgorithm, int(o.algorithm))
	}

	mod, err := modular.New(o.prime)
	if err != nil {
		return nil, translateError(err)
	}

	h, err := rollinghash.New(mod, o.chunkSize)
	if err != nil {
		return nil, translateError(err)
	}

	return &Matcher{
		opts:   o,
		hasher: h,
		logger: o.logger.WithAlgorithm(o.algorithm).WithChunkSize(o.chunkSize),
	}, nil
}

// Algorithm returns the configured algorithm.
func (m *Matcher) Algorithm() Algorithm { return m.opts.algorithm }

// ChunkSize returns the configured chunk size.
func (m *Matcher) ChunkSize() int { return m.opts.chunkSize }

// Modulus returns the configured hash modulus.
func (m *Matcher) Modulus() uint64 { return m.hasher.Modulus().P() }

// BloomBits returns the filter size a batch match of a query of queryLen
// bytes would use.
func (m *Matcher) BloomBits(queryLen int) uint64 {
	if m.opts.bloomBits > 0 {
		return m.opts.bloomBits
	}
	return bloom.BitsFor(queryLen, m.opts.chunkSize)
}

// Match counts how many chunks of query occur in target.
//
// Both documents must be at least ChunkSize bytes long; otherwise an
// *ErrChunkTooLarge is returned before any matching. ctx is checked between
// chunks; a batch scan runs to completion once started.
func (m *Matcher) Match(ctx context.Context, query, target []byte) (res *Result, err error) {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		if res != nil {
			res.Duration = elapsed
		}
		m.logger.LogMatch(ctx, res, err)
		chunks, matched := 0, 0
		if res != nil {
			chunks, matched = res.TotalChunks, res.Matched
		}
		m.opts.metricsCollector.RecordMatch(m.opts.algorithm, chunks, matched, elapsed, err)
	}()

	k := m.opts.chunkSize
	if len(query) < k {
		return nil, &ErrChunkTooLarge{ChunkSize: k, Length: len(query), Document: "query"}
	}
	if len(target) < k {
		return nil, &ErrChunkTooLarge{ChunkSize: k, Length: len(target), Document: "target"}
	}
	if _, err := conv.IntToUint32(len(query) / k); err != nil {
		return nil, fmt.Errorf("%w: too many chunks: %w", ErrInvalidChunkSize, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch m.opts.algorithm {
	case Naive:
		return m.matchEach(ctx, query, target, func(c match.Chunk) bool {
			return match.Naive(c.Data, target)
		})
	case RabinKarp:
		return m.matchEach(ctx, query, target, func(c match.Chunk) bool {
			if m.opts.trace == nil {
				return match.RabinKarp(m.hasher, c.Data, target)
			}
			found, hashes := match.RabinKarpTrace(m.hasher, c.Data, target, match.TraceHashes)
			writeHashes(m.opts.trace, hashes)
			return found
		})
	default:
		return m.matchBatch(query, target)
	}
}

func (m *Matcher) matchEach(ctx context.Context, query, target []byte, found func(match.Chunk) bool) (*Result, error) {
	chunks := match.Chunks(query, m.opts.chunkSize)
	res := &Result{
		Algorithm:   m.opts.algorithm,
		ChunkSize:   m.opts.chunkSize,
		TotalChunks: len(chunks),
		Distinct:    roaring.New(),
	}

	for _, c := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if found(c) {
			res.Matched++
			res.Distinct.Add(uint32(c.Index))
		}
	}

	return res, nil
}

func (m *Matcher) matchBatch(query, target []byte) (*Result, error) {
	bits := m.BloomBits(len(query))
	var estimated float64
	br, err := match.Batch(m.hasher, bits, query, target, func(f *bloom.Filter) {
		estimated = f.EstimatedFalsePositiveRate()
		if m.opts.trace != nil {
			fmt.Fprintln(m.opts.trace, f.Format(match.PrefixBits))
		}
	})
	if err != nil {
		return nil, translateError(err)
	}

	stats := &BloomStats{
		Bits:            br.FilterBits,
		Queries:         br.Stats.Queries,
		DefiniteNos:     br.Stats.DefiniteNos,
		MaybeYes:        br.Stats.MaybeYes,
		FalsePositives:  br.Stats.ConfirmedFPs,
		ObservedFPRate:  br.Stats.ObservedFPRate,
		EstimatedFPRate: estimated,
		PrunedPercent:   br.Stats.Effectiveness(),
	}
	m.opts.metricsCollector.RecordBloom(*stats)

	return &Result{
		Algorithm:    Batch,
		ChunkSize:    m.opts.chunkSize,
		TotalChunks:  br.Chunks,
		Matched:      br.Matches,
		Distinct:     br.Distinct,
		FilterPrefix: br.FilterPrefix,
		BloomStats:   stats,
	}, nil
}

func writeHashes(w io.Writer, hashes []uint64) {
	for _, h := range hashes {
		fmt.Fprintf(w, "%d ", h)
	}
	fmt.Fprintln(w)
}
