package rkmatch

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the metrics
// package ships a Prometheus implementation.
type MetricsCollector interface {
	// RecordMatch is called after each match. chunks is the number of whole
	// query chunks, matched the reported count, err is nil if successful.
	RecordMatch(algorithm Algorithm, chunks, matched int, duration time.Duration, err error)

	// RecordLoad is called after each document load with the normalized size.
	RecordLoad(bytes int64, duration time.Duration, err error)

	// RecordBloom is called once per batch match with the filter statistics.
	RecordBloom(stats BloomStats)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordMatch(Algorithm, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordLoad(int64, time.Duration, error)                {}
func (NoopMetricsCollector) RecordBloom(BloomStats)                                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	MatchCount       atomic.Int64
	MatchErrors      atomic.Int64
	MatchTotalNanos  atomic.Int64
	ChunksScanned    atomic.Int64
	ChunksMatched    atomic.Int64
	LoadCount        atomic.Int64
	LoadErrors       atomic.Int64
	LoadBytes        atomic.Int64
	LoadTotalNanos   atomic.Int64
	BloomQueries     atomic.Int64
	BloomMaybeYes    atomic.Int64
	BloomFalsePosits atomic.Int64
}

// RecordMatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMatch(_ Algorithm, chunks, matched int, duration time.Duration, err error) {
	b.MatchCount.Add(1)
	b.MatchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.MatchErrors.Add(1)
		return
	}
	b.ChunksScanned.Add(int64(chunks))
	b.ChunksMatched.Add(int64(matched))
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(bytes int64, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.LoadBytes.Add(bytes)
}

// RecordBloom implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBloom(stats BloomStats) {
	b.BloomQueries.Add(int64(stats.Queries))
	b.BloomMaybeYes.Add(int64(stats.MaybeYes))
	b.BloomFalsePosits.Add(int64(stats.FalsePositives))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		MatchCount:          b.MatchCount.Load(),
		MatchErrors:         b.MatchErrors.Load(),
		MatchAvgNanos:       getAvg(b.MatchTotalNanos.Load(), b.MatchCount.Load()),
		ChunksScanned:       b.ChunksScanned.Load(),
		ChunksMatched:       b.ChunksMatched.Load(),
		LoadCount:           b.LoadCount.Load(),
		LoadErrors:          b.LoadErrors.Load(),
		LoadBytes:           b.LoadBytes.Load(),
		LoadAvgNanos:        getAvg(b.LoadTotalNanos.Load(), b.LoadCount.Load()),
		BloomQueries:        b.BloomQueries.Load(),
		BloomMaybeYes:       b.BloomMaybeYes.Load(),
		BloomFalsePositives: b.BloomFalsePosits.Load(),
	}
}

// BasicMetricsStats is a snapshot of metrics from BasicMetricsCollector.
type BasicMetricsStats struct {
	MatchCount          int64
	MatchErrors         int64
	MatchAvgNanos       int64
	ChunksScanned       int64
	ChunksMatched       int64
	LoadCount           int64
	LoadErrors          int64
	LoadBytes           int64
	LoadAvgNanos        int64
	BloomQueries        int64
	BloomMaybeYes       int64
	BloomFalsePositives int64
}

func getAvg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}
