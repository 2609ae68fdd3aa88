package metrics

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rkmatch"
)

func TestPrometheusCollector_RecordMatch(t *testing.T) {
	c := NewPrometheusCollector()

	c.RecordMatch(rkmatch.Batch, 4, 3, 10*time.Millisecond, nil)
	c.RecordMatch(rkmatch.Batch, 0, 0, time.Millisecond, &rkmatch.ErrChunkTooLarge{ChunkSize: 9})
	c.RecordMatch(rkmatch.Naive, 0, 0, time.Millisecond, errors.New("boom"))

	assert.InDelta(t, 1, testutil.ToFloat64(c.matches.WithLabelValues("batch", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.matches.WithLabelValues("batch", "rejected")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.matches.WithLabelValues("naive", "error")), 0)
	assert.InDelta(t, 4, testutil.ToFloat64(c.chunks.WithLabelValues("batch")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(c.chunksMatched.WithLabelValues("batch")), 0)
	assert.InDelta(t, 0.75, testutil.ToFloat64(c.lastRatio.WithLabelValues("batch")), 1e-9)
}

func TestPrometheusCollector_RecordLoadAndBloom(t *testing.T) {
	c := NewPrometheusCollector()

	c.RecordLoad(100, time.Millisecond, nil)
	c.RecordLoad(50, time.Millisecond, errors.New("missing"))
	c.RecordBloom(rkmatch.BloomStats{DefiniteNos: 7, MaybeYes: 3, FalsePositives: 1, EstimatedFPRate: 0.01})

	assert.InDelta(t, 100, testutil.ToFloat64(c.loadBytes), 0)
	assert.InDelta(t, 7, testutil.ToFloat64(c.bloomWindows.WithLabelValues("definite_no")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(c.bloomWindows.WithLabelValues("maybe")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.bloomFalsePositives), 0)
	assert.InDelta(t, 0.01, testutil.ToFloat64(c.bloomEstimatedFP), 1e-12)
}

func TestPrometheusCollector_WithMatcher(t *testing.T) {
	c := NewPrometheusCollector()
	m, err := rkmatch.New(rkmatch.WithAlgorithm(rkmatch.Batch), rkmatch.WithChunkSize(4), rkmatch.WithMetricsCollector(c))
	require.NoError(t, err)

	_, err = m.Match(context.Background(), []byte("aaaabbbb"), []byte("xxaaaabbbbyy"))
	require.NoError(t, err)

	assert.InDelta(t, 2, testutil.ToFloat64(c.chunksMatched.WithLabelValues("batch")), 0)
	assert.InDelta(t, 9, testutil.ToFloat64(c.bloomWindows.WithLabelValues("definite_no"))+
		testutil.ToFloat64(c.bloomWindows.WithLabelValues("maybe")), 0)
}

func TestPrometheusCollector_WriteTextfile(t *testing.T) {
	c := NewPrometheusCollector()
	c.RecordMatch(rkmatch.RabinKarp, 2, 1, time.Millisecond, nil)

	path := filepath.Join(t.TempDir(), "rkmatch.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `rkmatch_chunks_matched_total{algorithm="rabin-karp"} 1`))
}
