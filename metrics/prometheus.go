// Package metrics exports rkmatch metrics to Prometheus.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/rkmatch"
)

var _ rkmatch.MetricsCollector = (*PrometheusCollector)(nil)

// PrometheusCollector implements rkmatch.MetricsCollector.
type PrometheusCollector struct {
	registry *prometheus.Registry

	matchLatency  *prometheus.HistogramVec
	matches       *prometheus.CounterVec
	chunks        *prometheus.CounterVec
	chunksMatched *prometheus.CounterVec
	lastRatio     *prometheus.GaugeVec

	loadLatency *prometheus.HistogramVec
	loadBytes   prometheus.Counter

	bloomWindows        *prometheus.CounterVec
	bloomFalsePositives prometheus.Counter
	bloomEstimatedFP    prometheus.Gauge
}

// NewPrometheusCollector creates a collector registered on its own registry.
func NewPrometheusCollector() *PrometheusCollector {
	c := &PrometheusCollector{
		registry: prometheus.NewRegistry(),
		matchLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rkmatch_match_duration_seconds",
			Help:    "Latency of match operations",
			Buckets: prometheus.DefBuckets,
		}, []string{"algorithm", "status"}),
		matches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rkmatch_matches_total",
			Help: "Match operations by outcome",
		}, []string{"algorithm", "status"}),
		chunks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rkmatch_chunks_total",
			Help: "Query chunks searched",
		}, []string{"algorithm"}),
		chunksMatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rkmatch_chunks_matched_total",
			Help: "Reported chunk matches",
		}, []string{"algorithm"}),
		lastRatio: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "rkmatch_last_match_ratio",
			Help: "Matched/total ratio of the most recent match",
		}, []string{"algorithm"}),
		loadLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rkmatch_load_duration_seconds",
			Help:    "Latency of document loads",
			Buckets: prometheus.DefBuckets,
		}, []string{"status"}),
		loadBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rkmatch_load_bytes_total",
			Help: "Normalized bytes loaded",
		}),
		bloomWindows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rkmatch_bloom_windows_total",
			Help: "Target windows tested against the Bloom filter",
		}, []string{"result"}),
		bloomFalsePositives: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rkmatch_bloom_false_positives_total",
			Help: "Windows the filter passed that matched no chunk",
		}),
		bloomEstimatedFP: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rkmatch_bloom_estimated_fp_rate",
			Help: "Theoretical false positive rate of the last filter",
		}),
	}

	c.registry.MustRegister(
		c.matchLatency,
		c.matches,
		c.chunks,
		c.chunksMatched,
		c.lastRatio,
		c.loadLatency,
		c.loadBytes,
		c.bloomWindows,
		c.bloomFalsePositives,
		c.bloomEstimatedFP,
	)

	return c
}

// Registry returns the registry holding the collector's metrics.
func (c *PrometheusCollector) Registry() *prometheus.Registry {
	return c.registry
}

func status(err error) string {
	if err != nil {
		var tooLarge *rkmatch.ErrChunkTooLarge
		if errors.As(err, &tooLarge) {
			return "rejected"
		}
		return "error"
	}
	return "ok"
}

// RecordMatch implements rkmatch.MetricsCollector.
func (c *PrometheusCollector) RecordMatch(alg rkmatch.Algorithm, chunks, matched int, duration time.Duration, err error) {
	a, s := alg.String(), status(err)
	c.matchLatency.WithLabelValues(a, s).Observe(duration.Seconds())
	c.matches.WithLabelValues(a, s).Inc()
	if err != nil {
		return
	}
	c.chunks.WithLabelValues(a).Add(float64(chunks))
	c.chunksMatched.WithLabelValues(a).Add(float64(matched))
	if chunks > 0 {
		c.lastRatio.WithLabelValues(a).Set(float64(matched) / float64(chunks))
	}
}

// RecordLoad implements rkmatch.MetricsCollector.
func (c *PrometheusCollector) RecordLoad(bytes int64, duration time.Duration, err error) {
	c.loadLatency.WithLabelValues(status(err)).Observe(duration.Seconds())
	if err == nil {
		c.loadBytes.Add(float64(bytes))
	}
}

// RecordBloom implements rkmatch.MetricsCollector.
func (c *PrometheusCollector) RecordBloom(stats rkmatch.BloomStats) {
	c.bloomWindows.WithLabelValues("definite_no").Add(float64(stats.DefiniteNos))
	c.bloomWindows.WithLabelValues("maybe").Add(float64(stats.MaybeYes))
	c.bloomFalsePositives.Add(float64(stats.FalsePositives))
	c.bloomEstimatedFP.Set(stats.EstimatedFPRate)
}

// WriteTextfile writes the current metrics in the node-exporter textfile
// format. The file is replaced atomically.
func (c *PrometheusCollector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
