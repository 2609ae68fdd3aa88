package rkmatch

import (
	"io"
	"log/slog"
)

const (
	// DefaultChunkSize is the chunk length used when none is configured.
	DefaultChunkSize = 100

	// DefaultPrime is the default hash modulus. DefaultPrime*256 fits in 64 bits.
	DefaultPrime uint64 = 5003943032159437
)

type options struct {
	algorithm        Algorithm
	chunkSize        int
	prime            uint64
	bloomBits        uint64
	metricsCollector MetricsCollector
	logger           *Logger
	trace            io.Writer
}

// Option configures a Matcher.
type Option func(*options)

// WithAlgorithm selects the matching algorithm. Default: Naive.
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) {
		o.algorithm = a
	}
}

// WithChunkSize sets the chunk length k. Default: 100.
func WithChunkSize(k int) Option {
	return func(o *options) {
		o.chunkSize = k
	}
}

// WithModulus sets the rolling-hash modulus. Default: DefaultPrime.
//
// The modulus need not be prime; a composite only raises the collision
// rate, which verification absorbs.
func WithModulus(p uint64) Option {
	return func(o *options) {
		o.prime = p
	}
}

// WithBloomBits fixes the Bloom filter size for batch matching.
// Zero derives it from the query length and chunk size.
func WithBloomBits(bits uint64) Option {
	return func(o *options) {
		o.bloomBits = bits
	}
}

// WithMetricsCollector sets a custom metrics collector for monitoring.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger sets a custom structured logger.
// Pass nil to disable logging.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithLogLevel creates a text logger at the specified level.
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithTraceWriter enables the diagnostic lines: the first 160 Bloom filter
// bits in batch mode and the first window hashes per chunk in Rabin-Karp mode.
func WithTraceWriter(w io.Writer) Option {
	return func(o *options) {
		o.trace = w
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		algorithm:        Naive,
		chunkSize:        DefaultChunkSize,
		prime:            DefaultPrime,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
