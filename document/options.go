package document

import (
	"context"

	"github.com/hupe1980/rkmatch"
	"github.com/hupe1980/rkmatch/blobstore"
	"github.com/hupe1980/rkmatch/blobstore/minio"
	"github.com/hupe1980/rkmatch/blobstore/s3"
	"github.com/hupe1980/rkmatch/internal/resource"
)

// StoreOpener resolves the store serving bucket. Local and in-memory
// schemes are called with an empty bucket.
type StoreOpener func(ctx context.Context, bucket string) (blobstore.BlobStore, error)

type options struct {
	controller *resource.Controller
	logger     *rkmatch.Logger
	metrics    rkmatch.MetricsCollector
	openers    map[Scheme]StoreOpener
	s3Opts     []s3.Option
	minioCfg   *minio.Config
	raw        bool
}

// Option configures a Loader.
type Option func(*options)

// WithController accounts document memory, load concurrency and remote IO
// against rc.
func WithController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithLogger sets a custom structured logger.
// Pass nil to disable logging.
func WithLogger(l *rkmatch.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = rkmatch.NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector records every load.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc rkmatch.MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = rkmatch.NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithStoreOpener overrides how a scheme resolves to a store.
func WithStoreOpener(scheme Scheme, opener StoreOpener) Option {
	return func(o *options) {
		o.openers[scheme] = opener
	}
}

// WithMemoryStore serves mem:// sources from store.
func WithMemoryStore(store blobstore.BlobStore) Option {
	return WithStoreOpener(SchemeMemory, func(context.Context, string) (blobstore.BlobStore, error) {
		return store, nil
	})
}

// WithS3Options configures the S3 client built for s3:// sources.
func WithS3Options(optFns ...s3.Option) Option {
	return func(o *options) {
		o.s3Opts = append(o.s3Opts, optFns...)
	}
}

// WithMinio enables minio:// sources.
func WithMinio(cfg minio.Config) Option {
	return func(o *options) {
		o.minioCfg = &cfg
	}
}

// WithoutNormalization keeps document bytes as stored (after decompression).
func WithoutNormalization() Option {
	return func(o *options) {
		o.raw = true
	}
}
