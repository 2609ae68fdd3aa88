package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/rkmatch"
	"github.com/hupe1980/rkmatch/blobstore"
	"github.com/hupe1980/rkmatch/blobstore/minio"
	"github.com/hupe1980/rkmatch/blobstore/s3"
	"github.com/hupe1980/rkmatch/internal/conv"
	"github.com/hupe1980/rkmatch/internal/normalize"
	"github.com/hupe1980/rkmatch/internal/resource"
)

// ErrMinioNotConfigured is returned for minio:// sources when the Loader
// has no MinIO connection settings.
var ErrMinioNotConfigured = errors.New("minio endpoint not configured")

// Loader fetches documents. It caches one store per scheme and bucket and
// is safe for concurrent use.
type Loader struct {
	opts options

	mu     sync.Mutex
	stores map[Source]blobstore.BlobStore
}

// NewLoader returns a Loader. Local paths are always supported; s3://
// uses the default AWS credential chain.
func NewLoader(optFns ...Option) *Loader {
	o := options{
		logger:  rkmatch.NoopLogger(),
		metrics: rkmatch.NoopMetricsCollector{},
		openers: make(map[Scheme]StoreOpener),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	l := &Loader{opts: o, stores: make(map[Source]blobstore.BlobStore)}
	l.setDefaultOpeners()
	return l
}

func (l *Loader) setDefaultOpeners() {
	if _, ok := l.opts.openers[SchemeFile]; !ok {
		l.opts.openers[SchemeFile] = func(context.Context, string) (blobstore.BlobStore, error) {
			return blobstore.NewLocalStore(""), nil
		}
	}
	if _, ok := l.opts.openers[SchemeS3]; !ok {
		l.opts.openers[SchemeS3] = func(ctx context.Context, bucket string) (blobstore.BlobStore, error) {
			return s3.New(ctx, bucket, l.opts.s3Opts...)
		}
	}
	if _, ok := l.opts.openers[SchemeMinio]; !ok {
		l.opts.openers[SchemeMinio] = func(_ context.Context, bucket string) (blobstore.BlobStore, error) {
			if l.opts.minioCfg == nil {
				return nil, ErrMinioNotConfigured
			}
			return minio.New(*l.opts.minioCfg, bucket, "")
		}
	}
}

func (l *Loader) store(ctx context.Context, src Source) (blobstore.BlobStore, error) {
	key := Source{Scheme: src.Scheme, Bucket: src.Bucket}

	l.mu.Lock()
	defer l.mu.Unlock()

	if s, ok := l.stores[key]; ok {
		return s, nil
	}

	opener, ok := l.opts.openers[src.Scheme]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, src.Scheme)
	}
	s, err := opener(ctx, src.Bucket)
	if err != nil {
		return nil, err
	}
	l.stores[key] = s
	return s, nil
}

// Load fetches, decompresses and normalizes one document.
func (l *Loader) Load(ctx context.Context, name string) (doc *Document, err error) {
	start := time.Now()
	defer func() {
		var size int64
		if doc != nil {
			size = int64(doc.Len())
		}
		elapsed := time.Since(start)
		l.opts.logger.LogLoad(ctx, name, size, elapsed, err)
		l.opts.metrics.RecordLoad(size, elapsed, err)
	}()

	src, err := ParseSource(name)
	if err != nil {
		return nil, err
	}

	doc, err = l.load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", src, err)
	}
	doc.Name = name
	return doc, nil
}

func (l *Loader) load(ctx context.Context, src Source) (*Document, error) {
	rc := l.opts.controller

	store, err := l.store(ctx, src)
	if err != nil {
		return nil, err
	}

	blob, err := store.Open(ctx, src.Key)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	size := blob.Size()

	// Owned buffers count against the limit while in flight.
	if _, mapped := blob.(blobstore.Mappable); !mapped {
		if err := rc.AcquireMemory(size); err != nil {
			return nil, err
		}
		defer rc.ReleaseMemory(size)

		if _, ok := blob.(blobstore.Downloader); ok {
			n, err := conv.Int64ToInt(size)
			if err != nil {
				return nil, err
			}
			if err := rc.AcquireIO(ctx, n); err != nil {
				return nil, err
			}
		}
	}

	data, _, err := blobstore.ReadAll(ctx, blob, func(r io.Reader) io.Reader {
		return resource.NewRateLimitedReader(ctx, r, rc)
	})
	if err != nil {
		return nil, err
	}

	codec := CodecFor(src.Key)
	if codec != CodecNone {
		var maxSize int64
		if limit := rc.MemoryLimit(); limit > 0 {
			maxSize = max(limit-rc.MemoryUsage(), 0)
		}
		plain, err := decompress(codec, data, maxSize)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", codec, err)
		}
		if err := rc.AcquireMemory(int64(len(plain))); err != nil {
			return nil, err
		}
		defer rc.ReleaseMemory(int64(len(plain)))
		data = plain
	}

	var out []byte
	if l.opts.raw {
		out = bytes.Clone(data)
	} else {
		out = normalize.Bytes(data)
	}

	if err := rc.AcquireMemory(int64(len(out))); err != nil {
		return nil, err
	}

	return &Document{
		Source:     src,
		Data:       out,
		RawSize:    size,
		Codec:      codec,
		controller: rc,
		reserved:   int64(len(out)),
	}, nil
}

// LoadAll loads every source concurrently, bounded by the controller's
// load workers, and returns the documents in input order. On error every
// document already loaded is released.
func (l *Loader) LoadAll(ctx context.Context, names []string) ([]*Document, error) {
	docs := make([]*Document, len(names))
	rc := l.opts.controller

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := rc.AcquireLoad(ctx); err != nil {
				return err
			}
			defer rc.ReleaseLoad()

			doc, err := l.Load(ctx, name)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		ReleaseAll(docs)
		return nil, err
	}
	return docs, nil
}
