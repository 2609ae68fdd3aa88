package document

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/rkmatch/internal/resource"
)

// Codec is the compression applied to a stored document.
type Codec uint8

const (
	CodecNone Codec = iota
	CodecZstd
	CodecGzip
	CodecLZ4
)

func (c Codec) String() string {
	switch c {
	case CodecZstd:
		return "zstd"
	case CodecGzip:
		return "gzip"
	case CodecLZ4:
		return "lz4"
	default:
		return "none"
	}
}

// CodecFor picks the codec from the name's extension.
func CodecFor(name string) Codec {
	switch strings.ToLower(path.Ext(name)) {
	case ".zst", ".zstd":
		return CodecZstd
	case ".gz", ".gzip":
		return CodecGzip
	case ".lz4":
		return CodecLZ4
	default:
		return CodecNone
	}
}

var zstdDecoderPool sync.Pool

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// decompress returns data decoded with c. CodecNone returns data itself.
// maxSize bounds the decoded size; zero means unbounded.
func decompress(c Codec, data []byte, maxSize int64) ([]byte, error) {
	switch c {
	case CodecNone:
		return data, nil
	case CodecZstd:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer putZstdDecoder(dec)
		if maxSize > 0 {
			// DecodeAll has no output bound, so stream through the limit.
			if err := dec.Reset(bytes.NewReader(data)); err != nil {
				return nil, err
			}
			return readLimited(dec, maxSize)
		}
		return dec.DecodeAll(data, nil)
	case CodecGzip:
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return readLimited(zr, maxSize)
	case CodecLZ4:
		return readLimited(lz4.NewReader(bytes.NewReader(data)), maxSize)
	default:
		return nil, fmt.Errorf("unknown codec %d", c)
	}
}

func readLimited(r io.Reader, maxSize int64) ([]byte, error) {
	if maxSize <= 0 {
		return io.ReadAll(r)
	}
	out, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(out)) > maxSize {
		return nil, fmt.Errorf("%w: decompressed size exceeds %d bytes", resource.ErrMemoryLimitExceeded, maxSize)
	}
	return out, nil
}
