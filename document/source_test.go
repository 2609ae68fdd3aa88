package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSource(t *testing.T) {
	tests := []struct {
		in      string
		want    Source
		wantErr error
	}{
		{"query.txt", Source{Scheme: SchemeFile, Key: "query.txt"}, nil},
		{"/abs/path/doc", Source{Scheme: SchemeFile, Key: "/abs/path/doc"}, nil},
		{"file:///tmp/doc.gz", Source{Scheme: SchemeFile, Key: "/tmp/doc.gz"}, nil},
		{"s3://bucket/dir/key.zst", Source{Scheme: SchemeS3, Bucket: "bucket", Key: "dir/key.zst"}, nil},
		{"S3://bucket/key", Source{Scheme: SchemeS3, Bucket: "bucket", Key: "key"}, nil},
		{"minio://corpus/a.txt", Source{Scheme: SchemeMinio, Bucket: "corpus", Key: "a.txt"}, nil},
		{"mem://query", Source{Scheme: SchemeMemory, Key: "query"}, nil},
		{"", Source{}, ErrInvalidSource},
		{"s3://bucket", Source{}, ErrInvalidSource},
		{"s3:///key", Source{}, ErrInvalidSource},
		{"mem://", Source{}, ErrInvalidSource},
		{"file://", Source{}, ErrInvalidSource},
		{"gs://bucket/key", Source{}, ErrUnsupportedScheme},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSource(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSourceString(t *testing.T) {
	for _, s := range []string{"doc.txt", "s3://b/k", "minio://b/k/x", "mem://q"} {
		src, err := ParseSource(s)
		require.NoError(t, err)
		assert.Equal(t, s, src.String())
	}

	src, err := ParseSource("s3://b/k")
	require.NoError(t, err)
	assert.True(t, src.Remote())
}

func TestCodecFor(t *testing.T) {
	tests := map[string]Codec{
		"a.txt":        CodecNone,
		"a":            CodecNone,
		"a.txt.zst":    CodecZstd,
		"dir/a.ZSTD":   CodecZstd,
		"a.txt.gz":     CodecGzip,
		"a.lz4":        CodecLZ4,
		"archive.gz/x": CodecNone,
	}
	for name, want := range tests {
		assert.Equal(t, want, CodecFor(name), name)
	}
}
