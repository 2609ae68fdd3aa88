package document

import (
	"errors"
	"fmt"
	"strings"
)

// Scheme identifies the store a Source resolves to.
type Scheme string

const (
	SchemeFile   Scheme = "file"
	SchemeS3     Scheme = "s3"
	SchemeMinio  Scheme = "minio"
	SchemeMemory Scheme = "mem"
)

var (
	// ErrUnsupportedScheme is returned for a source with an unknown scheme.
	ErrUnsupportedScheme = errors.New("unsupported source scheme")

	// ErrInvalidSource is returned for a malformed source string.
	ErrInvalidSource = errors.New("invalid source")
)

// Source locates a document.
type Source struct {
	Scheme Scheme
	// Bucket is set for object-store schemes.
	Bucket string
	// Key is the path, object key or in-memory name.
	Key string
}

// ParseSource parses a command-line document argument. Strings without a
// scheme are local paths.
func ParseSource(s string) (Source, error) {
	if s == "" {
		return Source{}, fmt.Errorf("%w: empty", ErrInvalidSource)
	}

	scheme, rest, ok := strings.Cut(s, "://")
	if !ok {
		return Source{Scheme: SchemeFile, Key: s}, nil
	}

	switch Scheme(strings.ToLower(scheme)) {
	case SchemeFile:
		if rest == "" {
			return Source{}, fmt.Errorf("%w: %q has no path", ErrInvalidSource, s)
		}
		return Source{Scheme: SchemeFile, Key: rest}, nil
	case SchemeMemory:
		if rest == "" {
			return Source{}, fmt.Errorf("%w: %q has no name", ErrInvalidSource, s)
		}
		return Source{Scheme: SchemeMemory, Key: rest}, nil
	case SchemeS3, SchemeMinio:
		bucket, key, _ := strings.Cut(rest, "/")
		if bucket == "" || key == "" {
			return Source{}, fmt.Errorf("%w: %q must be %s://bucket/key", ErrInvalidSource, s, scheme)
		}
		return Source{Scheme: Scheme(strings.ToLower(scheme)), Bucket: bucket, Key: key}, nil
	default:
		return Source{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}
}

// Remote reports whether the source lives in an object store.
func (s Source) Remote() bool {
	return s.Scheme == SchemeS3 || s.Scheme == SchemeMinio
}

func (s Source) String() string {
	switch s.Scheme {
	case SchemeFile:
		return s.Key
	case SchemeS3, SchemeMinio:
		return string(s.Scheme) + "://" + s.Bucket + "/" + s.Key
	default:
		return string(s.Scheme) + "://" + s.Key
	}
}
