package blobstore

import (
	"context"
	"fmt"
	"io"
)

// ReadAll returns the full contents of b.
//
// Mappable blobs are returned without copying; the slice is then only valid
// until b is closed and must not be modified. Downloader blobs fetch
// themselves. Other blobs are streamed through wrap (if not nil), which lets
// callers throttle or meter the read.
func ReadAll(ctx context.Context, b Blob, wrap func(io.Reader) io.Reader) ([]byte, bool, error) {
	if m, ok := b.(Mappable); ok {
		data, err := m.Bytes()
		return data, true, err
	}

	if d, ok := b.(Downloader); ok {
		data, err := d.Download(ctx)
		return data, false, err
	}

	size := b.Size()
	rc, err := b.ReadRange(ctx, 0, size)
	if err != nil {
		return nil, false, err
	}
	defer rc.Close()

	var r io.Reader = rc
	if wrap != nil {
		r = wrap(r)
	}

	buf := make([]byte, size)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return nil, false, fmt.Errorf("read %d of %d bytes: %w", n, size, err)
	}
	return buf, false, nil
}
