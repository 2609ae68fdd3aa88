// Package resource bounds what document loading may consume.
//
// A Controller governs three resources:
//
//   - Memory: a hard cap on bytes held by loaded documents (non-blocking, fail-fast)
//   - Load workers: how many documents are fetched concurrently
//   - IO: a token bucket throttling bytes read from remote stores
//
// Memory reservations never block. AcquireMemory returns
// ErrMemoryLimitExceeded immediately and the caller aborts:
//
//	rc := resource.NewController(resource.Config{MemoryLimitBytes: 1 << 30})
//	if err := rc.AcquireMemory(int64(len(buf))); err != nil {
//	    return err
//	}
//	defer rc.ReleaseMemory(int64(len(buf)))
//
// All methods are safe for concurrent use and are no-ops on a nil Controller.
package resource
