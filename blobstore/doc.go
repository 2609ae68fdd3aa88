// Package blobstore provides read access to documents kept on the local
// file system or in object storage.
//
// # Built-in Implementations
//
//   - LocalStore: local files, memory-mapped
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3 (and S3-compatible endpoints)
//   - minio.Store: MinIO
//
// Implement BlobStore to support other backends:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	}
//
// Blobs that can expose their bytes without copying also implement
// Mappable; ReadAll prefers that path.
package blobstore
