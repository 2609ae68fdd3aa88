// Package s3 reads documents from Amazon S3 or any S3-compatible endpoint.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithRegion("us-east-1"),
//	)
//	blob, err := store.Open(ctx, "corpus/doc.txt.zst")
//
// Whole-document reads go through the SDK's transfer manager, which fetches
// large objects as parallel ranged GETs.
package s3
