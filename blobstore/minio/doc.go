// Package minio reads documents from a MinIO server.
//
//	store, err := minio.New(minio.Config{
//	    Endpoint:  "localhost:9000",
//	    AccessKey: "minioadmin",
//	    SecretKey: "minioadmin",
//	}, "corpus", "")
//	blob, err := store.Open(ctx, "doc.txt")
package minio
