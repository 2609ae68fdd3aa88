// Package document loads the documents rkmatch compares.
//
// A document is named by a source string: a local path (optionally
// file://), s3://bucket/key, minio://bucket/key, or mem://name for an
// in-memory store registered on the Loader. The Loader fetches the blob,
// decompresses it by extension (.zst, .gz, .lz4) and normalizes it:
// ASCII letters are lowercased, whitespace runs collapse to one space and
// leading and trailing whitespace is dropped.
//
//	l := document.NewLoader(document.WithController(rc))
//	docs, err := l.LoadAll(ctx, []string{"query.txt", "s3://corpus/a.txt.zst"})
//	if err != nil { ... }
//	defer document.ReleaseAll(docs)
//
// Memory held by loaded documents is reserved against the Loader's
// resource controller until Release is called.
package document
