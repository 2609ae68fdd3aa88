// Package rkmatch measures how much of a query document occurs verbatim in a
// target document.
//
// The query is cut into fixed-length chunks of k bytes (the trailing partial
// chunk is discarded) and every chunk is searched for in the target. Three
// algorithms are available:
//
//	Naive      brute-force comparison per chunk (reference)
//	RabinKarp  rolling-hash search per chunk, hash hits verified bytewise
//	Batch      all chunk hashes in a Bloom filter, one pass over the target
//
// # Quick Start
//
//	m, _ := rkmatch.New(rkmatch.WithAlgorithm(rkmatch.Batch), rkmatch.WithChunkSize(50))
//	res, _ := m.Match(ctx, query, target)
//	fmt.Println(res) // 0.75 matched: 3 out of 4
//
// Inputs are matched as given. Use the document package to load, decompress
// and normalize documents from local files, S3 or MinIO.
//
// # Counting
//
// Naive and RabinKarp count each chunk at most once. Batch counts every
// confirmed chunk-to-window pair, so a chunk occurring twice in the target
// counts twice and the ratio may exceed 1. Result.Distinct holds the set of
// chunk indices matched at least once in every mode.
package rkmatch
