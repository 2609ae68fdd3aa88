// Package match finds fixed-length query chunks inside a target document.
//
// Three strategies are provided:
//
//   - Naive: compare the pattern at every offset (reference algorithm)
//   - RabinKarp: compare rolling hashes, verify bytes on a hash hit
//   - Batch: insert every chunk hash into a Bloom filter, scan the target
//     once and verify each "maybe" window against all chunks
//
// All functions are pure: inputs are never modified and no state survives a
// call. Buffers are expected to be normalized already.
package match
