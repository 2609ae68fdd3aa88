// Package bloom provides a fixed-size Bloom filter keyed by rolling-hash values.
//
// A Bloom filter can tell us definitively that a value is NOT in a set, but
// may report false positives when saying a value IS in the set. For batch
// chunk matching this is exactly what we need:
//   - "not present" → skip the window (always correct)
//   - "maybe present" → verify the window byte-for-byte against the chunks
//
// # Hash family
//
// Every value sets NumHashes bits. The i-th bit index is
//
//	HashI(i, x) = (x mod H1) + i*(x mod H2) + 1 + i*i    (mod bitCount)
//
// with two fixed primes H1 and H2, independent of the rolling-hash modulus.
//
// # Bit layout
//
// The bit array is packed into bytes with MSB-first addressing: bit b lives
// in byte b/8 at position 7-(b%8) counted from the least significant bit.
// Prefix and Format expose the raw bytes, so this layout is observable and
// must not change.
//
//	f, _ := bloom.New(80)
//	f.Add(12345)
//	f.MayContain(12345) // true
//	fmt.Println(f.Format(160))
package bloom
