// Package testutil generates deterministic documents for tests and
// benchmarks.
//
//	rng := testutil.NewRNG(seed)
//	target := rng.Text(10_000, testutil.Lowercase)
//	query := rng.Bytes(1_000)
//	rng.Plant(target, query[:200], 4096) // guarantee a shared substring
//
// This package is intended for use in tests and benchmarks only.
package testutil
