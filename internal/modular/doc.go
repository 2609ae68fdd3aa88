// Package modular provides arithmetic modulo a fixed prime.
//
// Every rolling-hash computation is built from the three primitives exposed
// here (Add, Sub, Mul). All results stay in [0, P).
//
// # Modulus
//
// The modulus must satisfy P*256 < 2^64 so that shifting a residue by one
// byte never overflows before reduction:
//
//	m, err := modular.New(modular.DefaultPrime)
//	h := m.Add(m.Mul(h, 256), uint64(b))
//
// Primality is not enforced. A composite modulus only increases the hash
// collision rate, and every hash hit is verified byte-for-byte anyway.
package modular
