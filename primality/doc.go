// Package primality provides a fast deterministic-for-bounded-range
// primality oracle for arbitrary-precision integers.
//
// 🚀 What is it?
//
//	A Miller-Rabin strong-pseudoprime test over a fixed, ordered witness
//	set (the first 13 primes, 2..41).  It is the classification oracle
//	behind the factorization engine: every candidate cofactor is asked
//	"prime or composite?" before any divisor search is attempted.
//
// ✨ Guarantees:
//   - Exact for every n below 3.317e24 (≈ 2^81): with witnesses 2..41 the
//     test is a proven deterministic primality criterion in that range.
//   - One-sided beyond: a prime is never rejected; a composite slips
//     through only if it is a strong pseudoprime to all 13 witnesses at
//     once, which is astronomically unlikely for the magnitudes the
//     engine targets.  No hard bound is enforced on inputs.
//   - Pure and stateless: no caching, no randomness, no goroutines;
//     repeated calls with the same argument always agree.
//
// ⚙️ Usage:
//
//	import "github.com/drsaoudimo/Prime-Vector-Analyzer/primality"
//
//	n, _ := new(big.Int).SetString("1000000000000066600000000000001", 10)
//	if primality.IsPrime(n) {
//	    // Belphegor's prime, certified by all witnesses
//	}
//
// Performance:
//
//   - Time:   O(w · log³ n) for w = 13 witnesses (modular exponentiation
//     dominates; math/big uses Montgomery multiplication internally).
//   - Memory: O(log n) scratch for the running square chain.
package primality
