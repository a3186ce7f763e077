// Package factor orchestrates arbitrary-precision integer factorization:
// trial division for small primes, a primality oracle for classification,
// and parallel Brent-rho rounds for everything else.
//
// 🚀 What is it?
//
//	The top-level engine of the repository. Given a positive integer it
//	produces the ascending multiset of prime factors whose product
//	reconstructs the input. Factors the search cannot split within its
//	budget are returned as explicitly flagged unresolved composites
//	rather than errors, so the reconstruction invariant always holds.
//
// ✨ Pipeline (one Factorize call):
//   - parse: base-10 digit strings validated by ParseDecimal
//   - sieve: Strip divides out the fixed small-prime basis (≤ 37)
//   - reduce: a LIFO queue of cofactors; each is classified by
//     primality.IsPrime, reduced as a perfect prime power when possible,
//     or split by one rho.FindDivisor round
//   - assemble: factors sorted ascending, resolved flag, elapsed time
//
// ⚙️ Usage:
//
//	import "github.com/drsaoudimo/Prime-Vector-Analyzer/factor"
//
//	eng := factor.New(factor.DefaultOptions())
//	res, err := eng.FactorizeString(ctx, "1725413400")
//	if err != nil {
//	    // invalid input or cancelled context
//	}
//	for _, f := range res.Factors {
//	    fmt.Println(f.Value, f.Unresolved)
//	}
//
// Engines hold only configuration: every call owns its queue and its
// search rounds, so one engine may serve many goroutines, and concurrent
// calls share nothing.
//
// Guarantees:
//   - Product of all returned factor values equals the input for n ≥ 1,
//     unresolved factors included.
//   - Every factor not flagged unresolved passes primality.IsPrime.
//   - A cofactor that fails one search round is marked, never retried
//     forever.
//
// See example_test.go for runnable walkthroughs.
package factor
