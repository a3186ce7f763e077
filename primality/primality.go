// Package primality - Miller-Rabin oracle over the fixed witness set.
//
// Design principles:
//   - Deterministic: a fixed, ordered witness list; no random bases.
//   - Allocation-conscious: one scratch big.Int reused across the square
//     chain of every witness; witnesses themselves are int64 constants.
//   - No sentinels: the contract is a pure predicate, so malformed input
//     (nil, negative) maps to "not prime" rather than an error.
package primality

import "math/big"

// witnesses is the fixed ordered base list: the first 13 primes.
// Sorensen & Webster proved this set decides primality exactly for all
// n < 3,317,044,064,679,887,385,961,981 (≈ 3.317e24); beyond that bound
// the test stays one-sided (composites may pass, primes never fail).
var witnesses = [...]int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

// Small shared constants. Treated as read-only everywhere in this package.
var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// IsPrime reports whether n is prime.
//
// Contracts:
//   - nil and every n < 2 are not prime.
//   - 2 and 3 are prime; every other even n is not.
//   - For odd n ≥ 5 the Miller-Rabin round runs per witness a in order:
//     write n−1 = d·2^s with d odd, compute x = a^d mod n, pass if
//     x ∈ {1, n−1} or any of the s−1 squarings of x reaches n−1.
//   - A witness a ≥ n terminates the loop with "prime": every composite
//     below the current witness has already been rejected by the smaller
//     bases, so nothing remains to test.
//
// Complexity: O(w · log³ n) time, O(log n) space, w = len(witnesses).
func IsPrime(n *big.Int) bool {
	// 1) Terminal small cases: nil, n < 2, n ∈ {2,3}, even n.
	if n == nil || n.Cmp(two) < 0 {
		return false
	}
	if n.Cmp(three) <= 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}

	// 2) Decompose n−1 = d·2^s with d odd.
	nMinus1 := new(big.Int).Sub(n, one)
	s := nMinus1.TrailingZeroBits()
	d := new(big.Int).Rsh(nMinus1, s)

	// 3) Run the witness rounds in order; any failing witness certifies
	//    compositeness, so we return early.
	var (
		a = new(big.Int) // current witness value
		x = new(big.Int) // scratch for the power / square chain
	)
	for _, w := range witnesses {
		a.SetInt64(w)
		// Witness not below n ⇒ all smaller bases already vouched for n.
		if n.Cmp(a) <= 0 {
			return true
		}
		if !passes(n, nMinus1, d, s, a, x) {
			return false
		}
	}

	// 4) Every witness passed.
	return true
}

// passes runs one Miller-Rabin round for witness a against odd n ≥ 5,
// reusing x as scratch. n−1 = d·2^s is precomputed by the caller.
func passes(n, nMinus1, d *big.Int, s uint, a, x *big.Int) bool {
	// x = a^d mod n.
	x.Exp(a, d, n)
	if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
		return true
	}
	// Square up to s−1 times; reaching n−1 means a is not a compositeness
	// witness for n. Reaching 1 without passing n−1 can only happen for a
	// composite n, so falling through to "fail" is correct there too.
	for i := uint(1); i < s; i++ {
		x.Mul(x, x).Mod(x, n)
		if x.Cmp(nMinus1) == 0 {
			return true
		}
	}

	return false
}

// Witnesses returns a copy of the fixed ordered witness list used by
// IsPrime. Exposed for reporting and for cross-checking tests; mutating
// the returned slice has no effect on the oracle.
func Witnesses() []int64 {
	out := make([]int64, len(witnesses))
	copy(out, witnesses[:])

	return out
}
