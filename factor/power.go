// Package factor - perfect-power reduction.
//
// Perfect prime powers (p^k with one distinct prime) are the canonical
// input the rho orbit cannot split: every gcd collapses to n itself.
// Detecting n = base^k up front turns that worst case into k queue
// entries for base, which the oracle then certifies directly.
package factor

import (
	"math/big"

	"github.com/drsaoudimo/Prime-Vector-Analyzer/primality"
)

// splitPerfectPower reports whether n = base^k for some prime exponent
// k ≥ 2, returning the smallest such exponent. Prime exponents suffice:
// if n = b^m with m composite, then n = (b^(m/p))^p for any prime p
// dividing m, and the queue reduces the composite base further.
//
// Contracts:
//   - n must be ≥ 2; smaller values report ok == false.
//   - ok == false leaves base == nil and k == 0.
//
// Complexity: O(log n) candidate exponents, each a Newton root of
// O(log log n) big multiplications.
func splitPerfectPower(n *big.Int) (base *big.Int, k int, ok bool) {
	if n == nil || n.Cmp(one) <= 0 {
		return nil, 0, false
	}

	// A k-th root below 2 cannot reconstruct n, so k never exceeds
	// bitlen-1 (2^k ≤ n).
	maxK := n.BitLen() - 1
	kb := new(big.Int)
	pow := new(big.Int)
	for exp := 2; exp <= maxK; exp++ {
		kb.SetInt64(int64(exp))
		if !primality.IsPrime(kb) {
			continue
		}

		root := kthRoot(n, exp)
		if root.Cmp(one) <= 0 {
			continue
		}
		if pow.Exp(root, kb, nil).Cmp(n) == 0 {
			return root, exp, true
		}
	}

	return nil, 0, false
}

// kthRoot computes floor(n^(1/k)) for n ≥ 1, k ≥ 2.
//
// Newton iteration on integers: start from a power of two guaranteed to
// be at or above the root, then descend via
//
//	x' = ((k−1)·x + n / x^(k−1)) / k
//
// which is monotonically decreasing until it lands on the floor.
func kthRoot(n *big.Int, k int) *big.Int {
	if k == 2 {
		return new(big.Int).Sqrt(n)
	}

	// 2^ceil(bitlen/k) ≥ n^(1/k): a safe starting point above the root.
	x := new(big.Int).Lsh(one, uint((n.BitLen()+k-1)/k))

	var (
		bk  = big.NewInt(int64(k))
		bk1 = big.NewInt(int64(k - 1))
		t   = new(big.Int)
		u   = new(big.Int)
	)
	for {
		t.Exp(x, bk1, nil) // x^(k−1)
		t.Quo(n, t)        // n / x^(k−1)
		u.Mul(bk1, x)
		t.Add(t, u)
		t.Quo(t, bk)
		if t.Cmp(x) >= 0 {
			return x
		}
		x.Set(t)
	}
}
