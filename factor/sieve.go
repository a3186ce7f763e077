// Package factor - small-prime trial division.
package factor

import "math/big"

// basis is the fixed trial-division front line: the twelve primes up to
// 37, the same small primes that anchor the oracle's witness list. Larger
// factors are the rho search's job.
var basis = [...]int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// Strip divides n by each basis prime while divisible, returning the
// stripped factors in ascending order and the remaining cofactor.
//
// Contracts:
//   - n is not mutated; callers keep ownership.
//   - residual == 1 means the basis fully factored n.
//   - residual > 1 is coprime to every basis prime (needs deeper search).
//   - nil or non-positive n (callers validate first) yields no factors
//     and a zero residual.
//
// Complexity: O(len(basis) · divisions); each division is O(len(n) words).
func Strip(n *big.Int) (small []*big.Int, residual *big.Int) {
	if n == nil || n.Sign() < 1 {
		return nil, new(big.Int)
	}

	residual = new(big.Int).Set(n)

	var (
		p = new(big.Int)
		q = new(big.Int)
		r = new(big.Int)
	)
	for _, v := range basis {
		p.SetInt64(v)
		for {
			q.QuoRem(residual, p, r)
			if r.Sign() != 0 {
				break
			}
			residual.Set(q)
			small = append(small, big.NewInt(v))
			if residual.Cmp(one) == 0 {
				return small, residual
			}
		}
	}

	return small, residual
}
