// Package factor - the factorization engine.
package factor

import (
	"context"
	"math/big"
	"sort"
	"time"

	"github.com/drsaoudimo/Prime-Vector-Analyzer/primality"
	"github.com/drsaoudimo/Prime-Vector-Analyzer/rho"
)

// Engine factorizes positive integers. It holds configuration only:
// every call owns its work queue and search rounds, so a single Engine
// is safe for concurrent use by multiple goroutines.
//
// Construct instances explicitly with New; there is no package-level
// engine or hidden shared state.
type Engine struct {
	opts Options
}

// New returns an Engine with the given configuration. The zero Options
// value selects all defaults.
func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// FactorizeString parses a base-10 digit string and factorizes it.
// Parse failures (ErrEmptyInput, ErrNotDecimal, ErrBelowMinimum) return
// immediately with no computation.
func (e *Engine) FactorizeString(ctx context.Context, s string) (Result, error) {
	n, err := ParseDecimal(s)
	if err != nil {
		return Result{}, err
	}

	return e.Factorize(ctx, n)
}

// Factorize decomposes n into its ascending prime-factor multiset.
//
// Contracts:
//   - nil or n < 1: empty multiset, Resolved true (nothing to decompose).
//   - n == 1: the unit multiset {1}.
//   - Otherwise: small primes are stripped by trial division, then each
//     remaining cofactor is reduced LIFO: primes are appended, perfect
//     prime powers are expanded, and everything else gets one parallel
//     rho round. A cofactor whose round comes back empty (or equal to
//     the cofactor itself) is appended flagged Unresolved; it is never
//     retried, so the loop always terminates.
//   - n is not mutated; Result.Input carries a private copy.
//
// The product of the returned factors always reconstructs n for n ≥ 1,
// unresolved factors standing in for their unknown prime parts. The only
// error condition is context cancellation, observed between reductions
// and inside search rounds.
//
// Complexity: dominated by the rho rounds, expected O(n^(1/4)) modular
// multiplications per split; everything else is polynomial in log n.
func (e *Engine) Factorize(ctx context.Context, n *big.Int) (Result, error) {
	start := time.Now()
	if ctx == nil {
		ctx = context.Background()
	}

	if n == nil || n.Sign() < 1 {
		res := Result{Resolved: true, Elapsed: time.Since(start)}
		if n != nil {
			res.Input = new(big.Int).Set(n)
		}

		return res, nil
	}

	input := new(big.Int).Set(n)
	if input.Cmp(one) == 0 {
		return Result{
			Input:    input,
			Factors:  []Factor{{Value: big.NewInt(1)}},
			Resolved: true,
			Elapsed:  time.Since(start),
		}, nil
	}

	small, residual := Strip(input)
	factors := make([]Factor, 0, len(small)+4)
	for _, p := range small {
		factors = append(factors, Factor{Value: p})
	}

	// LIFO queue: the most recently produced cofactor is reduced next,
	// driving each branch of the factor tree to the bottom before the
	// next one starts.
	var queue []*big.Int
	if residual.Cmp(one) > 0 {
		queue = append(queue, residual)
	}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		m := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		if primality.IsPrime(m) {
			factors = append(factors, Factor{Value: m})
			continue
		}

		// Perfect prime powers would exhaust every rho lane; expand them
		// directly instead.
		if base, k, ok := splitPerfectPower(m); ok {
			for i := 0; i < k; i++ {
				queue = append(queue, new(big.Int).Set(base))
			}
			continue
		}

		d, err := e.split(ctx, m)
		if err != nil {
			return Result{}, err
		}
		if d.Sign() == 0 || d.Cmp(m) == 0 {
			// Budget exhausted on this cofactor: record it as-is and
			// move on rather than retrying forever.
			factors = append(factors, Factor{Value: m, Unresolved: true})
			continue
		}

		queue = append(queue, d, new(big.Int).Quo(m, d))
	}

	sort.Slice(factors, func(i, j int) bool {
		return factors[i].Value.Cmp(factors[j].Value) < 0
	})

	resolved := true
	for _, f := range factors {
		if f.Unresolved {
			resolved = false
			break
		}
	}

	return Result{
		Input:    input,
		Factors:  factors,
		Resolved: resolved,
		Elapsed:  time.Since(start),
	}, nil
}

// split runs one coordinator round for the odd composite m.
func (e *Engine) split(ctx context.Context, m *big.Int) (*big.Int, error) {
	return rho.FindDivisor(ctx, m, e.opts.Search)
}
