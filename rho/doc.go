// Package rho implements a parallel Pollard rho divisor search using
// Brent's cycle-detection variant with batched GCD accumulation.
//
// 🚀 What is it?
//
//	The probabilistic workhorse of the factorization engine.  Given an
//	odd composite n, every search lane iterates the polynomial
//	f(v) = (v² + c) mod n from its own starting point and watches the
//	orbit for a collision modulo an unknown prime factor.  Brent's
//	variant detects the collision with one f-evaluation per step, and a
//	batch accumulator q = ∏|x−y| mod n amortizes one GCD over many
//	steps.  Several lanes with independently derived constants race in
//	parallel; the first verified divisor wins the round.
//
// ✨ Key features:
//   - Brent cycle detection: doubling budget r, anchor x, hare y
//   - batched GCD (BatchSize steps per gcd) with single-step backtracking
//     from the last checkpoint when the batch overshoots (gcd == n)
//   - deterministic lane diversification: per-lane (c, y0) derived from
//     an explicit seed through a SplitMix64 avalanche stream
//   - cooperative cancellation: hot loops poll ctx on a masked counter,
//     so a cancelled round stops within ~1024 modular steps
//   - degenerate rounds (divisor 1 or n) retried once with a perturbed
//     constant before the lane gives up
//
// ⚙️ Usage:
//
//	import "github.com/drsaoudimo/Prime-Vector-Analyzer/rho"
//
//	n, _ := new(big.Int).SetString("8051", 10) // 83 · 97
//	d, err := rho.FindDivisor(ctx, n, rho.DefaultOptions())
//	if err != nil {
//	    // invalid target or cancelled context
//	}
//	if d.Sign() == 0 {
//	    // budget exhausted: no divisor located, not an error
//	}
//
// Failure is data: a round that exhausts its iteration ceiling or its
// wall-clock budget returns a zero divisor and a nil error.  Sentinel
// errors are reserved for misuse (nil, too small, or even targets) and
// for parent-context cancellation.
//
// Performance:
//
//   - Expected O(n^(1/4)) modular multiplications to find the smallest
//     prime factor p (birthday bound on the orbit modulo p).
//   - Memory: O(log n) scratch per lane; lanes share nothing mutable.
//
// See example_test.go for runnable walkthroughs.
package rho
