// Package rho - single-lane Brent search.
//
// Algorithm (Brent 1980, "An improved Monte Carlo factorization algorithm"):
//
//	Iterate f(v) = (v² + c) mod n. The anchor x is parked at the hare's
//	position each time the doubling budget r is exhausted; the hare y then
//	runs r more steps. Products |x−y| are folded into an accumulator
//	q mod n, and gcd(q, n) is evaluated once per batch. A gcd of n means
//	the batch overshot the first collision, so the hare replays the batch
//	one step at a time from the checkpoint ys taking a gcd per step.
//
// Design:
//   - Deterministic: no randomness here; all diversity lives in Params.
//   - Pure: same (n, p, opts) ⇒ same Outcome. The target n is never mutated.
//   - Hot-path discipline: all big.Int scratch is allocated once up front;
//     the inner loops perform no allocations beyond math/big's own growth.
//   - Cooperative cancellation: ctx is polled on a masked step counter.
package rho

import (
	"context"
	"math/big"
)

// cancelMask throttles context polling to one check per 1024 steps,
// keeping cancellation latency bounded at a negligible per-step cost.
const cancelMask = 1<<10 - 1

// Search runs one Brent lane over the composite n with parameters p.
//
// Contracts:
//   - n should be an odd composite ≥ 4 with no small prime factors;
//     nil or n < 4 returns StatusExhausted immediately.
//   - p must come from DeriveParams or Perturb (nil fields ⇒ exhausted).
//   - opts.MaxIterations caps f-evaluations exactly; opts.BatchSize sets
//     the GCD cadence; opts.Timeout and opts.Lanes are ignored here.
//
// The returned divisor is a candidate only: it always divides n when
// Status == StatusFound, but may equal n itself when the orbit collapsed
// (the caller decides whether to retry with perturbed parameters).
//
// Complexity: expected O(n^(1/4)) modular multiplications to surface the
// smallest prime factor; O(log n) scratch space.
func Search(ctx context.Context, n *big.Int, p Params, opts Options) Outcome {
	opts = opts.normalized()
	if ctx == nil {
		ctx = context.Background()
	}
	if n == nil || n.Cmp(four) < 0 || p.C == nil || p.Y0 == nil {
		return laneOutcome(p.Lane, StatusExhausted, nil, 0)
	}

	// Scratch state, allocated once. q starts at 1 and is never reset:
	// it accumulates |x−y| products across batches until a gcd fires.
	var (
		x     = new(big.Int)           // anchor: hare position at budget start
		y     = new(big.Int).Set(p.Y0) // hare
		ys    = new(big.Int)           // checkpoint for backtracking
		q     = new(big.Int).Set(one)  // batch accumulator ∏|x−y| mod n
		g     = new(big.Int).Set(one)  // last gcd result
		t     = new(big.Int)           // |x−y| scratch
		r     = uint64(1)              // doubling budget
		steps = uint64(0)              // f-evaluations performed
	)

	// advance applies one polynomial step in place: v ← (v² + c) mod n.
	advance := func(v *big.Int) {
		v.Mul(v, v)
		v.Add(v, p.C)
		v.Mod(v, n)
	}

	for g.Cmp(one) == 0 {
		// Phase 1: park the anchor and run the hare r steps ahead.
		x.Set(y)
		for i := uint64(0); i < r; i++ {
			if steps >= opts.MaxIterations {
				return laneOutcome(p.Lane, StatusExhausted, nil, steps)
			}
			advance(y)
			steps++
			if steps&cancelMask == 0 && ctx.Err() != nil {
				return laneOutcome(p.Lane, StatusCancelled, nil, steps)
			}
		}

		// Phase 2: batched collision scan within the current budget.
		for k := uint64(0); k < r && g.Cmp(one) == 0; k += opts.BatchSize {
			ys.Set(y)
			batch := opts.BatchSize
			if rem := r - k; rem < batch {
				batch = rem
			}
			for i := uint64(0); i < batch; i++ {
				if steps >= opts.MaxIterations {
					break
				}
				advance(y)
				steps++
				t.Sub(x, y)
				t.Abs(t)
				q.Mul(q, t)
				q.Mod(q, n)
				if steps&cancelMask == 0 && ctx.Err() != nil {
					return laneOutcome(p.Lane, StatusCancelled, nil, steps)
				}
			}
			// One gcd amortized over the whole batch; q ≡ 0 shows up
			// here as gcd == n and is resolved by backtracking below.
			g.GCD(nil, nil, q, n)
			if steps >= opts.MaxIterations && g.Cmp(one) == 0 {
				return laneOutcome(p.Lane, StatusExhausted, nil, steps)
			}
		}
		r <<= 1
	}

	if g.Cmp(n) == 0 {
		// Overshoot: the batch folded in the collision step together with
		// later steps. Replay one step at a time from the checkpoint,
		// taking a gcd per step, to isolate the first collision.
		g.Set(one)
		for g.Cmp(one) == 0 {
			if steps >= opts.MaxIterations {
				return laneOutcome(p.Lane, StatusExhausted, nil, steps)
			}
			advance(ys)
			steps++
			if steps&cancelMask == 0 && ctx.Err() != nil {
				return laneOutcome(p.Lane, StatusCancelled, nil, steps)
			}
			t.Sub(x, ys)
			t.Abs(t)
			g.GCD(nil, nil, t, n)
		}
		// g ∈ (1, n]; g == n here means the orbit collapsed entirely and
		// this parameter set cannot split n (degenerate round).
	}

	return laneOutcome(p.Lane, StatusFound, g, steps)
}

// laneOutcome assembles an Outcome with a non-nil divisor slot.
func laneOutcome(lane int, st Status, divisor *big.Int, steps uint64) Outcome {
	if divisor == nil {
		divisor = new(big.Int)
	}

	return Outcome{Lane: lane, Status: st, Divisor: divisor, Iterations: steps}
}
