// Package rho - parallel round coordination.
//
// A round launches opts.Lanes goroutines, each running an independent
// Brent lane over its own copy of the target, and races them over a
// buffered outcome channel. The first verified proper divisor cancels
// the round; exhaustion and timeout are normal data-carrying outcomes,
// not errors.
//
// Design:
//   - One terminal outcome per lane, full channel buffering: a losing
//     lane can always complete its send and exit, winner or not.
//   - Degenerate rounds (divisor 1 or n) are retried once inside the
//     lane with perturbed parameters, then abandoned.
//   - No lane outlives the call: the winner path cancels and waits for
//     the pool before returning.
package rho

import (
	"context"
	"math/big"
	"sync"
)

// FindDivisor races a pool of Brent lanes to locate one proper divisor
// of n.
//
// Contracts:
//   - n must be non-nil, ≥ 4, and odd (strip small primes first);
//     violations return the matching sentinel with no work done.
//   - A successful round returns g with 1 < g < n and n mod g == 0.
//   - A round that exhausts every lane or its wall-clock budget returns
//     a zero divisor and a nil error: "no divisor located" is a normal
//     outcome for this probabilistic search.
//   - Parent context cancellation returns (nil, ctx.Err()).
//
// Determinism: lane parameters depend only on (opts.Seed, lane, n), but
// which verified divisor wins the race depends on scheduling. Callers
// needing full reproducibility run a single lane via Search.
//
// Complexity: expected O(n^(1/4)) modular multiplications on the winning
// lane; O(Lanes) goroutines and channel slots per round.
func FindDivisor(ctx context.Context, n *big.Int, opts Options) (*big.Int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if n == nil {
		return nil, ErrNilTarget
	}
	if n.Cmp(four) < 0 {
		return nil, ErrTargetTooSmall
	}
	if n.Bit(0) == 0 {
		return nil, ErrTargetEven
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts = opts.normalized()

	roundCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	// Each lane sends exactly one terminal outcome; buffering the full
	// pool width means no lane ever blocks on send after the round ends.
	results := make(chan Outcome, opts.Lanes)

	var wg sync.WaitGroup
	wg.Add(opts.Lanes)
	for lane := 0; lane < opts.Lanes; lane++ {
		go func(lane int) {
			defer wg.Done()
			results <- runLane(roundCtx, lane, n, opts)
		}(lane)
	}

	// Close results once every lane has reported, so the receive loop can
	// tell "all lanes done" from "still racing".
	go func() {
		wg.Wait()
		close(results)
	}()

	for out := range results {
		if out.Status != StatusFound {
			continue
		}
		if !isProperDivisor(out.Divisor, n) {
			// Degenerate even after the in-lane retry; abandon the lane.
			continue
		}

		// First verified divisor wins: stop the remaining lanes and wait
		// for them so no goroutine outlives the call.
		cancel()
		wg.Wait()

		return out.Divisor, nil
	}

	// Every lane exhausted, collapsed, or was cancelled. A dead parent
	// means the caller gave up; anything else is a normal empty round.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return new(big.Int), nil
}

// runLane executes one lane over a private copy of the target, retrying
// once with perturbed parameters when the first attempt collapses to a
// degenerate divisor.
func runLane(ctx context.Context, lane int, n *big.Int, opts Options) Outcome {
	// Private copy: big.Int is not safe for concurrent mutation, and the
	// caller still holds n while lanes run.
	target := new(big.Int).Set(n)

	p := DeriveParams(opts.Seed, lane, target)
	out := Search(ctx, target, p, opts)
	if out.Status == StatusFound && !isProperDivisor(out.Divisor, target) {
		out = Search(ctx, target, p.Perturb(target), opts)
	}

	return out
}

// isProperDivisor reports whether 1 < g < n and g divides n evenly. The
// gcd construction already guarantees divisibility; the Mod check stays
// as the last line of defence before a divisor reaches a caller.
func isProperDivisor(g, n *big.Int) bool {
	if g == nil || g.Cmp(one) <= 0 || g.Cmp(n) >= 0 {
		return false
	}

	return new(big.Int).Mod(n, g).Sign() == 0
}
