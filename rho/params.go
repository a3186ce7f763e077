// Package rho - deterministic lane parameter derivation.
//
// This file centralizes all randomness used by the divisor search.
//
// Goals:
//   - Determinism: same (seed, lane, n) ⇒ identical parameters on every
//     platform and every run.
//   - Independence: lanes draw from decorrelated streams, so a pool of
//     lanes explores genuinely different orbits.
//   - Safety: derived constants always avoid the degenerate polynomials
//     c ≡ 0 and c ≡ −2 (mod n), whose orbits collapse without revealing
//     a factor.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Derivation happens once per
//     lane at launch; the resulting Params are read-only afterwards.
package rho

import (
	"math/big"
	"math/rand"
)

// defaultSeed is the fixed “zero” seed used when callers pass Seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// perturbStream offsets the stream id space used by Perturb so a retried
// lane can never reproduce a first-attempt stream of any lane index.
const perturbStream uint64 = 0x5052494d45 // "PRIME"

// Params seeds one search lane: the polynomial constant c of
// f(v) = (v² + c) mod n, the starting point y0, and the lane index used
// for outcome attribution. Immutable once derived.
type Params struct {
	Lane int      // lane index, echoed in the Outcome
	C    *big.Int // additive constant of the iteration polynomial
	Y0   *big.Int // starting point of the orbit
}

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed via a SplitMix64-style avalanche finalizer (Vigna 2014).
// Small input changes produce large, well-distributed output changes,
// which keeps per-lane streams decorrelated.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveParams builds the parameters for one lane deterministically from
// (seed, lane, n). Policy: seed==0 ⇒ defaultSeed, matching the rest of
// the package's reproducible-default convention.
//
// Ranges:
//   - C  ∈ [1, n−3]: excludes c ≡ 0 and c ≡ −2 (mod n).
//   - Y0 ∈ [2, n−2]: excludes the fixed points 0, 1 and the mirror n−1.
//
// Complexity: O(log n) to draw two uniform big integers.
func DeriveParams(seed int64, lane int, n *big.Int) Params {
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(deriveSeed(seed, uint64(lane))))

	return drawParams(lane, rng, n)
}

// Perturb derives a replacement parameter set for the same lane by
// remixing the current constants through the avalanche finalizer. Used
// for the single retry after a degenerate round; the perturbed stream
// cannot collide with any first-attempt stream.
func (p Params) Perturb(n *big.Int) Params {
	parent := defaultSeed
	if p.C != nil && p.Y0 != nil {
		parent = int64(p.C.Uint64() ^ (p.Y0.Uint64() << 1))
	}
	rng := rand.New(rand.NewSource(deriveSeed(parent, perturbStream+uint64(p.Lane))))

	return drawParams(p.Lane, rng, n)
}

// drawParams draws (C, Y0) uniformly from their safe ranges. For nil or
// pathologically small n the span collapses to a single admissible value.
func drawParams(lane int, rng *rand.Rand, n *big.Int) Params {
	// span = n−3 bounds both draws: Rand yields [0, span−1], so
	// C = 1+draw ∈ [1, n−3] and Y0 = 2+draw ∈ [2, n−2].
	span := new(big.Int).Set(one)
	if n != nil {
		if s := new(big.Int).Sub(n, three); s.Sign() > 0 {
			span.Set(s)
		}
	}

	c := new(big.Int).Rand(rng, span)
	c.Add(c, one)

	y0 := new(big.Int).Rand(rng, span)
	y0.Add(y0, two)

	return Params{Lane: lane, C: c, Y0: y0}
}
