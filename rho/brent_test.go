package rho_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drsaoudimo/Prime-Vector-Analyzer/rho"
)

// searchOpts is a single-lane configuration with room to spare for the
// small targets used here.
func searchOpts() rho.Options {
	return rho.Options{
		Lanes:         1,
		MaxIterations: 1 << 20,
		BatchSize:     64,
	}
}

// requireProperDivisor asserts 1 < d < n and d | n.
func requireProperDivisor(t *testing.T, d, n *big.Int) {
	t.Helper()
	require.Equal(t, 1, d.Cmp(big.NewInt(1)), "divisor must exceed 1, got %s", d)
	require.Equal(t, -1, d.Cmp(n), "divisor must be proper, got %s for n=%s", d, n)
	require.Zero(t, new(big.Int).Mod(n, d).Sign(), "%s does not divide %s", d, n)
}

// TestSearch_SplitsKnownSemiprimes runs single lanes over classic rho
// targets and requires a proper divisor from at least one derived stream
// per target (individual streams may legitimately hit a degenerate orbit).
func TestSearch_SplitsKnownSemiprimes(t *testing.T) {
	targets := []int64{
		8051,  // 83 · 97, the textbook Brent example
		10403, // 101 · 103
		91,    // 7 · 13
	}
	for _, v := range targets {
		n := big.NewInt(v)

		split := false
		for lane := 0; lane < 8 && !split; lane++ {
			out := rho.Search(context.Background(), n, rho.DeriveParams(1, lane, n), searchOpts())
			if out.Status == rho.StatusFound && out.Divisor.Cmp(n) < 0 {
				requireProperDivisor(t, out.Divisor, n)
				split = true
			}
		}
		require.True(t, split, "no lane split %d", v)
	}
}

// TestSearch_Semiprime64 splits the product of two well-known 30-bit
// primes, a target far beyond any trial-division reach.
func TestSearch_Semiprime64(t *testing.T) {
	p := big.NewInt(1000000007)
	q := big.NewInt(1000000009)
	n := new(big.Int).Mul(p, q)

	split := false
	for lane := 0; lane < 4 && !split; lane++ {
		out := rho.Search(context.Background(), n, rho.DeriveParams(1, lane, n), rho.Options{
			Lanes:         1,
			MaxIterations: 1 << 22,
			BatchSize:     256,
		})
		if out.Status != rho.StatusFound || out.Divisor.Cmp(n) >= 0 {
			continue
		}
		requireProperDivisor(t, out.Divisor, n)
		require.True(t, out.Divisor.Cmp(p) == 0 || out.Divisor.Cmp(q) == 0,
			"a semiprime's proper divisor must be one of its primes, got %s", out.Divisor)
		split = true
	}
	require.True(t, split, "no lane split the 60-bit semiprime")
}

// TestSearch_Deterministic requires the full outcome (status, divisor,
// iteration count) to be identical across repeated runs with the same
// parameters.
func TestSearch_Deterministic(t *testing.T) {
	n := big.NewInt(8051)
	p := rho.DeriveParams(3, 0, n)
	opts := searchOpts()

	first := rho.Search(context.Background(), n, p, opts)
	for i := 0; i < 3; i++ {
		again := rho.Search(context.Background(), n, p, opts)
		require.Equal(t, first.Status, again.Status)
		require.Zero(t, first.Divisor.Cmp(again.Divisor))
		require.Equal(t, first.Iterations, again.Iterations)
	}
}

// TestSearch_PrimeTargetCollapses pins the degenerate path: on a prime
// target the only gcd above 1 is n itself, so the lane reports Found(n)
// and leaves the retry decision to the coordinator.
func TestSearch_PrimeTargetCollapses(t *testing.T) {
	n := big.NewInt(101)
	out := rho.Search(context.Background(), n, rho.DeriveParams(1, 0, n), searchOpts())

	require.Equal(t, rho.StatusFound, out.Status)
	require.Zero(t, out.Divisor.Cmp(n), "prime target must collapse to n, got %s", out.Divisor)
}

// TestSearch_ExhaustsOnCeiling gives a hard semiprime a tiny iteration
// budget and requires a clean exhaustion report within that budget.
func TestSearch_ExhaustsOnCeiling(t *testing.T) {
	m61 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 61), big.NewInt(1))
	m89 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 89), big.NewInt(1))
	n := new(big.Int).Mul(m61, m89)

	opts := rho.Options{MaxIterations: 4096, BatchSize: 64}
	out := rho.Search(context.Background(), n, rho.DeriveParams(1, 0, n), opts)

	require.Equal(t, rho.StatusExhausted, out.Status)
	require.LessOrEqual(t, out.Iterations, opts.MaxIterations)
	require.Zero(t, out.Divisor.Sign(), "exhausted lane must carry a zero divisor")
}

// TestSearch_CancelledContext requires prompt cooperative cancellation:
// the lane must notice a dead context within one polling window.
func TestSearch_CancelledContext(t *testing.T) {
	m61 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 61), big.NewInt(1))
	m89 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 89), big.NewInt(1))
	n := new(big.Int).Mul(m61, m89)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // dead before the first step

	out := rho.Search(ctx, n, rho.DeriveParams(1, 0, n), rho.Options{})
	require.Equal(t, rho.StatusCancelled, out.Status)
	require.LessOrEqual(t, out.Iterations, uint64(4096),
		"cancellation must land within a few polling windows, took %d steps", out.Iterations)
}

// TestSearch_DegenerateInputs covers the guard paths: nil targets,
// sub-threshold targets, and zero-valued parameter sets.
func TestSearch_DegenerateInputs(t *testing.T) {
	opts := searchOpts()
	p := rho.DeriveParams(1, 0, big.NewInt(8051))

	out := rho.Search(context.Background(), nil, p, opts)
	require.Equal(t, rho.StatusExhausted, out.Status)
	require.Zero(t, out.Iterations)

	out = rho.Search(context.Background(), big.NewInt(3), p, opts)
	require.Equal(t, rho.StatusExhausted, out.Status)

	out = rho.Search(context.Background(), big.NewInt(8051), rho.Params{Lane: 5}, opts)
	require.Equal(t, rho.StatusExhausted, out.Status)
	require.Equal(t, 5, out.Lane, "lane attribution survives the guard path")
}
