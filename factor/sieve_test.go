package factor_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drsaoudimo/Prime-Vector-Analyzer/factor"
)

// stripInt64s runs Strip and flattens the stripped factors to int64s.
func stripInt64s(t *testing.T, v int64) ([]int64, *big.Int) {
	t.Helper()
	small, residual := factor.Strip(big.NewInt(v))
	var out []int64
	for _, p := range small {
		require.True(t, p.IsInt64())
		out = append(out, p.Int64())
	}

	return out, residual
}

// TestStrip_Table pins the stripped multiset and residual for hand-picked
// inputs across the basis boundary.
func TestStrip_Table(t *testing.T) {
	cases := []struct {
		n        int64
		factors  []int64
		residual int64
	}{
		{1, nil, 1},
		{2, []int64{2}, 1},
		{100, []int64{2, 2, 5, 5}, 1},
		{91, []int64{7, 13}, 1}, // both primes inside the basis
		{1024, []int64{2, 2, 2, 2, 2, 2, 2, 2, 2, 2}, 1},
		{50653, []int64{37, 37, 37}, 1}, // cube of the basis ceiling
		{8051, nil, 8051},
		{1763, nil, 1763}, // 41·43 and 83·97 above it: coprime to the basis
		{82, []int64{2}, 41},
		{37 * 41, []int64{37}, 41}, // mixed: one basis prime, one beyond
	}
	for _, tc := range cases {
		got, residual := stripInt64s(t, tc.n)
		require.Equal(t, tc.factors, got, "Strip(%d) factors", tc.n)
		require.True(t, residual.IsInt64())
		require.Equal(t, tc.residual, residual.Int64(), "Strip(%d) residual", tc.n)
	}
}

// TestStrip_ProductInvariant multiplies the stripped factors back with the
// residual and requires the original value, over a deterministic random
// sample.
func TestStrip_ProductInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		v := rng.Int63n(1 << 40)
		if v < 1 {
			v = 1
		}
		n := big.NewInt(v)

		small, residual := factor.Strip(n)
		prod := new(big.Int).Set(residual)
		for _, p := range small {
			prod.Mul(prod, p)
		}
		require.Zero(t, prod.Cmp(n), "product invariant broken for %d", v)
	}
}

// TestStrip_ResidualCoprimeToBasis requires the residual to resist every
// basis prime, whatever the input.
func TestStrip_ResidualCoprimeToBasis(t *testing.T) {
	basis := []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}
	rng := rand.New(rand.NewSource(4))
	scratch := new(big.Int)
	for i := 0; i < 200; i++ {
		n := big.NewInt(rng.Int63n(1<<40) + 2)
		_, residual := factor.Strip(n)
		if residual.Cmp(big.NewInt(1)) == 0 {
			continue
		}
		for _, p := range basis {
			require.NotZero(t, scratch.Mod(residual, big.NewInt(p)).Sign(),
				"residual %s of %s still divisible by %d", residual, n, p)
		}
	}
}

// TestStrip_DoesNotMutateInput guards the ownership contract.
func TestStrip_DoesNotMutateInput(t *testing.T) {
	n := big.NewInt(1725413400)
	factor.Strip(n)
	require.Equal(t, "1725413400", n.String())
}

// TestStrip_DegenerateInputs covers the guard path for values callers
// should have rejected already.
func TestStrip_DegenerateInputs(t *testing.T) {
	small, residual := factor.Strip(nil)
	require.Empty(t, small)
	require.Zero(t, residual.Sign())

	small, residual = factor.Strip(big.NewInt(0))
	require.Empty(t, small)
	require.Zero(t, residual.Sign())

	small, residual = factor.Strip(big.NewInt(-42))
	require.Empty(t, small)
	require.Zero(t, residual.Sign())
}
