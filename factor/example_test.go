package factor_test

import (
	"context"
	"fmt"
	"math/big"

	"github.com/drsaoudimo/Prime-Vector-Analyzer/factor"
)

// ExampleEngine_FactorizeString factors a basis-smooth number; the sieve
// resolves it without any probabilistic search.
func ExampleEngine_FactorizeString() {
	// 1) One engine, default budgets.
	eng := factor.New(factor.DefaultOptions())

	// 2) Factor a digit string.
	res, err := eng.FactorizeString(context.Background(), "100")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Factors arrive ascending, repetition preserved.
	for _, f := range res.Factors {
		fmt.Println(f.Value)
	}
	fmt.Println("resolved:", res.Resolved)

	// Output:
	// 2
	// 2
	// 5
	// 5
	// resolved: true
}

// ExampleEngine_Factorize splits a semiprime beyond the sieve. The race
// inside the search is nondeterministic, but the sorted multiset is not.
func ExampleEngine_Factorize() {
	eng := factor.New(factor.DefaultOptions())

	// 8051 = 83 · 97; both primes exceed the trial-division basis.
	res, err := eng.Factorize(context.Background(), big.NewInt(8051))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, f := range res.Factors {
		fmt.Println(f.Value)
	}

	// Output:
	// 83
	// 97
}

// ExampleParseDecimal shows the input boundary: digits only, minimum 1.
func ExampleParseDecimal() {
	n, _ := factor.ParseDecimal("0091")
	fmt.Println(n)

	_, err := factor.ParseDecimal("12x")
	fmt.Println(err)

	_, err = factor.ParseDecimal("0")
	fmt.Println(err)

	// Output:
	// 91
	// factor: input must contain only decimal digits
	// factor: input must be at least 1
}

// ExampleResult_Product demonstrates the reconstruction invariant.
func ExampleResult_Product() {
	eng := factor.New(factor.DefaultOptions())

	res, err := eng.FactorizeString(context.Background(), "1725413400")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("reconstructs:", res.Product().String() == "1725413400")

	// Output:
	// reconstructs: true
}
