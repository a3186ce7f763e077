package primality_test

import (
	"fmt"
	"math/big"

	"github.com/drsaoudimo/Prime-Vector-Analyzer/primality"
)

// ExampleIsPrime classifies a handful of candidates, including a Carmichael
// number (561) that defeats plain Fermat testing.
func ExampleIsPrime() {
	// 1) Values to classify.
	candidates := []int64{2, 97, 100, 561, 7919}

	// 2) Ask the oracle about each one.
	for _, v := range candidates {
		fmt.Printf("%d %v\n", v, primality.IsPrime(big.NewInt(v)))
	}

	// Output:
	// 2 true
	// 97 true
	// 100 false
	// 561 false
	// 7919 true
}

// ExampleIsPrime_mersenne certifies the Mersenne prime 2^61−1, a value far
// outside any small-prime table.
func ExampleIsPrime_mersenne() {
	// 1) Build 2^61−1 without a hand-typed literal.
	m61 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 61), big.NewInt(1))

	// 2) Certify it.
	fmt.Println(m61, primality.IsPrime(m61))

	// Output:
	// 2305843009213693951 true
}
