// Package factor - result model, configuration, and sentinel errors.
//
// Errors (sentinel):
//
//	– ErrEmptyInput   if the input string has no characters.
//	– ErrNotDecimal   if the input string holds anything but digits 0-9.
//	– ErrBelowMinimum if the parsed value is below 1.
package factor

import (
	"errors"
	"math/big"
	"time"

	"github.com/drsaoudimo/Prime-Vector-Analyzer/rho"
)

// Sentinel errors returned by input parsing. The engine itself fails only
// on context cancellation; factorization shortfalls are data, not errors.
var (
	// ErrEmptyInput indicates an empty input string.
	ErrEmptyInput = errors.New("factor: input is empty")

	// ErrNotDecimal indicates a character outside the digits 0-9; signs,
	// spaces, and separators are all rejected.
	ErrNotDecimal = errors.New("factor: input must contain only decimal digits")

	// ErrBelowMinimum indicates a value below the domain minimum of 1.
	ErrBelowMinimum = errors.New("factor: input must be at least 1")
)

// Factor is one element of the result multiset.
//
// Unresolved marks a composite the search could not split within budget;
// the value stands in place of its unknown prime factors so the product
// invariant survives.
type Factor struct {
	Value      *big.Int // prime factor, the unit 1, or an unresolved composite
	Unresolved bool     // true when Value is a composite left unsplit
}

// Result is the outcome of one Factorize call.
type Result struct {
	Input    *big.Int      // copy of the factorized value (nil input stays nil)
	Factors  []Factor      // ascending by Value, repetition allowed
	Resolved bool          // false when any factor is Unresolved
	Elapsed  time.Duration // wall-clock time of the call
}

// Product multiplies every factor value, unresolved composites included.
// For inputs ≥ 1 it always reconstructs Input; the empty result (inputs
// below 1) yields the empty product 1.
func (r Result) Product() *big.Int {
	prod := big.NewInt(1)
	for _, f := range r.Factors {
		prod.Mul(prod, f.Value)
	}

	return prod
}

// Options configures an Engine.
//
// The zero value is usable: an all-default search configuration.
type Options struct {
	// Search configures every divisor round the engine delegates to the
	// rho package (lane count, timeout, iteration ceiling, seed).
	Search rho.Options
}

// DefaultOptions returns the canonical engine configuration.
func DefaultOptions() Options {
	return Options{Search: rho.DefaultOptions()}
}

// one is shared read-only across the package.
var one = big.NewInt(1)
