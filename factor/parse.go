// Package factor - input boundary.
package factor

import "math/big"

// ParseDecimal converts a base-10 digit string into the engine's input
// domain.
//
// Contracts:
//   - Only the characters 0-9 are accepted: no signs, spaces, or digit
//     separators. Leading zeros are fine ("0091" parses as 91).
//   - The value must be at least 1; "0" (in any spelling) is rejected.
//
// Errors: ErrEmptyInput, ErrNotDecimal, ErrBelowMinimum. Validation is
// immediate; no factorization work happens here.
//
// Complexity: O(len(s)).
func ParseDecimal(s string) (*big.Int, error) {
	if len(s) == 0 {
		return nil, ErrEmptyInput
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, ErrNotDecimal
		}
	}

	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		// Unreachable after the digit scan above.
		return nil, ErrNotDecimal
	}
	if n.Sign() < 1 {
		return nil, ErrBelowMinimum
	}

	return n, nil
}
