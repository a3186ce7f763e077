package report

import "github.com/drsaoudimo/Prime-Vector-Analyzer/factor"

// Class labels a factorization result by the shape of its multiset.
type Class uint8

const (
	// ClassEmpty marks the empty multiset (inputs below 1).
	ClassEmpty Class = iota

	// ClassUnit marks the sentinel multiset {1}: neither prime nor composite.
	ClassUnit

	// ClassPrime marks a single resolved factor - the input itself.
	ClassPrime

	// ClassSemiprime marks exactly two resolved factors (p·q or p²).
	ClassSemiprime

	// ClassComposite marks three or more resolved factors.
	ClassComposite

	// ClassCompositePartial marks a multiset containing at least one
	// unresolved composite residual: factorization incomplete.
	ClassCompositePartial
)

// String returns the lowercase label used in summaries and CLI output.
func (c Class) String() string {
	switch c {
	case ClassEmpty:
		return "empty"
	case ClassUnit:
		return "unit"
	case ClassPrime:
		return "prime"
	case ClassSemiprime:
		return "semiprime"
	case ClassComposite:
		return "composite"
	case ClassCompositePartial:
		return "composite (partial)"
	default:
		return "unknown"
	}
}

// Classify derives the class of a result from its multiset alone.
//
// Rules, in order: no factors ⇒ Empty; any unresolved factor ⇒
// CompositePartial; the single factor 1 ⇒ Unit; one factor ⇒ Prime;
// two ⇒ Semiprime; more ⇒ Composite.
func Classify(res factor.Result) Class {
	if len(res.Factors) == 0 {
		return ClassEmpty
	}
	for _, f := range res.Factors {
		if f.Unresolved {
			return ClassCompositePartial
		}
	}
	if len(res.Factors) == 1 {
		if res.Factors[0].Value != nil && res.Factors[0].Value.Cmp(unit) == 0 {
			return ClassUnit
		}

		return ClassPrime
	}
	if len(res.Factors) == 2 {
		return ClassSemiprime
	}

	return ClassComposite
}
