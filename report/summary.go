package report

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/drsaoudimo/Prime-Vector-Analyzer/factor"
)

// unit is the sentinel value of the {1} multiset.
var unit = big.NewInt(1)

// SummaryFactor is one multiset element rendered for machine consumption.
type SummaryFactor struct {
	Value      string `json:"value"`
	Unresolved bool   `json:"unresolved,omitempty"`
}

// Summary is a flat, JSON-ready view of a factorization result. Factor
// values are decimal strings: arbitrary-precision integers do not survive
// float-based JSON numbers.
type Summary struct {
	Input    string          `json:"input"`
	Class    string          `json:"class"`
	Factors  []SummaryFactor `json:"factors"`
	Resolved bool            `json:"resolved"`
	Elapsed  string          `json:"elapsed"`
}

// Summarize flattens res for encoding. A nil input renders as "0".
func Summarize(res factor.Result) Summary {
	s := Summary{
		Input:    inputString(res),
		Class:    Classify(res).String(),
		Factors:  make([]SummaryFactor, 0, len(res.Factors)),
		Resolved: res.Resolved,
		Elapsed:  res.Elapsed.String(),
	}
	for _, f := range res.Factors {
		s.Factors = append(s.Factors, SummaryFactor{
			Value:      f.Value.String(),
			Unresolved: f.Unresolved,
		})
	}

	return s
}

// Text renders res as the fixed-format block the CLI prints:
//
//	input:    8051
//	class:    semiprime
//	resolved: true
//	elapsed:  1.2ms
//	factors:
//	  83
//	  97
//
// Unresolved factors carry an "(unresolved)" suffix; an empty multiset
// renders a single "(none)" line.
func Text(res factor.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "input:    %s\n", inputString(res))
	fmt.Fprintf(&b, "class:    %s\n", Classify(res))
	fmt.Fprintf(&b, "resolved: %t\n", res.Resolved)
	fmt.Fprintf(&b, "elapsed:  %s\n", res.Elapsed)
	b.WriteString("factors:\n")

	if len(res.Factors) == 0 {
		b.WriteString("  (none)\n")

		return b.String()
	}
	for _, f := range res.Factors {
		if f.Unresolved {
			fmt.Fprintf(&b, "  %s (unresolved)\n", f.Value)
			continue
		}
		fmt.Fprintf(&b, "  %s\n", f.Value)
	}

	return b.String()
}

// inputString renders the factorized value, tolerating the nil-input
// degenerate result.
func inputString(res factor.Result) string {
	if res.Input == nil {
		return "0"
	}

	return res.Input.String()
}
