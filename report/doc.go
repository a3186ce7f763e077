// Package report is the presentation boundary of the factorization
// engine: it derives a classification label from a factor multiset and
// renders results as text blocks or JSON-ready summaries.
//
// The package offers three pure functions over factor.Result:
//
//   - Classify:  Unit / Prime / Semiprime / Composite / CompositePartial / Empty,
//     a function of the multiset alone; no arithmetic is re-done here.
//   - Summarize: a flat, stable view with decimal-string factors, meant
//     for JSON encoding and machine consumption.
//   - Text:      a fixed-format human block for terminal output.
//
// Nothing in this package feeds back into the engine: scoring, charts,
// and interactive state stay outside the module, and classification
// carries no success or failure semantics beyond what the multiset shows.
package report
