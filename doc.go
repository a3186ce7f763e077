// Package primevector factors arbitrary-precision integers into ascending
// prime multisets, racing parallel Brent-rho lanes behind a deterministic
// Miller-Rabin oracle.
//
// 🚀 What is primevector?
//
//	A self-contained factorization engine that brings together:
//		• Primality: deterministic-witness Miller-Rabin (first 13 primes)
//		• Trial division: a fixed sieve over the primes up to 37
//		• Perfect powers: integer k-th root splitting before any search
//		• Pollard rho: Brent's cycle variant with batched gcd accumulation
//		• Parallel rounds: seeded lanes race for the first proper divisor
//		• Reporting: classification, text blocks and JSON summaries
//
// ✨ Why choose primevector?
//
//   - Deterministic by default – a fixed seed stream makes runs reproducible
//   - Failure is data – budget exhaustion yields unresolved factors, not errors
//   - Cancellation-aware – every search respects context deadlines mid-batch
//   - Product-safe – the emitted multiset always reconstructs the input
//
// Under the hood, everything is organized under five subpackages:
//
//	primality/       — deterministic-witness Miller-Rabin oracle
//	rho/             — Brent-rho lanes, seeded params & the parallel coordinator
//	factor/          — parsing, sieve, perfect powers & the factorization engine
//	report/          — classification, text rendering & JSON summaries
//	cmd/primevector/ — the command-line front end
//
// Quick pipeline sketch:
//
//	"8051" ─▶ parse ─▶ sieve ─▶ rho lanes ×N ─▶ 83 · 97
//
//	every composite survivor of the sieve is either proven prime or
//	split again; budget exhaustion marks it unresolved instead.
//
// Each subpackage carries its own contract docs and runnable examples.
//
//	go get github.com/drsaoudimo/Prime-Vector-Analyzer
package primevector
