// Package rho - core types, options, and sentinel errors for the
// parallel divisor search.
//
// Errors (sentinel):
//
//	– ErrNilTarget      if the target pointer is nil.
//	– ErrTargetTooSmall if the target is below 4 (no proper divisor to find).
//	– ErrTargetEven     if the target is even (strip factors of two first).
//
// Options:
//
//	– Lanes:         number of concurrent search lanes per round.
//	– Timeout:       wall-clock budget for one coordinator round.
//	– MaxIterations: per-lane ceiling on f-evaluations.
//	– BatchSize:     steps accumulated between GCD evaluations.
//	– Seed:          base seed for lane parameter derivation (0 ⇒ fixed default).
package rho

import (
	"errors"
	"math/big"
	"runtime"
	"time"
)

// Sentinel errors returned by FindDivisor. The search itself never fails
// with an error: exhaustion is reported as a zero divisor.
var (
	// ErrNilTarget indicates that a nil *big.Int was passed as the target.
	ErrNilTarget = errors.New("rho: target is nil")

	// ErrTargetTooSmall indicates a target below 4; such values are units,
	// primes, or have no proper divisor worth a probabilistic search.
	ErrTargetTooSmall = errors.New("rho: target must be at least 4")

	// ErrTargetEven indicates an even target. The search assumes factors of
	// two were already removed by trial division.
	ErrTargetEven = errors.New("rho: target must be odd")
)

// Default budgets applied by Options normalization.
const (
	// DefaultTimeout bounds one coordinator round.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxIterations caps f-evaluations per lane (≈4.2M steps).
	DefaultMaxIterations uint64 = 1 << 22

	// DefaultBatchSize is the number of steps folded into the GCD
	// accumulator between gcd(q, n) evaluations.
	DefaultBatchSize uint64 = 256
)

// minLanes is the floor applied when Lanes is unset; small machines still
// get enough parameter diversity to escape unlucky constants.
const minLanes = 4

// Status classifies how a single lane finished.
type Status uint8

const (
	// StatusExhausted means the lane hit its iteration ceiling without
	// locating a divisor.
	StatusExhausted Status = iota

	// StatusFound means the lane produced a divisor candidate. The value
	// may still be degenerate (1 or n) and must be verified by the caller.
	StatusFound

	// StatusCancelled means the round context was cancelled mid-search.
	StatusCancelled
)

// String returns a short lowercase label, used in logs and test output.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusExhausted:
		return "exhausted"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Outcome is the terminal report of one search lane.
//
// Divisor is never nil; it is meaningful only when Status == StatusFound
// (zero otherwise). Iterations counts f-evaluations actually performed,
// backtracking included.
type Outcome struct {
	Lane       int      // index of the reporting lane
	Status     Status   // how the lane finished
	Divisor    *big.Int // candidate divisor (unverified; zero unless found)
	Iterations uint64   // f-evaluations spent
}

// Options configures both a single Search lane and a FindDivisor round.
//
// The zero value is usable: normalization replaces every unset field with
// its default.
type Options struct {
	// Lanes is the number of concurrent search lanes raced per round.
	// 0 ⇒ max(4, GOMAXPROCS).
	Lanes int

	// Timeout bounds one coordinator round. Search itself ignores it and
	// observes only ctx and MaxIterations. 0 ⇒ DefaultTimeout.
	Timeout time.Duration

	// MaxIterations is the per-lane ceiling on f-evaluations.
	// 0 ⇒ DefaultMaxIterations.
	MaxIterations uint64

	// BatchSize is the number of steps between GCD evaluations.
	// 0 ⇒ DefaultBatchSize.
	BatchSize uint64

	// Seed drives deterministic lane parameter derivation.
	// 0 ⇒ fixed default stream (same policy for every run).
	Seed int64
}

// DefaultOptions returns the canonical configuration: default budgets,
// lane count resolved from the machine, fixed deterministic seed stream.
func DefaultOptions() Options {
	return Options{
		Lanes:         defaultLanes(),
		Timeout:       DefaultTimeout,
		MaxIterations: DefaultMaxIterations,
		BatchSize:     DefaultBatchSize,
		Seed:          0,
	}
}

// normalized returns a copy with every unset field replaced by its
// default. Idempotent; both Search and FindDivisor apply it on entry.
func (o Options) normalized() Options {
	if o.Lanes <= 0 {
		o.Lanes = defaultLanes()
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.BatchSize == 0 {
		o.BatchSize = DefaultBatchSize
	}

	return o
}

// defaultLanes resolves the lane count for Lanes == 0.
func defaultLanes() int {
	n := runtime.GOMAXPROCS(0)
	if n < minLanes {
		n = minLanes
	}

	return n
}

// Shared small constants; read-only after init.
var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
	four  = big.NewInt(4)
)
