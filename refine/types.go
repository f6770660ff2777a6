// Package refine defines configuration options and result types for the
// adaptive step-halving driver built on the quadrature evaluator.
package refine

import (
	"errors"
	"math"

	"github.com/katalvlaran/cavalieri/quadrature"
)

// Sentinel errors returned (or panicked from Option constructors) by Refine.
var (
	// ErrStopped is returned when a caller-supplied Observer aborts the
	// refinement loop. The partial history gathered so far is still
	// returned alongside it, with Converged=false.
	ErrStopped = errors.New("refine: stopped by observer")

	// ErrBadTolerance indicates that WithTolerance was given NaN, zero,
	// or a negative value. +Inf is allowed and means "any agreement is
	// good enough" (every level satisfies it immediately).
	ErrBadTolerance = errors.New("refine: tolerance must be positive")

	// ErrBadMaxIterations indicates that WithMaxIterations was given a
	// negative budget. Zero is allowed and means "no refinement beyond
	// level 0".
	ErrBadMaxIterations = errors.New("refine: MaxIterations must be non-negative")
)

// Oracle produces an independent high-accuracy estimate of the integral of
// f over [a,b], within the given absolute tolerance. Refine treats it as a
// black box used exactly once, before the refinement loop, strictly for
// reporting: its value never feeds the convergence test.
type Oracle interface {
	Integrate(f quadrature.Integrand, a, b, tol float64) (float64, error)
}

// OracleFunc adapts a plain function to the Oracle interface.
type OracleFunc func(f quadrature.Integrand, a, b, tol float64) (float64, error)

// Integrate calls fn.
func (fn OracleFunc) Integrate(f quadrature.Integrand, a, b, tol float64) (float64, error) {
	return fn(f, a, b, tol)
}

// Observer is invoked after each recorded refinement level with the level
// index, the subdivision count used, the new approximation, and the signed
// difference to the previous approximation (+Inf at level 0, where the
// error estimate is only seeded). Returning a non-nil error aborts the
// loop; return ErrStopped when no more specific cause applies.
type Observer func(level, m int, approximation, delta float64) error

// Options configures one adaptive refinement run.
//
// Tolerance     – absolute agreement threshold between two consecutive approximations. Default 1e-8.
// MaxIterations – hard cap on refinement levels beyond level 0. Default 20.
// Reference     – optional reporting-only Oracle; nil means no reference.
// ReferenceTol  – absolute tolerance handed to the Oracle. Default 1e-12.
// Observer      – optional per-level callback; nil means silent.
type Options struct {
	Tolerance     float64
	MaxIterations int
	Reference     Oracle
	ReferenceTol  float64
	Observer      Observer
}

// Option represents a functional option for configuring Refine.
type Option func(*Options)

// WithTolerance sets the absolute-error convergence threshold applied to
// the difference between consecutive approximations.
// Must be positive; NaN, zero, or negative values cause ErrBadTolerance.
// math.Inf(1) is accepted and marks every level as immediately satisfied.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if math.IsNaN(tol) || tol <= 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations caps the number of refinement levels beyond level 0.
// Zero disables refinement entirely (only the initial approximation is
// computed); negative values cause ErrBadMaxIterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithReference attaches a reporting-only Oracle. It is consulted exactly
// once, before the loop, and its value lands in Result.Reference without
// influencing which approximations are computed.
func WithReference(oracle Oracle) Option {
	return func(o *Options) {
		o.Reference = oracle
	}
}

// WithReferenceFunc is WithReference for a bare function.
func WithReferenceFunc(fn OracleFunc) Option {
	return func(o *Options) {
		o.Reference = fn
	}
}

// WithReferenceTolerance sets the absolute tolerance handed to the Oracle.
// Must be positive; invalid values cause ErrBadTolerance.
func WithReferenceTolerance(tol float64) Option {
	return func(o *Options) {
		if math.IsNaN(tol) || tol <= 0 {
			panic(ErrBadTolerance.Error())
		}
		o.ReferenceTol = tol
	}
}

// WithObserver registers a per-level callback.
func WithObserver(fn Observer) Option {
	return func(o *Options) {
		o.Observer = fn
	}
}

// DefaultOptions returns an Options struct initialized with the package
// defaults. Use this as a starting point for further functional-options
// overrides.
//
// Defaults:
//   - Tolerance:     1e-8  (absolute agreement between consecutive levels).
//   - MaxIterations: 20    (hard cap on refinement levels).
//   - Reference:     nil   (no reference oracle; Result.Reference is NaN).
//   - ReferenceTol:  1e-12 (oracle accuracy, when an oracle is attached).
//   - Observer:      nil   (no per-level callback).
func DefaultOptions() Options {
	return Options{
		Tolerance:     1e-8,
		MaxIterations: 20,
		ReferenceTol:  1e-12,
	}
}

// Result reports one adaptive refinement run.
//
// History holds the Simpson approximation per refinement level, ascending;
// on convergence it includes the final entry that satisfied the tolerance,
// on budget exhaustion it is the full unfiltered sequence. Reference is
// the oracle's value (NaN when HasReference is false). LastDelta is the
// signed difference between the two most recent approximations (+Inf when
// only level 0 was computed). Evaluations counts integrand calls made by
// the evaluator across all levels.
type Result struct {
	History      []float64
	Reference    float64
	HasReference bool
	Converged    bool
	Levels       int
	LastDelta    float64
	Evaluations  int
}

// Estimate returns the most recent approximation, the best value this run
// produced. It is meaningful whether or not the run converged.
func (r Result) Estimate() float64 {
	if len(r.History) == 0 {
		return math.NaN()
	}

	return r.History[len(r.History)-1]
}
