// Package refine implements adaptive uniform refinement for the composite
// Cavalieri–Simpson evaluator: double the subdivision count, re-evaluate,
// and stop once two consecutive approximations agree within tolerance or
// the iteration budget is exhausted.
//
// Overview:
//
//   - Level 0 computes I_0 = Simpson(f, a, b, m0). Each refinement level n
//     doubles the subdivision count and records I_n; the error estimate is
//     the signed difference I_n − I_(n−1), seeded to +Inf so the loop
//     always takes at least one refinement step under a finite tolerance.
//   - Uniform doubling is the whole strategy: there is no local or
//     recursive subdivision, and no other quadrature rule. Simpson's rule
//     is 4th-order accurate, so each doubling shrinks the true error by
//     roughly 16× on smooth integrands — the consecutive-difference
//     estimate inherits that rate.
//   - Because doubling preserves parity, validating m0 once (even, ≥ 2)
//     guarantees every later level is valid too.
//
// History policy:
//
//   - On convergence, History includes the final approximation — the entry
//     that satisfied the tolerance. It is the best estimate the run
//     produced; discarding it would force callers to redo one level to
//     recover the answer. After finishing level n, History holds exactly
//     n+1 entries.
//   - On budget exhaustion, History is returned whole, non-converged tail
//     included, with Converged=false. Non-convergence is a normal outcome
//     of the return contract, never an error.
//
// Collaborators:
//
//   - An optional Oracle supplies an independent high-accuracy reference
//     value (see the oracle package for the gonum-backed implementation).
//     It is called exactly once, before the loop, and is reporting-only:
//     the convergence test never sees it.
//   - An optional Observer receives every recorded level and may abort the
//     run; the partial history is still returned.
//
// Concurrency:
//
//   - One Refine call owns its history and loop state exclusively; nothing
//     is shared between calls. Independent runs may proceed in parallel
//     provided each supplied integrand is itself safe to call concurrently.
//
// Errors (sentinel):
//
//	– quadrature.ErrNilIntegrand, quadrature.ErrBadInterval,
//	  quadrature.ErrBadSubdivisions — propagated unwrapped from level 0.
//	– quadrature.ErrNonFiniteValue — propagated unwrapped from any level.
//	– ErrStopped          — conventional sentinel for Observer aborts.
//	– ErrBadTolerance     — panicked by WithTolerance on NaN or ≤ 0.
//	– ErrBadMaxIterations — panicked by WithMaxIterations on negatives.
//
// API reference:
//
//	func Refine(
//	    f quadrature.Integrand,
//	    a, b float64,
//	    m0 int,
//	    opts ...Option,
//	) (Result, error)
//
// Example usage:
//
//	res, err := refine.Refine(f, 0, 1, 2,
//	    refine.WithTolerance(1e-10),
//	    refine.WithMaxIterations(25),
//	    refine.WithReference(oracle.NewGaussLegendre()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Estimate(), res.Converged, res.Levels)
package refine
