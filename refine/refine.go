package refine

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cavalieri/quadrature"
)

// Refine drives the composite Simpson evaluator with a doubling
// subdivision count until two consecutive approximations agree within
// Options.Tolerance or the iteration budget runs out.
//
// Level 0 records evaluate(f, a, b, m0); each further level doubles m,
// records the new approximation, and updates the error estimate
// I_n - I_(n-1). The error estimate is seeded to +Inf, so with a finite
// tolerance at least one refinement step always follows level 0.
//
// On convergence Result.Converged is true and History includes the final
// approximation, the one that satisfied the tolerance. On budget
// exhaustion Converged is false and History is the full unfiltered
// sequence, so callers can still inspect every intermediate value.
//
// Argument errors from the evaluator (nil integrand, bad interval, odd or
// non-positive m0) and non-finite integrand values propagate unwrapped;
// the loop performs no catch or retry. Since doubling preserves parity,
// an even m0 can never turn invalid mid-loop.
func Refine(f quadrature.Integrand, a, b float64, m0 int, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res := Result{Reference: math.NaN(), LastDelta: math.Inf(1)}

	// Level 0 validates every argument via the evaluator itself.
	approx, err := quadrature.Simpson(f, a, b, m0)
	if err != nil {
		return res, err
	}

	// The oracle runs once, before the loop, and only for reporting.
	if o.Reference != nil {
		ref, oerr := o.Reference.Integrate(f, a, b, o.ReferenceTol)
		if oerr != nil {
			return res, fmt.Errorf("refine: reference integral: %w", oerr)
		}
		res.Reference = ref
		res.HasReference = true
	}

	history := make([]float64, 0, o.MaxIterations+1)
	history = append(history, approx)

	m := m0
	level := 0
	delta := math.Inf(1)
	evaluations := m0 + 1

	if o.Observer != nil {
		if cberr := o.Observer(level, m, approx, delta); cberr != nil {
			return fill(res, history, level, delta, evaluations, false), cberr
		}
	}

	for level < o.MaxIterations && !withinTolerance(delta, o.Tolerance) {
		m *= 2
		level++

		approx, err = quadrature.Simpson(f, a, b, m)
		if err != nil {
			return fill(res, history, level-1, delta, evaluations, false), err
		}
		history = append(history, approx)
		delta = approx - history[level-1]
		evaluations += m + 1

		if o.Observer != nil {
			if cberr := o.Observer(level, m, approx, delta); cberr != nil {
				return fill(res, history, level, delta, evaluations, false), cberr
			}
		}
	}

	return fill(res, history, level, delta, evaluations, withinTolerance(delta, o.Tolerance)), nil
}

// withinTolerance reports whether the error estimate satisfies tol.
// An infinite tolerance is trivially satisfied, even by the +Inf seed.
func withinTolerance(delta, tol float64) bool {
	return math.Abs(delta) < tol || math.IsInf(tol, 1)
}

// fill completes a Result with the loop state at the point of return.
func fill(res Result, history []float64, level int, delta float64, evaluations int, converged bool) Result {
	res.History = history
	res.Levels = level
	res.LastDelta = delta
	res.Evaluations = evaluations
	res.Converged = converged

	return res
}
