package quadrature

import (
	"errors"
	"fmt"
	"math"
)

// Integrand maps a real scalar to a real scalar. It must be defined and
// finite on the closed interval of integration and is treated as pure:
// the evaluator never retries, caches, or reorders calls to it.
type Integrand func(x float64) float64

// Sentinel errors returned by the Simpson evaluator.
var (
	// ErrNilIntegrand indicates that a nil Integrand was supplied.
	ErrNilIntegrand = errors.New("quadrature: integrand is nil")

	// ErrBadInterval indicates that the interval bounds are non-finite
	// or not strictly increasing (a < b is required).
	ErrBadInterval = errors.New("quadrature: interval bounds must be finite with a < b")

	// ErrBadSubdivisions indicates that the subdivision count is not a
	// positive even integer. Simpson's rule pairs interior nodes into
	// odd/even groups, which an odd count cannot provide.
	ErrBadSubdivisions = errors.New("quadrature: subdivision count must be a positive even integer")

	// ErrNonFiniteValue indicates that the integrand produced NaN or ±Inf
	// at a required node. The returned error wraps this sentinel together
	// with the offending node; match it with errors.Is.
	ErrNonFiniteValue = errors.New("quadrature: integrand returned a non-finite value")
)

// Simpson returns one composite Cavalieri–Simpson approximation of the
// integral of f over [a,b] using m equal subintervals.
//
// Validation happens before any evaluation work: f must be non-nil, the
// bounds finite with a < b, and m a positive even integer. f is then
// called exactly m+1 times, at nodes x_i = a + i·h in ascending order,
// and the weighted sum is accumulated in that same order.
func Simpson(f Integrand, a, b float64, m int) (float64, error) {
	if f == nil {
		return 0, ErrNilIntegrand
	}
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) || a >= b {
		return 0, fmt.Errorf("[a,b]=[%g,%g]: %w", a, b, ErrBadInterval)
	}
	if m < 2 || m%2 != 0 {
		return 0, fmt.Errorf("m=%d: %w", m, ErrBadSubdivisions)
	}

	h := (b - a) / float64(m)

	// Single ascending pass: endpoints weigh 1, odd-indexed nodes weigh 4,
	// even-indexed interior nodes weigh 2. Each node is evaluated once.
	var sum float64
	for i := 0; i <= m; i++ {
		x := a + float64(i)*h
		y := f(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return 0, fmt.Errorf("f(%g)=%g: %w", x, y, ErrNonFiniteValue)
		}
		switch {
		case i == 0 || i == m:
			sum += y
		case i%2 == 1:
			sum += 4 * y
		default:
			sum += 2 * y
		}
	}

	return h * sum / 3, nil
}
