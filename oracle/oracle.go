package oracle

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/katalvlaran/cavalieri/quadrature"
)

// Sentinel errors returned by the Gauss–Legendre oracle.
var (
	// ErrBadTolerance indicates a NaN, zero, or negative absolute tolerance.
	ErrBadTolerance = errors.New("oracle: tolerance must be positive")

	// ErrNoConvergence indicates that successive Gauss–Legendre estimates
	// never agreed within tolerance before the node budget ran out.
	ErrNoConvergence = errors.New("oracle: estimates did not agree within tolerance")
)

// Node-count bounds for the doubling scheme.
const (
	defaultInitialNodes = 8
	defaultMaxNodes     = 1 << 16
)

// GaussLegendre estimates integrals with gonum's fixed-location
// Gauss–Legendre rule, evaluated at doubling node counts until two
// successive estimates agree within the requested absolute tolerance.
//
// It shares no code with the Simpson evaluator, which keeps it an
// independent reference for error reporting.
type GaussLegendre struct {
	// InitialNodes is the first node count tried. Defaults to 8.
	InitialNodes int

	// MaxNodes caps the doubling scheme. Defaults to 65536.
	MaxNodes int
}

// NewGaussLegendre returns a GaussLegendre oracle with default bounds.
func NewGaussLegendre() *GaussLegendre {
	return &GaussLegendre{InitialNodes: defaultInitialNodes, MaxNodes: defaultMaxNodes}
}

// Integrate returns a high-accuracy estimate of the integral of f over
// [a,b], accurate to about tol in the absolute sense. It satisfies the
// refine.Oracle interface.
func (g *GaussLegendre) Integrate(f quadrature.Integrand, a, b, tol float64) (float64, error) {
	if f == nil {
		return 0, quadrature.ErrNilIntegrand
	}
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) || a >= b {
		return 0, fmt.Errorf("[a,b]=[%g,%g]: %w", a, b, quadrature.ErrBadInterval)
	}
	if math.IsNaN(tol) || tol <= 0 {
		return 0, fmt.Errorf("tol=%g: %w", tol, ErrBadTolerance)
	}

	start := g.InitialNodes
	if start < 2 {
		start = defaultInitialNodes
	}
	limit := g.MaxNodes
	if limit < start {
		limit = defaultMaxNodes
	}

	prev := quad.Fixed(f, a, b, start, nil, 0)
	for n := start * 2; n <= limit; n *= 2 {
		cur := quad.Fixed(f, a, b, n, nil, 0)
		if math.Abs(cur-prev) < tol {
			return cur, nil
		}
		prev = cur
	}

	return prev, fmt.Errorf("%d nodes: %w", limit, ErrNoConvergence)
}
