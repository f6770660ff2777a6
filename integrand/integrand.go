// Package integrand curates named test integrands with known intervals
// and, where a closed form exists, exact integral values. The CLI, the
// examples, and the test suites all draw from this catalog so that every
// consumer exercises the same fixtures.
package integrand

import (
	"math"

	"github.com/katalvlaran/cavalieri/quadrature"
)

// Fixture bundles an integrand with its interval and exact value.
//
// Exact is NaN (and HasExact false) for fixtures without a closed form.
// Note describes why the fixture is in the catalog.
type Fixture struct {
	Name     string
	F        quadrature.Integrand
	A, B     float64
	Exact    float64
	HasExact bool
	Note     string
}

// PowerElevenHalves is f(x) = x^(11/2) over [0,1], exact value 2/13.
// Smooth but with unbounded higher derivatives at 0, so the refinement
// loop needs several doublings — a good mid-difficulty fixture.
func PowerElevenHalves() Fixture {
	return Fixture{
		Name:     "pow11half",
		F:        func(x float64) float64 { return math.Pow(x, 5.5) },
		A:        0,
		B:        1,
		Exact:    2.0 / 13.0,
		HasExact: true,
		Note:     "x^(11/2) on [0,1]; converges in well under 20 doublings at 1e-8",
	}
}

// Runge is the classic Runge witch f(x) = 1/(1+25x²) over [-1,1],
// exact value (2/5)·atan(5).
func Runge() Fixture {
	return Fixture{
		Name:     "runge",
		F:        func(x float64) float64 { return 1 / (1 + 25*x*x) },
		A:        -1,
		B:        1,
		Exact:    2 * math.Atan(5) / 5,
		HasExact: true,
		Note:     "sharp central peak; punishes coarse uniform partitions",
	}
}

// HalfSine is f(x) = sin(x) over [0,π], exact value 2.
func HalfSine() Fixture {
	return Fixture{
		Name:     "halfsine",
		F:        math.Sin,
		A:        0,
		B:        math.Pi,
		Exact:    2,
		HasExact: true,
		Note:     "entire function; showcases clean 4th-order convergence",
	}
}

// GaussBell is f(x) = exp(-x²) over [-2,2], exact value √π·erf(2).
func GaussBell() Fixture {
	return Fixture{
		Name:     "gauss",
		F:        func(x float64) float64 { return math.Exp(-x * x) },
		A:        -2,
		B:        2,
		Exact:    math.SqrtPi * math.Erf(2),
		HasExact: true,
		Note:     "smooth bell; fast convergence from small m",
	}
}

// NearSingular is f(x) = 1/√(x+1e-12) over [0,1]. The regularized
// inverse-square-root spike at 0 is steep enough that twenty doublings
// from m=2 never reach 1e-8 agreement, which makes it the canonical
// budget-exhaustion fixture.
func NearSingular() Fixture {
	const eps = 1e-12

	return Fixture{
		Name:     "nearsingular",
		F:        func(x float64) float64 { return 1 / math.Sqrt(x+eps) },
		A:        0,
		B:        1,
		Exact:    2 * (math.Sqrt(1+eps) - math.Sqrt(eps)),
		HasExact: true,
		Note:     "regularized singularity at 0; exhausts the default budget",
	}
}

// Catalog maps fixture names to fixtures for lookup by the CLI.
func Catalog() map[string]Fixture {
	fixtures := []Fixture{
		PowerElevenHalves(),
		Runge(),
		HalfSine(),
		GaussBell(),
		NearSingular(),
	}

	catalog := make(map[string]Fixture, len(fixtures))
	for _, fx := range fixtures {
		catalog[fx.Name] = fx
	}

	return catalog
}
