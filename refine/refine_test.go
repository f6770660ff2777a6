package refine_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/cavalieri/integrand"
	"github.com/katalvlaran/cavalieri/quadrature"
	"github.com/katalvlaran/cavalieri/refine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRefine_EndToEnd runs the canonical x^(11/2) scenario: the run must
// converge in well under the default budget and land within 1e-8 of 2/13.
func TestRefine_EndToEnd(t *testing.T) {
	fx := integrand.PowerElevenHalves()

	res, err := refine.Refine(fx.F, fx.A, fx.B, 2)
	require.NoError(t, err)

	assert.True(t, res.Converged, "smooth integrand must converge")
	assert.Less(t, res.Levels, 20, "must finish under the default budget")
	assert.Len(t, res.History, res.Levels+1, "one entry per completed level")
	assert.InDelta(t, fx.Exact, res.Estimate(), 1e-8)
	assert.Less(t, math.Abs(res.LastDelta), 1e-8)
}

// TestRefine_MonotonicErrorDecay verifies 4th-order behavior: every
// refinement level lands strictly closer to the exact value.
func TestRefine_MonotonicErrorDecay(t *testing.T) {
	fx := integrand.PowerElevenHalves()

	res, err := refine.Refine(fx.F, fx.A, fx.B, 2, refine.WithTolerance(1e-10))
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.GreaterOrEqual(t, len(res.History), 3)

	prev := math.Abs(res.History[0] - fx.Exact)
	for n := 1; n < len(res.History); n++ {
		cur := math.Abs(res.History[n] - fx.Exact)
		assert.Less(t, cur, prev, "level %d must improve on level %d", n, n-1)
		prev = cur
	}
}

// TestRefine_PropagatesInvalidArgument checks that evaluator sentinels
// surface unwrapped from the level-0 call.
func TestRefine_PropagatesInvalidArgument(t *testing.T) {
	id := func(x float64) float64 { return x }

	_, err := refine.Refine(nil, 0, 1, 2)
	assert.ErrorIs(t, err, quadrature.ErrNilIntegrand)

	_, err = refine.Refine(id, 1, 0, 2)
	assert.ErrorIs(t, err, quadrature.ErrBadInterval)

	for _, m0 := range []int{-2, 0, 1, 3} {
		_, err = refine.Refine(id, 0, 1, m0)
		assert.ErrorIs(t, err, quadrature.ErrBadSubdivisions, "m0=%d", m0)
	}
}

// TestRefine_PropagatesDomainError checks that a non-finite integrand
// value aborts the run with the evaluator's sentinel, no retry.
func TestRefine_PropagatesDomainError(t *testing.T) {
	_, err := refine.Refine(math.Sqrt, -1, 1, 4)
	assert.ErrorIs(t, err, quadrature.ErrNonFiniteValue)
}

// TestRefine_BudgetExhaustion drives the regularized-singularity fixture:
// twenty doublings never reach 1e-8, so the full history comes back with
// Converged=false.
func TestRefine_BudgetExhaustion(t *testing.T) {
	fx := integrand.NearSingular()

	res, err := refine.Refine(fx.F, fx.A, fx.B, 2)
	require.NoError(t, err, "non-convergence is a flag, not an error")

	assert.False(t, res.Converged)
	assert.Equal(t, 20, res.Levels, "budget must be fully spent")
	assert.Len(t, res.History, 21, "full unfiltered history, tail included")
	assert.GreaterOrEqual(t, math.Abs(res.LastDelta), 1e-8)
}

// TestRefine_ZeroBudget covers the boundary contract: with
// MaxIterations=0, only level 0 runs. An infinite (already-satisfied)
// tolerance reports convergence; the default tolerance cannot.
func TestRefine_ZeroBudget(t *testing.T) {
	fx := integrand.HalfSine()

	t.Run("satisfied tolerance", func(t *testing.T) {
		res, err := refine.Refine(fx.F, fx.A, fx.B, 4,
			refine.WithMaxIterations(0),
			refine.WithTolerance(math.Inf(1)),
		)
		require.NoError(t, err)
		assert.True(t, res.Converged)
		assert.Len(t, res.History, 1)
		assert.Zero(t, res.Levels)
	})

	t.Run("default tolerance", func(t *testing.T) {
		res, err := refine.Refine(fx.F, fx.A, fx.B, 4,
			refine.WithMaxIterations(0),
		)
		require.NoError(t, err)
		assert.False(t, res.Converged, "error estimate is still the +Inf seed")
		assert.Len(t, res.History, 1)
	})
}

// TestRefine_HistoryIncludesFinal pins the truncation policy: on
// convergence the entry that satisfied the tolerance stays in History.
func TestRefine_HistoryIncludesFinal(t *testing.T) {
	fx := integrand.GaussBell()

	res, err := refine.Refine(fx.F, fx.A, fx.B, 2)
	require.NoError(t, err)
	require.True(t, res.Converged)

	n := len(res.History)
	require.GreaterOrEqual(t, n, 2)
	gap := math.Abs(res.History[n-1] - res.History[n-2])
	assert.Less(t, gap, 1e-8, "final entry is the one that converged")
	assert.Equal(t, res.History[n-1], res.Estimate())
}

// TestRefine_ReferenceOracle attaches a stub oracle and checks that it is
// called exactly once, lands in the result, and never changes the loop.
func TestRefine_ReferenceOracle(t *testing.T) {
	fx := integrand.PowerElevenHalves()

	calls := 0
	stub := refine.OracleFunc(func(_ quadrature.Integrand, _, _, tol float64) (float64, error) {
		calls++
		assert.Equal(t, 1e-12, tol, "default reference tolerance")

		return fx.Exact, nil
	})

	withRef, err := refine.Refine(fx.F, fx.A, fx.B, 2, refine.WithReference(stub))
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "oracle runs exactly once")
	assert.True(t, withRef.HasReference)
	assert.Equal(t, fx.Exact, withRef.Reference)

	bare, err := refine.Refine(fx.F, fx.A, fx.B, 2)
	require.NoError(t, err)
	assert.False(t, bare.HasReference)
	assert.True(t, math.IsNaN(bare.Reference))
	assert.Equal(t, withRef.History, bare.History, "reference must not steer the loop")
}

// TestRefine_ReferenceError checks that an oracle failure surfaces to the
// caller before any refinement work.
func TestRefine_ReferenceError(t *testing.T) {
	boom := errors.New("oracle offline")
	stub := refine.OracleFunc(func(_ quadrature.Integrand, _, _, _ float64) (float64, error) {
		return 0, boom
	})

	fx := integrand.HalfSine()
	_, err := refine.Refine(fx.F, fx.A, fx.B, 2, refine.WithReference(stub))
	assert.ErrorIs(t, err, boom)
}

// TestRefine_Observer checks the per-level callback sequence and the
// early-abort contract.
func TestRefine_Observer(t *testing.T) {
	fx := integrand.GaussBell()

	t.Run("sequence", func(t *testing.T) {
		var levels, ms []int
		res, err := refine.Refine(fx.F, fx.A, fx.B, 2,
			refine.WithObserver(func(level, m int, _, delta float64) error {
				levels = append(levels, level)
				ms = append(ms, m)
				if level == 0 {
					assert.True(t, math.IsInf(delta, 1), "level 0 carries the seed")
				}

				return nil
			}),
		)
		require.NoError(t, err)
		require.Len(t, levels, len(res.History))
		for i, lvl := range levels {
			assert.Equal(t, i, lvl)
			assert.Equal(t, 2<<i, ms[i], "m doubles per level")
		}
	})

	t.Run("abort", func(t *testing.T) {
		res, err := refine.Refine(fx.F, fx.A, fx.B, 2,
			refine.WithObserver(func(level, _ int, _, _ float64) error {
				if level == 1 {
					return refine.ErrStopped
				}

				return nil
			}),
		)
		assert.ErrorIs(t, err, refine.ErrStopped)
		assert.False(t, res.Converged)
		assert.Len(t, res.History, 2, "partial history up to the abort")
	})
}

// TestRefine_Evaluations cross-checks the integrand-call accounting
// against an independent counter.
func TestRefine_Evaluations(t *testing.T) {
	calls := 0
	fx := integrand.PowerElevenHalves()
	counted := func(x float64) float64 {
		calls++

		return fx.F(x)
	}

	res, err := refine.Refine(counted, fx.A, fx.B, 2)
	require.NoError(t, err)
	assert.Equal(t, calls, res.Evaluations)

	// Independent closed form: Σ (m0·2^k + 1) over completed levels.
	want := 0
	for k, m := 0, 2; k <= res.Levels; k, m = k+1, m*2 {
		want += m + 1
	}
	assert.Equal(t, want, res.Evaluations)
}

// TestRefine_OptionPanics verifies that invalid configuration is rejected
// at option-construction time.
func TestRefine_OptionPanics(t *testing.T) {
	assert.PanicsWithValue(t, refine.ErrBadTolerance.Error(), func() {
		refine.WithTolerance(0)(&refine.Options{})
	})
	assert.PanicsWithValue(t, refine.ErrBadTolerance.Error(), func() {
		refine.WithTolerance(math.NaN())(&refine.Options{})
	})
	assert.PanicsWithValue(t, refine.ErrBadMaxIterations.Error(), func() {
		refine.WithMaxIterations(-1)(&refine.Options{})
	})
}

// TestResult_EstimateEmpty keeps the zero-value Result well defined.
func TestResult_EstimateEmpty(t *testing.T) {
	assert.True(t, math.IsNaN(refine.Result{}.Estimate()))
}
