// Command cavalieri runs the adaptive Cavalieri–Simpson refiner on a
// catalog integrand and reports the approximation history, convergence
// status, and error against an independent reference. Optionally it
// renders the error curve to an image file.
//
// Usage:
//
//	cavalieri -fn pow11half -m0 2 -tol 1e-8 -max-iter 20 -plot curve.png -v
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/lmittmann/tint"

	"github.com/katalvlaran/cavalieri/errplot"
	"github.com/katalvlaran/cavalieri/integrand"
	"github.com/katalvlaran/cavalieri/oracle"
	"github.com/katalvlaran/cavalieri/quadrature"
	"github.com/katalvlaran/cavalieri/refine"
)

func main() {
	var (
		fnName   = flag.String("fn", "pow11half", "catalog integrand: "+catalogNames())
		m0       = flag.Int("m0", 2, "initial even subdivision count")
		tol      = flag.Float64("tol", 1e-8, "absolute agreement tolerance between consecutive levels")
		maxIter  = flag.Int("max-iter", 20, "refinement budget beyond level 0")
		plotPath = flag.String("plot", "", "optional error-curve output file (png, svg, pdf)")
		verbose  = flag.Bool("v", false, "log every refinement level")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	))

	fx, ok := integrand.Catalog()[*fnName]
	if !ok {
		slog.Error("unknown integrand", "fn", *fnName, "available", catalogNames())
		os.Exit(2)
	}

	opts := []refine.Option{
		refine.WithTolerance(*tol),
		refine.WithMaxIterations(*maxIter),
		refine.WithReferenceFunc(bestEffortReference(oracle.NewGaussLegendre())),
	}
	if *verbose {
		opts = append(opts, refine.WithObserver(func(lvl, m int, approx, delta float64) error {
			slog.Debug("refinement level",
				"level", lvl, "m", m, "approximation", approx, "delta", delta)

			return nil
		}))
	}

	res, err := refine.Refine(fx.F, fx.A, fx.B, *m0, opts...)
	if err != nil {
		slog.Error("refinement failed", "fn", fx.Name, "err", err)
		os.Exit(1)
	}

	report(fx, res)

	if *plotPath != "" {
		if err := errplot.Save(res.History, reference(fx, res), *plotPath); err != nil {
			slog.Error("plot failed", "path", *plotPath, "err", err)
			os.Exit(1)
		}
		slog.Info("error curve written", "path", *plotPath)
	}

	if !res.Converged {
		slog.Warn("budget exhausted before tolerance",
			"levels", res.Levels, "last_delta", res.LastDelta)
		os.Exit(3)
	}
}

// bestEffortReference adapts the Gauss–Legendre oracle so a starving node
// budget degrades to its best estimate instead of failing the whole run.
func bestEffortReference(g *oracle.GaussLegendre) refine.OracleFunc {
	return func(f quadrature.Integrand, a, b, tol float64) (float64, error) {
		v, err := g.Integrate(f, a, b, tol)
		if errors.Is(err, oracle.ErrNoConvergence) {
			slog.Warn("reference integral did not fully settle; using best estimate", "err", err)

			return v, nil
		}

		return v, err
	}
}

// reference prefers the catalog's closed form for plotting, falling back
// to the oracle's value gathered during the run.
func reference(fx integrand.Fixture, res refine.Result) float64 {
	if fx.HasExact {
		return fx.Exact
	}

	return res.Reference
}

// report prints the per-level table and a summary to stdout; logging goes
// to stderr, so the table survives shell pipelines.
func report(fx integrand.Fixture, res refine.Result) {
	ref := reference(fx, res)

	fmt.Printf("integrand: %s over [%g,%g]  (%s)\n", fx.Name, fx.A, fx.B, fx.Note)
	fmt.Printf("%-6s %-22s %-14s\n", "level", "approximation", "|error|")
	for n, approx := range res.History {
		fmt.Printf("%-6d %-22.15f %-14.3e\n", n, approx, math.Abs(approx-ref))
	}
	fmt.Printf("converged=%t levels=%d evaluations=%d last_delta=%.3e\n",
		res.Converged, res.Levels, res.Evaluations, res.LastDelta)
	if res.HasReference {
		fmt.Printf("reference=%.15f |estimate-reference|=%.3e\n",
			res.Reference, math.Abs(res.Estimate()-res.Reference))
	}
}

// catalogNames lists the catalog keys in stable order for flag help.
func catalogNames() string {
	catalog := integrand.Catalog()
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	return strings.Join(names, ", ")
}
