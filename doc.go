// Package cavalieri approximates definite integrals of one-dimensional
// real functions with the composite Cavalieri–Simpson (Simpson's 1/3)
// rule, refined by uniform step-halving until successive approximations
// agree within a target tolerance.
//
// 🚀 What is cavalieri?
//
//	A small, focused numerical library built from two routines:
//		• quadrature — one composite Simpson pass over an even partition
//		• refine     — the adaptive driver: double the subdivision count,
//		               re-evaluate, stop on tolerance or iteration budget
//
// ✨ Why choose cavalieri?
//
//   - Minimal API – two entry points, plain numeric results, no hidden I/O
//   - Explicit configuration – tolerance and budget travel with each call,
//     never through package-level state
//   - Honest failure modes – sentinel errors for bad arguments and
//     non-finite integrands; budget exhaustion is a result flag, not a panic
//   - Pure Go core – gonum appears only in the optional reference oracle
//     and error-curve plotting collaborators
//
// Under the hood, everything is organized per concern:
//
//	quadrature/ — single-level composite Simpson evaluator
//	refine/     — adaptive refinement loop, history & convergence reporting
//	oracle/     — independent high-accuracy reference integral (gonum)
//	errplot/    — absolute-error-vs-level curves on a log axis (gonum/plot)
//	integrand/  — curated test & demo integrands with known exact values
//
// Quick example:
//
//	res, err := refine.Refine(func(x float64) float64 {
//	    return math.Pow(x, 5.5)
//	}, 0, 1, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.History[len(res.History)-1], res.Converged)
//
// Dive into the package docs in each subdirectory for the full contracts,
// error taxonomy, and worked examples.
//
//	go get github.com/katalvlaran/cavalieri
package cavalieri
