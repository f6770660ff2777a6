// Package oracle supplies the independent high-accuracy reference
// integral used when reporting the error curve of an adaptive run.
//
// The implementation wraps gonum's fixed-location Gauss–Legendre rule
// (gonum.org/v1/gonum/integrate/quad) and doubles the node count until
// two successive estimates agree within the requested absolute
// tolerance. Gauss–Legendre converges spectrally on smooth integrands,
// so the doubling scheme typically settles within a few rounds at far
// higher accuracy than the Simpson refinement it is compared against.
//
// The oracle deliberately shares nothing with the quadrature package's
// Simpson kernel: a reference that reused the code under test would not
// be a reference.
//
// Errors (sentinel):
//
//	– quadrature.ErrNilIntegrand / quadrature.ErrBadInterval for invalid
//	  inputs, matching the evaluator's taxonomy.
//	– ErrBadTolerance  for a NaN, zero, or negative tolerance.
//	– ErrNoConvergence when the node budget ends before agreement; the
//	  best estimate so far is still returned alongside it.
package oracle
