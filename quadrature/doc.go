// Package quadrature provides the single-level composite Cavalieri–Simpson
// (Simpson's 1/3) evaluator: one weighted pass over an even partition of a
// closed interval.
//
// Overview:
//
//   - Simpson partitions [a,b] into m equal subintervals of width
//     h = (b-a)/m, producing m+1 nodes x_i = a + i·h for i = 0..m.
//   - Interior nodes are weighted by index parity: odd-indexed nodes get
//     weight 4, even-indexed interior nodes get weight 2, both endpoints
//     get weight 1.
//   - The approximation is I = h·S/3 with
//     S = f(a) + f(b) + 4·Σ f(x_odd) + 2·Σ f(x_even interior).
//
// Contract:
//
//   - The integrand is evaluated exactly m+1 times, once per node, in
//     ascending node order; endpoints are never re-evaluated as part of the
//     interior groups. Integrand cost dominates, so this bound is part of
//     the API, not an implementation detail.
//   - Summation order is fixed (ascending index) so repeated calls with the
//     same inputs reproduce bit-identical results.
//   - The rule integrates polynomials of degree ≤ 3 exactly (up to
//     floating-point rounding); for smooth integrands the error is O(h⁴).
//
// Complexity:
//
//	– Time:  O(m) — one integrand call and one fused multiply-add per node.
//	– Space: O(1) — a single running sum; no node array is materialized.
//
// Errors (sentinel):
//
//	– ErrNilIntegrand    if f is nil.
//	– ErrBadInterval     if a or b is non-finite, or a >= b.
//	– ErrBadSubdivisions if m is not a positive even integer.
//	– ErrNonFiniteValue  if f returns NaN or ±Inf at any node
//	  (wrapped with the offending node and value; match with errors.Is).
//
// All argument errors are detected before the first integrand call; a
// domain failure aborts immediately with no retry and no substitution.
//
// Example usage:
//
//	I, err := quadrature.Simpson(func(x float64) float64 {
//	    return x * x * x
//	}, 0, 1, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(I) // 0.25 — exact for cubics
package quadrature
