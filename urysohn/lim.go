package urysohn

import "math"

// Limit — tolerance-bounded evaluation of the limit function.
//
// Description:
//
//	The separating function is sup over depth of Approx; the sequence
//	is non-decreasing and bounded by 1, so the supremum is its limit.
//	An exact supremum is not computable from finitely many samples, so
//	Limit runs Approx to the depth DepthFor(tol) and returns that
//	value, which is provably within tol of the true limit.
//
// Why the depth bound is honest: at any node, the evaluation point
// either lies in the left child's open set — then it lies in the right
// child's closed set (V ⊆ closure(V)), pinning the right child's value
// at exactly 0 for every depth and in the limit — or it lies outside
// the left child's open set, pinning the left child at exactly 1.
// Either way one summand of the midpoint recurrence carries no error,
// so the limit-vs-approximation gap at depth d+1 is half the gap of a
// single child at depth d. With a depth-0 gap of at most 1 this
// telescopes to |limit − Approx(n, p)| ≤ 2⁻ⁿ.
//
// Guarantees: the result is in [0,1]; exactly 0 when p ∈ node.C and
// exactly 1 when p ∉ node.U.
//
// Complexity: O(2^DepthFor(tol)) = O(1/tol) node visits.
//
// Errors: ErrNilNode, ErrBadTolerance, and ErrOracleContract under
// Options.ValidateContracts.
func (n *Node[P]) Limit(p P, tol float64) (float64, error) {
	if n == nil {
		return 0, ErrNilNode
	}
	depth, err := DepthFor(tol)
	if err != nil {
		return 0, err
	}

	return n.approx(depth, p)
}

// DepthFor returns the smallest depth n with 2⁻ⁿ ≤ tol, i.e. the
// recursion depth at which Approx is guaranteed within tol of the
// limit. tol ≥ 1 needs no recursion at all (both values live in
// [0,1]). Rejects tolerances that are not positive numbers.
func DepthFor(tol float64) (int, error) {
	if !(tol > 0) { // also rejects NaN
		return 0, ErrBadTolerance
	}
	if tol >= 1 {
		return 0, nil
	}

	return int(math.Ceil(-math.Log2(tol))), nil
}
