package urysohn

// Approx — depth-bounded approximation of the separating function.
//
// Description:
//
//	approx(node, 0, p) is the indicator of the complement of node.U;
//	approx(node, d+1, p) averages the two child approximations:
//
//	  approx(node, d+1, p) = (approx(left, d, p) + approx(right, d, p)) / 2.
//
// Guarantees (every node, depth, point):
//
//   - Range: the value lies in [0,1].
//   - Pinned values: p ∈ node.C ⇒ 0 at every depth;
//     p ∉ node.U ⇒ 1 at every depth.
//   - Monotone in depth: approx(node, d, p) ≤ approx(node, d+1, p).
//   - Order across a sibling pair at equal depth:
//     approx(right, d, p) ≤ approx(node, d, p) ≤ approx(left, d, p).
//
// The implementation short-circuits the two pinned cases before
// recursing; both are exact at every depth, so the returned values are
// unchanged while whole subtrees are pruned.
//
// Complexity: O(2^depth) node visits worst case; every distinct node's
// oracle call happens once thanks to per-node memoization.
//
// Errors: ErrNilNode, ErrBadDepth, and ErrOracleContract under
// Options.ValidateContracts.
func (n *Node[P]) Approx(depth int, p P) (float64, error) {
	if n == nil {
		return 0, ErrNilNode
	}
	if depth < 0 {
		return 0, ErrBadDepth
	}

	return n.approx(depth, p)
}

// approx is the recursion body; depth is known to be non-negative.
func (n *Node[P]) approx(depth int, p P) (float64, error) {
	if !n.u.Contains(p) {
		return 1, nil
	}
	if n.c.Contains(p) {
		return 0, nil
	}
	if depth == 0 {
		// p ∈ U: indicator of the complement of U is 0 here
		return 0, nil
	}

	left, err := n.Left()
	if err != nil {
		return 0, err
	}
	right, err := n.Right()
	if err != nil {
		return 0, err
	}
	lv, err := left.approx(depth-1, p)
	if err != nil {
		return 0, err
	}
	rv, err := right.approx(depth-1, p)
	if err != nil {
		return 0, err
	}

	return (lv + rv) / 2, nil
}
