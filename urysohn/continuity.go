package urysohn

import (
	"math"

	"github.com/katalvlaran/urysohn/topology"
)

// Neighborhood — explicit continuity certificate.
//
// Description:
//
//	Neighborhood(p, level) returns an open set N with p ∈ N such that
//	the limit function varies by at most ContractionBound(level) =
//	(3/4)^level between p and any y ∈ N. Continuity of the limit
//	function at p is exactly the statement that such a set exists for
//	every level; here the case-split recursion of the proof is run as
//	a computation, so the certificate can be sampled and checked.
//
// Construction, by recursion on level:
//
//   - level 0: the whole space works — both values lie in [0,1].
//
//   - p ∈ left.U: every y ∈ left.U lies in right.C, so the right
//     child's limit is identically 0 there and the midpoint relation
//     leaves half the left child's variation:
//     N = left.U ∩ Neighborhood(left, p, level−1), bound r/2 ≤ (3/4)r.
//
//   - p ∉ left.U: unfold the left child one more level. The open set
//     left.left.U has closure inside left.U, so its closed complement
//     misses p; on that complement the left-left limit is identically
//     1. Two nested midpoint relations then leave
//     (r/2 + r)/2 ≤ (3/4)r of variation:
//     N = complement(closure(left.left.U))
//     ∩ Neighborhood(left.right, p, level−1)
//     ∩ Neighborhood(right, p, level−1).
//
// The recursion strictly decreases level, so it always terminates.
//
// Complexity: O(2^level) set operations worst case.
//
// Errors: ErrNilNode, ErrBadDepth (negative level), and
// ErrOracleContract under Options.ValidateContracts.
func (n *Node[P]) Neighborhood(p P, level int) (topology.OpenSet[P], error) {
	if n == nil {
		return nil, ErrNilNode
	}
	if level < 0 {
		return nil, ErrBadDepth
	}

	return n.neighborhood(p, level)
}

func (n *Node[P]) neighborhood(p P, level int) (topology.OpenSet[P], error) {
	if level == 0 {
		return n.sp.Whole(), nil
	}

	left, err := n.Left()
	if err != nil {
		return nil, err
	}
	right, err := n.Right()
	if err != nil {
		return nil, err
	}

	if left.u.Contains(p) {
		inner, err := left.neighborhood(p, level-1)
		if err != nil {
			return nil, err
		}

		return n.sp.Intersect(left.u, inner), nil
	}

	// p ∉ left.U: pin the left-left limit at 1 on an open set around p
	ll, err := left.Left()
	if err != nil {
		return nil, err
	}
	lr, err := left.Right()
	if err != nil {
		return nil, err
	}
	pin := n.sp.Complement(n.sp.Closure(ll.u))
	nlr, err := lr.neighborhood(p, level-1)
	if err != nil {
		return nil, err
	}
	nr, err := right.neighborhood(p, level-1)
	if err != nil {
		return nil, err
	}

	return n.sp.Intersect(pin, n.sp.Intersect(nlr, nr)), nil
}

// ContractionBound returns (3/4)^level, the variation bound certified
// by Neighborhood at the given level. Negative levels return 1 (the
// trivial bound).
func ContractionBound(level int) float64 {
	if level <= 0 {
		return 1
	}

	return math.Pow(ContractionRate, float64(level))
}
