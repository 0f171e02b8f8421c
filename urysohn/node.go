package urysohn

import (
	"sync"

	"github.com/katalvlaran/urysohn/topology"
)

// Node is one pair (C, U) of the approximation tree: C closed, U open,
// C ⊆ U. A node is immutable once built and may be shared freely
// across goroutines; its children are derived lazily through a single
// memoized oracle call.
type Node[P any] struct {
	c  topology.ClosedSet[P]
	u  topology.OpenSet[P]
	sp topology.Space[P]
	or topology.Oracle[P]

	opts Options

	// memoization cell: one oracle call per node, ever
	once  sync.Once
	left  *Node[P]
	right *Node[P]
	err   error
}

// Build roots an approximation tree at (c, u).
//
// Contracts:
//   - sp, or, c, u must be non-nil.
//   - c ⊆ u. When sp implements topology.SubsetChecker the containment
//     is verified and a violation fails fast with ErrPrecondition;
//     membership-only spaces are taken on trust.
//   - opts.ValidateContracts additionally requires the checker
//     capability (ErrNoSubsetChecker otherwise).
//
// Build performs no oracle calls itself; the first Left/Right (or any
// Approx at depth ≥ 1) triggers the root separation.
func Build[P any](sp topology.Space[P], or topology.Oracle[P], c topology.ClosedSet[P], u topology.OpenSet[P], opts Options) (*Node[P], error) {
	if sp == nil {
		return nil, ErrNilSpace
	}
	if or == nil {
		return nil, ErrNilOracle
	}
	if c == nil || u == nil {
		return nil, ErrNilSet
	}
	chk, hasChk := sp.(topology.SubsetChecker[P])
	if opts.ValidateContracts && !hasChk {
		return nil, ErrNoSubsetChecker
	}
	if hasChk && !chk.Subset(c, u) {
		return nil, ErrPrecondition
	}

	return &Node[P]{c: c, u: u, sp: sp, or: or, opts: opts}, nil
}

// Separating roots a tree for the classical two-set statement of the
// lemma: given disjoint closed sets a and b, the limit function of the
// returned node is 0 on a, 1 on b and stays in [0,1] in between.
// Equivalent to Build(sp, or, a, sp.Complement(b), opts); disjointness
// is exactly the precondition a ⊆ complement(b), checked by Build when
// the space implements topology.SubsetChecker.
func Separating[P any](sp topology.Space[P], or topology.Oracle[P], a, b topology.ClosedSet[P], opts Options) (*Node[P], error) {
	if sp == nil {
		return nil, ErrNilSpace
	}
	if a == nil || b == nil {
		return nil, ErrNilSet
	}

	return Build(sp, or, a, sp.Complement(b), opts)
}

// C returns the node's closed set.
func (n *Node[P]) C() topology.ClosedSet[P] { return n.c }

// U returns the node's open set.
func (n *Node[P]) U() topology.OpenSet[P] { return n.u }

// resolve performs the node's one oracle call and derives both
// children from it. Safe for concurrent use; the result (or the
// contract error) is cached for the node's lifetime.
func (n *Node[P]) resolve() {
	n.once.Do(func() {
		v := n.or.Separate(n.c, n.u)
		if v == nil {
			n.err = ErrOracleContract

			return
		}
		if n.opts.ValidateContracts {
			// checker presence was established in Build
			chk := n.sp.(topology.SubsetChecker[P])
			if !chk.Subset(n.c, v) || !chk.Subset(n.sp.Closure(v), n.u) {
				n.err = ErrOracleContract

				return
			}
		}
		n.left = n.child(n.c, v)
		n.right = n.child(n.sp.Closure(v), n.u)
	})
}

// child allocates a derived node sharing the space, oracle and options.
func (n *Node[P]) child(c topology.ClosedSet[P], u topology.OpenSet[P]) *Node[P] {
	return &Node[P]{c: c, u: u, sp: n.sp, or: n.or, opts: n.opts}
}

// Left returns the child (C, V) with V = separate(C, U): same closed
// set, tighter open set. Repeated calls return the identical node.
func (n *Node[P]) Left() (*Node[P], error) {
	if n == nil {
		return nil, ErrNilNode
	}
	n.resolve()
	if n.err != nil {
		return nil, n.err
	}

	return n.left, nil
}

// Right returns the child (closure(V), U): larger closed set, same
// open set. The left sibling's open set always sits inside this
// node's closed set (V ⊆ closure(V)) — the containment every
// convergence and continuity bound rests on.
func (n *Node[P]) Right() (*Node[P], error) {
	if n == nil {
		return nil, ErrNilNode
	}
	n.resolve()
	if n.err != nil {
		return nil, n.err
	}

	return n.right, nil
}
