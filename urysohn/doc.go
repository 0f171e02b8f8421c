// Package urysohn builds continuous separating functions on normal
// spaces: the constructive content of Urysohn's lemma as a lazy,
// memoized approximation tree with certified error bounds.
//
// What:
//
//   - Build(space, oracle, C, U, opts) roots an approximation tree at
//     the pair (C, U) with C closed, U open, C ⊆ U.
//   - Node.Left / Node.Right derive the two child pairs through one
//     (cached) oracle call: with V = separate(C, U),
//     left = (C, V) and right = (closure(V), U). Nodes are immutable;
//     the induced infinite binary tree is generated on demand only.
//   - Node.Approx(depth, p) is the depth-n approximation: at depth 0
//     the indicator of the complement of U, and above that the
//     midpoint of the two child approximations.
//   - Node.Limit(p, tol) evaluates the limit function within tol,
//     choosing the recursion depth from a proven per-level halving of
//     the remaining error (see DepthFor).
//   - Node.Neighborhood(p, level) returns an open set around p on
//     which the limit function varies by at most (3/4)^level — an
//     explicit, checkable continuity certificate.
//   - EvaluateAll(ctx, node, points, tol) fans evaluation out over a
//     bounded worker pool; nodes are shared safely because children
//     are memoized behind sync.Once.
//
// Guarantees (for every node, depth and point):
//
//   - Approx stays in [0,1]; it is 0 on the node's closed set and 1
//     outside the node's open set, at every depth.
//   - Approx is non-decreasing in depth, so the limit exists; the
//     midpoint recurrence carries over to the limit.
//   - |limit − Approx(n, p)| ≤ 2⁻ⁿ: at every node the point either
//     lies in the left child's open set (pinning the right child at 0)
//     or outside it (pinning the left child at 1), so each level
//     halves the gap.
//
// Complexity:
//
//   - Approx(depth=n): O(2ⁿ) node visits, one oracle call per distinct
//     node ever visited (memoized). Limit(tol): n = ⌈log₂(1/tol)⌉,
//     i.e. O(1/tol) work.
//   - Neighborhood(level=n): O(2ⁿ) set operations in the worst case.
//
// Errors:
//
//   - ErrNilSpace / ErrNilOracle / ErrNilSet / ErrNilNode: missing
//     collaborators (programmer error, fail fast).
//   - ErrPrecondition: Build called with C ⊄ U.
//   - ErrOracleContract: the oracle's result failed validation
//     (Options.ValidateContracts).
//   - ErrNoSubsetChecker: validation requested on a space that cannot
//     answer subset queries.
//   - ErrBadDepth / ErrBadTolerance: invalid numeric arguments.
//
// See package interval for a runnable real-line model and
// examples in example_test.go.
package urysohn
