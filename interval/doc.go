// Package interval models the real line ℝ as a concrete, fully
// computable topology: open sets are finite unions of open intervals,
// closed sets are finite unions of closed intervals, and a midpoint
// normality oracle witnesses that ℝ is a normal space.
//
// What:
//
//   - Interval: a pair (Lo, Hi); ±Inf endpoints denote rays.
//   - Open: a normalized (sorted, disjoint) union of open intervals.
//   - Closed: a normalized union of closed intervals; degenerate
//     pieces [c,c] represent single points.
//   - Space: closure, complement, intersection, whole line and exact
//     subset checks over these representations.
//   - MidpointOracle: for each component (a,b) of U holding pieces of
//     C spanning [cLo,cHi], emits the open interval
//     (mid(a,cLo), mid(cHi,b)) — strictly between C and the boundary
//     of U, so its closure stays inside U.
//
// Why:
//
//   - The separating-function core works against opaque capabilities;
//     this package makes it runnable end-to-end: built on
//     C={0}, U=(−1,1) with the midpoint oracle, the limit function is
//     exactly min(|x|,1), which makes properties directly checkable.
//
// Complexity (k = number of pieces):
//
//   - Contains: O(log k) (binary search over sorted pieces).
//   - Closure / Complement: O(k).
//   - Intersect: O(k₁+k₂) two-pointer sweep.
//   - Subset / Separate: O(k₁+k₂).
//
// Errors:
//
//   - ErrIntervalOrder: piece bounds out of order (open needs Lo<Hi,
//     closed needs Lo≤Hi).
//   - ErrIntervalNaN: a piece bound is NaN.
//   - ErrIntervalInfPoint: a degenerate closed piece at ±Inf.
//
// Space and MidpointOracle operate on sets built by this package only;
// handing them a foreign OpenSet/ClosedSet implementation panics, as
// does calling Separate with C ⊄ U (programmer error, detectable
// up-front via Space.Subset).
package interval
