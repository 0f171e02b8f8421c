// Package urysohn is your in-memory toolkit for building continuous
// separating functions on normal topological spaces — the constructive
// heart of Urysohn's lemma, packaged as a small, testable algorithm.
//
// 🚀 What is urysohn?
//
//	Given two disjoint closed sets A and B in a normal space, Urysohn's
//	lemma promises a continuous f with f≡0 on A, f≡1 on B and
//	0 ≤ f ≤ 1 everywhere. This library turns the classical proof into a
//	concrete, tolerance-bounded computation:
//		• Capability layer: opaque open/closed sets, spaces and a
//		  pluggable normality oracle
//		• Lazy approximation tree: immutable nodes, memoized children,
//		  one oracle call per node
//		• Certified evaluation: depth picked from a geometric error
//		  bound, never "iterate and hope"
//		• Continuity certificates: explicit neighborhoods witnessing a
//		  (3/4)^n modulus at any point
//
// ✨ Why choose urysohn?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – every returned value carries a proven
//     error bound, every certificate is checkable
//   - Pure Go – no cgo, dependency-light
//   - Extensible – bring your own space: anything that can answer
//     membership, closure and separation questions plugs in
//
// Under the hood, everything is organized under three subpackages:
//
//	topology/ — OpenSet, ClosedSet, Space and Oracle capabilities
//	urysohn/  — the approximation tree: Build, Approx, Limit,
//	            Neighborhood, EvaluateAll
//	interval/ — a concrete real-line topology (finite interval unions)
//	            with a midpoint normality oracle
//
// Quick ASCII picture of the approximation tree for a root (C, U):
//
//	         (C, U)
//	        /      \
//	  (C, V)        (cl V, U)      V = separate(C, U)
//	  /    \        /       \
//	 …      …      …         …
//
// Each point evaluation walks this tree only as deep as the requested
// tolerance demands; nodes are created lazily and cached forever.
//
// Dive into the package docs for contracts, complexity and examples.
//
//	go get github.com/katalvlaran/urysohn
package urysohn
