// Package topology defines the capability surface the separating-function
// core consumes: opaque point-set capabilities and the normality oracle.
//
// What:
//
//   - OpenSet / ClosedSet: pure membership capabilities over an opaque
//     point type P. The core never inspects structure, only asks "∈?".
//   - Space: the ambient-space operations the construction needs —
//     closure, complement, intersection and the whole space.
//   - SubsetChecker: an optional capability for "C ⊆ U?" questions,
//     consulted only for precondition and contract checks.
//   - Oracle: the normality witness. Separate(C, U) must return an open
//     V with C ⊆ V and closure(V) ⊆ U whenever C ⊆ U.
//
// Why:
//
//   - Classical proofs of Urysohn's lemma pick separating open sets by
//     an existential; a computable rendition needs that choice handed
//     in as an explicit, injected dependency. Everything else about the
//     space stays opaque, so any topology — metric, order, finite,
//     discrete — can plug in.
//
// Contracts:
//
//   - All capabilities must be side-effect free and deterministic.
//   - Implementations shared across goroutines must be safe for
//     concurrent reads (immutable values satisfy this trivially).
//   - Subset may be unimplementable for membership-only sets; that is
//     why it is a separate optional interface rather than a Space
//     method.
//
// See package urysohn for the construction that consumes these
// capabilities, and package interval for a concrete real-line model.
package topology
