// Package topology: capability interfaces and func adapters.
package topology

// OpenSet is a membership capability for an open subset of the ambient
// space. Implementations must be deterministic and side-effect free.
type OpenSet[P any] interface {
	// Contains reports whether p belongs to the set.
	Contains(p P) bool
}

// ClosedSet is a membership capability for a closed subset of the
// ambient space. It mirrors OpenSet but is kept as a distinct type so
// that open/closed roles cannot be swapped silently at call sites.
type ClosedSet[P any] interface {
	// Contains reports whether p belongs to the set.
	Contains(p P) bool
}

// Space bundles the ambient-space operations the separating-function
// construction needs. All operations are pure: they derive new set
// values and never mutate their arguments.
type Space[P any] interface {
	// Closure returns the topological closure of u as a closed set.
	Closure(u OpenSet[P]) ClosedSet[P]

	// Complement returns the open complement of c.
	Complement(c ClosedSet[P]) OpenSet[P]

	// Intersect returns the intersection of two open sets (open again).
	Intersect(a, b OpenSet[P]) OpenSet[P]

	// Whole returns the entire space as an open set.
	Whole() OpenSet[P]
}

// SubsetChecker is an optional Space capability answering containment
// questions of the shape the construction cares about: closed ⊆ open.
//
// It exists as a separate interface because subset queries are not
// computable for membership-only sets; spaces that can decide them
// (finite spaces, interval unions, …) opt in by implementing it, and
// the core uses it for fail-fast precondition and oracle-contract
// checks only — never on the evaluation hot path.
type SubsetChecker[P any] interface {
	// Subset reports whether c ⊆ u.
	Subset(c ClosedSet[P], u OpenSet[P]) bool
}

// Oracle is the normality witness: for C ⊆ U it produces an open V with
//
//	C ⊆ V  and  closure(V) ⊆ U.
//
// Separate must be deterministic and side-effect free; a stateful
// implementation (e.g. one that caches) must be safe for concurrent
// calls. Behavior on inputs with C ⊄ U is unspecified.
type Oracle[P any] interface {
	Separate(c ClosedSet[P], u OpenSet[P]) OpenSet[P]
}

// OpenFunc adapts a plain predicate into an OpenSet capability.
// The caller asserts that the predicate describes an open set.
type OpenFunc[P any] func(p P) bool

// Contains reports whether p satisfies the predicate.
func (f OpenFunc[P]) Contains(p P) bool { return f(p) }

// ClosedFunc adapts a plain predicate into a ClosedSet capability.
// The caller asserts that the predicate describes a closed set.
type ClosedFunc[P any] func(p P) bool

// Contains reports whether p satisfies the predicate.
func (f ClosedFunc[P]) Contains(p P) bool { return f(p) }
