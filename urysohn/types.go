// Package urysohn defines options, defaults and sentinel errors for
// the separating-function core of github.com/katalvlaran/urysohn.
package urysohn

import "errors"

// Sentinel errors. Strict-sentinel policy: every failure mode below is
// a distinct, comparable value; no wrapped ad-hoc errors.
var (
	// ErrNilSpace indicates Build received a nil space.
	ErrNilSpace = errors.New("urysohn: space must be non-nil")
	// ErrNilOracle indicates Build received a nil oracle.
	ErrNilOracle = errors.New("urysohn: oracle must be non-nil")
	// ErrNilSet indicates Build received a nil closed or open set.
	ErrNilSet = errors.New("urysohn: closed and open sets must be non-nil")
	// ErrNilNode indicates an operation on a nil node.
	ErrNilNode = errors.New("urysohn: node must be non-nil")
	// ErrPrecondition indicates Build was called with C ⊄ U; the
	// construction is undefined without that containment.
	ErrPrecondition = errors.New("urysohn: closed set must be contained in the open set")
	// ErrOracleContract indicates the oracle returned a set violating
	// C ⊆ V or closure(V) ⊆ U (detected under ValidateContracts).
	ErrOracleContract = errors.New("urysohn: oracle result violates the separation contract")
	// ErrNoSubsetChecker indicates ValidateContracts was requested on
	// a space that does not implement topology.SubsetChecker.
	ErrNoSubsetChecker = errors.New("urysohn: contract validation requires a subset-checking space")
	// ErrBadDepth indicates a negative recursion depth or level.
	ErrBadDepth = errors.New("urysohn: depth must be non-negative")
	// ErrBadTolerance indicates a tolerance that is not a positive number.
	ErrBadTolerance = errors.New("urysohn: tolerance must be positive")
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultValidateContracts leaves per-call oracle validation off:
	// the oracle is trusted in production, validated in dedicated tests.
	DefaultValidateContracts = false

	// DefaultWorkers of 0 lets EvaluateAll size its pool from
	// runtime.GOMAXPROCS.
	DefaultWorkers = 0

	// ContractionRate is the per-level modulus of the continuity
	// certificate: Neighborhood(p, n) bounds the limit's variation by
	// ContractionRate^n.
	ContractionRate = 0.75
)

// Options configures the construction.
//
// Fields:
//   - ValidateContracts — re-check the oracle's postcondition on every
//     separation and fail with ErrOracleContract instead of silently
//     producing wrong values. Requires the space to implement
//     topology.SubsetChecker.
//   - Workers — upper bound on concurrent point evaluations in
//     EvaluateAll; ≤ 0 means one worker per available CPU.
type Options struct {
	ValidateContracts bool
	Workers           int
}

// DefaultOptions returns the documented defaults: no per-call
// validation, worker pool sized from GOMAXPROCS.
func DefaultOptions() Options {
	return Options{
		ValidateContracts: DefaultValidateContracts,
		Workers:           DefaultWorkers,
	}
}
