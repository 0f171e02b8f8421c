package urysohn_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/urysohn/interval"
	"github.com/katalvlaran/urysohn/topology"
	"github.com/katalvlaran/urysohn/urysohn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild_NilArguments verifies fail-fast sentinels for missing
// collaborators.
func TestBuild_NilArguments(t *testing.T) {
	sp := dSpace{universe: []int{0, 1}}
	or := dOracle{sp: sp}
	c := dClosed{0: true}
	u := dOpen{0: true, 1: true}
	opts := urysohn.DefaultOptions()

	_, err := urysohn.Build[int](nil, or, c, u, opts)
	assert.ErrorIs(t, err, urysohn.ErrNilSpace)

	_, err = urysohn.Build[int](sp, nil, c, u, opts)
	assert.ErrorIs(t, err, urysohn.ErrNilOracle)

	_, err = urysohn.Build[int](sp, or, nil, u, opts)
	assert.ErrorIs(t, err, urysohn.ErrNilSet)

	_, err = urysohn.Build[int](sp, or, c, nil, opts)
	assert.ErrorIs(t, err, urysohn.ErrNilSet)
}

// TestBuild_Precondition ensures C ⊄ U fails fast when the space can
// check containment.
func TestBuild_Precondition(t *testing.T) {
	c, err := interval.NewClosed(interval.Interval{Lo: 2, Hi: 3})
	require.NoError(t, err)
	u, err := interval.NewOpen(interval.Interval{Lo: 0, Hi: 1})
	require.NoError(t, err)

	_, err = urysohn.Build[float64](interval.Space{}, interval.MidpointOracle{}, c, u, urysohn.DefaultOptions())
	assert.ErrorIs(t, err, urysohn.ErrPrecondition)
}

// TestBuild_ValidationNeedsChecker ensures ValidateContracts demands a
// subset-checking space.
func TestBuild_ValidationNeedsChecker(t *testing.T) {
	sp := noCheckSpace{inner: dSpace{universe: []int{0, 1}}}
	or := dOracle{sp: sp.inner}
	opts := urysohn.Options{ValidateContracts: true}

	_, err := urysohn.Build[int](sp, or, dClosed{0: true}, dOpen{0: true, 1: true}, opts)
	assert.ErrorIs(t, err, urysohn.ErrNoSubsetChecker)
}

// TestNode_ChildrenMemoized checks that repeated Left/Right calls
// return the identical child node (one oracle call per node).
func TestNode_ChildrenMemoized(t *testing.T) {
	root := lineRoot(t, urysohn.DefaultOptions())

	l1, err := root.Left()
	require.NoError(t, err)
	l2, err := root.Left()
	require.NoError(t, err)
	require.Same(t, l1, l2, "Left must be memoized")

	r1, err := root.Right()
	require.NoError(t, err)
	r2, err := root.Right()
	require.NoError(t, err)
	require.Same(t, r1, r2, "Right must be memoized")
}

// TestNode_ChildShape pins down the derived pairs for the canonical
// real-line root: left = (C, (−0.5,0.5)), right = ([−0.5,0.5], U).
func TestNode_ChildShape(t *testing.T) {
	root := lineRoot(t, urysohn.DefaultOptions())

	left, err := root.Left()
	require.NoError(t, err)
	right, err := root.Right()
	require.NoError(t, err)

	// left keeps the closed set, tightens the open set
	assert.True(t, left.C().Contains(0))
	assert.False(t, left.C().Contains(0.1))
	assert.True(t, left.U().Contains(0.4))
	assert.False(t, left.U().Contains(0.6))

	// right grows the closed set, keeps the open set
	assert.True(t, right.C().Contains(0.5))
	assert.False(t, right.C().Contains(0.6))
	assert.True(t, right.U().Contains(0.9))
	assert.False(t, right.U().Contains(1))
}

// TestNode_SiblingInvariant samples the containment the whole
// construction rests on: left.U ⊆ right.C.
func TestNode_SiblingInvariant(t *testing.T) {
	root := lineRoot(t, urysohn.DefaultOptions())

	nodes := []*urysohn.Node[float64]{root}
	for i := 0; i < 3; i++ { // three levels of the tree
		next := make([]*urysohn.Node[float64], 0, 2*len(nodes))
		for _, n := range nodes {
			left, err := n.Left()
			require.NoError(t, err)
			right, err := n.Right()
			require.NoError(t, err)
			for x := -2.0; x <= 2.0; x += 0.01 {
				if left.U().Contains(x) {
					assert.True(t, right.C().Contains(x), "left.U ⊄ right.C at x=%v", x)
				}
			}
			next = append(next, left, right)
		}
		nodes = next
	}
}

// badOracle returns a fixed set regardless of input.
type badOracle struct {
	v topology.OpenSet[float64]
}

func (o badOracle) Separate(topology.ClosedSet[float64], topology.OpenSet[float64]) topology.OpenSet[float64] {
	return o.v
}

// TestNode_OracleContractViolation ensures ValidateContracts surfaces
// ErrOracleContract instead of silently corrupting values.
func TestNode_OracleContractViolation(t *testing.T) {
	c, err := interval.Point(0)
	require.NoError(t, err)
	u, err := interval.NewOpen(interval.Interval{Lo: -1, Hi: 1})
	require.NoError(t, err)
	opts := urysohn.Options{ValidateContracts: true}

	// closure(whole line) is not inside (−1,1)
	var sp interval.Space
	root, err := urysohn.Build[float64](sp, badOracle{v: sp.Whole()}, c, u, opts)
	require.NoError(t, err)
	_, err = root.Left()
	assert.ErrorIs(t, err, urysohn.ErrOracleContract)

	// an empty separating set misses C
	empty, err := interval.NewOpen()
	require.NoError(t, err)
	root, err = urysohn.Build[float64](sp, badOracle{v: empty}, c, u, opts)
	require.NoError(t, err)
	_, err = root.Right()
	assert.ErrorIs(t, err, urysohn.ErrOracleContract)

	// a nil result is rejected even without validation
	root, err = urysohn.Build[float64](sp, badOracle{v: nil}, c, u, urysohn.DefaultOptions())
	require.NoError(t, err)
	_, err = root.Left()
	assert.ErrorIs(t, err, urysohn.ErrOracleContract)
}

// TestNode_NilReceiver verifies operations on a nil node fail with
// ErrNilNode rather than panicking.
func TestNode_NilReceiver(t *testing.T) {
	var n *urysohn.Node[float64]

	_, err := n.Left()
	assert.ErrorIs(t, err, urysohn.ErrNilNode)
	_, err = n.Right()
	assert.ErrorIs(t, err, urysohn.ErrNilNode)
	_, err = n.Approx(0, 0)
	assert.ErrorIs(t, err, urysohn.ErrNilNode)
	_, err = n.Limit(0, 0.5)
	assert.ErrorIs(t, err, urysohn.ErrNilNode)
	_, err = n.Neighborhood(0, 1)
	assert.ErrorIs(t, err, urysohn.ErrNilNode)
}

// TestSeparating covers the two-closed-set entry point: 0 on A, 1 on B.
func TestSeparating(t *testing.T) {
	a, err := interval.Point(0)
	require.NoError(t, err)
	b, err := interval.NewClosed(
		interval.Interval{Lo: math.Inf(-1), Hi: -1},
		interval.Interval{Lo: 1, Hi: math.Inf(1)},
	)
	require.NoError(t, err)

	root, err := urysohn.Separating[float64](interval.Space{}, interval.MidpointOracle{}, a, b, urysohn.DefaultOptions())
	require.NoError(t, err)

	v, err := root.Limit(0, 1e-3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "must vanish on A")

	v, err = root.Limit(1.5, 1e-3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "must be 1 on B")

	// overlapping sets violate the precondition
	_, err = urysohn.Separating[float64](interval.Space{}, interval.MidpointOracle{}, a, a, urysohn.DefaultOptions())
	assert.ErrorIs(t, err, urysohn.ErrPrecondition)
}
