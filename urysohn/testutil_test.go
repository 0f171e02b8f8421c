// Package urysohn_test helpers: a tiny discrete topology over int
// points (every set is clopen, so the construction collapses to exact
// indicator values) and a canonical real-line root.
package urysohn_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/urysohn/interval"
	"github.com/katalvlaran/urysohn/topology"
	"github.com/katalvlaran/urysohn/urysohn"
	"github.com/stretchr/testify/require"
)

// dOpen / dClosed are membership sets over int points.
type dOpen map[int]bool

func (s dOpen) Contains(p int) bool { return s[p] }

type dClosed map[int]bool

func (s dClosed) Contains(p int) bool { return s[p] }

// dSpace is a finite discrete space: every subset is clopen, so
// closure is the identity on membership and subset checks are exact.
type dSpace struct {
	universe []int
}

func (sp dSpace) Closure(u topology.OpenSet[int]) topology.ClosedSet[int] {
	out := dClosed{}
	for _, p := range sp.universe {
		if u.Contains(p) {
			out[p] = true
		}
	}

	return out
}

func (sp dSpace) Complement(c topology.ClosedSet[int]) topology.OpenSet[int] {
	out := dOpen{}
	for _, p := range sp.universe {
		if !c.Contains(p) {
			out[p] = true
		}
	}

	return out
}

func (sp dSpace) Intersect(a, b topology.OpenSet[int]) topology.OpenSet[int] {
	out := dOpen{}
	for _, p := range sp.universe {
		if a.Contains(p) && b.Contains(p) {
			out[p] = true
		}
	}

	return out
}

func (sp dSpace) Whole() topology.OpenSet[int] {
	out := dOpen{}
	for _, p := range sp.universe {
		out[p] = true
	}

	return out
}

func (sp dSpace) Subset(c topology.ClosedSet[int], u topology.OpenSet[int]) bool {
	for _, p := range sp.universe {
		if c.Contains(p) && !u.Contains(p) {
			return false
		}
	}

	return true
}

// dOracle separates by returning C itself: in a discrete space every
// set is open with closure equal to itself, so the normality contract
// holds trivially.
type dOracle struct {
	sp dSpace
}

func (o dOracle) Separate(c topology.ClosedSet[int], u topology.OpenSet[int]) topology.OpenSet[int] {
	out := dOpen{}
	for _, p := range o.sp.universe {
		if c.Contains(p) {
			out[p] = true
		}
	}

	return out
}

// noCheckSpace hides the Subset capability of dSpace, for exercising
// the checkerless code paths.
type noCheckSpace struct {
	inner dSpace
}

func (sp noCheckSpace) Closure(u topology.OpenSet[int]) topology.ClosedSet[int] {
	return sp.inner.Closure(u)
}

func (sp noCheckSpace) Complement(c topology.ClosedSet[int]) topology.OpenSet[int] {
	return sp.inner.Complement(c)
}

func (sp noCheckSpace) Intersect(a, b topology.OpenSet[int]) topology.OpenSet[int] {
	return sp.inner.Intersect(a, b)
}

func (sp noCheckSpace) Whole() topology.OpenSet[int] {
	return sp.inner.Whole()
}

// lineRoot builds the canonical real-line configuration C = {0},
// U = (−1,1) with the midpoint oracle. Under that oracle the limit
// function is exactly min(|x|, 1), which the tests lean on heavily.
func lineRoot(t *testing.T, opts urysohn.Options) *urysohn.Node[float64] {
	t.Helper()

	c, err := interval.Point(0)
	require.NoError(t, err)
	u, err := interval.NewOpen(interval.Interval{Lo: -1, Hi: 1})
	require.NoError(t, err)

	root, err := urysohn.Build[float64](interval.Space{}, interval.MidpointOracle{}, c, u, opts)
	require.NoError(t, err)

	return root
}

// lineLimit is the closed-form limit function of lineRoot.
func lineLimit(x float64) float64 {
	return math.Min(math.Abs(x), 1)
}
