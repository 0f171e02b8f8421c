package interval

import (
	"math"

	"github.com/katalvlaran/urysohn/topology"
)

// MidpointOracle witnesses normality of the real line for the
// interval-union sets of this package.
//
// Separate walks the components (a,b) of U. For every component that
// holds pieces of C, spanning [cLo, cHi], it emits the open interval
//
//	( mid(a, cLo), mid(cHi, b) )
//
// where mid halves the gap toward the component boundary, stepping by
// one unit instead when the boundary is infinite. The emitted interval
// strictly contains the C-pieces of the component and its closure
// stays strictly inside (a,b), which is exactly the normality
// contract: C ⊆ V and closure(V) ⊆ U.
//
// Complexity: O(k₁+k₂) over the piece counts of C and U.
//
// Separate panics when C ⊄ U (callers can verify up-front with
// Space.Subset); behavior of the oracle is only specified under the
// precondition.
type MidpointOracle struct{}

// Separate returns the midpoint separating set for C inside U.
func (MidpointOracle) Separate(c topology.ClosedSet[float64], u topology.OpenSet[float64]) topology.OpenSet[float64] {
	cl, op := mustClosed(c), mustOpen(u)
	out := make([]Interval, 0, len(op.ivs))
	j := 0
	for _, comp := range op.ivs {
		cLo, cHi := math.Inf(1), math.Inf(-1)
		for j < len(cl.ivs) && cl.ivs[j].Lo < comp.Hi {
			if !covers(comp, cl.ivs[j]) {
				panic("interval: Separate requires C ⊆ U")
			}
			if cl.ivs[j].Lo < cLo {
				cLo = cl.ivs[j].Lo
			}
			if cl.ivs[j].Hi > cHi {
				cHi = cl.ivs[j].Hi
			}
			j++
		}
		if cLo > cHi {
			continue // no C inside this component
		}
		out = append(out, Interval{
			Lo: midDown(comp.Lo, cLo),
			Hi: midUp(cHi, comp.Hi),
		})
	}
	if j < len(cl.ivs) {
		panic("interval: Separate requires C ⊆ U")
	}

	return &Open{ivs: out}
}

// midDown picks a point strictly between the component's lower
// boundary a and the lowest C point cLo (a < cLo). An infinite
// boundary stays infinite when C reaches it too, and otherwise steps
// one unit below C.
func midDown(a, cLo float64) float64 {
	if math.IsInf(a, -1) {
		if math.IsInf(cLo, -1) {
			return a
		}

		return cLo - 1
	}

	return a + (cLo-a)/2
}

// midUp mirrors midDown for the upper boundary.
func midUp(cHi, b float64) float64 {
	if math.IsInf(b, 1) {
		if math.IsInf(cHi, 1) {
			return b
		}

		return cHi + 1
	}

	return cHi + (b-cHi)/2
}
