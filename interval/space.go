package interval

import (
	"math"

	"github.com/katalvlaran/urysohn/topology"
)

// Space implements topology.Space[float64] and topology.SubsetChecker
// over the interval-union sets of this package. It is stateless; the
// zero value is ready to use.
//
// All methods require their arguments to be *Open / *Closed values
// built by this package and panic otherwise (programmer error: sets
// from different topology models cannot be mixed).
type Space struct{}

// compile-time capability checks
var (
	_ topology.Space[float64]         = Space{}
	_ topology.SubsetChecker[float64] = Space{}
	_ topology.Oracle[float64]        = MidpointOracle{}
)

// mustOpen asserts that s was built by this package.
func mustOpen(s topology.OpenSet[float64]) *Open {
	o, ok := s.(*Open)
	if !ok {
		panic("interval: open set was not built by package interval")
	}

	return o
}

// mustClosed asserts that s was built by this package.
func mustClosed(s topology.ClosedSet[float64]) *Closed {
	c, ok := s.(*Closed)
	if !ok {
		panic("interval: closed set was not built by package interval")
	}

	return c
}

// Closure returns the closure of u: each open piece (a,b) becomes
// [a,b], and pieces that merely touched as open sets merge.
func (Space) Closure(u topology.OpenSet[float64]) topology.ClosedSet[float64] {
	o := mustOpen(u)
	// NewClosed re-normalizes, merging formerly touching pieces.
	c, err := NewClosed(o.ivs...)
	if err != nil {
		// unreachable: every valid open piece is a valid closed piece
		panic(err)
	}

	return c
}

// Complement returns the open complement of c: the gaps between the
// closed pieces, plus the unbounded rays on either side.
func (Space) Complement(c topology.ClosedSet[float64]) topology.OpenSet[float64] {
	cl := mustClosed(c)
	gaps := make([]Interval, 0, len(cl.ivs)+1)
	prev := math.Inf(-1)
	for _, iv := range cl.ivs {
		if prev < iv.Lo {
			gaps = append(gaps, Interval{Lo: prev, Hi: iv.Lo})
		}
		prev = iv.Hi
	}
	if prev < math.Inf(1) {
		gaps = append(gaps, Interval{Lo: prev, Hi: math.Inf(1)})
	}

	// gaps are already sorted and disjoint
	return &Open{ivs: gaps}
}

// Intersect returns the intersection of two open sets via a
// two-pointer sweep over their sorted pieces.
func (Space) Intersect(a, b topology.OpenSet[float64]) topology.OpenSet[float64] {
	oa, ob := mustOpen(a), mustOpen(b)
	out := make([]Interval, 0, len(oa.ivs)+len(ob.ivs))
	i, j := 0, 0
	for i < len(oa.ivs) && j < len(ob.ivs) {
		lo := math.Max(oa.ivs[i].Lo, ob.ivs[j].Lo)
		hi := math.Min(oa.ivs[i].Hi, ob.ivs[j].Hi)
		if lo < hi {
			out = append(out, Interval{Lo: lo, Hi: hi})
		}
		// drop the piece that ends first
		if oa.ivs[i].Hi < ob.ivs[j].Hi {
			i++
		} else {
			j++
		}
	}

	return &Open{ivs: out}
}

// Whole returns the entire real line (−Inf, +Inf).
func (Space) Whole() topology.OpenSet[float64] {
	return &Open{ivs: []Interval{{Lo: math.Inf(-1), Hi: math.Inf(1)}}}
}

// Subset reports whether c ⊆ u, exactly. A closed piece is connected,
// so it is contained in the union iff a single open piece contains it.
func (Space) Subset(c topology.ClosedSet[float64], u topology.OpenSet[float64]) bool {
	cl, op := mustClosed(c), mustOpen(u)
	j := 0
	for _, piece := range cl.ivs {
		// advance to the first open piece that could still cover piece
		for j < len(op.ivs) && op.ivs[j].Hi <= piece.Lo {
			j++
		}
		if j == len(op.ivs) || !covers(op.ivs[j], piece) {
			return false
		}
	}

	return true
}

// covers reports whether the open interval (o.Lo, o.Hi) contains the
// closed interval [p.Lo, p.Hi]. A ray endpoint only covers the same
// infinite endpoint: [−Inf, h] fits (−Inf, b) iff h < b, since the
// point set of the closed ray is {x finite : x ≤ h}.
func covers(o, p Interval) bool {
	left := o.Lo < p.Lo || (math.IsInf(o.Lo, -1) && math.IsInf(p.Lo, -1))
	right := p.Hi < o.Hi || (math.IsInf(o.Hi, 1) && math.IsInf(p.Hi, 1))

	return left && right
}
