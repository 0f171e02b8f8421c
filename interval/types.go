// Package interval defines the concrete set types, constructors, and
// sentinel errors for the interval subpackage of
// github.com/katalvlaran/urysohn.
package interval

import (
	"errors"
	"math"
	"sort"
)

// Sentinel errors for interval constructors.
var (
	// ErrIntervalOrder indicates piece bounds out of order:
	// open pieces need Lo < Hi, closed pieces need Lo ≤ Hi.
	ErrIntervalOrder = errors.New("interval: piece bounds out of order")
	// ErrIntervalNaN indicates a NaN piece bound.
	ErrIntervalNaN = errors.New("interval: piece bounds must not be NaN")
	// ErrIntervalInfPoint indicates a degenerate closed piece at ±Inf.
	ErrIntervalInfPoint = errors.New("interval: a single-point piece must be finite")
)

// Interval is a pair of endpoints on the extended real line. Whether
// the endpoints are included depends on the set it is part of: Open
// reads it as (Lo, Hi), Closed as [Lo, Hi]. Lo = −Inf or Hi = +Inf
// denote rays.
type Interval struct {
	Lo, Hi float64
}

// Open is a finite union of open intervals, kept sorted by Lo and
// pairwise disjoint. The zero value (no pieces) is the empty set.
// Open is immutable after construction and safe for concurrent use.
type Open struct {
	ivs []Interval
}

// Closed is a finite union of closed intervals, kept sorted by Lo and
// pairwise disjoint. Degenerate pieces [c,c] represent single points.
// The zero value (no pieces) is the empty set. Closed is immutable
// after construction and safe for concurrent use.
type Closed struct {
	ivs []Interval
}

// NewOpen builds the union of the given open intervals.
// Each piece must satisfy Lo < Hi with non-NaN bounds; overlapping
// pieces are merged, touching pieces (Hi == next Lo) are kept apart
// since their union is not a single open interval.
func NewOpen(ivs ...Interval) (*Open, error) {
	for _, iv := range ivs {
		if math.IsNaN(iv.Lo) || math.IsNaN(iv.Hi) {
			return nil, ErrIntervalNaN
		}
		if !(iv.Lo < iv.Hi) {
			return nil, ErrIntervalOrder
		}
	}
	sorted := append([]Interval(nil), ivs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lo < sorted[j].Lo })

	merged := make([]Interval, 0, len(sorted))
	for _, iv := range sorted {
		if n := len(merged); n > 0 && iv.Lo < merged[n-1].Hi {
			// strict overlap: extend the previous open piece
			if iv.Hi > merged[n-1].Hi {
				merged[n-1].Hi = iv.Hi
			}
			continue
		}
		merged = append(merged, iv)
	}

	return &Open{ivs: merged}, nil
}

// NewClosed builds the union of the given closed intervals.
// Each piece must satisfy Lo ≤ Hi with non-NaN bounds; a degenerate
// piece (Lo == Hi) must be finite. Overlapping and touching pieces
// are merged ([0,1] ∪ [1,2] = [0,2]).
func NewClosed(ivs ...Interval) (*Closed, error) {
	for _, iv := range ivs {
		if math.IsNaN(iv.Lo) || math.IsNaN(iv.Hi) {
			return nil, ErrIntervalNaN
		}
		if iv.Lo > iv.Hi {
			return nil, ErrIntervalOrder
		}
		if iv.Lo == iv.Hi && math.IsInf(iv.Lo, 0) {
			return nil, ErrIntervalInfPoint
		}
	}
	sorted := append([]Interval(nil), ivs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lo < sorted[j].Lo })

	merged := make([]Interval, 0, len(sorted))
	for _, iv := range sorted {
		if n := len(merged); n > 0 && iv.Lo <= merged[n-1].Hi {
			// closed pieces merge even when merely touching
			if iv.Hi > merged[n-1].Hi {
				merged[n-1].Hi = iv.Hi
			}
			continue
		}
		merged = append(merged, iv)
	}

	return &Closed{ivs: merged}, nil
}

// Point builds the single-point closed set {x}.
func Point(x float64) (*Closed, error) {
	return NewClosed(Interval{Lo: x, Hi: x})
}

// Contains reports whether p lies in one of the open pieces.
func (o *Open) Contains(p float64) bool {
	i := sort.Search(len(o.ivs), func(i int) bool { return o.ivs[i].Hi > p })

	return i < len(o.ivs) && o.ivs[i].Lo < p && p < o.ivs[i].Hi
}

// Contains reports whether p lies in one of the closed pieces.
func (c *Closed) Contains(p float64) bool {
	i := sort.Search(len(c.ivs), func(i int) bool { return c.ivs[i].Hi >= p })

	return i < len(c.ivs) && c.ivs[i].Lo <= p && p <= c.ivs[i].Hi
}

// Intervals returns a copy of the normalized pieces, sorted by Lo.
func (o *Open) Intervals() []Interval {
	return append([]Interval(nil), o.ivs...)
}

// Intervals returns a copy of the normalized pieces, sorted by Lo.
func (c *Closed) Intervals() []Interval {
	return append([]Interval(nil), c.ivs...)
}

// IsEmpty reports whether the set has no pieces.
func (o *Open) IsEmpty() bool { return len(o.ivs) == 0 }

// IsEmpty reports whether the set has no pieces.
func (c *Closed) IsEmpty() bool { return len(c.ivs) == 0 }
