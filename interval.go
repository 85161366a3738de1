package opentime

import (
	"fmt"
	"math"
)

// Interval is the half-open time range [Start, End).
//
// Intervals are expected to satisfy Start <= End. Functions that produce
// intervals from transforms with negative scale may violate that; use
// [Interval.Abs] to restore the ordering.
type Interval struct {
	Start Seconds
	End   Seconds
}

// DefaultInterval is [0, +∞), the bounds of a freshly created timeline node.
var DefaultInterval = Interval{0, Seconds(math.Inf(1))}

// Continuum is (-∞, +∞).
var Continuum = Interval{Seconds(math.Inf(-1)), Seconds(math.Inf(1))}

// FromStart returns [start, +∞).
func FromStart(start Seconds) Interval {
	return Interval{start, Seconds(math.Inf(1))}
}

// FromStartDuration returns the interval beginning at start and lasting d.
//
// A non-positive d produces the interval [start+d, start), which ends at start
// instead of beginning there. The result is always ordered.
func FromStartDuration(start, d Seconds) Interval {
	if d <= 0 {
		return Interval{start + d, start}
	}
	return Interval{start, start + d}
}

// Duration returns End − Start, or +∞ if either endpoint isn't finite.
func (iv Interval) Duration() Seconds {
	if !iv.Start.IsFinite() || !iv.End.IsFinite() {
		return Seconds(math.Inf(1))
	}
	return iv.End - iv.Start
}

// Valid reports whether neither endpoint is NaN and Start <= End.
func (iv Interval) Valid() bool {
	return !iv.Start.IsNaN() && !iv.End.IsNaN() && iv.Start <= iv.End
}

// IsEmpty reports whether the interval contains no time at all.
func (iv Interval) IsEmpty() bool {
	return !(iv.Start < iv.End)
}

// Contains reports whether t lies in [Start, End).
func (iv Interval) Contains(t Seconds) bool {
	return t >= iv.Start && t < iv.End
}

// Abs returns a new interval with the same endpoints as iv, ordered so that
// Start <= End.
func (iv Interval) Abs() Interval {
	return Interval{
		Start: min(iv.Start, iv.End),
		End:   max(iv.Start, iv.End),
	}
}

// Intersect returns the intersection of two intervals.
//
// The result is empty (but still ordered) if the intervals don't overlap; its
// start is then the later of the two starts.
func (iv Interval) Intersect(o Interval) Interval {
	start := max(iv.Start, o.Start)
	end := min(iv.End, o.End)
	return Interval{
		Start: start,
		End:   max(start, end),
	}
}

// Union returns the smallest interval enclosing iv and o.
func (iv Interval) Union(o Interval) Interval {
	return Interval{
		Start: min(iv.Start, o.Start),
		End:   max(iv.End, o.End),
	}
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g)", float64(iv.Start), float64(iv.End))
}
