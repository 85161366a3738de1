package opentime

import "fmt"

// Extents is the axis-aligned bounding box of a curve's knots. Unlike
// [Interval], both axes are closed ranges.
type Extents struct {
	Min ControlPoint
	Max ControlPoint
}

// NewExtentsFromPoints returns the extents of p0 and p1.
func NewExtentsFromPoints(p0, p1 ControlPoint) Extents {
	return Extents{
		Min: Pt(min(p0.Time, p1.Time), min(p0.Value, p1.Value)),
		Max: Pt(max(p0.Time, p1.Time), max(p0.Value, p1.Value)),
	}
}

// UnionPoint computes the union with one point.
//
// A succession of UnionPoint operations on a series of points, starting with
// the extents of the first point, yields their bounding box.
func (e Extents) UnionPoint(pt ControlPoint) Extents {
	return Extents{
		Min: Pt(min(e.Min.Time, pt.Time), min(e.Min.Value, pt.Value)),
		Max: Pt(max(e.Max.Time, pt.Time), max(e.Max.Value, pt.Value)),
	}
}

// Times returns the range of times covered, as [Min.Time, Max.Time).
//
// Note that the returned interval is half-open while the extents are closed.
func (e Extents) Times() Interval {
	return Interval{e.Min.Time, e.Max.Time}
}

// Values returns the range of values covered, as [Min.Value, Max.Value).
func (e Extents) Values() Interval {
	return Interval{e.Min.Value, e.Max.Value}
}

// ContainsTime reports whether t lies in the closed range [Min.Time, Max.Time].
func (e Extents) ContainsTime(t Seconds) bool {
	return t >= e.Min.Time && t <= e.Max.Time
}

// ContainsValue reports whether v lies in the closed range [Min.Value, Max.Value].
func (e Extents) ContainsValue(v Seconds) bool {
	return v >= e.Min.Value && v <= e.Max.Value
}

func (e Extents) String() string {
	return fmt.Sprintf("%s..%s", e.Min, e.Max)
}
