package opentime

import "fmt"

// ControlPoint is a knot of a piecewise curve, mapping Time to Value.
type ControlPoint struct {
	Time  Seconds
	Value Seconds
}

// Pt returns the control point (t, v).
func Pt(t, v Seconds) ControlPoint {
	return ControlPoint{Time: t, Value: v}
}

func (pt ControlPoint) Splat() (Seconds, Seconds) {
	return pt.Time, pt.Value
}

func (pt ControlPoint) String() string {
	return fmt.Sprintf("(%g, %g)", float64(pt.Time), float64(pt.Value))
}

// Lerp linearly interpolates between two control points.
func (pt ControlPoint) Lerp(o ControlPoint, u float64) ControlPoint {
	return ControlPoint{
		Time:  lerp(u, pt.Time, o.Time),
		Value: lerp(u, pt.Value, o.Value),
	}
}

// IsInf reports whether at least one of time and value is infinite.
func (pt ControlPoint) IsInf() bool {
	return pt.Time.IsInf() || pt.Value.IsInf()
}

// IsNaN reports whether at least one of time and value is NaN.
func (pt ControlPoint) IsNaN() bool {
	return pt.Time.IsNaN() || pt.Value.IsNaN()
}
