package opentime

import (
	"math"
	"slices"
	"sort"
	"strings"
)

// Curve describes a mapping from time to value that may be undefined outside
// of some domain.
type Curve interface {
	// Eval evaluates the curve at t. It returns an error matching
	// [ErrOutOfRange] if t lies outside of the curve's domain.
	Eval(t Seconds) (Seconds, error)
	// Extents returns the bounding box of the curve. The second return value
	// is false if the curve is empty.
	Extents() (Extents, bool)
}

var _ Curve = LinearCurve{}

// LinearCurve is a piecewise linear function defined by a sequence of knots.
//
// Knot times are expected to be strictly increasing. This isn't enforced, and
// curves violating it produce meaningless results.
type LinearCurve struct {
	Knots []ControlPoint
}

// NewLinearCurve returns a curve through the given knots. The knots are
// copied.
func NewLinearCurve(knots ...ControlPoint) LinearCurve {
	return LinearCurve{Knots: slices.Clone(knots)}
}

// IdentityCurve returns a curve that maps each of the given times to itself,
// that is f(t) = t sampled at times.
func IdentityCurve(times ...Seconds) LinearCurve {
	knots := make([]ControlPoint, len(times))
	for i, t := range times {
		knots[i] = Pt(t, t)
	}
	return LinearCurve{Knots: knots}
}

// Len returns the number of knots.
func (c LinearCurve) Len() int { return len(c.Knots) }

// Clone returns a copy of the curve that doesn't share its knots with c.
func (c LinearCurve) Clone() LinearCurve {
	return LinearCurve{Knots: slices.Clone(c.Knots)}
}

// Extents implements [Curve].
func (c LinearCurve) Extents() (Extents, bool) {
	if len(c.Knots) == 0 {
		return Extents{}, false
	}
	e := NewExtentsFromPoints(c.Knots[0], c.Knots[0])
	for _, k := range c.Knots[1:] {
		e = e.UnionPoint(k)
	}
	return e, true
}

// Domain returns the closed range of times spanned by the knots, from the
// first knot's time to the last knot's time. Both endpoints are NaN for a
// curve without knots.
func (c LinearCurve) Domain() Interval {
	if len(c.Knots) == 0 {
		nan := Seconds(math.NaN())
		return Interval{nan, nan}
	}
	return Interval{c.Knots[0].Time, c.Knots[len(c.Knots)-1].Time}
}

// NearestSmallerKnotIndex returns the index i such that
// Knots[i].Time <= t < Knots[i+1].Time.
//
// If t is exactly the time of the last knot, the index of the last knot is
// returned. The second return value is false if t lies before the first knot,
// after the last knot, or if the curve has no knots.
func (c LinearCurve) NearestSmallerKnotIndex(t Seconds) (int, bool) {
	n := len(c.Knots)
	if n == 0 || t.IsNaN() || t < c.Knots[0].Time {
		return 0, false
	}
	last := c.Knots[n-1].Time
	if t == last {
		return n - 1, true
	}
	if t > last {
		return 0, false
	}
	// First knot strictly after t; it exists because t < last.
	i := sort.Search(n, func(i int) bool { return c.Knots[i].Time > t })
	return i - 1, true
}

// Eval implements [Curve] by linearly interpolating between the two knots
// bracketing t.
//
// Evaluating at exactly the last knot's time returns that knot's value.
func (c LinearCurve) Eval(t Seconds) (Seconds, error) {
	i, ok := c.NearestSmallerKnotIndex(t)
	if !ok {
		return 0, &OutOfRangeError{T: t, Domain: c.Domain()}
	}
	if i == len(c.Knots)-1 {
		return c.Knots[i].Value, nil
	}
	k0, k1 := c.Knots[i], c.Knots[i+1]
	u := inverseLerp(t, k0.Time, k1.Time)
	return lerp(u, k0.Value, k1.Value), nil
}

// Transform returns a new curve whose knot times have been mapped by aff.
//
// A negative scale reverses the order of the knots so that times remain
// increasing.
func (c LinearCurve) Transform(aff Affine) LinearCurve {
	out := c.Clone()
	for i := range out.Knots {
		out.Knots[i].Time = aff.Apply(out.Knots[i].Time)
	}
	if aff.Scale < 0 {
		slices.Reverse(out.Knots)
	}
	return out
}

// TransformValues returns a new curve whose knot values have been mapped by
// aff.
func (c LinearCurve) TransformValues(aff Affine) LinearCurve {
	out := c.Clone()
	for i := range out.Knots {
		out.Knots[i].Value = aff.Apply(out.Knots[i].Value)
	}
	return out
}

func (c LinearCurve) String() string {
	var sb strings.Builder
	sb.WriteString("LinearCurve[")
	for i, k := range c.Knots {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(k.String())
	}
	sb.WriteString("]")
	return sb.String()
}
