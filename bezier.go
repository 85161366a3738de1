package opentime

import "math"

// BezierMaxIterations bounds the number of iterations [SolveBezierParam]
// spends refining its estimate.
const BezierMaxIterations = 45

// BezierEpsilon is the machine epsilon of float64. [SolveBezierParam] stops
// once its bracket is narrower than twice this value.
var BezierEpsilon = math.Nextafter(1, 2) - 1

// bezier1 evaluates a one-dimensional cubic Bézier with control values p0..p3.
func bezier1(u, p0, p1, p2, p3 float64) float64 {
	mu := 1.0 - u
	return mu*mu*mu*p0 + u*(mu*mu*3.0*p1+u*(mu*3.0*p2+u*p3))
}

// SolveBezierParam finds the parameter u ∈ [0, 1] at which the
// one-dimensional cubic Bézier with control values 0, p1, p2, p3 equals x.
//
// The Bézier must be monotonically nondecreasing, which holds when
// 0 <= p1 <= p2 <= p3. Values of x at or below 0 map to 0, values at or above
// p3 map to 1.
//
// The root is found with a hybrid of the secant method and false position: a
// secant step is taken whenever it lands inside the bracket known to contain
// the root, and a false position step (with the Illinois modification)
// otherwise. At most [BezierMaxIterations] iterations are performed.
func SolveBezierParam(x, p1, p2, p3 float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= p3 {
		return 1
	}
	f := func(u float64) float64 {
		return bezier1(u, 0, p1, p2, p3) - x
	}

	// Bracket with fa < 0 < fb.
	a, b := 0.0, 1.0
	fa, fb := -x, p3-x
	// The two most recent iterates, for the secant step.
	u0, f0 := a, fa
	u1, f1 := b, fb
	side := 0
	for range BezierMaxIterations {
		if b-a < 2*BezierEpsilon {
			break
		}
		u := u1 - f1*(u1-u0)/(f1-f0)
		if !(u > a && u < b) {
			u = (a*fb - b*fa) / (fb - fa)
			if !(u > a && u < b) {
				u = 0.5 * (a + b)
			}
		}
		if u == u1 {
			break
		}
		fu := f(u)
		if fu == 0 {
			return u
		}
		u0, f0 = u1, f1
		u1, f1 = u, fu
		if fu < 0 {
			a, fa = u, fu
			if side == -1 {
				fb *= 0.5
			}
			side = -1
		} else {
			b, fb = u, fu
			if side == 1 {
				fa *= 0.5
			}
			side = 1
		}
	}
	return u1
}

var _ Curve = BezierSegment{}

// BezierSegment is a cubic Bézier mapping time to value.
//
// The time coordinates of the control points must be nondecreasing, so that
// every time in [P0.Time, P3.Time] corresponds to exactly one value.
type BezierSegment struct {
	P0 ControlPoint
	P1 ControlPoint
	P2 ControlPoint
	P3 ControlPoint
}

// Domain returns [P0.Time, P3.Time].
func (c BezierSegment) Domain() Interval {
	return Interval{c.P0.Time, c.P3.Time}
}

// evalParam evaluates the segment at parameter u.
func (c BezierSegment) evalParam(u float64) ControlPoint {
	return ControlPoint{
		Time: Seconds(bezier1(u,
			float64(c.P0.Time), float64(c.P1.Time), float64(c.P2.Time), float64(c.P3.Time))),
		Value: Seconds(bezier1(u,
			float64(c.P0.Value), float64(c.P1.Value), float64(c.P2.Value), float64(c.P3.Value))),
	}
}

// Param returns the parameter at which the segment reaches time t. Times
// outside of the domain are clamped.
func (c BezierSegment) Param(t Seconds) float64 {
	t0 := c.P0.Time
	return SolveBezierParam(
		float64(t-t0),
		float64(c.P1.Time-t0),
		float64(c.P2.Time-t0),
		float64(c.P3.Time-t0))
}

// Eval implements [Curve].
func (c BezierSegment) Eval(t Seconds) (Seconds, error) {
	if t.IsNaN() || t < c.P0.Time || t > c.P3.Time {
		return 0, &OutOfRangeError{T: t, Domain: c.Domain()}
	}
	return c.evalParam(c.Param(t)).Value, nil
}

// Extents implements [Curve]. The value range accounts for extrema between
// the end points and is thus tight.
func (c BezierSegment) Extents() (Extents, bool) {
	e := NewExtentsFromPoints(c.P0, c.P3)
	roots, n := c.valueExtrema()
	for _, u := range roots[:n] {
		e = e.UnionPoint(c.evalParam(u))
	}
	return e, true
}

// valueExtrema returns the parameters in (0, 1) at which the value
// coordinate has a local extremum.
func (c BezierSegment) valueExtrema() ([2]float64, int) {
	p0, p1 := float64(c.P0.Value), float64(c.P1.Value)
	p2, p3 := float64(c.P2.Value), float64(c.P3.Value)
	// Derivative of the Bernstein form, as a quadratic in u.
	d0 := 3 * (p1 - p0)
	d1 := 6 * (p2 - 2*p1 + p0)
	d2 := 3 * (p3 - 3*p2 + 3*p1 - p0)
	roots, n := solveQuadratic(d0, d1, d2)
	var out [2]float64
	var outN int
	for _, u := range roots[:n] {
		if u > 0 && u < 1 {
			out[outN] = u
			outN++
		}
	}
	return out, outN
}

// Linearize approximates the segment with a [LinearCurve] of n line
// segments, sampled at evenly spaced parameters. n is at least 1.
func (c BezierSegment) Linearize(n int) LinearCurve {
	n = max(n, 1)
	knots := make([]ControlPoint, n+1)
	knots[0] = c.P0
	for i := 1; i < n; i++ {
		knots[i] = c.evalParam(float64(i) / float64(n))
	}
	knots[n] = c.P3
	return LinearCurve{Knots: knots}
}

// solveQuadratic finds the real roots of c0 + c1 x + c2 x² = 0, sorted in
// increasing order.
//
// A nearly linear equation is solved ignoring the quadratic term. If all
// coefficients are zero, a single root of 0 is reported.
func solveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) || math.IsNaN(sc1) {
		root := -c0 / c1
		switch {
		case !math.IsInf(root, 0) && !math.IsNaN(root):
			return [2]float64{root}, 1
		case c0 == 0 && c1 == 0:
			return [2]float64{0}, 1
		default:
			return [2]float64{}, 0
		}
	}
	disc := sc1*sc1 - 4*sc0
	if disc < 0 {
		return [2]float64{}, 0
	} else if disc == 0 {
		return [2]float64{-0.5 * sc1}, 1
	}
	// Avoid cancellation by computing the larger root first.
	r1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(disc), sc1))
	r2 := sc0 / r1
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return [2]float64{r1, r2}, 2
}
