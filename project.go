package opentime

import "slices"

// Project composes two curves, returning fragments of the curve t ↦ c(other(t))
// for t in the domain of other.
//
// The values of other are treated as times fed into c. Where other's value
// leaves c's domain, the composition is undefined and the result is split into
// separate fragments; a fragment that would consist of a single knot has no
// duration and is dropped. The result is empty if the two curves don't
// overlap at all.
//
// Knots are inserted into other wherever its value crosses the time of one of
// c's knots, so that every fragment follows the piecewise structure of both
// curves exactly.
func (c LinearCurve) Project(other LinearCurve) []LinearCurve {
	if len(c.Knots) == 0 || len(other.Knots) == 0 {
		return nil
	}

	var out []LinearCurve
	var run []ControlPoint
	flush := func() {
		if len(run) >= 2 {
			out = append(out, LinearCurve{Knots: run})
		}
		run = nil
	}
	for _, k := range c.refine(other) {
		v, err := c.Eval(k.Value)
		if err != nil {
			flush()
			continue
		}
		run = append(run, Pt(k.Time, v))
	}
	flush()
	return out
}

// refine returns a copy of other's knots with additional knots wherever
// other's value passes through the time of one of c's knots.
func (c LinearCurve) refine(other LinearCurve) []ControlPoint {
	ext, _ := other.Extents()
	var splits []Seconds
	for _, k := range c.Knots {
		if ext.ContainsValue(k.Time) {
			splits = append(splits, k.Time)
		}
	}
	if len(splits) == 0 {
		return slices.Clone(other.Knots)
	}

	out := make([]ControlPoint, 0, len(other.Knots)+len(splits))
	for i, k0 := range other.Knots {
		out = append(out, k0)
		if i+1 == len(other.Knots) {
			break
		}
		k1 := other.Knots[i+1]
		switch {
		case k0.Value < k1.Value:
			for _, s := range splits {
				if s > k0.Value && s < k1.Value {
					out = append(out, splitAtValue(k0, k1, s))
				}
			}
		case k0.Value > k1.Value:
			for _, s := range slices.Backward(splits) {
				if s < k0.Value && s > k1.Value {
					out = append(out, splitAtValue(k0, k1, s))
				}
			}
		}
	}
	return out
}

// splitAtValue returns the point on the segment k0..k1 whose value is v.
func splitAtValue(k0, k1 ControlPoint, v Seconds) ControlPoint {
	u := inverseLerp(v, k0.Value, k1.Value)
	return Pt(lerp(u, k0.Time, k1.Time), v)
}
