package opentime

import (
	"fmt"
	"math"
)

// Affine describes a one-dimensional affine transform of time,
//
//	x ↦ x·Scale + Offset
//
// Composition follows the usual convention for functions: (A.Mul(B)).Apply(x)
// == A.Apply(B.Apply(x)).
type Affine struct {
	Offset Seconds
	Scale  float64
}

// Identity is the identity transform.
var Identity = Affine{0, 1}

// Translate creates an affine transform representing a shift by s.
func Translate(s Seconds) Affine {
	return Affine{s, 1}
}

// Scale creates an affine transform representing scaling by k about zero.
func Scale(k float64) Affine {
	return Affine{0, k}
}

// Apply transforms a point in time.
func (aff Affine) Apply(s Seconds) Seconds {
	return Seconds(float64(s)*aff.Scale) + aff.Offset
}

// ApplyInterval transforms both endpoints of an interval independently.
//
// If the scale is negative, the resulting interval has Start > End. The
// endpoints are not swapped; see [Interval.Abs].
func (aff Affine) ApplyInterval(iv Interval) Interval {
	return Interval{
		Start: aff.Apply(iv.Start),
		End:   aff.Apply(iv.End),
	}
}

// Mul composes two transforms, returning the transform that applies o first
// and then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		Offset: aff.Apply(o.Offset),
		Scale:  aff.Scale * o.Scale,
	}
}

// PreTranslate creates a translation of s followed by aff.
//
// Equivalent to "aff * Translate(s)"
func (aff Affine) PreTranslate(s Seconds) Affine {
	return aff.Mul(Translate(s))
}

// ThenTranslate creates aff followed by a translation of s.
//
// Equivalent to "Translate(s) * aff"
func (aff Affine) ThenTranslate(s Seconds) Affine {
	aff.Offset += s
	return aff
}

// ThenScale creates aff followed by a scale of k.
//
// Equivalent to "Scale(k) * aff"
func (aff Affine) ThenScale(k float64) Affine {
	return Scale(k).Mul(aff)
}

// Invert computes the inverse transform.
//
// Produces non-finite values when the scale is zero.
func (aff Affine) Invert() Affine {
	return Affine{
		Offset: Seconds(-float64(aff.Offset) / aff.Scale),
		Scale:  1 / aff.Scale,
	}
}

func (aff Affine) IsInf() bool {
	return aff.Offset.IsInf() || math.IsInf(aff.Scale, 0)
}

func (aff Affine) IsNaN() bool {
	return aff.Offset.IsNaN() || math.IsNaN(aff.Scale)
}

// IsFinite reports whether neither the offset nor the scale is infinite or
// NaN. The inverse of a transform with zero scale is not finite.
func (aff Affine) IsFinite() bool {
	return !aff.IsInf() && !aff.IsNaN()
}

func (aff Affine) String() string {
	return fmt.Sprintf("x·%g%+g", aff.Scale, float64(aff.Offset))
}
