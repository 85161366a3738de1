package opentime

import (
	"math"
	"strconv"
)

// Seconds is a point in time, or a span of time, measured in seconds. It may
// be infinite.
type Seconds float64

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) Seconds {
	return Seconds(math.Inf(sign))
}

func (s Seconds) IsInf() bool { return math.IsInf(float64(s), 0) }
func (s Seconds) IsNaN() bool { return math.IsNaN(float64(s)) }

// IsFinite reports whether s is neither infinite nor NaN.
func (s Seconds) IsFinite() bool {
	return !s.IsInf() && !s.IsNaN()
}

func (s Seconds) String() string {
	return strconv.FormatFloat(float64(s), 'g', -1, 64) + "s"
}

// lerp linearly interpolates between a and b.
func lerp(u float64, a, b Seconds) Seconds {
	return Seconds((1-u)*float64(a) + u*float64(b))
}

// inverseLerp returns the parameter u for which lerp(u, a, b) == x.
func inverseLerp(x, a, b Seconds) float64 {
	return float64(x-a) / float64(b-a)
}
