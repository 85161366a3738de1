package opentime

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares Seconds with an absolute tolerance of 1e-9. Infinities
// compare equal to themselves.
var approx = cmp.Comparer(func(a, b Seconds) bool {
	return a == b || math.Abs(float64(a-b)) <= 1e-9
})

func assertNear(t *testing.T, got, want Seconds, epsilon float64) {
	t.Helper()
	if got == want {
		return
	}
	if d := math.Abs(float64(got - want)); !(d <= epsilon) {
		t.Fatalf("got %v, expected %v", got, want)
	}
}
