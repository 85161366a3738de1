package opentime

import (
	"testing"
)

func TestProjectIdentity(t *testing.T) {
	// b maps [0, 5] onto [0, 10]; a is the identity over [0, 10].
	a := IdentityCurve(0, 10)
	b := NewLinearCurve(Pt(0, 0), Pt(5, 10))
	diff(t, []LinearCurve{b}, a.Project(b), approx)
}

func TestProjectRefines(t *testing.T) {
	a := NewLinearCurve(Pt(0, 0), Pt(4, 8), Pt(10, 10))
	b := IdentityCurve(0, 10)
	want := []LinearCurve{NewLinearCurve(Pt(0, 0), Pt(4, 8), Pt(10, 10))}
	got := a.Project(b)
	diff(t, want, got, approx)

	// The result computes a(b(t)) everywhere in b's domain.
	for s := Seconds(0); s <= 10; s += 0.5 {
		bv, err := b.Eval(s)
		if err != nil {
			t.Fatal(err)
		}
		want, err := a.Eval(bv)
		if err != nil {
			t.Fatal(err)
		}
		v, err := got[0].Eval(s)
		if err != nil {
			t.Fatal(err)
		}
		assertNear(t, v, want, 1e-9)
	}
}

func TestProjectScaled(t *testing.T) {
	// a doubles time, b slows it down to a quarter and shifts it.
	a := NewLinearCurve(Pt(0, 0), Pt(100, 200))
	b := NewLinearCurve(Pt(0, 10), Pt(40, 20))
	want := []LinearCurve{NewLinearCurve(Pt(0, 20), Pt(40, 40))}
	diff(t, want, a.Project(b), approx)
}

func TestProjectFragments(t *testing.T) {
	// b leaves a's domain [0, 10] between t=1 and t=3 and comes back.
	a := IdentityCurve(0, 10)
	b := NewLinearCurve(Pt(0, 5), Pt(2, 15), Pt(4, 5))
	want := []LinearCurve{
		NewLinearCurve(Pt(0, 5), Pt(1, 10)),
		NewLinearCurve(Pt(3, 10), Pt(4, 5)),
	}
	diff(t, want, a.Project(b), approx)
}

func TestProjectClipsAtBothEnds(t *testing.T) {
	a := NewLinearCurve(Pt(2, 0), Pt(6, 8))
	b := IdentityCurve(0, 8)
	want := []LinearCurve{NewLinearCurve(Pt(2, 0), Pt(6, 8))}
	diff(t, want, a.Project(b), approx)
}

func TestProjectDisjoint(t *testing.T) {
	a := IdentityCurve(0, 10)
	tests := []struct {
		name string
		b    LinearCurve
	}{
		{"outside", NewLinearCurve(Pt(0, 20), Pt(10, 30))},
		// Touching the domain in a single point has no duration.
		{"touching", NewLinearCurve(Pt(0, 10), Pt(1, 20))},
		{"empty", LinearCurve{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Project(tt.b); len(got) != 0 {
				t.Errorf("got %v, want no fragments", got)
			}
		})
	}
	if got := (LinearCurve{}).Project(a); len(got) != 0 {
		t.Errorf("projecting through an empty curve produced %v", got)
	}
}

func TestProjectDoesNotAlias(t *testing.T) {
	a := IdentityCurve(0, 10)
	b := NewLinearCurve(Pt(0, 0), Pt(5, 10))
	got := a.Project(b)
	got[0].Knots[0] = Pt(-1, -1)
	diff(t, Pt(0, 0), b.Knots[0])
}
