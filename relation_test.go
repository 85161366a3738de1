package opentime

import (
	"math"
	"os"
	"slices"
	"testing"

	"gopkg.in/yaml.v3"
)

var predicates = map[string]func(Interval, Interval) bool{
	"equals":             Interval.Equals,
	"precedes":           Interval.Precedes,
	"meets":              Interval.Meets,
	"disjoint":           Interval.Disjoint,
	"starts":             Interval.Starts,
	"ends":               Interval.Ends,
	"overlaps":           Interval.Overlaps,
	"starts_or_overlaps": Interval.StartsOrOverlaps,
	"during":             Interval.During,
	"within":             Interval.Within,
}

type relationCase struct {
	Name     string    `yaml:"name"`
	A        []float64 `yaml:"a"`
	B        []float64 `yaml:"b"`
	Relation string    `yaml:"relation"`
	Holds    []string  `yaml:"holds"`
}

func loadRelationCases(t *testing.T) []relationCase {
	t.Helper()
	data, err := os.ReadFile("testdata/relations.yaml")
	if err != nil {
		t.Fatal(err)
	}
	var cases []relationCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatal(err)
	}
	if len(cases) == 0 {
		t.Fatal("no test cases")
	}
	return cases
}

func interval(t *testing.T, v []float64) Interval {
	t.Helper()
	if len(v) != 2 {
		t.Fatalf("interval needs two endpoints, got %v", v)
	}
	return Interval{Seconds(v[0]), Seconds(v[1])}
}

func TestRelationTable(t *testing.T) {
	for _, tc := range loadRelationCases(t) {
		t.Run(tc.Name, func(t *testing.T) {
			a, b := interval(t, tc.A), interval(t, tc.B)
			want, ok := ParseRelation(tc.Relation)
			if !ok {
				t.Fatalf("unknown relation %q", tc.Relation)
			}
			if got := Relate(a, b); got != want {
				t.Errorf("Relate(%v, %v) = %v, want %v", a, b, got, want)
			}
			if got := Relate(b, a); got != want.Inverse() {
				t.Errorf("Relate(%v, %v) = %v, want %v", b, a, got, want.Inverse())
			}
			for _, name := range tc.Holds {
				if _, ok := predicates[name]; !ok {
					t.Fatalf("unknown predicate %q", name)
				}
			}
			for name, pred := range predicates {
				want := slices.Contains(tc.Holds, name)
				if got := pred(a, b); got != want {
					t.Errorf("%v.%s(%v) = %t, want %t", a, name, b, got, want)
				}
			}
		})
	}
}

func TestStartsOrOverlaps(t *testing.T) {
	ival := Interval{10, 20}
	tests := []struct {
		start Seconds
		want  bool
	}{
		{0, false},
		{10, true},
		{15, true},
		{20, false},
		{25, false},
		{Inf(-1), false},
		{Inf(1), false},
	}
	for _, tt := range tests {
		if got := ival.StartsOrOverlaps(FromStart(tt.start)); got != tt.want {
			t.Errorf("%v.StartsOrOverlaps(FromStart(%v)) = %t, want %t", ival, tt.start, got, tt.want)
		}
	}
	if !ival.Equals(FromStartDuration(10, 10)) {
		t.Errorf("%v should equal FromStartDuration(10, 10)", ival)
	}
}

// allIntervals returns every non-empty interval with integer endpoints in
// [0, n].
func allIntervals(n int) []Interval {
	var out []Interval
	for s := 0; s <= n; s++ {
		for e := s + 1; e <= n; e++ {
			out = append(out, Interval{Seconds(s), Seconds(e)})
		}
	}
	return out
}

func TestRelateExhaustive(t *testing.T) {
	in := func(r Relation, rs ...Relation) bool { return slices.Contains(rs, r) }
	for _, a := range allIntervals(5) {
		for _, b := range allIntervals(5) {
			r := Relate(a, b)
			if r == RelationInvalid {
				t.Fatalf("Relate(%v, %v) is invalid", a, b)
			}
			if got := Relate(b, a); got != r.Inverse() {
				t.Errorf("Relate(%v, %v) = %v, but Relate(%v, %v) = %v", a, b, r, b, a, got)
			}

			// The basic predicates are mutually exclusive, including the
			// inverse of precedes.
			var held []string
			for name, ok := range map[string]bool{
				"precedes":    a.Precedes(b),
				"preceded-by": b.Precedes(a),
				"meets":       a.Meets(b),
				"met-by":      b.Meets(a),
				"overlaps":    a.Overlaps(b),
				"starts":      a.Starts(b),
				"during":      a.During(b),
				"equals":      a.Equals(b),
				"ends":        a.Ends(b),
			} {
				if ok {
					held = append(held, name)
				}
			}
			if len(held) > 1 {
				t.Errorf("%v and %v: multiple relations hold: %v", a, b, held)
			}

			checks := []struct {
				name string
				got  bool
				want bool
			}{
				{"equals", a.Equals(b), r == Equals},
				{"precedes", a.Precedes(b), r == Before},
				{"meets", a.Meets(b), r == Meets},
				{"overlaps", a.Overlaps(b), r == Overlaps},
				{"starts", a.Starts(b), r == Starts},
				{"ends", a.Ends(b), r == Finishes},
				{"during", a.During(b), r == During},
				{"disjoint", a.Disjoint(b), in(r, Before, After)},
				{"within", a.Within(b), in(r, Starts, Finishes, During)},
				{"starts_or_overlaps", a.StartsOrOverlaps(b),
					in(r, Overlaps, FinishedBy, Contains, Starts, Equals, StartedBy)},
			}
			for _, c := range checks {
				if c.got != c.want {
					t.Errorf("%v.%s(%v) = %t, but relation is %v", a, c.name, b, c.got, r)
				}
			}
		}
	}
}

func TestRelationsMalformed(t *testing.T) {
	nan := Seconds(math.NaN())
	good := Interval{0, 10}
	for _, bad := range []Interval{{nan, 5}, {0, nan}, {10, 0}} {
		for name, pred := range predicates {
			if pred(bad, good) || pred(good, bad) || pred(bad, bad) {
				t.Errorf("%s holds for malformed interval %v", name, bad)
			}
		}
		if r := Relate(bad, good); r != RelationInvalid {
			t.Errorf("Relate(%v, %v) = %v, want invalid", bad, good, r)
		}
	}
	if r := Relate(Interval{3, 3}, good); r != RelationInvalid {
		t.Errorf("Relate of empty interval = %v, want invalid", r)
	}
}

func TestRelationNames(t *testing.T) {
	for r := RelationInvalid; r <= After; r++ {
		got, ok := ParseRelation(r.String())
		if !ok || got != r {
			t.Errorf("ParseRelation(%q) = %v, %t", r.String(), got, ok)
		}
		if r.Inverse().Inverse() != r {
			t.Errorf("inverse of inverse of %v is %v", r, r.Inverse().Inverse())
		}
	}
	if _, ok := ParseRelation("sideways"); ok {
		t.Error("ParseRelation accepted an unknown name")
	}
	diff(t, "Relation(?)", Relation(99).String())
}
