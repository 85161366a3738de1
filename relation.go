package opentime

// The predicates in this file implement Allen's interval algebra for
// half-open intervals. Each reports whether iv stands in the named relation
// to o. If either interval is malformed (see [Interval.Valid]), no relation
// holds and all predicates return false.

// Equals reports whether both intervals have the same start and end.
func (iv Interval) Equals(o Interval) bool {
	if !validPair(iv, o) {
		return false
	}
	return iv.Start == o.Start && iv.End == o.End
}

// Precedes reports whether iv ends strictly before o starts.
func (iv Interval) Precedes(o Interval) bool {
	if !validPair(iv, o) {
		return false
	}
	return o.Start > iv.End
}

// Meets reports whether iv ends exactly where o starts.
func (iv Interval) Meets(o Interval) bool {
	if !validPair(iv, o) {
		return false
	}
	return iv.End == o.Start
}

// Disjoint reports whether the intervals are separated by a gap, in either
// order. Intervals that merely meet are not disjoint.
func (iv Interval) Disjoint(o Interval) bool {
	if !validPair(iv, o) {
		return false
	}
	return iv.End < o.Start || o.End < iv.Start
}

// Starts reports whether both intervals start together and iv is shorter.
func (iv Interval) Starts(o Interval) bool {
	if !validPair(iv, o) {
		return false
	}
	return iv.Start == o.Start && iv.End < o.End
}

// Ends reports whether both intervals end together and iv starts later.
func (iv Interval) Ends(o Interval) bool {
	if !validPair(iv, o) {
		return false
	}
	return iv.End == o.End && iv.Start > o.Start
}

// Overlaps reports whether iv begins before o and the two genuinely overlap,
// with o extending past iv's end.
func (iv Interval) Overlaps(o Interval) bool {
	if !validPair(iv, o) {
		return false
	}
	return iv.Start < o.Start && o.Start < iv.End && iv.End < o.End
}

// StartsOrOverlaps reports whether o's start lands inside iv.
//
// This is the hit test used to decide whether something beginning at o.Start
// is covered by iv.
func (iv Interval) StartsOrOverlaps(o Interval) bool {
	if !validPair(iv, o) {
		return false
	}
	return iv.Start <= o.Start && o.Start < iv.End
}

// During reports whether iv is strictly contained in o, sharing neither
// endpoint.
func (iv Interval) During(o Interval) bool {
	if !validPair(iv, o) {
		return false
	}
	return o.Start < iv.Start && iv.End < o.End
}

// Within reports whether iv is contained in o, possibly sharing an endpoint,
// without being equal to it.
func (iv Interval) Within(o Interval) bool {
	if !validPair(iv, o) {
		return false
	}
	return o.Start <= iv.Start && iv.End <= o.End && !(iv.Start == o.Start && iv.End == o.End)
}

func validPair(a, b Interval) bool {
	return a.Valid() && b.Valid()
}

// Relation is one of the thirteen basic relations of Allen's interval algebra.
// Exactly one basic relation holds between any two non-empty, valid intervals.
type Relation int

const (
	// RelationInvalid is returned by [Relate] for malformed or empty intervals.
	RelationInvalid Relation = iota
	Before
	Meets
	Overlaps
	FinishedBy
	Contains
	Starts
	Equals
	StartedBy
	During
	Finishes
	OverlappedBy
	MetBy
	After
)

var relationNames = [...]string{
	RelationInvalid: "invalid",
	Before:          "before",
	Meets:           "meets",
	Overlaps:        "overlaps",
	FinishedBy:      "finished-by",
	Contains:        "contains",
	Starts:          "starts",
	Equals:          "equals",
	StartedBy:       "started-by",
	During:          "during",
	Finishes:        "finishes",
	OverlappedBy:    "overlapped-by",
	MetBy:           "met-by",
	After:           "after",
}

func (r Relation) String() string {
	if r < 0 || int(r) >= len(relationNames) {
		return "Relation(?)"
	}
	return relationNames[r]
}

// Inverse returns the relation that holds between o and iv when r holds
// between iv and o.
func (r Relation) Inverse() Relation {
	if r == RelationInvalid {
		return RelationInvalid
	}
	// The basic relations are laid out symmetrically around Equals.
	return After + Before - r
}

// Relate classifies the relation between iv and o.
//
// Empty intervals don't have a unique relation to other intervals; Relate
// returns RelationInvalid for them as it does for malformed intervals.
func Relate(iv, o Interval) Relation {
	if !validPair(iv, o) || iv.IsEmpty() || o.IsEmpty() {
		return RelationInvalid
	}
	switch {
	case iv.End < o.Start:
		return Before
	case iv.End == o.Start:
		return Meets
	case o.End < iv.Start:
		return After
	case o.End == iv.Start:
		return MetBy
	}
	// The intervals share some time.
	switch {
	case iv.Start == o.Start && iv.End == o.End:
		return Equals
	case iv.Start == o.Start && iv.End < o.End:
		return Starts
	case iv.Start == o.Start:
		return StartedBy
	case iv.End == o.End && iv.Start > o.Start:
		return Finishes
	case iv.End == o.End:
		return FinishedBy
	case iv.Start < o.Start && iv.End > o.End:
		return Contains
	case iv.Start > o.Start && iv.End < o.End:
		return During
	case iv.Start < o.Start:
		return Overlaps
	default:
		return OverlappedBy
	}
}

// ParseRelation returns the relation whose [Relation.String] is s.
func ParseRelation(s string) (Relation, bool) {
	for r, name := range relationNames {
		if name == s {
			return Relation(r), true
		}
	}
	return RelationInvalid, false
}
