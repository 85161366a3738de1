// Package opentime models time for non-linear editing timelines: points in
// time, intervals, affine and curve-based transforms of time, relations
// between intervals, and a graph of timeline nodes that play in sequence or in
// parallel.
//
// # Time algebra
//
// [Seconds] is the scalar all other types are built on. It may be infinite,
// and [Interval] uses infinite endpoints to describe open-ended ranges, such
// as [DefaultInterval] and [Continuum]. Intervals are half-open.
//
// [Affine] maps one time coordinate onto another by scaling and offsetting.
// Transforms compose like functions: A.Mul(B) applies B first. A transform
// with zero scale has no inverse; [Affine.Invert] then produces non-finite
// values, which callers can detect with [Affine.IsFinite].
//
// # Interval relations
//
// Intervals can be compared with the predicates of Allen's interval algebra,
// such as [Interval.Precedes], [Interval.Meets] and [Interval.During]. Some of
// these predicates are unions of basic relations; [Relate] classifies a pair
// of intervals into exactly one of the thirteen basic relations.
//
// Predicates are total. Malformed intervals, those with NaN endpoints or with
// Start > End, are in no relation to anything.
//
// # Curves
//
// [LinearCurve] describes a nonlinear mapping of time by a piecewise linear
// function through a list of knots. Evaluating a curve outside of its knots
// fails with an error matching [ErrOutOfRange] instead of extrapolating.
//
// [LinearCurve.Project] composes two curves, which is how time remapping
// effects stack: projecting a clip's retime curve through its parent's retime
// curve yields the mapping from the clip's time to the parent's remapped time.
//
// [BezierSegment] describes smooth remapping with a cubic Bézier. Evaluating it
// requires inverting the Bézier on the time axis, see [SolveBezierParam]. A
// Bézier segment can be converted to a linear curve with
// [BezierSegment.Linearize] to take part in projection.
//
// # Topology
//
// [Topology] is a fixed-capacity arena of [Node] values identified by [OID].
// Each node has two outgoing edges. The seq edge points to the node that plays
// after it; the sync edge points to its first child, which plays within it.
// Longer sequences and deeper nestings are built by chaining, see
// [Topology.AddSeqs] and [Topology.AddSyncs].
//
// [Topology.All] resolves the graph into absolute time by walking it from the
// root, composing every node's basis with that of its parent and clipping its
// bounds to its parent's.
package opentime
