package opentime

import (
	"fmt"
	"iter"
)

// Placement describes where a node plays in absolute time.
type Placement struct {
	ID OID
	// Parent is the node whose local time the node's basis maps into. It is
	// NoOID for the root and for nodes in the root's seq chain.
	Parent OID
	// Transform maps the node's local time to absolute time.
	Transform Affine
	// Interval is the node's bounds in absolute time, clipped to the interval
	// of its parent.
	Interval Interval
	// Depth is the number of sync edges between the root and the node.
	Depth int
}

type resolveFrame struct {
	id     OID
	parent OID
	// Transform from the parent's local time to absolute time.
	parentTransform Affine
	clip            Interval
	depth           int
	// Whether the node follows a sibling, and where in the parent's local
	// time that sibling ends.
	follows bool
	cursor  Seconds
}

// All walks the topology depth-first from the root and yields the placement
// of every reachable node.
//
// A node is yielded before its children, and its children before the nodes
// that play after it. A sync child is placed in its parent's local time by
// its basis. A seq successor shares the frame of its predecessor and starts
// where the predecessor ends; its basis then only contributes scale and
// trimming.
//
// Nodes reachable through more than one path are visited only once, so a
// topology containing cycles terminates, although the placements are then of
// little use.
func (t *Topology) All() iter.Seq[Placement] {
	return func(yield func(Placement) bool) {
		if !t.inArena(RootOID) {
			return
		}
		visited := make([]bool, len(t.nodes))
		stack := []resolveFrame{{
			id:              RootOID,
			parent:          NoOID,
			parentTransform: Identity,
			clip:            Continuum,
		}}
		for len(stack) > 0 {
			fr := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[fr.id] {
				continue
			}
			visited[fr.id] = true

			n := t.nodes[fr.id]
			local := n.Basis
			if fr.follows {
				start := local.ApplyInterval(n.Bounds).Abs().Start
				local = local.ThenTranslate(fr.cursor - start)
			}
			inParent := local.ApplyInterval(n.Bounds).Abs()
			abs := fr.parentTransform.Mul(local)
			p := Placement{
				ID:        fr.id,
				Parent:    fr.parent,
				Transform: abs,
				Interval:  abs.ApplyInterval(n.Bounds).Abs().Intersect(fr.clip),
				Depth:     fr.depth,
			}
			if !yield(p) {
				return
			}

			// Push the successor first so that children are visited before it.
			if n.Seq != NoOID && t.inArena(n.Seq) {
				stack = append(stack, resolveFrame{
					id:              n.Seq,
					parent:          fr.parent,
					parentTransform: fr.parentTransform,
					clip:            fr.clip,
					depth:           fr.depth,
					follows:         true,
					cursor:          inParent.End,
				})
			}
			if n.Sync != NoOID && t.inArena(n.Sync) {
				stack = append(stack, resolveFrame{
					id:              n.Sync,
					parent:          fr.id,
					parentTransform: abs,
					clip:            p.Interval,
					depth:           fr.depth + 1,
				})
			}
		}
	}
}

// Resolve returns the placement of a single node. The second return value is
// false if the node isn't reachable from the root.
func (t *Topology) Resolve(id OID) (Placement, bool) {
	for p := range t.All() {
		if p.ID == id {
			return p, true
		}
	}
	return Placement{}, false
}

// At yields the placements of all nodes that play at absolute time s, in the
// order of [Topology.All].
func (t *Topology) At(s Seconds) iter.Seq[Placement] {
	return func(yield func(Placement) bool) {
		for p := range t.All() {
			if p.Interval.Contains(s) && !yield(p) {
				return
			}
		}
	}
}

// LocalTime maps absolute time s into the local time of a node, applying the
// node's remapping curve if it has one.
//
// Errors from evaluating the remapping curve are returned unchanged and match
// [ErrOutOfRange]. LocalTime doesn't check whether s lies within the node's
// interval.
func (t *Topology) LocalTime(id OID, s Seconds) (Seconds, error) {
	if !t.allocated(id) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownOID, id)
	}
	p, ok := t.Resolve(id)
	if !ok {
		return 0, fmt.Errorf("%w: %d is not reachable from the root", ErrUnknownOID, id)
	}
	if p.Transform.Scale == 0 {
		return 0, fmt.Errorf("node %d: %w", id, ErrSingular)
	}
	local := p.Transform.Invert().Apply(s)
	if m := t.nodes[id].Mapping; m.Len() > 0 {
		return m.Eval(local)
	}
	return local, nil
}
