package opentime

// OID identifies a node of a [Topology]. It is an index into the topology's
// arena, not an address, and stays meaningful for the lifetime of the
// topology.
type OID uint32

const (
	// NoOID is the absence of a node. Edges pointing at NoOID lead nowhere and
	// [Topology.NewOID] returns it when the topology is full.
	NoOID OID = 0
	// RootOID is the implicit root of every topology. It shares its value with
	// NoOID: no edge can point back at the root.
	RootOID OID = 0
)

// Node is a node of a timeline topology.
//
// Seq points at the node that plays after this one, in the same frame as this
// node. Sync points at the first child of this node; the child's Basis maps
// its local time into this node's local time.
type Node struct {
	Self OID
	Seq  OID
	Sync OID
	// Basis maps the node's local time into its parent's time.
	Basis Affine
	// Bounds is the playable range, in local time.
	Bounds Interval
	// Mapping optionally remaps local time nonlinearly. A curve without knots
	// means no remapping.
	Mapping LinearCurve
}

func newNode(id OID) Node {
	return Node{
		Self:   id,
		Basis:  Identity,
		Bounds: DefaultInterval,
	}
}

// Topology is a fixed-capacity arena of timeline nodes, linked by seq and sync
// edges into a graph rooted at [RootOID].
//
// All nodes are created along with the topology; [Topology.NewOID] hands them
// out one at a time. Ids are never reused.
//
// A Topology is not safe for concurrent use. Callers sharing one between
// goroutines must serialize all access.
type Topology struct {
	nodes []Node
	next  OID
}

// NewTopology returns a topology with room for capacity nodes in addition to
// the root.
func NewTopology(capacity int) *Topology {
	capacity = max(capacity, 0)
	nodes := make([]Node, capacity+1)
	for i := range nodes {
		nodes[i] = newNode(OID(i))
	}
	return &Topology{
		nodes: nodes,
		next:  1,
	}
}

// Destroy releases the topology's nodes. Afterwards, the topology has no
// capacity and no nodes, not even the root.
func (t *Topology) Destroy() {
	t.nodes = nil
	t.next = 0
}

// Cap returns the number of nodes that can be allocated, not counting the
// root.
func (t *Topology) Cap() int {
	return max(len(t.nodes)-1, 0)
}

// Len returns the number of nodes allocated so far, not counting the root.
func (t *Topology) Len() int {
	return max(int(t.next)-1, 0)
}

// NewOID allocates the next node and returns its id. It returns [NoOID] once
// the capacity has been exhausted.
func (t *Topology) NewOID() OID {
	if int(t.next) >= len(t.nodes) {
		return NoOID
	}
	id := t.next
	t.next++
	return id
}

// inArena reports whether id indexes a slot of the arena, allocated or not.
func (t *Topology) inArena(id OID) bool {
	return int(id) < len(t.nodes)
}

// allocated reports whether id is the root or has been returned by NewOID.
func (t *Topology) allocated(id OID) bool {
	return t.inArena(id) && (id == RootOID || id < t.next)
}

// Node returns a copy of the node with the given id.
func (t *Topology) Node(id OID) (Node, bool) {
	if !t.allocated(id) {
		return Node{}, false
	}
	n := t.nodes[id]
	n.Mapping = n.Mapping.Clone()
	return n, true
}

// SetBasis sets the basis of an allocated node.
func (t *Topology) SetBasis(id OID, basis Affine) bool {
	if !t.allocated(id) {
		return false
	}
	t.nodes[id].Basis = basis
	return true
}

// SetBounds sets the bounds of an allocated node.
func (t *Topology) SetBounds(id OID, bounds Interval) bool {
	if !t.allocated(id) {
		return false
	}
	t.nodes[id].Bounds = bounds
	return true
}

// SetMapping sets the time remapping curve of an allocated node. The curve is
// copied.
func (t *Topology) SetMapping(id OID, mapping LinearCurve) bool {
	if !t.allocated(id) {
		return false
	}
	t.nodes[id].Mapping = mapping.Clone()
	return true
}

// AddSeq makes child play after parent, replacing parent's previous seq edge.
//
// Neither id is checked for having been allocated, and no attempt is made to
// detect cycles. A parent outside of the arena is ignored.
func (t *Topology) AddSeq(parent, child OID) {
	if !t.inArena(parent) {
		return
	}
	t.nodes[parent].Seq = child
}

// AddSync makes child the first child of parent, replacing parent's previous
// sync edge.
//
// The same caveats as for [Topology.AddSeq] apply.
func (t *Topology) AddSync(parent, child OID) {
	if !t.inArena(parent) {
		return
	}
	t.nodes[parent].Sync = child
}

// AddSeqs chains the nodes with seq edges, so that parent → children[0] →
// children[1] and so on.
func (t *Topology) AddSeqs(parent OID, children ...OID) {
	for _, child := range children {
		t.AddSeq(parent, child)
		parent = child
	}
}

// AddSyncs chains the nodes with sync edges, so that parent → children[0] →
// children[1] and so on.
func (t *Topology) AddSyncs(parent OID, children ...OID) {
	for _, child := range children {
		t.AddSync(parent, child)
		parent = child
	}
}
