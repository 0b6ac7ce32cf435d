package lts

import "sort"

// NoRoot is the sentinel root value meaning "no root set". Node ids are
// always allocated from zero upward, so a negative value can never
// collide with a real node id.
const NoRoot = -1

// LTS is a container of nodes and edges, with one designated root and
// a derived alphabet. It owns its nodes and edges directly (no
// back-reference from Node/Edge to the LTS, per the graph-ownership
// design note) so callers pass the LTS itself into every operation.
type LTS struct {
	Nodes map[int]*Node
	Edges map[int]*Edge
	Root  int
}

// New returns an empty LTS with no root.
func New() *LTS {
	return &LTS{
		Nodes: make(map[int]*Node),
		Edges: make(map[int]*Edge),
		Root:  NoRoot,
	}
}

// HasRoot reports whether a root is currently set.
func (g *LTS) HasRoot() bool { return g.Root != NoRoot }

// AddNode allocates a fresh id from alloc, inserts a node with the
// given label and metadata, and returns it.
func (g *LTS) AddNode(alloc *IDAllocator, label string, meta Metadata) *Node {
	n := &Node{ID: alloc.NextNode(), Label: label, Meta: meta}
	g.Nodes[n.ID] = n
	return n
}

// PutNode inserts a node that already has an id assigned, for callers
// whose ids are preserved or remapped ahead of time rather than freshly
// allocated here. It overwrites any existing node with the same id.
func (g *LTS) PutNode(n *Node) {
	g.Nodes[n.ID] = n
}

// AddEdge allocates a fresh edge id from alloc and inserts an edge from
// `from` to `to` carrying label. It does not validate that from/to are
// present; callers that need that guarantee call Validate.
func (g *LTS) AddEdge(alloc *IDAllocator, from, to int, label Label) *Edge {
	e := &Edge{ID: alloc.NextEdge(), From: from, To: to, Label: label}
	g.Edges[e.ID] = e
	return e
}

// PutEdge inserts an edge that already has an id assigned.
func (g *LTS) PutEdge(e *Edge) {
	g.Edges[e.ID] = e
}

// RemoveNode deletes a node by id. It does not touch edges referencing
// it; callers that need a consistent graph remove those edges first.
func (g *LTS) RemoveNode(id int) {
	delete(g.Nodes, id)
}

// RemoveEdge deletes an edge by id.
func (g *LTS) RemoveEdge(id int) {
	delete(g.Edges, id)
}

// SetRoot reassigns the root, failing if id is not a node already
// present in the LTS.
func (g *LTS) SetRoot(id int) error {
	if _, ok := g.Nodes[id]; !ok {
		return ErrInvalidRoot
	}
	g.Root = id
	return nil
}

// ClearRoot removes the root designation.
func (g *LTS) ClearRoot() { g.Root = NoRoot }

// SortedNodeIDs returns all node ids in ascending order, for the
// deterministic iteration several operations depend on.
func (g *LTS) SortedNodeIDs() []int {
	ids := make([]int, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// SortedEdgeIDs returns all edge ids in ascending order.
func (g *LTS) SortedEdgeIDs() []int {
	ids := make([]int, 0, len(g.Edges))
	for id := range g.Edges {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// EdgesFrom returns, in ascending edge-id order, every edge whose From
// field equals id.
func (g *LTS) EdgesFrom(id int) []*Edge {
	var out []*Edge
	for _, eid := range g.SortedEdgeIDs() {
		if e := g.Edges[eid]; e.From == id {
			out = append(out, e)
		}
	}
	return out
}

// EdgesTo returns, in ascending edge-id order, every edge whose To
// field equals id.
func (g *LTS) EdgesTo(id int) []*Edge {
	var out []*Edge
	for _, eid := range g.SortedEdgeIDs() {
		if e := g.Edges[eid]; e.To == id {
			out = append(out, e)
		}
	}
	return out
}

// Alphabet returns the set of distinct labels appearing on edges,
// keyed by their synchronisation key (so `!a` and `?a` collapse to the
// same alphabet entry `a`, matching the parallel-composition design).
func (g *LTS) Alphabet() map[string]Label {
	out := make(map[string]Label)
	for _, e := range g.Edges {
		out[e.Label.SyncKey()] = e.Label
	}
	return out
}

// StampStart clears the StartNode metadata flag on every node and, if
// a root is set, sets it on the root alone. Every operation that
// produces a new root calls this so StartNode always mirrors Root
// after a structural rewrite, per the metadata bag's documented
// meaning.
func (g *LTS) StampStart() {
	for _, n := range g.Nodes {
		n.Meta.StartNode = false
	}
	if g.HasRoot() {
		if n, ok := g.Nodes[g.Root]; ok {
			n.Meta.StartNode = true
		}
	}
}

// NormalizeTerminals restores invariant 5 of the data model: a node
// tagged isTerminal="stop" must have no outgoing edges. Operations that
// retarget or add edges onto a node (merge-nodes, parallel
// composition) can leave a stale "stop" tag behind on a node that now
// has outgoing edges; this clears it. A node tagged "error" is left
// untouched, since invariant 6 only requires it be the target of a δ
// edge, not that it have no outgoing edges.
func (g *LTS) NormalizeTerminals() {
	for _, id := range g.SortedNodeIDs() {
		n := g.Nodes[id]
		if n.Meta.Terminal == nil || *n.Meta.Terminal != TerminalStop {
			continue
		}
		if len(g.EdgesFrom(id)) > 0 {
			n.Meta.Terminal = nil
		}
	}
}

// Validate checks invariants 1, 2 and 4 of the data model: every edge
// references present nodes, the root (if set) references a present
// node, and node/edge ids are unique (guaranteed by the map
// representation, so only root/edge endpoints need checking here).
func (g *LTS) Validate() error {
	if g.HasRoot() {
		if _, ok := g.Nodes[g.Root]; !ok {
			return ErrInvalidRoot
		}
	}
	for _, e := range g.Edges {
		if _, ok := g.Nodes[e.From]; !ok {
			return ErrNodeNotFound
		}
		if _, ok := g.Nodes[e.To]; !ok {
			return ErrNodeNotFound
		}
	}
	return nil
}
