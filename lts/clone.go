package lts

// Clone returns a deep copy of g that preserves every node and edge id.
// Used at the start of hide, abstraction and simplification, where
// operations work in place on a scratch copy but must not disturb the
// caller's original.
func (g *LTS) Clone() *LTS {
	out := New()
	out.Root = g.Root
	for id, n := range g.Nodes {
		nc := &Node{ID: n.ID, Label: n.Label, Meta: n.Meta.Clone()}
		out.Nodes[id] = nc
	}
	for id, e := range g.Edges {
		ec := *e
		out.Edges[id] = &ec
	}
	return out
}

// CloneFreshIDs returns a deep copy of g with every node and edge
// reassigned a fresh id from alloc, plus the old-to-new node id
// mapping. Used when the interpreter resolves a Name reference: each
// reference must produce an independent copy so later mutation of one
// copy can never alias another.
func (g *LTS) CloneFreshIDs(alloc *IDAllocator) (*LTS, map[int]int) {
	out := New()
	nodeMap := make(map[int]int, len(g.Nodes))
	for _, id := range g.SortedNodeIDs() {
		n := g.Nodes[id]
		newID := alloc.NextNode()
		nodeMap[id] = newID
		out.Nodes[newID] = &Node{ID: newID, Label: n.Label, Meta: n.Meta.Clone()}
	}
	for _, id := range g.SortedEdgeIDs() {
		e := g.Edges[id]
		newID := alloc.NextEdge()
		out.Edges[newID] = &Edge{
			ID:    newID,
			From:  nodeMap[e.From],
			To:    nodeMap[e.To],
			Label: e.Label,
		}
	}
	if g.HasRoot() {
		out.Root = nodeMap[g.Root]
	}
	return out, nodeMap
}
