package ops

import "github.com/pflow-xyz/go-lts/lts"

// Abstract eliminates τ transitions while preserving observable
// behaviour, via the standard tau-closure bypass construction: for
// every observable edge p —a→ q, and every p' that can reach p through
// zero or more τ edges, and every q' reachable from q through zero or
// more τ edges, add p' —a→ q'. This is the same construction the
// source describes as two separate bullets (propagating observable
// transitions forward through a τ edge's predecessors, and backward
// through its successors); computing both closures once per node and
// then fanning out over every observable edge is behaviourally
// identical and avoids re-deriving the closure on every τ edge
// individually.
//
// fair selects the variant: fair abstraction deletes every τ edge
// unconditionally. Unfair abstraction first converts any literal τ
// self-loop (a cycle that returns to the same state after exactly one
// τ step) into a δ edge to a fresh error sink, then deletes the
// remaining τ edges the same way fair abstraction does. Longer τ
// cycles (length > 1) are not specially converted to deadlocks in
// either variant — see DESIGN.md for why this reading of the source's
// ambiguous unfair-abstraction pass was chosen.
func Abstract(g *lts.LTS, fair bool, alloc *lts.IDAllocator) *lts.LTS {
	out := g.Clone()

	if !fair {
		convertTauSelfLoopsToDeadlocks(out, alloc)
	}

	tauEdges := snapshotEdges(out, func(e *lts.Edge) bool { return e.Hidden() })
	nonTau := snapshotEdges(out, func(e *lts.Edge) bool { return !e.Hidden() })

	fwd, bwd := tauAdjacency(tauEdges)
	nodeIDs := out.SortedNodeIDs()
	pred := closureVia(bwd, nodeIDs)
	succ := closureVia(fwd, nodeIDs)

	existing := make(map[edgeKey]bool)
	for _, e := range out.Edges {
		existing[edgeKey{e.From, e.To, e.Label}] = true
	}

	for _, e := range nonTau {
		froms := append([]int{e.From}, pred[e.From]...)
		tos := append([]int{e.To}, succ[e.To]...)
		for _, p := range froms {
			for _, q := range tos {
				k := edgeKey{p, q, e.Label}
				if existing[k] {
					continue
				}
				existing[k] = true
				out.AddEdge(alloc, p, q, e.Label)
			}
		}
	}

	for _, e := range tauEdges {
		delete(out.Edges, e.ID)
	}

	retagTerminals(out)
	out.NormalizeTerminals()
	out.StampStart()
	return Trim(out)
}

type edgeKey struct {
	from, to int
	label    lts.Label
}

func snapshotEdges(g *lts.LTS, keep func(*lts.Edge) bool) []*lts.Edge {
	var out []*lts.Edge
	for _, id := range g.SortedEdgeIDs() {
		if e := g.Edges[id]; keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func convertTauSelfLoopsToDeadlocks(g *lts.LTS, alloc *lts.IDAllocator) {
	for _, id := range g.SortedEdgeIDs() {
		e, ok := g.Edges[id]
		if !ok || !e.Hidden() || e.From != e.To {
			continue
		}
		delete(g.Edges, id)
		errKind := lts.TerminalError
		sink := g.AddNode(alloc, "", lts.Metadata{Terminal: &errKind})
		g.AddEdge(alloc, e.From, sink.ID, lts.DeltaLabel())
	}
}

// retagTerminals tags every node with no outgoing edges and no prior
// terminal role as a stop node.
func retagTerminals(g *lts.LTS) {
	for _, id := range g.SortedNodeIDs() {
		n := g.Nodes[id]
		if n.Meta.Terminal != nil {
			continue
		}
		if len(g.EdgesFrom(id)) == 0 {
			stopKind := lts.TerminalStop
			n.Meta.Terminal = &stopKind
		}
	}
}

// tauAdjacency builds forward and backward adjacency lists over a set
// of τ edges.
func tauAdjacency(edges []*lts.Edge) (fwd, bwd map[int][]int) {
	fwd = make(map[int][]int)
	bwd = make(map[int][]int)
	for _, e := range edges {
		fwd[e.From] = append(fwd[e.From], e.To)
		bwd[e.To] = append(bwd[e.To], e.From)
	}
	return fwd, bwd
}

// closureVia computes, for every id in ids, the set of nodes reachable
// from it by following one or more steps of adj (a forward or backward
// τ adjacency list).
func closureVia(adj map[int][]int, ids []int) map[int][]int {
	out := make(map[int][]int, len(ids))
	for _, start := range ids {
		visited := make(map[int]bool)
		queue := append([]int{}, adj[start]...)
		var order []int
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if visited[cur] {
				continue
			}
			visited[cur] = true
			order = append(order, cur)
			queue = append(queue, adj[cur]...)
		}
		out[start] = order
	}
	return out
}
