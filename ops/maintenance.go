package ops

import "github.com/pflow-xyz/go-lts/lts"

// MergeNodes merges a set of nodes into one. ids[0] survives; the
// in-edges and out-edges of every other id are retargeted onto the
// survivor, and the survivor's metadata absorbs the others' in the
// order given (later values overwrite earlier ones on key conflict).
// Operates on a deep clone of g.
func MergeNodes(g *lts.LTS, ids []int) (*lts.LTS, error) {
	if len(ids) == 0 {
		return nil, ErrNoIDsToMerge
	}
	out := g.Clone()

	survivor := ids[0]
	survivorNode, ok := out.Nodes[survivor]
	if !ok {
		return nil, ErrUnknownNodeID
	}
	meta := survivorNode.Meta

	for _, id := range ids[1:] {
		if id == survivor {
			continue
		}
		n, ok := out.Nodes[id]
		if !ok {
			continue
		}
		meta = meta.Merge(n.Meta)
		for _, e := range out.Edges {
			if e.From == id {
				e.From = survivor
			}
			if e.To == id {
				e.To = survivor
			}
		}
		if out.Root == id {
			out.Root = survivor
		}
		delete(out.Nodes, id)
	}

	out.Nodes[survivor].Meta = meta
	out.StampStart()
	out.NormalizeTerminals()
	return out, nil
}

// RemoveDuplicateEdges collapses any two edges sharing the same
// (from, to, label) into one, keeping the earliest-inserted (lowest
// edge id). Idempotent: running it twice yields the same result as
// running it once. Operates on a deep clone of g.
func RemoveDuplicateEdges(g *lts.LTS) *lts.LTS {
	out := g.Clone()

	type key struct {
		from, to int
		label    lts.Label
	}
	seen := make(map[key]bool)
	for _, id := range out.SortedEdgeIDs() {
		e := out.Edges[id]
		k := key{e.From, e.To, e.Label}
		if seen[k] {
			delete(out.Edges, id)
			continue
		}
		seen[k] = true
	}
	return out
}

// Trim removes every node not reachable from the root via a BFS
// worklist, and every edge that referenced a removed node. If g has no
// root, reachability cannot be determined and Trim is a no-op on a
// clone. Operates on a deep clone of g.
func Trim(g *lts.LTS) *lts.LTS {
	out := g.Clone()
	if !out.HasRoot() {
		return out
	}

	reached := map[int]bool{out.Root: true}
	worklist := []int{out.Root}
	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		for _, e := range out.EdgesFrom(cur) {
			if !reached[e.To] {
				reached[e.To] = true
				worklist = append(worklist, e.To)
			}
		}
	}

	for id := range out.Nodes {
		if !reached[id] {
			delete(out.Nodes, id)
		}
	}
	for id, e := range out.Edges {
		if !reached[e.From] || !reached[e.To] {
			delete(out.Edges, id)
		}
	}
	return out
}

// CombineWith unions the node and edge sets of others into dst, keyed
// by id; a node or edge id already present in dst is left untouched
// (collisions are silently skipped). dst's own root is unchanged.
// Operates on, and returns, a deep clone of dst.
func CombineWith(dst *lts.LTS, others ...*lts.LTS) *lts.LTS {
	out := dst.Clone()
	for _, other := range others {
		for _, id := range other.SortedNodeIDs() {
			if _, exists := out.Nodes[id]; exists {
				continue
			}
			n := other.Nodes[id]
			out.Nodes[id] = &lts.Node{ID: n.ID, Label: n.Label, Meta: n.Meta.Clone()}
		}
		for _, id := range other.SortedEdgeIDs() {
			if _, exists := out.Edges[id]; exists {
				continue
			}
			e := other.Edges[id]
			ec := *e
			out.Edges[id] = &ec
		}
	}
	return out
}
