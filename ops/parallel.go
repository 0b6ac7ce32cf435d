package ops

import (
	"strconv"

	"github.com/pflow-xyz/go-lts/lts"
)

type pair struct{ a, b int }

// Parallel constructs the product of two LTSs: states are pairs of
// component states, a shared visible action synchronises (fires only
// when both components offer it), and every other action — including
// τ and δ, which never synchronise — is an independent move of
// whichever component offers it. Operates on deep clones of both
// inputs and trims the product down to states reachable from its
// root, per the construction.
func Parallel(g1, g2 *lts.LTS, alloc *lts.IDAllocator) *lts.LTS {
	c1 := g1.Clone()
	c2 := g2.Clone()
	out := lts.New()

	sync := intersectNames(visibleNames(c1), visibleNames(c2))

	nodeID := make(map[pair]int, len(c1.Nodes)*len(c2.Nodes))
	for _, a := range c1.SortedNodeIDs() {
		na := c1.Nodes[a]
		for _, b := range c2.SortedNodeIDs() {
			nb := c2.Nodes[b]
			meta := lts.Metadata{}
			if isComponentStart(c1, a) && isComponentStart(c2, b) {
				meta.StartNode = true
			}
			if na.Meta.IsStop() && nb.Meta.IsStop() {
				stopKind := lts.TerminalStop
				meta.Terminal = &stopKind
			}
			n := out.AddNode(alloc, productLabel(na, nb), meta)
			nodeID[pair{a, b}] = n.ID
		}
	}

	if root, ok := nodeID[pair{c1.Root, c2.Root}]; ok {
		_ = out.SetRoot(root)
		out.Nodes[root].Meta.Parallel = true
	}

	for _, a := range c1.SortedNodeIDs() {
		for _, b := range c2.SortedNodeIDs() {
			cur := nodeID[pair{a, b}]

			for _, e1 := range c1.EdgesFrom(a) {
				if e1.Label.Kind == lts.Visible && sync[e1.Label.Name] {
					for _, e2 := range c2.EdgesFrom(b) {
						if e2.Label.Kind == lts.Visible && e2.Label.Name == e1.Label.Name {
							target := nodeID[pair{e1.To, e2.To}]
							out.AddEdge(alloc, cur, target, combineSyncLabel(e1.Label, e2.Label))
						}
					}
					continue
				}
				target := nodeID[pair{e1.To, b}]
				out.AddEdge(alloc, cur, target, e1.Label)
			}

			for _, e2 := range c2.EdgesFrom(b) {
				if e2.Label.Kind == lts.Visible && sync[e2.Label.Name] {
					continue
				}
				target := nodeID[pair{a, e2.To}]
				out.AddEdge(alloc, cur, target, e2.Label)
			}
		}
	}

	out.StampStart()
	out.NormalizeTerminals()
	return Trim(out)
}

func visibleNames(g *lts.LTS) map[string]bool {
	names := make(map[string]bool)
	for _, e := range g.Edges {
		if e.Label.Kind == lts.Visible {
			names[e.Label.Name] = true
		}
	}
	return names
}

func intersectNames(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for k := range a {
		if b[k] {
			out[k] = true
		}
	}
	return out
}

func isComponentStart(g *lts.LTS, id int) bool {
	return id == g.Root || g.Nodes[id].Meta.StartNode
}

func productLabel(a, b *lts.Node) string {
	la := a.Label
	if la == "" {
		la = strconv.Itoa(a.ID)
	}
	lb := b.Label
	if lb == "" {
		lb = strconv.Itoa(b.ID)
	}
	return la + "." + lb
}

// combineSyncLabel merges the labels of two synchronised edges: τ is
// inherited if either side's is τ (a case this package's sync set
// never actually produces, since τ/δ never enter the synchronisation
// alphabet, but kept for fidelity to the stated rule), otherwise the
// shared visible name is kept and the broadcast/listen flags are
// OR'd together.
func combineSyncLabel(l1, l2 lts.Label) lts.Label {
	if l1.Kind == lts.Tau || l2.Kind == lts.Tau {
		return lts.TauLabel()
	}
	return lts.VisibleLabel(l1.Name, l1.Broadcast || l2.Broadcast, l1.Listen || l2.Listen)
}
