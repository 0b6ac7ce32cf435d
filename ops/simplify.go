package ops

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pflow-xyz/go-lts/lts"
)

// Simplify quotients g by strong bisimulation: nodes sharing a final
// colour (per ColourPartition) are merged, lowest id surviving, and
// the result is passed through RemoveDuplicateEdges.
func Simplify(g *lts.LTS) *lts.LTS {
	out := g.Clone()
	colour := ColourPartition(out)

	groups := make(map[string][]int)
	for _, id := range out.SortedNodeIDs() {
		groups[colour[id]] = append(groups[colour[id]], id)
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	working := out
	for _, k := range keys {
		ids := groups[k]
		if len(ids) < 2 {
			continue
		}
		sort.Ints(ids)
		merged, err := MergeNodes(working, ids)
		if err != nil {
			continue
		}
		working = merged
	}
	return RemoveDuplicateEdges(working)
}

// ColourPartition runs strong-bisimulation colour refinement to a
// fixed point and returns each node's final colour. It does not
// mutate g or merge anything; Simplify and Equivalent both build on
// top of it.
func ColourPartition(g *lts.LTS) map[int]string {
	colour := make(map[int]string, len(g.Nodes))
	for id := range g.Nodes {
		colour[id] = "0"
	}

	hasIncomingDelta := make(map[int]bool)
	for _, e := range g.Edges {
		if e.Deadlock() {
			hasIncomingDelta[e.To] = true
		}
	}
	for id := range colour {
		if hasIncomingDelta[id] {
			colour[id] = "-1"
		}
	}

	ids := g.SortedNodeIDs()
	prevDistinct := -1
	for {
		sigOf := make(map[int]string, len(ids))
		distinct := make(map[string]bool)
		for _, id := range ids {
			sig := signature(g, id, colour, hasIncomingDelta[id])
			sigOf[id] = sig
			distinct[sig] = true
		}
		if len(distinct) == prevDistinct {
			break
		}
		prevDistinct = len(distinct)

		sigs := make([]string, 0, len(distinct))
		for s := range distinct {
			sigs = append(sigs, s)
		}
		sort.Strings(sigs)
		index := make(map[string]int, len(sigs))
		for i, s := range sigs {
			index[s] = i
		}

		next := make(map[int]string, len(ids))
		for _, id := range ids {
			next[id] = strconv.Itoa(index[sigOf[id]])
		}
		colour = next
	}
	return colour
}

// signature computes the set of triples (colour(x), colour(y), label)
// for every outgoing edge of x, plus the no-outgoing-edges and
// incoming-δ singleton triples, canonicalised as a sorted, deduplicated
// string so two nodes with equal signatures compare equal.
func signature(g *lts.LTS, id int, colour map[int]string, hasIncomingDelta bool) string {
	triples := make(map[string]bool)
	edges := g.EdgesFrom(id)
	for _, e := range edges {
		triples[colour[id]+"|"+colour[e.To]+"|"+e.Label.String()] = true
	}
	if len(edges) == 0 {
		triples[colour[id]+"|∅|∅"] = true
	}
	if hasIncomingDelta {
		triples["-1|∅|∅"] = true
	}

	list := make([]string, 0, len(triples))
	for t := range triples {
		list = append(list, t)
	}
	sort.Strings(list)
	return strings.Join(list, ";")
}

// Equivalent computes ColourPartition over the disjoint union of every
// given LTS (so colours are globally comparable) and reports whether
// all of their roots share a colour, i.e. whether they are strongly
// bisimilar.
func Equivalent(graphs ...*lts.LTS) bool {
	if len(graphs) == 0 {
		return true
	}
	alloc := lts.NewIDAllocator()
	scratch := lts.New()
	roots := make([]int, len(graphs))
	hasRoot := make([]bool, len(graphs))

	for i, g := range graphs {
		clone, mapping := g.CloneFreshIDs(alloc)
		scratch = CombineWith(scratch, clone)
		if g.HasRoot() {
			roots[i] = mapping[g.Root]
			hasRoot[i] = true
		}
	}

	colour := ColourPartition(scratch)

	for i := range graphs {
		if hasRoot[i] != hasRoot[0] {
			return false
		}
	}
	if !hasRoot[0] {
		return true
	}
	first := colour[roots[0]]
	for _, r := range roots[1:] {
		if colour[r] != first {
			return false
		}
	}
	return true
}
