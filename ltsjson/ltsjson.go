// Package ltsjson renders a finished labelled transition system to the
// JSON shape an external editor or console would consume. It is the
// sole boundary in this module at which LTS data is described in terms
// of JSON tags rather than Go structs, generalised from the corpus's
// places/transitions/arcs Petri-net codec to LTS nodes/edges.
package ltsjson

import (
	"encoding/json"
	"sort"

	"github.com/pflow-xyz/go-lts/lts"
)

// Document is the JSON-facing projection of a *lts.LTS. Root is always
// present, including lts.NoRoot (-1): node ids are allocated from
// zero, so a real root is routinely 0, and an omitempty tag would make
// that indistinguishable from "no root set".
type Document struct {
	Root     int      `json:"root"`
	Nodes    []Node   `json:"nodes"`
	Edges    []Edge   `json:"edges"`
	Alphabet []string `json:"alphabet"`
}

// Node is the JSON-facing projection of a lts.Node.
type Node struct {
	ID        int    `json:"id"`
	Label     string `json:"label,omitempty"`
	StartNode bool   `json:"startNode,omitempty"`
	Terminal  string `json:"terminal,omitempty"`
	Parallel  bool   `json:"parallel,omitempty"`
}

// Edge is the JSON-facing projection of a lts.Edge.
type Edge struct {
	ID        int    `json:"id"`
	From      int    `json:"from"`
	To        int    `json:"to"`
	Label     string `json:"label"`
	Broadcast bool   `json:"broadcast,omitempty"`
	Listen    bool   `json:"listen,omitempty"`
}

// FromLTS projects g into its JSON-facing Document. g is read only;
// the returned Document shares no state with g.
func FromLTS(g *lts.LTS) *Document {
	doc := &Document{Root: g.Root}

	for _, id := range g.SortedNodeIDs() {
		n := g.Nodes[id]
		jn := Node{ID: n.ID, Label: n.Label, StartNode: n.Meta.StartNode, Parallel: n.Meta.Parallel}
		if n.Meta.Terminal != nil {
			jn.Terminal = string(*n.Meta.Terminal)
		}
		doc.Nodes = append(doc.Nodes, jn)
	}
	if doc.Nodes == nil {
		doc.Nodes = []Node{}
	}

	for _, id := range g.SortedEdgeIDs() {
		e := g.Edges[id]
		doc.Edges = append(doc.Edges, Edge{
			ID:        e.ID,
			From:      e.From,
			To:        e.To,
			Label:     e.Label.String(),
			Broadcast: e.Label.Broadcast,
			Listen:    e.Label.Listen,
		})
	}
	if doc.Edges == nil {
		doc.Edges = []Edge{}
	}

	alphabet := g.Alphabet()
	keys := make([]string, 0, len(alphabet))
	for k := range alphabet {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		doc.Alphabet = append(doc.Alphabet, alphabet[k].String())
	}
	if doc.Alphabet == nil {
		doc.Alphabet = []string{}
	}

	return doc
}

// Marshal renders g as indented JSON bytes.
func Marshal(g *lts.LTS) ([]byte, error) {
	return json.MarshalIndent(FromLTS(g), "", "  ")
}
