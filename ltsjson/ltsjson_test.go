package ltsjson

import (
	"encoding/json"
	"testing"

	"github.com/pflow-xyz/go-lts/lts"
)

func buildSample() *lts.LTS {
	alloc := lts.NewIDAllocator()
	g := lts.New()
	stopKind := lts.TerminalStop
	a := g.AddNode(alloc, "a", lts.Metadata{})
	b := g.AddNode(alloc, "b", lts.Metadata{Terminal: &stopKind})
	g.AddEdge(alloc, a.ID, b.ID, lts.VisibleLabel("go", false, false))
	_ = g.SetRoot(a.ID)
	g.StampStart()
	return g
}

func TestFromLTSFieldsRoundTrip(t *testing.T) {
	g := buildSample()
	doc := FromLTS(g)

	if doc.Root != g.Root {
		t.Fatalf("Root = %d, want %d", doc.Root, g.Root)
	}
	if len(doc.Nodes) != 2 {
		t.Fatalf("len(Nodes) = %d, want 2", len(doc.Nodes))
	}
	if len(doc.Edges) != 1 {
		t.Fatalf("len(Edges) = %d, want 1", len(doc.Edges))
	}
	if doc.Edges[0].Label != "go" {
		t.Errorf("edge label = %q, want %q", doc.Edges[0].Label, "go")
	}
	if len(doc.Alphabet) != 1 || doc.Alphabet[0] != "go" {
		t.Errorf("Alphabet = %v, want [go]", doc.Alphabet)
	}

	var root Node
	for _, n := range doc.Nodes {
		if n.ID == g.Root {
			root = n
		}
	}
	if !root.StartNode {
		t.Error("root node should be tagged StartNode in the projection")
	}
}

func TestMarshalProducesValidJSON(t *testing.T) {
	g := buildSample()
	data, err := Marshal(g)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := out["nodes"]; !ok {
		t.Error("expected a \"nodes\" key in the marshalled document")
	}
}

func TestMarshalKeepsRootZero(t *testing.T) {
	g := buildSample()
	if g.Root != 0 {
		t.Fatalf("test setup assumes the root is node 0, got %d", g.Root)
	}

	data, err := Marshal(g)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	root, ok := out["root"]
	if !ok {
		t.Fatalf("expected a \"root\" key even though the root id is 0, got %s", data)
	}
	if root.(float64) != 0 {
		t.Errorf("root = %v, want 0", root)
	}
}

func TestFromLTSEmptyGraph(t *testing.T) {
	g := lts.New()
	doc := FromLTS(g)
	if len(doc.Nodes) != 0 || len(doc.Edges) != 0 || len(doc.Alphabet) != 0 {
		t.Errorf("expected empty slices for an empty LTS, got %+v", doc)
	}
}
