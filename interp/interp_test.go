package interp

import (
	"testing"

	"github.com/pflow-xyz/go-lts/lts"
	"github.com/pflow-xyz/go-lts/ops"
	"github.com/pflow-xyz/go-lts/parser"
)

func compile(t *testing.T, source string) []Automaton {
	t.Helper()
	prog, err := parser.Parse(source)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	automata, _, err := Interpret(prog, lts.NewIDAllocator())
	if err != nil {
		t.Fatalf("interpret error: %v", err)
	}
	return automata
}

func find(automata []Automaton, name string) *lts.LTS {
	for _, a := range automata {
		if a.Name == name {
			return a.Graph
		}
	}
	return nil
}

func TestScenarioSingleAction(t *testing.T) {
	automata := compile(t, "P = a -> STOP.")
	if len(automata) != 1 {
		t.Fatalf("expected 1 automaton, got %d", len(automata))
	}
	g := find(automata, "P")
	if len(g.Nodes) != 2 || len(g.Edges) != 1 {
		t.Fatalf("expected 2 nodes and 1 edge, got %d nodes, %d edges", len(g.Nodes), len(g.Edges))
	}
	alphabet := g.Alphabet()
	if len(alphabet) != 1 {
		t.Fatalf("expected alphabet {a}, got %v", alphabet)
	}
}

func TestScenarioChoice(t *testing.T) {
	automata := compile(t, "P = (a -> STOP | b -> STOP).")
	g := find(automata, "P")
	if len(g.Nodes) != 3 || len(g.Edges) != 2 {
		t.Fatalf("expected 3 nodes and 2 edges, got %d nodes, %d edges", len(g.Nodes), len(g.Edges))
	}
	if len(g.EdgesFrom(g.Root)) != 2 {
		t.Fatalf("expected 2 outgoing edges from root")
	}
}

func TestScenarioChoiceWithStopFusesCleanlyIntoTerminal(t *testing.T) {
	automata := compile(t, "P = (STOP | a -> STOP).")
	g := find(automata, "P")
	for id, n := range g.Nodes {
		if n.Meta.IsStop() && len(g.EdgesFrom(id)) != 0 {
			t.Fatalf("node %d is tagged stop but has outgoing edges", id)
		}
	}
	if len(g.EdgesFrom(g.Root)) != 1 {
		t.Fatalf("expected the fused root to keep its single a edge, got %d", len(g.EdgesFrom(g.Root)))
	}
}

func TestScenarioEquivalentDefinitions(t *testing.T) {
	automata := compile(t, "P = a -> b -> STOP, Q = a -> b -> STOP.")
	p := find(automata, "P")
	q := find(automata, "Q")
	if !ops.Equivalent(p, q) {
		t.Fatalf("expected P and Q to be bisimilar")
	}
}

func TestScenarioNonEquivalentDefinitions(t *testing.T) {
	automata := compile(t, "P = a -> b -> STOP, Q = b -> a -> STOP.")
	p := find(automata, "P")
	q := find(automata, "Q")
	if ops.Equivalent(p, q) {
		t.Fatalf("expected P and Q to not be bisimilar")
	}
}

func TestScenarioHideThenAbstractThenParallel(t *testing.T) {
	automata := compile(t, `P = a -> STOP, Q = b -> STOP \{b}.`)
	p := find(automata, "P")
	q := find(automata, "Q")

	sawTau := false
	for _, e := range q.Edges {
		if e.Label.Kind == lts.Tau {
			sawTau = true
		}
	}
	if !sawTau {
		t.Fatalf("expected Q to have a τ edge after hiding")
	}

	abstracted := ops.Abstract(q, true, lts.NewIDAllocator())
	if len(abstracted.Edges) != 0 {
		t.Fatalf("expected fair abstraction of Q to have no edges")
	}

	product := ops.Parallel(p, abstracted, lts.NewIDAllocator())
	if !ops.Equivalent(p, product) {
		t.Fatalf("expected parallel(P, fair_abstraction(Q)) to be bisimilar to P")
	}
}

func TestScenarioParallelSynchronisation(t *testing.T) {
	automata := compile(t, "P = a -> STOP || a -> STOP.")
	g := find(automata, "P")
	if len(g.Nodes) != 2 || len(g.Edges) != 1 {
		t.Fatalf("expected 2 nodes and 1 edge after trim, got %d nodes, %d edges", len(g.Nodes), len(g.Edges))
	}
}

func TestDuplicateDefinitionNameIsAnInterpreterError(t *testing.T) {
	prog, err := parser.Parse("P = a -> STOP, P = b -> STOP.")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	_, _, err = Interpret(prog, lts.NewIDAllocator())
	if err == nil {
		t.Fatalf("expected a duplicate-definition-name error")
	}
	if _, ok := err.(*InterpreterError); !ok {
		t.Fatalf("expected *InterpreterError, got %T", err)
	}
}

func TestUnknownNameIsAnInterpreterError(t *testing.T) {
	prog, err := parser.Parse("P = a -> Q.")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	_, _, err = Interpret(prog, lts.NewIDAllocator())
	if err == nil {
		t.Fatalf("expected an unknown-definition error")
	}
	if _, ok := err.(*InterpreterError); !ok {
		t.Fatalf("expected *InterpreterError, got %T", err)
	}
}

func TestNonProductiveSelfCycleIsRejected(t *testing.T) {
	prog, err := parser.Parse("A = A.")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	_, _, err = Interpret(prog, lts.NewIDAllocator())
	if err == nil {
		t.Fatalf("expected A = A to be rejected as a non-productive cycle")
	}
}

func TestProductiveRecursionIsRejected(t *testing.T) {
	prog, err := parser.Parse("A = a -> A.")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	_, _, err = Interpret(prog, lts.NewIDAllocator())
	if err == nil {
		t.Fatalf("expected productive recursion through Name references to be rejected")
	}
}
