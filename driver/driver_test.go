package driver

import (
	"testing"

	"github.com/pflow-xyz/go-lts/interp"
	"github.com/pflow-xyz/go-lts/parser"
)

func TestCompileSimpleAction(t *testing.T) {
	result, err := Compile("A = a -> STOP.", true, true)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if len(result.Automata) != 1 {
		t.Fatalf("len(Automata) = %d, want 1", len(result.Automata))
	}
	a := result.Automata[0]
	if a.Name != "A" {
		t.Errorf("Name = %q, want %q", a.Name, "A")
	}
	if !a.Graph.HasRoot() {
		t.Error("compiled automaton has no root")
	}
	if len(result.Operations.Operations) != len(result.Operations.Positions) {
		t.Errorf("operations/positions length mismatch: %d vs %d",
			len(result.Operations.Operations), len(result.Operations.Positions))
	}
}

func TestCompileMultipleDefinitions(t *testing.T) {
	result, err := Compile("A = a -> STOP. B = b -> STOP.", true, true)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if len(result.Automata) != 2 {
		t.Fatalf("len(Automata) = %d, want 2", len(result.Automata))
	}
}

func TestCompileSyntaxError(t *testing.T) {
	_, err := Compile("A = a STOP.", true, true)
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	if _, ok := err.(*parser.ParseError); !ok {
		t.Fatalf("expected *parser.ParseError, got %T", err)
	}
}

func TestCompileInterpreterError(t *testing.T) {
	_, err := Compile("A = a -> B.", true, true)
	if err == nil {
		t.Fatal("expected an interpreter error")
	}
	if _, ok := err.(*interp.InterpreterError); !ok {
		t.Fatalf("expected *interp.InterpreterError, got %T", err)
	}
}

func TestCompileHideThenAbstractRemovesTau(t *testing.T) {
	result, err := Compile("A = a -> b -> STOP \\ {a}.", true, true)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	g := result.Automata[0].Graph
	for _, e := range g.Edges {
		if e.Hidden() {
			t.Errorf("fair abstraction should have removed every tau edge, found edge %d", e.ID)
		}
	}
}

func TestCompileAcceptsBothAbstractionVariants(t *testing.T) {
	source := "A = a -> b -> STOP \\ {a, b}."

	for _, fair := range []bool{true, false} {
		result, err := Compile(source, true, fair)
		if err != nil {
			t.Fatalf("Compile(fair=%v) returned error: %v", fair, err)
		}
		g := result.Automata[0].Graph
		for _, e := range g.Edges {
			if e.Hidden() {
				t.Errorf("fair=%v: abstraction should have removed every tau edge, found edge %d", fair, e.ID)
			}
		}
	}
}
