// Package interp walks the AST produced by package parser and builds a
// labelled transition system for every definition, resolving Name
// references and applying any model-level hide set.
package interp

import (
	"github.com/pflow-xyz/go-lts/ast"
	"github.com/pflow-xyz/go-lts/lts"
	"github.com/pflow-xyz/go-lts/ops"
)

// Operation is one interpretation step worth recording for the
// driver's per-operation source annotations.
type Operation struct {
	Name string
	Span ast.Span
}

// Automaton names one finished LTS.
type Automaton struct {
	Name  string
	Graph *lts.LTS
}

// Interpret builds an LTS for every definition across every model in
// prog, in source order, sharing one namespace so later definitions
// (in the same or a later model) can reference earlier ones by name.
func Interpret(prog *ast.Program, alloc *lts.IDAllocator) ([]Automaton, []Operation, error) {
	env := make(map[string]*lts.LTS)
	var automata []Automaton
	var operations []Operation

	seen := make(map[string]bool)
	for _, model := range prog.Models {
		for _, def := range model.Definitions {
			if seen[def.Name] {
				return nil, nil, &InterpreterError{
					Message:  "duplicate definition name " + def.Name,
					Location: def.Sp,
				}
			}
			seen[def.Name] = true

			b := &builder{env: env, alloc: alloc}
			g, err := b.build(def.Body)
			if err != nil {
				return nil, nil, err
			}
			operations = append(operations, b.operations...)

			if model.Hide != nil {
				actions := make(map[string]bool, len(model.Hide.Actions))
				for _, a := range model.Hide.Actions {
					actions[a] = true
				}
				g = ops.Hide(g, actions)
				operations = append(operations, Operation{Name: "hide", Span: model.Hide.Sp})
			}

			env[def.Name] = g
			automata = append(automata, Automaton{Name: def.Name, Graph: g})
		}
	}

	return automata, operations, nil
}

// builder carries per-definition state across the recursive build.
type builder struct {
	env        map[string]*lts.LTS
	alloc      *lts.IDAllocator
	operations []Operation
}

func (b *builder) record(name string, sp ast.Span) {
	b.operations = append(b.operations, Operation{Name: name, Span: sp})
}

func (b *builder) build(p ast.Process) (*lts.LTS, error) {
	switch n := p.(type) {
	case *ast.Stop:
		return b.buildStop(n), nil
	case *ast.Error:
		return b.buildError(n), nil
	case *ast.Sequence:
		return b.buildSequence(n)
	case *ast.Choice:
		return b.buildChoice(n)
	case *ast.Parallel:
		return b.buildParallel(n)
	case *ast.Name:
		return b.buildName(n)
	default:
		return nil, &InterpreterError{Message: "unsupported process node", Location: p.Span()}
	}
}

func (b *builder) buildStop(n *ast.Stop) *lts.LTS {
	g := lts.New()
	stopKind := lts.TerminalStop
	node := g.AddNode(b.alloc, "", lts.Metadata{Terminal: &stopKind})
	_ = g.SetRoot(node.ID)
	g.StampStart()
	return g
}

func (b *builder) buildError(n *ast.Error) *lts.LTS {
	g := lts.New()
	errKind := lts.TerminalError
	node := g.AddNode(b.alloc, "", lts.Metadata{Terminal: &errKind})
	g.AddEdge(b.alloc, node.ID, node.ID, lts.DeltaLabel())
	_ = g.SetRoot(node.ID)
	g.StampStart()
	return g
}

func (b *builder) buildSequence(n *ast.Sequence) (*lts.LTS, error) {
	cont, err := b.build(n.Continuation)
	if err != nil {
		return nil, err
	}
	root := cont.AddNode(b.alloc, "", lts.Metadata{})
	cont.AddEdge(b.alloc, root.ID, cont.Root, lts.VisibleLabel(n.Action.Name, n.Action.Broadcast, n.Action.Listen))
	_ = cont.SetRoot(root.ID)
	cont.StampStart()
	b.record("sequence", n.Sp)
	return cont, nil
}

func (b *builder) buildChoice(n *ast.Choice) (*lts.LTS, error) {
	left, err := b.build(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := b.build(n.Right)
	if err != nil {
		return nil, err
	}

	combined := ops.CombineWith(left, right)
	merged, err := ops.MergeNodes(combined, []int{left.Root, right.Root})
	if err != nil {
		return nil, &InterpreterError{Message: err.Error(), Location: n.Sp}
	}
	b.record("choice", n.Sp)
	return merged, nil
}

func (b *builder) buildParallel(n *ast.Parallel) (*lts.LTS, error) {
	left, err := b.build(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := b.build(n.Right)
	if err != nil {
		return nil, err
	}
	result := ops.Parallel(left, right, b.alloc)
	b.record("parallel", n.Sp)
	return result, nil
}

func (b *builder) buildName(n *ast.Name) (*lts.LTS, error) {
	referenced, ok := b.env[n.Ident]
	if !ok {
		return nil, &InterpreterError{
			Message:  "unknown definition " + n.Ident,
			Location: n.Sp,
		}
	}
	clone, _ := referenced.CloneFreshIDs(b.alloc)
	b.record("name-clone", n.Sp)
	return clone, nil
}
