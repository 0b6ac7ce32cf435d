// Package driver exposes the single compile entry point this module
// offers to callers: parse source text, interpret it into one LTS per
// definition, then run the fair/unfair abstraction pass the caller
// requested. It is the only package that touches a logger or any
// process-wide state; the core packages it calls (parser, interp, ops,
// lts) stay synchronous, pure, and oblivious to logging.
package driver

import (
	"encoding/json"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pflow-xyz/go-lts/ast"
	"github.com/pflow-xyz/go-lts/interp"
	"github.com/pflow-xyz/go-lts/lts"
	"github.com/pflow-xyz/go-lts/ltsjson"
	"github.com/pflow-xyz/go-lts/ops"
	"github.com/pflow-xyz/go-lts/parser"
)

// Position mirrors ast.Position for the JSON-facing operation trail.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

// SourceRange mirrors ast.Span for the JSON-facing operation trail.
type SourceRange struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// OperationLog is the per-compile record of every structural operation
// the interpreter performed, in source order, paired with the source
// range it came from so a caller can place inline annotations.
type OperationLog struct {
	Operations []string      `json:"operations"`
	Positions  []SourceRange `json:"positions"`
}

// Automaton names one finished, fully processed LTS.
type Automaton struct {
	Name  string
	Graph *lts.LTS
}

// automatonJSON is the JSON-facing shape of an Automaton: the graph is
// rendered through package ltsjson, the sole boundary at which this
// module talks JSON about an LTS's internals.
type automatonJSON struct {
	Name  string            `json:"name"`
	Graph *ltsjson.Document `json:"lts"`
}

// MarshalJSON renders a through ltsjson rather than exposing lts.LTS's
// internal map-keyed representation directly.
func (a Automaton) MarshalJSON() ([]byte, error) {
	return json.Marshal(automatonJSON{Name: a.Name, Graph: ltsjson.FromLTS(a.Graph)})
}

// Result is the return shape of Compile, marshalling directly to the
// JSON shape spec.md §6 describes (`automata`, `operations`).
type Result struct {
	Automata   []Automaton  `json:"automata"`
	Operations OperationLog `json:"operations"`
}

func spanToRange(sp ast.Span) SourceRange {
	return SourceRange{
		Start: Position{Line: sp.Start.Line, Column: sp.Start.Column, Offset: sp.Start.Offset},
		End:   Position{Line: sp.End.Line, Column: sp.End.Column, Offset: sp.End.Offset},
	}
}

var defaultLogger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Compile parses sourceText, interprets it into one LTS per definition,
// and applies the abstraction variant selected by fairAbstraction to
// every resulting automaton. liveBuilding indicates whether the caller
// will actually render the result; when false, the final ops.Trim pass
// is skipped. ops.Abstract already trims its own result, so the
// returned automata are the same either way.
//
// A *parser.ParseError or *interp.InterpreterError is returned
// unwrapped so the caller can distinguish syntax from interpreter
// failures by type assertion, per the error-handling design this
// module follows throughout.
func Compile(sourceText string, liveBuilding, fairAbstraction bool) (*Result, error) {
	correlationID := uuid.New().String()
	log := defaultLogger.With().Str("compile_id", correlationID).Logger()

	log.Info().Bool("live_building", liveBuilding).Bool("fair_abstraction", fairAbstraction).Msg("compile started")

	alloc := lts.NewIDAllocator()

	prog, err := parser.Parse(sourceText)
	if err != nil {
		log.Error().Err(err).Msg("parse failed")
		return nil, err
	}
	log.Debug().Int("models", len(prog.Models)).Msg("parse succeeded")

	automata, operations, err := interp.Interpret(prog, alloc)
	if err != nil {
		log.Error().Err(err).Msg("interpretation failed")
		return nil, err
	}
	log.Debug().Int("automata", len(automata)).Msg("interpretation succeeded")

	result := &Result{}
	for _, a := range automata {
		g := ops.Abstract(a.Graph, fairAbstraction, alloc)
		if liveBuilding {
			g = ops.Trim(g)
		}
		result.Automata = append(result.Automata, Automaton{Name: a.Name, Graph: g})
	}

	for _, op := range operations {
		result.Operations.Operations = append(result.Operations.Operations, op.Name)
		result.Operations.Positions = append(result.Operations.Positions, spanToRange(op.Span))
	}
	if result.Operations.Operations == nil {
		result.Operations.Operations = []string{}
		result.Operations.Positions = []SourceRange{}
	}

	log.Info().Int("automata", len(result.Automata)).Msg("compile finished")
	return result, nil
}
