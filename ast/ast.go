// Package ast defines the syntax tree produced by package parser: one
// node type per grammar production of the process-algebra language,
// each carrying a Span so the interpreter and driver can localise
// diagnostics and per-operation annotations back to source.
package ast

// Position is a single point in source text.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Span covers a range of source text, start inclusive and end
// exclusive, following the First()/Last() token-index convention of
// hand-rolled parse trees: every node remembers exactly the span of
// tokens it was built from.
type Span struct {
	Start Position
	End   Position
}

// Process is implemented by every AST node that stands for a complete
// process expression: Sequence, Choice, Parallel, Name, Stop, Error.
// Any type with a Span method satisfies it, so Model, Definition, Hide
// and Action do too; the parser only ever places the six process kinds
// in a Process position.
type Process interface {
	Span() Span
}

// Program is a whole source file: a sequence of models, each closed by
// its own trailing ".".
type Program struct {
	Models []*Model
}

// Model is one top-level compilation unit: an ordered list of
// definitions plus an optional model-wide hide set.
type Model struct {
	Definitions []*Definition
	Hide        *Hide
	Sp          Span
}

func (m *Model) Span() Span { return m.Sp }

// Definition binds a name to a process body.
type Definition struct {
	Name string
	Body Process
	Sp   Span
}

func (d *Definition) Span() Span { return d.Sp }

// Action is a bare action string, including any `!`/`?` prefix
// recorded as Broadcast/Listen flags.
type Action struct {
	Name      string
	Broadcast bool
	Listen    bool
	Sp        Span
}

func (a Action) Span() Span { return a.Sp }

// Sequence is `action -> continuation`.
type Sequence struct {
	Action       Action
	Continuation Process
	Sp           Span
}

func (s *Sequence) Span() Span { return s.Sp }

// Choice is `left | right`.
type Choice struct {
	Left  Process
	Right Process
	Sp    Span
}

func (c *Choice) Span() Span { return c.Sp }

// Parallel is `left || right`.
type Parallel struct {
	Left  Process
	Right Process
	Sp    Span
}

func (p *Parallel) Span() Span { return p.Sp }

// Hide carries the set of bare action names a model-level hide clause
// makes τ.
type Hide struct {
	Actions []string
	Sp      Span
}

func (h *Hide) Span() Span { return h.Sp }

// Name is a reference to another definition by name.
type Name struct {
	Ident string
	Sp    Span
}

func (n *Name) Span() Span { return n.Sp }

// Stop is the terminal "stop" marker.
type Stop struct {
	Sp Span
}

func (s *Stop) Span() Span { return s.Sp }

// Error is the terminal "error" marker; the interpreter gives it a δ
// self-loop when building its LTS.
type Error struct {
	Sp Span
}

func (e *Error) Span() Span { return e.Sp }
