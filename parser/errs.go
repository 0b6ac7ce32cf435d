package parser

import (
	"fmt"

	"github.com/pflow-xyz/go-lts/ast"
)

// ParseError is the sole error kind a parse failure can return: the
// parser cannot match the grammar at Location, with a human-readable
// Message. Callers distinguish it from *interp.InterpreterError by
// type assertion, never by inspecting Message.
type ParseError struct {
	Message  string
	Location ast.Span
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Syntax error %s: %s", formatSpan(e.Location), e.Message)
}

func formatSpan(sp ast.Span) string {
	return fmt.Sprintf("%d:%d", sp.Start.Line, sp.Start.Column)
}
