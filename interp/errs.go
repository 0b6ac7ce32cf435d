package interp

import (
	"fmt"

	"github.com/pflow-xyz/go-lts/ast"
)

// InterpreterError is raised when a Name reference is unknown (which
// also covers non-productive and self-referential cycles, since a
// definition's own name only becomes resolvable to later references
// once its body has finished building) or a definition name is
// declared twice. It is a distinct Go type from *parser.ParseError so
// the driver never has to sniff error message text to tell them apart.
type InterpreterError struct {
	Message  string
	Location ast.Span
}

func (e *InterpreterError) Error() string {
	return fmt.Sprintf("Error: %s", e.Message)
}
