package expr

// EvalError is returned for a malformed expression, an unknown
// variable, or division/modulo by zero. It is a distinct Go type from
// *parser.ParseError and *interp.InterpreterError.
type EvalError struct {
	Message string
}

func (e *EvalError) Error() string { return e.Message }
