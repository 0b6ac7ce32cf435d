// Package expr implements the auxiliary expression sub-language over
// 32-bit signed integers: a recursive-descent parser plus a
// tree-walking evaluator with short-circuit && and ||.
package expr

import "fmt"

// Context holds the variable bindings an expression is evaluated
// against.
type Context struct {
	vars map[string]int32
}

// NewContext wraps a variable-binding map for evaluation.
func NewContext(vars map[string]int32) *Context {
	return &Context{vars: vars}
}

func (c *Context) lookup(name string) (int32, bool) {
	if c == nil {
		return 0, false
	}
	v, ok := c.vars[name]
	return v, ok
}

func toBool(v int32) bool { return v != 0 }
func fromBool(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// EvalNode walks node, dispatching on its concrete type, and evaluates
// it against ctx. && and || short-circuit: the right operand is not
// evaluated (and cannot fail) once the left operand already decides
// the result.
func EvalNode(node Node, ctx *Context) (int32, error) {
	switch n := node.(type) {
	case *NumberLit:
		return n.Value, nil

	case *Identifier:
		v, ok := ctx.lookup(n.Name)
		if !ok {
			return 0, &EvalError{Message: fmt.Sprintf("unknown variable %q", n.Name)}
		}
		return v, nil

	case *UnaryOp:
		x, err := EvalNode(n.X, ctx)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case "-":
			return -x, nil
		}
		return 0, &EvalError{Message: fmt.Sprintf("unknown unary operator %q", n.Op)}

	case *BinaryOp:
		return evalBinary(n, ctx)
	}

	return 0, &EvalError{Message: fmt.Sprintf("unsupported expression node %T", node)}
}

func evalBinary(n *BinaryOp, ctx *Context) (int32, error) {
	if n.Op == "&&" {
		x, err := EvalNode(n.X, ctx)
		if err != nil {
			return 0, err
		}
		if !toBool(x) {
			return 0, nil
		}
		y, err := EvalNode(n.Y, ctx)
		if err != nil {
			return 0, err
		}
		return fromBool(toBool(y)), nil
	}
	if n.Op == "||" {
		x, err := EvalNode(n.X, ctx)
		if err != nil {
			return 0, err
		}
		if toBool(x) {
			return 1, nil
		}
		y, err := EvalNode(n.Y, ctx)
		if err != nil {
			return 0, err
		}
		return fromBool(toBool(y)), nil
	}

	x, err := EvalNode(n.X, ctx)
	if err != nil {
		return 0, err
	}
	y, err := EvalNode(n.Y, ctx)
	if err != nil {
		return 0, err
	}

	switch n.Op {
	case "*":
		return x * y, nil
	case "/":
		if y == 0 {
			return 0, &EvalError{Message: "division by zero"}
		}
		return x / y, nil
	case "%":
		if y == 0 {
			return 0, &EvalError{Message: "modulo by zero"}
		}
		return x % y, nil
	case "+":
		return x + y, nil
	case "-":
		return x - y, nil
	case "<<":
		return x << uint32(y), nil
	case ">>":
		return x >> uint32(y), nil
	case "<":
		return fromBool(x < y), nil
	case "<=":
		return fromBool(x <= y), nil
	case ">":
		return fromBool(x > y), nil
	case ">=":
		return fromBool(x >= y), nil
	case "==":
		return fromBool(x == y), nil
	case "!=":
		return fromBool(x != y), nil
	case "&":
		return x & y, nil
	case "^":
		return x ^ y, nil
	case "|":
		return x | y, nil
	}
	return 0, &EvalError{Message: fmt.Sprintf("unknown binary operator %q", n.Op)}
}

// Eval parses and evaluates source in one step against vars, the
// public entry point for the auxiliary expression evaluator.
func Eval(source string, vars map[string]int32) (int32, error) {
	node, err := parse(source)
	if err != nil {
		return 0, err
	}
	return EvalNode(node, NewContext(vars))
}
