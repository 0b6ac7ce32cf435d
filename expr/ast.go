package expr

// Node is implemented by every expression-tree node. Grounded on the
// corpus's guard-expression evaluator: a small closed set of concrete
// node kinds dispatched by Eval, rather than a visitor hierarchy.
type Node interface{}

// NumberLit is a literal 32-bit signed integer.
type NumberLit struct {
	Value int32
}

// Identifier is a variable lookup against the evaluation Context.
type Identifier struct {
	Name string
}

// UnaryOp is a prefix operator applied to a single operand ("-x").
type UnaryOp struct {
	Op string
	X  Node
}

// BinaryOp is an infix operator applied to two operands.
type BinaryOp struct {
	Op string
	X  Node
	Y  Node
}
