package parser

import "github.com/pflow-xyz/go-lts/ast"

// TokenType enumerates the lexical categories of the process-algebra
// grammar.
type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF

	NAME   // uppercase-initial identifier
	ACTION // lowercase-initial identifier, optionally !/? prefixed

	STOP  // "STOP" keyword
	ERROR // "ERROR" keyword

	ARROW     // "->"
	DARROW    // "||"
	EQUALS    // "="
	PIPE      // "|"
	COMMA     // ","
	BACKSLASH // "\"
	LBRACE    // "{"
	RBRACE    // "}"
	LPAREN    // "("
	RPAREN    // ")"
	DOT       // "."
)

// Token is one lexed token: its type, literal text, and source
// position at the token's first byte.
type Token struct {
	Type    TokenType
	Literal string
	Pos     ast.Position
}
