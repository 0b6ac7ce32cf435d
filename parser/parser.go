package parser

import (
	"fmt"

	"github.com/pflow-xyz/go-lts/ast"
)

// Parser is a recursive-descent parser over a pre-lexed token stream,
// one method per grammar production.
type Parser struct {
	tokens []Token
	pos    int
}

// Parse lexes and parses a whole source file into a Program: a
// sequence of models, each closed by its own trailing ".".
func Parse(source string) (*ast.Program, error) {
	lex := NewLexer(source)
	var tokens []Token
	for {
		tok := lex.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			break
		}
	}

	p := &Parser{tokens: tokens}
	prog := &ast.Program{}
	for p.cur().Type != EOF {
		model, err := p.parseModel()
		if err != nil {
			return nil, err
		}
		prog.Models = append(prog.Models, model)
	}
	return prog, nil
}

func (p *Parser) cur() Token  { return p.tokens[p.pos] }
func (p *Parser) peek() Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}
func (p *Parser) advance() Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) span(start ast.Position) ast.Span {
	end := p.cur().Pos
	return ast.Span{Start: start, End: end}
}

func (p *Parser) errorf(format string, args ...any) *ParseError {
	tok := p.cur()
	sp := ast.Span{Start: tok.Pos, End: tok.Pos}
	return &ParseError{Message: fmt.Sprintf(format, args...), Location: sp}
}

func (p *Parser) expect(tt TokenType, what string) (Token, error) {
	if p.cur().Type != tt {
		return Token{}, p.errorf("expected %s, found %q", what, p.cur().Literal)
	}
	return p.advance(), nil
}

// parseModel handles: Definition ("," Definition)* ("\" HideSet)? "."
// (the grammar's right-recursive "," Model is flattened into one
// Model's Definitions list, which is the same language).
func (p *Parser) parseModel() (*ast.Model, error) {
	start := p.cur().Pos
	model := &ast.Model{}

	def, err := p.parseDefinition()
	if err != nil {
		return nil, err
	}
	model.Definitions = append(model.Definitions, def)

	for p.cur().Type == COMMA {
		p.advance()
		def, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		model.Definitions = append(model.Definitions, def)
	}

	if p.cur().Type == BACKSLASH {
		p.advance()
		hide, err := p.parseHideSet()
		if err != nil {
			return nil, err
		}
		model.Hide = hide
	}

	if _, err := p.expect(DOT, "'.'"); err != nil {
		return nil, err
	}

	model.Sp = p.span(start)
	return model, nil
}

func (p *Parser) parseDefinition() (*ast.Definition, error) {
	start := p.cur().Pos
	nameTok, err := p.expect(NAME, "a definition name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(EQUALS, "'='"); err != nil {
		return nil, err
	}
	body, err := p.parseProcess()
	if err != nil {
		return nil, err
	}
	return &ast.Definition{Name: nameTok.Literal, Body: body, Sp: p.span(start)}, nil
}

func (p *Parser) parseHideSet() (*ast.Hide, error) {
	start := p.cur().Pos
	if _, err := p.expect(LBRACE, "'{'"); err != nil {
		return nil, err
	}
	hide := &ast.Hide{}

	name, err := p.parseHideAction()
	if err != nil {
		return nil, err
	}
	hide.Actions = append(hide.Actions, name)

	for p.cur().Type == COMMA {
		p.advance()
		name, err := p.parseHideAction()
		if err != nil {
			return nil, err
		}
		hide.Actions = append(hide.Actions, name)
	}

	if _, err := p.expect(RBRACE, "'}'"); err != nil {
		return nil, err
	}
	hide.Sp = p.span(start)
	return hide, nil
}

func (p *Parser) parseHideAction() (string, error) {
	tok, err := p.expect(ACTION, "an action name")
	if err != nil {
		return "", err
	}
	name, _, _ := stripPrefix(tok.Literal)
	return name, nil
}

// parseProcess implements: Choice ("||" Process)?, right-associative.
func (p *Parser) parseProcess() (ast.Process, error) {
	start := p.cur().Pos
	left, err := p.parseChoice()
	if err != nil {
		return nil, err
	}
	if p.cur().Type == DARROW {
		p.advance()
		right, err := p.parseProcess()
		if err != nil {
			return nil, err
		}
		return &ast.Parallel{Left: left, Right: right, Sp: p.span(start)}, nil
	}
	return left, nil
}

// parseChoice implements: Sequence ("|" Choice)?, right-associative.
func (p *Parser) parseChoice() (ast.Process, error) {
	start := p.cur().Pos
	left, err := p.parseSequence()
	if err != nil {
		return nil, err
	}
	if p.cur().Type == PIPE {
		p.advance()
		right, err := p.parseChoice()
		if err != nil {
			return nil, err
		}
		return &ast.Choice{Left: left, Right: right, Sp: p.span(start)}, nil
	}
	return left, nil
}

// parseSequence implements:
//
//	Action "->" (Sequence | Name) | Terminal | "(" Process ")" | Name
func (p *Parser) parseSequence() (ast.Process, error) {
	start := p.cur().Pos

	switch p.cur().Type {
	case NAME:
		nameTok := p.advance()
		return &ast.Name{Ident: nameTok.Literal, Sp: p.span(start)}, nil

	case LPAREN:
		p.advance()
		inner, err := p.parseProcess()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN, "')'"); err != nil {
			return nil, err
		}
		return inner, nil

	case STOP:
		p.advance()
		return &ast.Stop{Sp: p.span(start)}, nil

	case ERROR:
		p.advance()
		return &ast.Error{Sp: p.span(start)}, nil

	case ACTION:
		actionTok := p.advance()
		name, broadcast, listen := stripPrefix(actionTok.Literal)
		action := ast.Action{
			Name:      name,
			Broadcast: broadcast,
			Listen:    listen,
			Sp:        ast.Span{Start: actionTok.Pos, End: p.cur().Pos},
		}
		if _, err := p.expect(ARROW, "'->'"); err != nil {
			return nil, err
		}
		var continuation ast.Process
		var err error
		if p.cur().Type == NAME {
			nameTok := p.advance()
			continuation = &ast.Name{Ident: nameTok.Literal, Sp: ast.Span{Start: nameTok.Pos, End: p.cur().Pos}}
		} else {
			continuation, err = p.parseSequence()
			if err != nil {
				return nil, err
			}
		}
		return &ast.Sequence{Action: action, Continuation: continuation, Sp: p.span(start)}, nil
	}

	return nil, p.errorf("expected an action, STOP, ERROR, a name, or '(', found %q", p.cur().Literal)
}

// stripPrefix splits a lexed action literal into its bare name and
// broadcast/listen flags.
func stripPrefix(literal string) (name string, broadcast, listen bool) {
	switch literal[0] {
	case '!':
		return literal[1:], true, false
	case '?':
		return literal[1:], false, true
	default:
		return literal, false, false
	}
}
