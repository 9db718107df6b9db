// Package parser is a recursive-descent parser with one token of lookahead.
package parser

import (
	"strings"

	"github.com/takoeight0821/spi/ast"
	"github.com/takoeight0821/spi/grammar"
	"github.com/takoeight0821/spi/token"
	"github.com/takoeight0821/spi/utils"
)

// TokenSource yields tokens one at a time. *lexer.Lexer implements it.
type TokenSource interface {
	Next() (token.Token, error)
}

type Parser struct {
	tokens  TokenSource
	dialect grammar.Dialect
	current token.Token
}

func New(tokens TokenSource, dialect grammar.Dialect) *Parser {
	return &Parser{tokens: tokens, dialect: dialect}
}

// ParseProgram parses a whole program and requires the input to end after it.
func (p *Parser) ParseProgram() (ast.Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if !p.dialect.Features.Statements {
		return nil, &SyntaxError{Where: p.current, Reason: "dialect " + p.dialect.Name + " has no programs"}
	}
	node, err := p.program()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.EOF); err != nil {
		return nil, err
	}
	return node, nil
}

// ParseExpr parses a single expression and requires the input to end after it.
func (p *Parser) ParseExpr() (ast.Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	node, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.EOF); err != nil {
		return nil, err
	}
	return node, nil
}

// program = "PROGRAM" variable ";" block "." | compoundStatement "." ;
func (p *Parser) program() (ast.Node, error) {
	if p.match(token.PROGRAM) {
		if _, err := p.eat(token.PROGRAM); err != nil {
			return nil, err
		}
		name, err := p.variable()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(token.SEMICOLON); err != nil {
			return nil, err
		}
		block, err := p.block()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(token.DOT); err != nil {
			return nil, err
		}
		return &ast.Program{Name: name, Block: block}, nil
	}

	body, err := p.compoundStatement()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.DOT); err != nil {
		return nil, err
	}
	return body, nil
}

// block = declarations compoundStatement ;
func (p *Parser) block() (*ast.Block, error) {
	decls, err := p.declarations()
	if err != nil {
		return nil, err
	}
	body, err := p.compoundStatement()
	if err != nil {
		return nil, err
	}
	return &ast.Block{Decls: decls, Body: body}, nil
}

// declarations = ( "VAR" ( varDecl ";" )+ )* ;
func (p *Parser) declarations() ([]*ast.VarDecl, error) {
	var decls []*ast.VarDecl
	for p.match(token.VAR) {
		if _, err := p.eat(token.VAR); err != nil {
			return nil, err
		}
		if !p.match(token.IDENT) {
			return nil, &SyntaxError{Where: p.current, Expected: []token.Kind{token.IDENT}, Reason: "VAR section has no declarations"}
		}
		for p.match(token.IDENT) {
			ds, err := p.varDecl()
			if err != nil {
				return nil, err
			}
			decls = append(decls, ds...)
			if _, err := p.eat(token.SEMICOLON); err != nil {
				return nil, err
			}
		}
	}
	return decls, nil
}

// varDecl = IDENT ( "," IDENT )* ":" typeSpec ;
func (p *Parser) varDecl() ([]*ast.VarDecl, error) {
	first, err := p.variable()
	if err != nil {
		return nil, err
	}
	vars := []*ast.Var{first}
	for p.match(token.COMMA) {
		if _, err := p.eat(token.COMMA); err != nil {
			return nil, err
		}
		v, err := p.variable()
		if err != nil {
			return nil, err
		}
		vars = append(vars, v)
	}
	if _, err := p.eat(token.COLON); err != nil {
		return nil, err
	}
	typ, err := p.typeSpec()
	if err != nil {
		return nil, err
	}

	decls := make([]*ast.VarDecl, len(vars))
	for i, v := range vars {
		decls[i] = &ast.VarDecl{Var: v, Type: typ}
	}
	return decls, nil
}

// typeSpec = "INTEGER" | "REAL" ;
func (p *Parser) typeSpec() (*ast.Type, error) {
	tok, err := p.eat(grammar.TypeNames...)
	if err != nil {
		return nil, err
	}
	return &ast.Type{Token: tok}, nil
}

// compoundStatement = "BEGIN" statementList "END" ;
func (p *Parser) compoundStatement() (*ast.Compound, error) {
	begin, err := p.eat(token.BEGIN)
	if err != nil {
		return nil, err
	}
	statements, err := p.statementList()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.END); err != nil {
		return nil, err
	}
	return &ast.Compound{Begin: begin, Statements: statements}, nil
}

// statementList = statement ( ";" statement )* ;
func (p *Parser) statementList() ([]ast.Node, error) {
	stmt, err := p.statement()
	if err != nil {
		return nil, err
	}
	statements := []ast.Node{stmt}
	for p.match(token.SEMICOLON) {
		if _, err := p.eat(token.SEMICOLON); err != nil {
			return nil, err
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}

// statement = compoundStatement | assignment | empty ;
func (p *Parser) statement() (ast.Node, error) {
	switch {
	case p.match(token.BEGIN):
		return p.compoundStatement()
	case p.match(token.IDENT):
		return p.assignment()
	default:
		return &ast.NoOp{Where: p.current}, nil
	}
}

// assignment = variable ":=" expr ;
func (p *Parser) assignment() (*ast.Assign, error) {
	target, err := p.variable()
	if err != nil {
		return nil, err
	}
	op, err := p.eat(token.ASSIGN)
	if err != nil {
		return nil, err
	}
	expr, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Target: target, Op: op, Expr: expr}, nil
}

// expr = term ( ( "+" | "-" ) term )* ;
func (p *Parser) expr() (ast.Node, error) {
	return p.binary(grammar.AddOps, p.term)
}

// term = factor ( ( "*" | "/" | "DIV" ) factor )* ;
func (p *Parser) term() (ast.Node, error) {
	return p.binary(grammar.MulOps, p.factor)
}

// binary folds operand (op operand)* to the left.
func (p *Parser) binary(ops []token.Kind, operand func() (ast.Node, error)) (ast.Node, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(ops...) {
		op, err := p.eat(ops...)
		if err != nil {
			return nil, err
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Left: left, Op: op, Right: right}
	}
	return left, nil
}

// factor = ( "+" | "-" ) factor | INTEGERCONST | REALCONST | "(" expr ")" | variable ;
func (p *Parser) factor() (ast.Node, error) {
	//exhaustive:ignore
	switch p.current.Kind {
	case token.PLUS, token.MINUS:
		op, err := p.eat(grammar.UnaryOps...)
		if err != nil {
			return nil, err
		}
		expr, err := p.factor()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: op, Expr: expr}, nil
	case token.INTEGERCONST, token.REALCONST:
		tok, err := p.eat(token.INTEGERCONST, token.REALCONST)
		if err != nil {
			return nil, err
		}
		return &ast.Num{Token: tok}, nil
	case token.LEFTPAREN:
		if _, err := p.eat(token.LEFTPAREN); err != nil {
			return nil, err
		}
		expr, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(token.RIGHTPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	case token.IDENT:
		return p.variable()
	default:
		return nil, &SyntaxError{
			Where:    p.current,
			Expected: []token.Kind{token.PLUS, token.MINUS, token.INTEGERCONST, token.REALCONST, token.LEFTPAREN, token.IDENT},
		}
	}
}

// variable = IDENT ;
func (p *Parser) variable() (*ast.Var, error) {
	name, err := p.eat(token.IDENT)
	if err != nil {
		return nil, err
	}
	return &ast.Var{Name: name}, nil
}

func (p *Parser) advance() error {
	tok, err := p.tokens.Next()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

func (p *Parser) match(kinds ...token.Kind) bool {
	return p.current.Kind.In(kinds...)
}

// eat consumes the current token if its kind is one of kinds.
func (p *Parser) eat(kinds ...token.Kind) (token.Token, error) {
	if !p.match(kinds...) {
		return token.Token{}, &SyntaxError{Where: p.current, Expected: kinds}
	}
	tok := p.current
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return tok, nil
}

type SyntaxError struct {
	Where    token.Token
	Expected []token.Kind
	// Reason replaces the generic message when set.
	Reason string
}

func (e *SyntaxError) Error() string {
	if e.Reason != "" {
		return utils.ErrorAt(e.Where, e.Reason).Error()
	}

	expected := make([]string, len(e.Expected))
	for i, k := range e.Expected {
		expected[i] = k.String()
	}
	return utils.ErrorAt(e.Where, "unexpected token: expected "+strings.Join(expected, ", ")).Error()
}
