package ast

import (
	"fmt"
	"strings"

	"github.com/takoeight0821/spi/token"
)

// NotExpressionError is returned when a notation is asked to render a statement.
type NotExpressionError struct {
	Node Node
}

func (e NotExpressionError) Error() string {
	return fmt.Sprintf("not an expression: %v", e.Node)
}

// Lisp renders an expression in prefix notation, e.g. (+ 1 (* 2 3)).
func Lisp(n Node) (string, error) {
	return Accept[string](n, lisp{})
}

// RPN renders an expression in reverse Polish notation, e.g. 1 2 3 * +.
func RPN(n Node) (string, error) {
	return Accept[string](n, rpn{})
}

func opText(op token.Token) string {
	return strings.ToUpper(op.Lexeme)
}

// statements is embedded by the notation visitors to reject statement nodes.
type statements struct{}

func (statements) Assign(n *Assign) (string, error)     { return "", NotExpressionError{n} }
func (statements) Compound(n *Compound) (string, error) { return "", NotExpressionError{n} }
func (statements) NoOp(n *NoOp) (string, error)         { return "", NotExpressionError{n} }
func (statements) Program(n *Program) (string, error)   { return "", NotExpressionError{n} }
func (statements) Block(n *Block) (string, error)       { return "", NotExpressionError{n} }
func (statements) VarDecl(n *VarDecl) (string, error)   { return "", NotExpressionError{n} }
func (statements) Type(n *Type) (string, error)         { return "", NotExpressionError{n} }

type lisp struct {
	statements
}

var _ Visitor[string] = lisp{}

func (lisp) Num(n *Num) (string, error) {
	return n.Lexeme, nil
}

func (lisp) Var(n *Var) (string, error) {
	return n.Ident(), nil
}

func (l lisp) UnaryOp(n *UnaryOp) (string, error) {
	expr, err := Accept[string](n.Expr, l)
	if err != nil {
		return "", err
	}
	if n.Op.Kind == token.PLUS {
		return expr, nil
	}
	return fmt.Sprintf("(%s %s)", opText(n.Op), expr), nil
}

func (l lisp) BinOp(n *BinOp) (string, error) {
	left, err := Accept[string](n.Left, l)
	if err != nil {
		return "", err
	}
	right, err := Accept[string](n.Right, l)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(%s %s %s)", opText(n.Op), left, right), nil
}

type rpn struct {
	statements
}

var _ Visitor[string] = rpn{}

func (rpn) Num(n *Num) (string, error) {
	return n.Lexeme, nil
}

func (rpn) Var(n *Var) (string, error) {
	return n.Ident(), nil
}

func (r rpn) UnaryOp(n *UnaryOp) (string, error) {
	expr, err := Accept[string](n.Expr, r)
	if err != nil {
		return "", err
	}
	if n.Op.Kind == token.PLUS {
		return expr, nil
	}
	// negation is written as a subtraction from zero
	return fmt.Sprintf("0 %s %s", expr, opText(n.Op)), nil
}

func (r rpn) BinOp(n *BinOp) (string, error) {
	left, err := Accept[string](n.Left, r)
	if err != nil {
		return "", err
	}
	right, err := Accept[string](n.Right, r)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s %s", left, right, opText(n.Op)), nil
}
