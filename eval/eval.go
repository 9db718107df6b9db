// Package eval is a tree-walking interpreter over the variable store.
package eval

import (
	"fmt"

	"github.com/takoeight0821/spi/ast"
	"github.com/takoeight0821/spi/token"
	"github.com/takoeight0821/spi/utils"
)

// Interpreter owns the variable store of one run.
type Interpreter struct {
	store Store
}

func New() *Interpreter {
	return &Interpreter{store: make(Store)}
}

// Interpret executes a program and returns the final store.
// On failure the store is discarded.
func (in *Interpreter) Interpret(program ast.Node) (Store, error) {
	if _, err := ast.Accept[Value](program, in); err != nil {
		return nil, err
	}
	return in.store.clone(), nil
}

// Evaluate returns the value of an expression.
func (in *Interpreter) Evaluate(expr ast.Node) (Value, error) {
	v, err := ast.Accept[Value](expr, in)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, evalError(expr.Base(), fmt.Errorf("%v has no value", expr))
	}
	return v, nil
}

type UnboundVariableError struct {
	Name string
}

func (e UnboundVariableError) Error() string {
	return fmt.Sprintf("%s used before being assigned", e.Name)
}

type EvaluationError struct {
	utils.PosError
}

func evalError(where token.Token, err error) error {
	return &EvaluationError{PosError: utils.PosError{Where: where, Err: err}}
}

var _ ast.Visitor[Value] = &Interpreter{}

func (in *Interpreter) Num(n *ast.Num) (Value, error) {
	v, ok := FromLiteral(n.Literal)
	if !ok {
		return nil, evalError(n.Base(), fmt.Errorf("unexpected literal: %v", n.Literal))
	}
	return v, nil
}

func (in *Interpreter) UnaryOp(n *ast.UnaryOp) (Value, error) {
	v, err := in.Evaluate(n.Expr)
	if err != nil {
		return nil, err
	}
	op, ok := unaryOps[n.Op.Kind]
	if !ok {
		return nil, evalError(n.Op, UnknownOperatorError{Op: n.Op.Kind})
	}
	return op(v), nil
}

func (in *Interpreter) BinOp(n *ast.BinOp) (Value, error) {
	lhs, err := in.Evaluate(n.Left)
	if err != nil {
		return nil, err
	}
	rhs, err := in.Evaluate(n.Right)
	if err != nil {
		return nil, err
	}
	op, ok := binaryOps[n.Op.Kind]
	if !ok {
		return nil, evalError(n.Op, UnknownOperatorError{Op: n.Op.Kind})
	}
	v, err := op(lhs, rhs)
	if err != nil {
		return nil, evalError(n.Op, err)
	}
	return v, nil
}

func (in *Interpreter) Var(n *ast.Var) (Value, error) {
	v, ok := in.store.get(n.Ident())
	if !ok {
		return nil, evalError(n.Name, UnboundVariableError{Name: n.Ident()})
	}
	return v, nil
}

func (in *Interpreter) Assign(n *ast.Assign) (Value, error) {
	v, err := in.Evaluate(n.Expr)
	if err != nil {
		return nil, err
	}
	in.store.set(n.Target.Ident(), v)
	return nil, nil
}

func (in *Interpreter) Compound(n *ast.Compound) (Value, error) {
	for _, stmt := range n.Statements {
		if _, err := ast.Accept[Value](stmt, in); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func (in *Interpreter) NoOp(*ast.NoOp) (Value, error) {
	return nil, nil
}

func (in *Interpreter) Program(n *ast.Program) (Value, error) {
	return ast.Accept[Value](n.Block, in)
}

func (in *Interpreter) Block(n *ast.Block) (Value, error) {
	for _, decl := range n.Decls {
		if _, err := ast.Accept[Value](decl, in); err != nil {
			return nil, err
		}
	}
	return ast.Accept[Value](n.Body, in)
}

// Declarations carry no runtime effect: a declared variable is still unbound until assigned.
func (in *Interpreter) VarDecl(*ast.VarDecl) (Value, error) {
	return nil, nil
}

func (in *Interpreter) Type(*ast.Type) (Value, error) {
	return nil, nil
}
