package driver

import (
	"errors"
	"fmt"

	"github.com/takoeight0821/spi/ast"
	"github.com/takoeight0821/spi/eval"
	"github.com/takoeight0821/spi/grammar"
	"github.com/takoeight0821/spi/lexer"
	"github.com/takoeight0821/spi/parser"
)

// Pass is a stage run over the tree between parsing and evaluation.
type Pass interface {
	Init(ast.Node) error
	Run(ast.Node) (ast.Node, error)
}

type PassRunner struct {
	dialect grammar.Dialect
	passes  []Pass
}

func NewPassRunner(dialect grammar.Dialect) *PassRunner {
	return &PassRunner{dialect: dialect}
}

// AddPass adds a pass to the end of the pass list.
func (r *PassRunner) AddPass(pass Pass) {
	r.passes = append(r.passes, pass)
}

// Dialect returns the dialect sources are parsed with.
func (r *PassRunner) Dialect() grammar.Dialect {
	return r.dialect
}

// Run executes passes in order.
// If an error occurs, it stops the execution and returns the current program.
func (r *PassRunner) Run(program ast.Node) (ast.Node, error) {
	for _, pass := range r.passes {
		err := pass.Init(program)
		if err != nil {
			return program, fmt.Errorf("init: %w", err)
		}
		program, err = pass.Run(program)
		if err != nil {
			return program, fmt.Errorf("check: %w", err)
		}
	}

	return program, nil
}

// Parse parses the source as a program, or as an expression when that fails
// or the dialect has no programs.
// It reports whether the result is an expression.
func (r *PassRunner) Parse(source string) (ast.Node, bool, error) {
	if !r.dialect.Features.Statements {
		expr, err := parser.New(lexer.New(source, r.dialect), r.dialect).ParseExpr()
		if err != nil {
			return nil, false, wrapParseError(err)
		}
		return expr, true, nil
	}

	program, errProgram := parser.New(lexer.New(source, r.dialect), r.dialect).ParseProgram()
	if errProgram == nil {
		return program, false, nil
	}
	var lexErr *lexer.LexError
	if errors.As(errProgram, &lexErr) {
		return nil, false, fmt.Errorf("lex: %w", errProgram)
	}

	expr, errExpr := parser.New(lexer.New(source, r.dialect), r.dialect).ParseExpr()
	if errExpr == nil {
		return expr, true, nil
	}

	return nil, false, fmt.Errorf("parse:\n%w", errors.Join(errProgram, errExpr))
}

func wrapParseError(err error) error {
	var lexErr *lexer.LexError
	if errors.As(err, &lexErr) {
		return fmt.Errorf("lex: %w", err)
	}
	return fmt.Errorf("parse: %w", err)
}

// Result is the outcome of one run.
// Value is set when the source was an expression, Store when it was a program.
type Result struct {
	Tree  ast.Node
	Value eval.Value
	Store eval.Store
}

// RunSource parses the source, executes passes in order and evaluates the result.
// Every call starts from an empty variable store.
func (r *PassRunner) RunSource(source string) (Result, error) {
	tree, isExpr, err := r.Parse(source)
	if err != nil {
		return Result{}, err
	}

	tree, err = r.Run(tree)
	if err != nil {
		return Result{Tree: tree}, err
	}

	interp := eval.New()
	if isExpr {
		v, err := interp.Evaluate(tree)
		if err != nil {
			return Result{Tree: tree}, fmt.Errorf("eval: %w", err)
		}
		return Result{Tree: tree, Value: v}, nil
	}

	store, err := interp.Interpret(tree)
	if err != nil {
		return Result{Tree: tree}, fmt.Errorf("eval: %w", err)
	}
	return Result{Tree: tree, Store: store}, nil
}
