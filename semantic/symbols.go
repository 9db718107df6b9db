// Package semantic checks declarations against uses before a program runs.
package semantic

import (
	"fmt"
	"log"
	"sort"

	"github.com/takoeight0821/spi/ast"
	"github.com/takoeight0821/spi/token"
	"github.com/takoeight0821/spi/utils"
)

type Symbol interface {
	fmt.Stringer
	Name() string
}

// BuiltinType is a type name known before any declaration.
type BuiltinType struct {
	name string
}

func (b BuiltinType) Name() string   { return b.name }
func (b BuiltinType) String() string { return b.name }

type VarSymbol struct {
	name string
	Type Symbol
}

func (v VarSymbol) Name() string { return v.name }

func (v VarSymbol) String() string {
	return fmt.Sprintf("<%s:%s>", v.name, v.Type.Name())
}

type DuplicateIdentifierError struct {
	Name string
}

func (e DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("duplicate identifier %s", e.Name)
}

type UnknownVariableError struct {
	Name string
}

func (e UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown variable %s", e.Name)
}

type UnknownTypeError struct {
	Name string
}

func (e UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type %s", e.Name)
}

// Checker builds a symbol table from VAR sections and rejects
// duplicate declarations and uses of undeclared variables.
type Checker struct {
	symbols map[string]Symbol
	logger  *log.Logger
}

// NewChecker returns a checker. A non-nil logger receives a trace of every definition and lookup.
func NewChecker(logger *log.Logger) *Checker {
	return &Checker{logger: logger}
}

func (c *Checker) Init(ast.Node) error {
	c.symbols = make(map[string]Symbol)
	for _, kind := range []token.Kind{token.INTEGER, token.REAL} {
		if err := c.define(BuiltinType{name: kind.String()}); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) Run(program ast.Node) (ast.Node, error) {
	_, err := ast.Accept[struct{}](program, c)
	return program, err
}

// Symbols returns the table sorted by name.
func (c *Checker) Symbols() []Symbol {
	symbols := make([]Symbol, 0, len(c.symbols))
	for _, s := range c.symbols {
		symbols = append(symbols, s)
	}
	sort.Slice(symbols, func(i, j int) bool {
		return symbols[i].Name() < symbols[j].Name()
	})
	return symbols
}

func (c *Checker) define(s Symbol) error {
	c.tracef("Define: %v", s)
	if _, ok := c.symbols[s.Name()]; ok {
		return DuplicateIdentifierError{Name: s.Name()}
	}
	c.symbols[s.Name()] = s
	return nil
}

func (c *Checker) lookup(name string) (Symbol, bool) {
	c.tracef("Lookup: %s", name)
	s, ok := c.symbols[name]
	return s, ok
}

func (c *Checker) tracef(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

func (c *Checker) resolve(v *ast.Var) error {
	if _, ok := c.lookup(v.Ident()); !ok {
		return utils.PosError{Where: v.Name, Err: UnknownVariableError{Name: v.Ident()}}
	}
	return nil
}

func (c *Checker) visitAll(nodes ...ast.Node) error {
	for _, n := range nodes {
		if _, err := ast.Accept[struct{}](n, c); err != nil {
			return err
		}
	}
	return nil
}

var _ ast.Visitor[struct{}] = &Checker{}

func (c *Checker) Num(*ast.Num) (struct{}, error) {
	return struct{}{}, nil
}

func (c *Checker) UnaryOp(n *ast.UnaryOp) (struct{}, error) {
	return struct{}{}, c.visitAll(n.Expr)
}

func (c *Checker) BinOp(n *ast.BinOp) (struct{}, error) {
	return struct{}{}, c.visitAll(n.Left, n.Right)
}

func (c *Checker) Var(n *ast.Var) (struct{}, error) {
	return struct{}{}, c.resolve(n)
}

func (c *Checker) Assign(n *ast.Assign) (struct{}, error) {
	if err := c.visitAll(n.Expr); err != nil {
		return struct{}{}, err
	}
	return struct{}{}, c.resolve(n.Target)
}

func (c *Checker) Compound(n *ast.Compound) (struct{}, error) {
	return struct{}{}, c.visitAll(n.Statements...)
}

func (c *Checker) NoOp(*ast.NoOp) (struct{}, error) {
	return struct{}{}, nil
}

func (c *Checker) Program(n *ast.Program) (struct{}, error) {
	return struct{}{}, c.visitAll(n.Block)
}

func (c *Checker) Block(n *ast.Block) (struct{}, error) {
	for _, decl := range n.Decls {
		if err := c.visitAll(decl); err != nil {
			return struct{}{}, err
		}
	}
	return struct{}{}, c.visitAll(n.Body)
}

func (c *Checker) VarDecl(n *ast.VarDecl) (struct{}, error) {
	typeName := n.Type.Kind.String()
	typ, ok := c.lookup(typeName)
	if !ok {
		return struct{}{}, utils.PosError{Where: n.Type.Token, Err: UnknownTypeError{Name: typeName}}
	}
	if err := c.define(VarSymbol{name: n.Var.Ident(), Type: typ}); err != nil {
		return struct{}{}, utils.PosError{Where: n.Var.Name, Err: err}
	}
	return struct{}{}, nil
}

func (c *Checker) Type(*ast.Type) (struct{}, error) {
	return struct{}{}, nil
}
