package ast

import (
	"fmt"
	"strings"

	"github.com/takoeight0821/spi/token"
)

// AST

// Node is implemented only by the node types of this package.
type Node interface {
	fmt.Stringer
	Base() token.Token
	accept(d dispatcher)
}

// Num is an integer or real literal.
type Num struct {
	token.Token
}

func (n Num) String() string {
	return parenthesize("num", atom(n.Lexeme)).String()
}

func (n *Num) Base() token.Token {
	return n.Token
}

var _ Node = &Num{}

type UnaryOp struct {
	Op   token.Token
	Expr Node
}

func (u UnaryOp) String() string {
	return parenthesize("unary", atom(u.Op.Lexeme), u.Expr).String()
}

func (u *UnaryOp) Base() token.Token {
	return u.Op
}

var _ Node = &UnaryOp{}

type BinOp struct {
	Left  Node
	Op    token.Token
	Right Node
}

func (b BinOp) String() string {
	return parenthesize("binary", b.Left, atom(b.Op.Lexeme), b.Right).String()
}

func (b *BinOp) Base() token.Token {
	return b.Op
}

var _ Node = &BinOp{}

type Var struct {
	Name token.Token
}

func (v Var) String() string {
	return parenthesize("var", atom(v.Ident())).String()
}

func (v *Var) Base() token.Token {
	return v.Name
}

// Ident returns the canonical (uppercased) name.
func (v Var) Ident() string {
	return v.Name.Pretty()
}

var _ Node = &Var{}

type Assign struct {
	Target *Var
	Op     token.Token
	Expr   Node
}

func (a Assign) String() string {
	return parenthesize("assign", a.Target, a.Expr).String()
}

func (a *Assign) Base() token.Token {
	return a.Op
}

var _ Node = &Assign{}

type Compound struct {
	Begin      token.Token
	Statements []Node
}

func (c Compound) String() string {
	return parenthesize("compound", concat(c.Statements)).String()
}

func (c *Compound) Base() token.Token {
	return c.Begin
}

var _ Node = &Compound{}

// NoOp is an empty statement.
type NoOp struct {
	Where token.Token
}

func (NoOp) String() string {
	return "(noop)"
}

func (n *NoOp) Base() token.Token {
	return n.Where
}

var _ Node = &NoOp{}

type Program struct {
	Name  *Var
	Block *Block
}

func (p Program) String() string {
	return parenthesize("program", p.Name, p.Block).String()
}

func (p *Program) Base() token.Token {
	return p.Name.Base()
}

var _ Node = &Program{}

type Block struct {
	Decls []*VarDecl
	Body  *Compound
}

func (b Block) String() string {
	return parenthesize("block", concat(b.Decls), b.Body).String()
}

func (b *Block) Base() token.Token {
	return b.Body.Base()
}

var _ Node = &Block{}

// VarDecl declares one variable. `a, b : INTEGER` yields two VarDecls sharing a Type.
type VarDecl struct {
	Var  *Var
	Type *Type
}

func (v VarDecl) String() string {
	return parenthesize("decl", v.Var, v.Type).String()
}

func (v *VarDecl) Base() token.Token {
	return v.Var.Base()
}

var _ Node = &VarDecl{}

type Type struct {
	token.Token
}

func (t Type) String() string {
	return parenthesize("type", atom(t.Kind.String())).String()
}

func (t *Type) Base() token.Token {
	return t.Token
}

var _ Node = &Type{}

type atom string

func (a atom) String() string {
	return string(a)
}

// parenthesize takes a head string and a variadic number of nodes that implement the fmt.Stringer interface.
// It returns a fmt.Stringer that represents a string where each node is parenthesized and separated by a space.
// If the head string is not empty, it is added at the beginning of the string.
func parenthesize(head string, elems ...fmt.Stringer) fmt.Stringer {
	var b strings.Builder
	b.WriteString("(")
	elemsStr := concat(elems).String()
	if head != "" {
		b.WriteString(head)
	}
	if elemsStr != "" {
		if head != "" {
			b.WriteString(" ")
		}
		b.WriteString(elemsStr)
	}
	b.WriteString(")")
	return &b
}

// concat takes a slice of nodes that implement the fmt.Stringer interface.
// It returns a fmt.Stringer that represents a string where each node is separated by a space.
func concat[T fmt.Stringer](elems []T) fmt.Stringer {
	var b strings.Builder
	for _, elem := range elems {
		// ignore empty string
		// e.g. concat({}) == ""
		str := elem.String()
		if str == "" {
			continue
		}
		if b.Len() != 0 {
			b.WriteString(" ")
		}
		b.WriteString(str)
	}
	return &b
}
