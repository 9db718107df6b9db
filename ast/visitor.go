package ast

// Visitor has one method per node type.
// Adding a node type adds a method here, so every visitor stops compiling until it handles it.
type Visitor[T any] interface {
	Num(n *Num) (T, error)
	UnaryOp(n *UnaryOp) (T, error)
	BinOp(n *BinOp) (T, error)
	Var(n *Var) (T, error)
	Assign(n *Assign) (T, error)
	Compound(n *Compound) (T, error)
	NoOp(n *NoOp) (T, error)
	Program(n *Program) (T, error)
	Block(n *Block) (T, error)
	VarDecl(n *VarDecl) (T, error)
	Type(n *Type) (T, error)
}

// Accept calls the method of v matching the type of n.
func Accept[T any](n Node, v Visitor[T]) (T, error) {
	d := &adapter[T]{v: v}
	n.accept(d)
	return d.result, d.err
}

// dispatcher erases T so that Node.accept need not be generic.
type dispatcher interface {
	num(n *Num)
	unaryOp(n *UnaryOp)
	binOp(n *BinOp)
	variable(n *Var)
	assign(n *Assign)
	compound(n *Compound)
	noOp(n *NoOp)
	program(n *Program)
	block(n *Block)
	varDecl(n *VarDecl)
	typ(n *Type)
}

type adapter[T any] struct {
	v      Visitor[T]
	result T
	err    error
}

var _ dispatcher = &adapter[struct{}]{}

func (a *adapter[T]) num(n *Num)           { a.result, a.err = a.v.Num(n) }
func (a *adapter[T]) unaryOp(n *UnaryOp)   { a.result, a.err = a.v.UnaryOp(n) }
func (a *adapter[T]) binOp(n *BinOp)       { a.result, a.err = a.v.BinOp(n) }
func (a *adapter[T]) variable(n *Var)      { a.result, a.err = a.v.Var(n) }
func (a *adapter[T]) assign(n *Assign)     { a.result, a.err = a.v.Assign(n) }
func (a *adapter[T]) compound(n *Compound) { a.result, a.err = a.v.Compound(n) }
func (a *adapter[T]) noOp(n *NoOp)         { a.result, a.err = a.v.NoOp(n) }
func (a *adapter[T]) program(n *Program)   { a.result, a.err = a.v.Program(n) }
func (a *adapter[T]) block(n *Block)       { a.result, a.err = a.v.Block(n) }
func (a *adapter[T]) varDecl(n *VarDecl)   { a.result, a.err = a.v.VarDecl(n) }
func (a *adapter[T]) typ(n *Type)          { a.result, a.err = a.v.Type(n) }

func (n *Num) accept(d dispatcher)      { d.num(n) }
func (u *UnaryOp) accept(d dispatcher)  { d.unaryOp(u) }
func (b *BinOp) accept(d dispatcher)    { d.binOp(b) }
func (v *Var) accept(d dispatcher)      { d.variable(v) }
func (a *Assign) accept(d dispatcher)   { d.assign(a) }
func (c *Compound) accept(d dispatcher) { d.compound(c) }
func (n *NoOp) accept(d dispatcher)     { d.noOp(n) }
func (p *Program) accept(d dispatcher)  { d.program(p) }
func (b *Block) accept(d dispatcher)    { d.block(b) }
func (v *VarDecl) accept(d dispatcher)  { d.varDecl(v) }
func (t *Type) accept(d dispatcher)     { d.typ(t) }
