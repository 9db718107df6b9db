package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/takoeight0821/spi/ast"
	"github.com/takoeight0821/spi/eval"
	"github.com/takoeight0821/spi/semantic"
)

var (
	labelColor = color.New(color.FgCyan)
	valueColor = color.New(color.FgGreen, color.Bold)
)

type printer struct {
	out io.Writer
}

func (p printer) tree(n ast.Node) {
	fmt.Fprintf(p.out, "%s %v\n", labelColor.Sprint("tree:"), n)
}

func (p printer) notation(n ast.Node) {
	if lisp, err := ast.Lisp(n); err == nil {
		fmt.Fprintf(p.out, "%s %s\n", labelColor.Sprint("lisp:"), lisp)
	}
	if rpn, err := ast.RPN(n); err == nil {
		fmt.Fprintf(p.out, "%s %s\n", labelColor.Sprint("rpn:"), rpn)
	}
}

func (p printer) symbols(symbols []semantic.Symbol) {
	fmt.Fprintln(p.out, labelColor.Sprint("symbols:"))
	for _, s := range symbols {
		fmt.Fprintf(p.out, "  %v\n", s)
	}
}

func (p printer) value(v eval.Value) {
	fmt.Fprintln(p.out, valueColor.Sprint(v))
}

// store prints one NAME = value line per variable, sorted by name.
func (p printer) store(s eval.Store) {
	for _, name := range s.Names() {
		fmt.Fprintf(p.out, "%s = %s\n", name, valueColor.Sprint(s[name]))
	}
}
