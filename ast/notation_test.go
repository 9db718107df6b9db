package ast_test

import (
	"errors"
	"testing"

	"github.com/takoeight0821/spi/ast"
	"github.com/takoeight0821/spi/grammar"
	"github.com/takoeight0821/spi/lexer"
	"github.com/takoeight0821/spi/parser"
)

func TestNotation(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		input string
		lisp  string
		rpn   string
	}{
		{"3", "3", "3"},
		{"2 + 3", "(+ 2 3)", "2 3 +"},
		{"2 + 3 * 5", "(+ 2 (* 3 5))", "2 3 5 * +"},
		{"(5 + 3) * 12 DIV 3", "(DIV (* (+ 5 3) 12) 3)", "5 3 + 12 * 3 DIV"},
		{"7 + 5 * 2 - 3", "(- (+ 7 (* 5 2)) 3)", "7 5 2 * + 3 -"},
		{"-x", "(- X)", "0 X -"},
		{"+1.5 / y", "(/ 1.5 Y)", "1.5 Y /"},
	}

	for _, tc := range testcases {
		node, err := parser.New(lexer.New(tc.input, grammar.Pascal), grammar.Pascal).ParseExpr()
		if err != nil {
			t.Fatalf("ParseExpr(%q) returned error: %v", tc.input, err)
		}

		lisp, err := ast.Lisp(node)
		if err != nil {
			t.Errorf("Lisp(%q) returned error: %v", tc.input, err)
		} else if lisp != tc.lisp {
			t.Errorf("Lisp(%q) = %q, want %q", tc.input, lisp, tc.lisp)
		}

		rpn, err := ast.RPN(node)
		if err != nil {
			t.Errorf("RPN(%q) returned error: %v", tc.input, err)
		} else if rpn != tc.rpn {
			t.Errorf("RPN(%q) = %q, want %q", tc.input, rpn, tc.rpn)
		}
	}
}

func TestNotationRejectsStatements(t *testing.T) {
	t.Parallel()

	node, err := parser.New(lexer.New("BEGIN x := 1 END.", grammar.Block), grammar.Block).ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram returned error: %v", err)
	}

	var notExpr ast.NotExpressionError
	if _, err := ast.Lisp(node); !errors.As(err, &notExpr) {
		t.Errorf("Lisp returned %v, want NotExpressionError", err)
	}
	if _, err := ast.RPN(node); !errors.As(err, &notExpr) {
		t.Errorf("RPN returned %v, want NotExpressionError", err)
	}
}
