package grammar_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/spi/grammar"
	"github.com/takoeight0821/spi/token"
)

func kinds(d grammar.Dialect) []token.Kind {
	ks := make([]token.Kind, len(d.Rules))
	for i, r := range d.Rules {
		ks[i] = r.Kind
	}
	return ks
}

func index(ks []token.Kind, k token.Kind) int {
	for i, kind := range ks {
		if kind == k {
			return i
		}
	}
	return -1
}

func TestRuleOrder(t *testing.T) {
	t.Parallel()

	ks := kinds(grammar.Pascal)
	if index(ks, token.REALCONST) > index(ks, token.INTEGERCONST) {
		t.Errorf("REALCONST must be tried before INTEGERCONST: %v", ks)
	}
	if index(ks, token.ASSIGN) > index(ks, token.COLON) {
		t.Errorf("ASSIGN must be tried before COLON: %v", ks)
	}
	if index(kinds(grammar.Calculator), token.REALCONST) != -1 {
		t.Errorf("calculator must not lex real literals")
	}
}

func TestSlash(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		dialect grammar.Dialect
		want    token.Kind
	}{
		{grammar.Calculator, token.DIV},
		{grammar.Block, token.DIV},
		{grammar.Pascal, token.SLASH},
	}
	for _, tc := range testcases {
		var got token.Kind = -1
		for _, r := range tc.dialect.Rules {
			if r.Pattern.MatchString("/") {
				got = r.Kind
				break
			}
		}
		if got != tc.want {
			t.Errorf("%s: `/` lexes as %v, want %v", tc.dialect.Name, got, tc.want)
		}
	}
}

func TestKeywords(t *testing.T) {
	t.Parallel()

	if _, ok := grammar.Calculator.Reserved("BEGIN"); ok {
		t.Errorf("calculator reserves BEGIN")
	}
	if k, ok := grammar.Block.Reserved("BEGIN"); !ok || k != token.BEGIN {
		t.Errorf("block: BEGIN = %v, %v", k, ok)
	}
	if _, ok := grammar.Block.Reserved("DIV"); ok {
		t.Errorf("block reserves DIV")
	}
	for name, want := range map[string]token.Kind{
		"DIV": token.DIV, "PROGRAM": token.PROGRAM, "VAR": token.VAR,
		"INTEGER": token.INTEGER, "REAL": token.REAL, "END": token.END,
	} {
		if k, ok := grammar.Pascal.Reserved(name); !ok || k != want {
			t.Errorf("pascal: %s = %v, %v", name, k, ok)
		}
	}
}

func TestConvert(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		kind   token.Kind
		lexeme string
		want   any
	}{
		{token.INTEGERCONST, "42", 42},
		{token.REALCONST, "3.25", 3.25},
		{token.IDENT, "camelCase", "CAMELCASE"},
		{token.SEMICOLON, ";", nil},
	}
	for _, tc := range testcases {
		got, err := grammar.Convert(tc.kind, tc.lexeme)
		if err != nil {
			t.Errorf("Convert(%v, %q) returned error: %v", tc.kind, tc.lexeme, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Convert(%v, %q) mismatch (-want +got):\n%s", tc.kind, tc.lexeme, diff)
		}
	}

	if _, err := grammar.Convert(token.INTEGERCONST, "99999999999999999999999"); err == nil {
		t.Errorf("Convert of an overflowing integer returned no error")
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	d, err := grammar.Lookup("Pascal")
	if err != nil || d.Name != "pascal" {
		t.Errorf("Lookup(Pascal) = %v, %v", d.Name, err)
	}

	_, err = grammar.Lookup("cobol")
	var unknown grammar.UnknownDialectError
	if !errors.As(err, &unknown) {
		t.Errorf("Lookup(cobol) returned %v, want UnknownDialectError", err)
	}

	if diff := cmp.Diff([]string{"block", "calc", "pascal"}, grammar.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
}
