package token

import "fmt"

//go:generate go run golang.org/x/tools/cmd/stringer@v0.13.0 -type=Kind
type Kind int

const (
	EOF Kind = iota

	// Single-character tokens.
	LEFTPAREN
	RIGHTPAREN
	COLON
	COMMA
	DOT
	SEMICOLON
	PLUS
	MINUS
	STAR
	SLASH

	// Two-character tokens.
	ASSIGN

	// Literals and identifiers.
	IDENT
	INTEGERCONST
	REALCONST

	// Keywords.
	BEGIN
	END
	DIV
	PROGRAM
	VAR
	INTEGER
	REAL
)

// Token is a classified lexeme.
// Literal holds the converted value: int for INTEGERCONST, float64 for REALCONST,
// the uppercased name for IDENT, and nil otherwise.
type Token struct {
	Kind    Kind
	Lexeme  string
	Line    int
	Literal any
}

func (t Token) Pretty() string {
	if t.Kind == IDENT {
		if name, ok := t.Literal.(string); ok {
			return name
		}
	}
	return t.Lexeme
}

func (t Token) String() string {
	return fmt.Sprintf("{%v, %q, %d, %v}", t.Kind, t.Lexeme, t.Line, t.Literal)
}

// In reports whether the kind is one of kinds.
func (k Kind) In(kinds ...Kind) bool {
	for _, kind := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
