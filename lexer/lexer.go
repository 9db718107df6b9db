package lexer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/takoeight0821/spi/grammar"
	"github.com/takoeight0821/spi/token"
)

// Lex scans the whole source and returns its tokens, ending with EOF.
func Lex(source string, dialect grammar.Dialect) ([]token.Token, error) {
	l := New(source, dialect)

	var tokens []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

// Lexer produces tokens on demand.
type Lexer struct {
	dialect grammar.Dialect
	rest    string // unconsumed input
	line    int    // current line number
}

func New(source string, dialect grammar.Dialect) *Lexer {
	return &Lexer{dialect: dialect, rest: source, line: 1}
}

type LexError struct {
	Line      int
	Remainder string
	Err       error
}

func (e *LexError) Error() string {
	rest, _, cut := strings.Cut(e.Remainder, "\n")
	if cut {
		rest += "..."
	}
	if e.Err != nil {
		return fmt.Sprintf("at %d: couldn't tokenize `%s`: %v", e.Line, rest, e.Err)
	}
	return fmt.Sprintf("at %d: couldn't tokenize `%s`", e.Line, rest)
}

func (e *LexError) Unwrap() error {
	return e.Err
}

// Next returns the next token. Once the input is exhausted it keeps returning EOF.
func (l *Lexer) Next() (token.Token, error) {
	l.skip()

	if l.rest == "" {
		return token.Token{Kind: token.EOF, Lexeme: "", Line: l.line, Literal: nil}, nil
	}

	for _, rule := range l.dialect.Rules {
		loc := rule.Pattern.FindStringIndex(l.rest)
		if loc == nil || loc[1] == 0 {
			continue
		}
		lexeme := l.rest[:loc[1]]

		literal, err := grammar.Convert(rule.Kind, lexeme)
		if err != nil {
			return token.Token{}, &LexError{Line: l.line, Remainder: l.rest, Err: err}
		}

		kind := rule.Kind
		if kind == token.IDENT {
			if k, ok := l.dialect.Reserved(literal.(string)); ok {
				kind = k
				literal = nil
			}
		}

		l.consume(len(lexeme))
		return token.Token{Kind: kind, Lexeme: lexeme, Line: l.line, Literal: literal}, nil
	}

	return token.Token{}, &LexError{Line: l.line, Remainder: l.rest}
}

var comment = regexp.MustCompile(`\A\{[^}]*\}`)

// skip drops whitespace and comments until neither is at the head of the input.
func (l *Lexer) skip() {
	for {
		trimmed := strings.TrimLeftFunc(l.rest, unicode.IsSpace)
		l.consume(len(l.rest) - len(trimmed))

		loc := comment.FindStringIndex(l.rest)
		if loc == nil {
			return
		}
		l.consume(loc[1])
	}
}

func (l *Lexer) consume(n int) {
	l.line += strings.Count(l.rest[:n], "\n")
	l.rest = l.rest[n:]
}
