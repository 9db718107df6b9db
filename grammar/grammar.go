// Package grammar describes the token set and operator groups of each language dialect.
//
// A dialect is data only: an ordered list of matching rules, a reserved keyword
// table, value converters and precedence groups. The lexer and the parser read
// these tables; nothing here scans or parses by itself.
package grammar

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/takoeight0821/spi/token"
)

// Features switches optional parts of the language on.
type Features struct {
	// Statements enables BEGIN/END blocks, assignments and variables as programs.
	Statements bool
	// RealLiterals enables decimal literals like 3.14.
	RealLiterals bool
	// DivKeyword makes DIV the integer division and `/` the real division.
	// Without it, `/` is the integer division.
	DivKeyword bool
	// Declarations enables PROGRAM headers and VAR sections.
	Declarations bool
}

// Rule matches one token kind at the head of the remaining input.
type Rule struct {
	Kind    token.Kind
	Pattern *regexp.Regexp
}

type Dialect struct {
	Name     string
	Features Features
	// Rules are tried in order; the first one matching a non-empty prefix wins.
	Rules    []Rule
	Keywords map[string]token.Kind
}

// Precedence groups, loosest first.
var (
	AddOps   = []token.Kind{token.PLUS, token.MINUS}
	MulOps   = []token.Kind{token.STAR, token.SLASH, token.DIV}
	UnaryOps = []token.Kind{token.PLUS, token.MINUS}
)

// TypeNames are the kinds accepted by a type specification.
var TypeNames = []token.Kind{token.INTEGER, token.REAL}

func rule(kind token.Kind, pattern string) Rule {
	return Rule{Kind: kind, Pattern: regexp.MustCompile(`\A(?:` + pattern + `)`)}
}

// New builds the tables for the given features.
func New(name string, features Features) Dialect {
	var rules []Rule

	// Longer literals must come before the integer rule that would eat their prefix.
	if features.RealLiterals {
		rules = append(rules, rule(token.REALCONST, `[0-9]+\.[0-9]+`))
	}
	rules = append(rules,
		rule(token.INTEGERCONST, `[0-9]+`),
		rule(token.PLUS, `\+`),
		rule(token.MINUS, `-`),
		rule(token.STAR, `\*`),
	)
	if features.DivKeyword {
		rules = append(rules, rule(token.SLASH, `/`))
	} else {
		rules = append(rules, rule(token.DIV, `/`))
	}
	rules = append(rules,
		rule(token.LEFTPAREN, `\(`),
		rule(token.RIGHTPAREN, `\)`),
		// `:=` must come before `:`.
		rule(token.ASSIGN, `:=`),
		rule(token.IDENT, `_?[A-Za-z][A-Za-z0-9]*`),
		rule(token.SEMICOLON, `;`),
		rule(token.COLON, `:`),
		rule(token.COMMA, `,`),
		rule(token.DOT, `\.`),
	)

	keywords := map[string]token.Kind{}
	if features.Statements {
		keywords["BEGIN"] = token.BEGIN
		keywords["END"] = token.END
	}
	if features.DivKeyword {
		keywords["DIV"] = token.DIV
	}
	if features.Declarations {
		keywords["PROGRAM"] = token.PROGRAM
		keywords["VAR"] = token.VAR
		keywords["INTEGER"] = token.INTEGER
		keywords["REAL"] = token.REAL
	}

	return Dialect{Name: name, Features: features, Rules: rules, Keywords: keywords}
}

var (
	// Calculator evaluates a single arithmetic expression over integers.
	Calculator = New("calc", Features{})
	// Block adds BEGIN ... END. programs with assignments.
	Block = New("block", Features{Statements: true})
	// Pascal is the full language: declarations, real numbers, DIV.
	Pascal = New("pascal", Features{Statements: true, RealLiterals: true, DivKeyword: true, Declarations: true})
)

var dialects = map[string]Dialect{
	Calculator.Name: Calculator,
	Block.Name:      Block,
	Pascal.Name:     Pascal,
}

type UnknownDialectError struct {
	Name string
}

func (e UnknownDialectError) Error() string {
	return fmt.Sprintf("unknown dialect %q (available: %s)", e.Name, strings.Join(Names(), ", "))
}

// Lookup returns the preset named name.
func Lookup(name string) (Dialect, error) {
	if d, ok := dialects[strings.ToLower(name)]; ok {
		return d, nil
	}
	return Dialect{}, UnknownDialectError{Name: name}
}

// Names lists the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reserved reports the keyword kind of an uppercased identifier.
func (d Dialect) Reserved(name string) (token.Kind, bool) {
	k, ok := d.Keywords[name]
	return k, ok
}

type converter func(lexeme string) (any, error)

var converters = map[token.Kind]converter{
	token.INTEGERCONST: func(lexeme string) (any, error) {
		return strconv.Atoi(lexeme)
	},
	token.REALCONST: func(lexeme string) (any, error) {
		return strconv.ParseFloat(lexeme, 64)
	},
	token.IDENT: func(lexeme string) (any, error) {
		return strings.ToUpper(lexeme), nil
	},
}

// Convert returns the literal value of a lexeme, or nil for kinds without one.
func Convert(kind token.Kind, lexeme string) (any, error) {
	if conv, ok := converters[kind]; ok {
		return conv(lexeme)
	}
	return nil, nil
}
