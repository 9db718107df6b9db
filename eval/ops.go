package eval

import (
	"errors"
	"fmt"
	"math"

	"github.com/takoeight0821/spi/token"
)

var ErrDivisionByZero = errors.New("division by zero")

type UnknownOperatorError struct {
	Op token.Kind
}

func (e UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator %v", e.Op)
}

type binaryFunc func(lhs, rhs Value) (Value, error)

type unaryFunc func(v Value) Value

// binaryOps maps operator kinds to their semantics.
var binaryOps = map[token.Kind]binaryFunc{
	token.PLUS: arith(
		func(a, b int) int { return a + b },
		func(a, b float64) float64 { return a + b }),
	token.MINUS: arith(
		func(a, b int) int { return a - b },
		func(a, b float64) float64 { return a - b }),
	token.STAR: arith(
		func(a, b int) int { return a * b },
		func(a, b float64) float64 { return a * b }),
	token.DIV:   intDiv,
	token.SLASH: realDiv,
}

var unaryOps = map[token.Kind]unaryFunc{
	token.PLUS: func(v Value) Value { return v },
	token.MINUS: func(v Value) Value {
		if i, ok := v.(Integer); ok {
			return -i
		}
		return Real(-asReal(v))
	},
}

// arith keeps integers integral and promotes to real when either side is real.
func arith(ints func(a, b int) int, reals func(a, b float64) float64) binaryFunc {
	return func(lhs, rhs Value) (Value, error) {
		a, aok := lhs.(Integer)
		b, bok := rhs.(Integer)
		if aok && bok {
			return Integer(ints(int(a), int(b))), nil
		}
		return Real(reals(asReal(lhs), asReal(rhs))), nil
	}
}

// intDiv rounds toward negative infinity.
func intDiv(lhs, rhs Value) (Value, error) {
	a, aok := lhs.(Integer)
	b, bok := rhs.(Integer)
	if aok && bok {
		if b == 0 {
			return nil, ErrDivisionByZero
		}
		return Integer(floorDiv(int(a), int(b))), nil
	}
	if asReal(rhs) == 0 {
		return nil, ErrDivisionByZero
	}
	return Real(math.Floor(asReal(lhs) / asReal(rhs))), nil
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func realDiv(lhs, rhs Value) (Value, error) {
	if asReal(rhs) == 0 {
		return nil, ErrDivisionByZero
	}
	return Real(asReal(lhs) / asReal(rhs)), nil
}
