package eval

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is an Integer or a Real.
type Value interface {
	fmt.Stringer
	number()
}

type Integer int

func (i Integer) String() string {
	return strconv.Itoa(int(i))
}

func (Integer) number() {}

var _ Value = Integer(0)

type Real float64

// String always shows a fractional part so that reals never print like integers.
func (r Real) String() string {
	s := strconv.FormatFloat(float64(r), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}

func (Real) number() {}

var _ Value = Real(0)

func asReal(v Value) float64 {
	switch v := v.(type) {
	case Integer:
		return float64(v)
	case Real:
		return float64(v)
	}
	panic(fmt.Sprintf("asReal: unexpected value %#v", v))
}

// FromLiteral converts a token literal (int or float64) to a Value.
func FromLiteral(literal any) (Value, bool) {
	switch l := literal.(type) {
	case int:
		return Integer(l), true
	case float64:
		return Real(l), true
	}
	return nil, false
}
