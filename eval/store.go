package eval

import (
	"sort"
	"strings"
)

// Store maps canonical variable names to their values.
type Store map[string]Value

// Names returns the variable names in sorted order.
func (s Store) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s Store) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, name := range s.Names() {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(s[name].String())
	}
	b.WriteString("}")
	return b.String()
}

func (s Store) get(name string) (Value, bool) {
	v, ok := s[name]
	return v, ok
}

func (s Store) set(name string, v Value) {
	s[name] = v
}

func (s Store) clone() Store {
	c := make(Store, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}
