package utils

import (
	"errors"
	"fmt"

	"github.com/takoeight0821/spi/token"
	"gopkg.in/yaml.v3"
)

// PosError attaches the token an error was raised at.
type PosError struct {
	Where token.Token
	Err   error
}

func (e PosError) Error() string {
	if e.Where.Kind == token.EOF {
		return fmt.Sprintf("at end: %s", e.Err.Error())
	}
	return fmt.Sprintf("at %d: `%s`, %s", e.Where.Line, e.Where.Lexeme, e.Err.Error())
}

func (e PosError) Unwrap() error {
	return e.Err
}

func ErrorAt(where token.Token, msg string) error {
	return PosError{Where: where, Err: errors.New(msg)}
}

// TestData is one entry of testdata/testcase.yaml.
// Expected is keyed by the stage that checks it: "parser", "result", "store", "error".
type TestData struct {
	Label    string
	Enable   bool
	Dialect  string
	Input    string
	Expected map[string]string
}

func ReadTestData(s []byte) []TestData {
	var data []TestData
	if err := yaml.Unmarshal(s, &data); err != nil {
		panic(err)
	}

	// Remove disabled test cases.
	i := 0
	for _, d := range data {
		if d.Enable {
			data[i] = d
			i++
		}
	}
	data = data[:i]

	return data
}
