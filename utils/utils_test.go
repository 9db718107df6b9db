package utils_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/spi/token"
	"github.com/takoeight0821/spi/utils"
)

var errBoom = errors.New("boom")

func TestPosError(t *testing.T) {
	t.Parallel()

	at := utils.PosError{Where: token.Token{Kind: token.IDENT, Lexeme: "x", Line: 3}, Err: errBoom}
	if diff := cmp.Diff("at 3: `x`, boom", at.Error()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if !errors.Is(at, errBoom) {
		t.Errorf("PosError does not unwrap to its cause")
	}

	end := utils.ErrorAt(token.Token{Kind: token.EOF, Line: 9}, "boom")
	if diff := cmp.Diff("at end: boom", end.Error()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestReadTestData(t *testing.T) {
	t.Parallel()

	data := utils.ReadTestData([]byte(`
- label: kept
  enable: true
  dialect: calc
  input: "1"
  expected:
    result: "1"
- label: dropped
  enable: false
  input: "2"
`))

	want := []utils.TestData{{
		Label:    "kept",
		Enable:   true,
		Dialect:  "calc",
		Input:    "1",
		Expected: map[string]string{"result": "1"},
	}}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
