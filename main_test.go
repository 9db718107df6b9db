package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// writeFiles creates a config without colors and the given program in a temporary directory.
func writeFiles(t *testing.T, program string) (configPath, programPath string) {
	t.Helper()

	dir := t.TempDir()
	configPath = filepath.Join(dir, "config.yaml")
	config := "color: false\nhistory: " + filepath.Join(dir, "history") + "\n"
	if err := os.WriteFile(configPath, []byte(config), 0o600); err != nil {
		t.Fatal(err)
	}
	programPath = filepath.Join(dir, "main.pas")
	if err := os.WriteFile(programPath, []byte(program), 0o600); err != nil {
		t.Fatal(err)
	}
	return configPath, programPath
}

func TestRunFile(t *testing.T) {
	testcases := []struct {
		label   string
		flags   []string
		program string
		stdout  string
	}{
		{
			label:   "program",
			flags:   []string{"-d", "pascal"},
			program: "PROGRAM p; VAR b, a : INTEGER; BEGIN b := 7 DIV 2; a := b * 2 END.\n",
			stdout:  "A = 6\nB = 3\n",
		},
		{
			label:   "tree and symbols",
			flags:   []string{"-d", "pascal", "-t", "-s"},
			program: "PROGRAM p; VAR a : INTEGER; BEGIN a := 7 DIV 2 END.",
			stdout: "tree: (program (var P) (block (decl (var A) (type INTEGER)) (compound (assign (var A) (binary (num 7) DIV (num 2))))))\n" +
				"symbols:\n  <A:INTEGER>\n  INTEGER\n  REAL\nA = 3\n",
		},
		{
			label:   "expression with notations",
			flags:   []string{"-d", "calc", "-n"},
			program: "1 + 2 * 3\n",
			stdout:  "lisp: (+ 1 (* 2 3))\nrpn: 1 2 3 * +\n7\n",
		},
		{
			label:   "real result",
			flags:   []string{"-d", "PASCAL"},
			program: "{ a comment } 10 / 4",
			stdout:  "2.5\n",
		},
	}

	for _, tc := range testcases {
		configPath, programPath := writeFiles(t, tc.program)
		args := append([]string{"spi", "-c", configPath}, tc.flags...)
		args = append(args, "-i", programPath)

		var stdout, stderr bytes.Buffer
		if code := run(args, &stdout, &stderr); code != 0 {
			t.Errorf("%s: exit code %d, stderr %q", tc.label, code, stderr.String())
			continue
		}
		if diff := cmp.Diff(tc.stdout, stdout.String()); diff != "" {
			t.Errorf("%s: stdout mismatch (-want +got):\n%s", tc.label, diff)
		}
	}
}

func TestRunFilePositional(t *testing.T) {
	configPath, programPath := writeFiles(t, "BEGIN x := 2 END.")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"spi", "-c", configPath, "-d", "block", programPath}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, stderr.String())
	}
	if diff := cmp.Diff("X = 2\n", stdout.String()); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestRunFileError(t *testing.T) {
	configPath, programPath := writeFiles(t, "BEGIN x := y END.")

	var stdout, stderr bytes.Buffer
	code := run([]string{"spi", "-c", configPath, "-d", "block", "-i", programPath}, &stdout, &stderr)
	if code != 1 {
		t.Errorf("exit code %d, want 1", code)
	}
	want := "Error: eval: at 1: `y`, Y used before being assigned\n"
	if diff := cmp.Diff(want, stderr.String()); diff != "" {
		t.Errorf("stderr mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckerTrace(t *testing.T) {
	configPath, programPath := writeFiles(t, "PROGRAM p; VAR a : INTEGER; BEGIN a := 1 END.")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"spi", "-c", configPath, "-s", "-i", programPath}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "Define: <A:INTEGER>") {
		t.Errorf("stderr %q lacks the symbol trace", stderr.String())
	}
}

func TestUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"spi", "-h"}, &stdout, &stderr); code != 0 {
		t.Errorf("-h exit code %d, want 0", code)
	}
	if !strings.HasPrefix(stdout.String(), "usage: spi") {
		t.Errorf("-h printed %q", stdout.String())
	}

	stdout.Reset()
	stderr.Reset()
	if code := run([]string{"spi", "-x"}, &stdout, &stderr); code != 2 {
		t.Errorf("unknown flag exit code %d, want 2", code)
	}
}

func TestUnknownDialect(t *testing.T) {
	configPath, programPath := writeFiles(t, "1")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"spi", "-c", configPath, "-d", "cobol", "-i", programPath}, &stdout, &stderr); code != 1 {
		t.Errorf("exit code %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), `unknown dialect "cobol"`) {
		t.Errorf("stderr %q does not name the dialect", stderr.String())
	}
}
