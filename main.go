package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/takoeight0821/spi/config"
	"github.com/takoeight0821/spi/driver"
	"github.com/takoeight0821/spi/grammar"
	"github.com/takoeight0821/spi/semantic"
)

const usage = `usage: spi [-h] [-t] [-s] [-n] [-c config] [-d dialect] [-i input]

  -i input    run a program file instead of the interactive prompt
  -d dialect  calc, block or pascal
  -c config   config file (default: $XDG_CONFIG_HOME/spi/config.yaml)
  -t          print the syntax tree
  -s          check declarations and print the symbol table
  -n          print Lisp and RPN notations of expressions
  -h          show this help
`

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, optind, err := getopt.Getopts(args, "hi:d:c:tsn")
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprint(stderr, usage)
		return 2
	}

	var inputPath, dialectName, configPath string
	var showTree, showSymbols, showNotation bool
	for _, opt := range opts {
		switch opt.Option {
		case 'h':
			fmt.Fprint(stdout, usage)
			return 0
		case 'i':
			inputPath = opt.Value
		case 'd':
			dialectName = opt.Value
		case 'c':
			configPath = opt.Value
		case 't':
			showTree = true
		case 's':
			showSymbols = true
		case 'n':
			showNotation = true
		}
	}
	if inputPath == "" && optind < len(args) {
		inputPath = args[optind]
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if dialectName != "" {
		cfg.Dialect = dialectName
	}
	cfg.ShowTree = cfg.ShowTree || showTree
	cfg.Check = cfg.Check || showSymbols
	cfg.Notation = cfg.Notation || showNotation
	color.NoColor = color.NoColor || !cfg.Color

	dialect, err := grammar.Lookup(cfg.Dialect)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	s := &session{
		cfg:         cfg,
		dialect:     dialect,
		showSymbols: showSymbols,
		out:         stdout,
		errOut:      stderr,
	}

	if inputPath == "" {
		if err := s.RunPrompt(); err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	if err := s.RunFile(inputPath); err != nil {
		s.reportError(err)
		return 1
	}
	return 0
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadDefault()
}

type session struct {
	cfg         config.Config
	dialect     grammar.Dialect
	showSymbols bool
	out         io.Writer
	errOut      io.Writer
}

// newRunner builds a fresh pipeline so that no state survives between inputs.
func (s *session) newRunner() (*driver.PassRunner, *semantic.Checker) {
	r := driver.NewPassRunner(s.dialect)
	if !s.cfg.Check {
		return r, nil
	}
	var logger *log.Logger
	if s.showSymbols {
		logger = log.New(s.errOut, "", 0)
	}
	checker := semantic.NewChecker(logger)
	r.AddPass(checker)
	return r, checker
}

func (s *session) RunPrompt() error {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer func() {
		if err := os.MkdirAll(filepath.Dir(s.cfg.History), os.ModePerm); err != nil {
			fmt.Fprintln(s.errOut, err)
		}
		if f, err := os.Create(s.cfg.History); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				fmt.Fprintln(s.errOut, err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(s.cfg.History); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			fmt.Fprintln(s.errOut, err)
		}
	}

	prompt := s.cfg.PromptFor(s.dialect.Name)
	for {
		input, err := line.Prompt(prompt)
		if err != nil {
			return err
		}
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		if err := s.RunSource(input); err != nil {
			s.reportError(err)
		}
	}
}

func (s *session) RunFile(path string) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return s.RunSource(string(bytes))
}

func (s *session) RunSource(source string) error {
	r, checker := s.newRunner()
	result, err := r.RunSource(source)
	if err != nil {
		return err
	}
	p := printer{out: s.out}
	if s.cfg.ShowTree {
		p.tree(result.Tree)
	}
	if s.showSymbols && checker != nil {
		p.symbols(checker.Symbols())
	}
	if result.Value != nil {
		if s.cfg.Notation {
			p.notation(result.Tree)
		}
		p.value(result.Value)
		return nil
	}
	p.store(result.Store)
	return nil
}

func (s *session) reportError(err error) {
	label := color.New(color.FgRed, color.Bold).Sprint("Error:")
	if errs, ok := err.(interface{ Unwrap() []error }); ok {
		for _, err := range errs.Unwrap() {
			fmt.Fprintf(s.errOut, "%s %v\n", label, err)
		}
		return
	}
	fmt.Fprintf(s.errOut, "%s %v\n", label, err)
}
