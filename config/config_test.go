package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/takoeight0821/spi/config"
)

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) returned error: %v", err)
	}
	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Errorf("Parse(nil) mismatch (-want +got):\n%s", diff)
	}
}

func TestParseOverrides(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte("dialect: calc\nprompt: \"? \"\ncolor: false\ncheck: true\n"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	want := config.Default()
	want.Dialect = "calc"
	want.Prompt = "? "
	want.Color = false
	want.Check = true
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.PromptFor("calc"); got != "? " {
		t.Errorf("PromptFor = %q, want %q", got, "? ")
	}
}

func TestParseUnknownKey(t *testing.T) {
	t.Parallel()

	if _, err := config.Parse([]byte("dialekt: calc\n")); err == nil {
		t.Errorf("Parse with an unknown key returned no error")
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("show_tree: true\nnotation: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.ShowTree || !cfg.Notation || cfg.Dialect != "pascal" {
		t.Errorf("Load = %+v", cfg)
	}
	if got := cfg.PromptFor("pascal"); got != "pascal> " {
		t.Errorf("PromptFor = %q, want %q", got, "pascal> ")
	}

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Load of a missing file returned no error")
	}
}
