// Package config loads user settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// RelPath is the location of the config file under the XDG config directories.
const RelPath = "spi/config.yaml"

type Config struct {
	Dialect  string `yaml:"dialect"`
	Prompt   string `yaml:"prompt"`
	History  string `yaml:"history"`
	Color    bool   `yaml:"color"`
	Check    bool   `yaml:"check"`
	ShowTree bool   `yaml:"show_tree"`
	Notation bool   `yaml:"notation"`
}

func Default() Config {
	return Config{
		Dialect: "pascal",
		History: filepath.Join(xdg.DataHome, "spi", "history"),
		Color:   true,
	}
}

// Parse decodes data over the defaults. Unknown keys are an error.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Load reads the config at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// LoadDefault reads the config found in the XDG config directories,
// or returns the defaults when there is none.
func LoadDefault() (Config, error) {
	path, err := xdg.SearchConfigFile(RelPath)
	if err != nil {
		return Default(), nil
	}
	return Load(path)
}

// PromptFor returns the configured prompt or the dialect's default one.
func (c Config) PromptFor(dialect string) string {
	if c.Prompt != "" {
		return c.Prompt
	}
	return dialect + "> "
}
