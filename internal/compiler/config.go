package compiler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Iced-Tea/hevia-compiler/internal/context_v2"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up next to the entry file when no config is given
const ConfigFileName = "hevia.yaml"

// Config models the hevia.yaml project file
type Config struct {
	Path string `yaml:"-"`

	Debug       bool   `yaml:"debug"`
	ControlFlow string `yaml:"controlFlow"`
	Color       *bool  `yaml:"color"`
}

// LoadConfig parses a project file from disk
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cfg Config
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", abs, err)
	}
	cfg.Path = abs
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// findConfig returns the project file next to entry, or nil when there is none
func findConfig(entry string) (*Config, error) {
	if entry == "" {
		return nil, nil
	}
	path := filepath.Join(filepath.Dir(entry), ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return LoadConfig(path)
}

// Validate rejects unknown control flow modes
func (c *Config) Validate() error {
	switch context_v2.ControlFlowMode(c.ControlFlow) {
	case "", context_v2.ControlFlowAnalyze, context_v2.ControlFlowInput:
		return nil
	}
	return fmt.Errorf("config: %s: controlFlow must be %q or %q, got %q",
		c.Path, context_v2.ControlFlowAnalyze, context_v2.ControlFlowInput, c.ControlFlow)
}

// apply fills options the command line left unset. Flags always win.
func (c *Config) apply(opts *Options) {
	if c == nil {
		return
	}
	opts.Debug = opts.Debug || c.Debug
	if opts.ControlFlow == "" {
		opts.ControlFlow = context_v2.ControlFlowMode(c.ControlFlow)
	}
	if c.Color != nil && !*c.Color {
		opts.LogFormat = PLAIN
	}
}
