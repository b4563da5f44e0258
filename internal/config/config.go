// ============================================================================
// ppi - PP language front end
// ============================================================================
//
// Package:     config
// Description: Loads the ppi configuration from TOML or YAML files and
//              converts it into logger and parser settings
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/ppinterpreter/foundation/core/error"
	mdwlog "github.com/msto63/ppinterpreter/foundation/core/log"
	"github.com/msto63/ppinterpreter/internal/lang/parser"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "PPI_CONFIG"

// Format is the configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// Config holds the complete ppi configuration
type Config struct {
	Log    LogConfig    `toml:"log" yaml:"log"`
	Parser ParserConfig `toml:"parser" yaml:"parser"`

	// file the configuration was read from, empty for defaults
	source string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level   string `toml:"level" yaml:"level"`
	Format  string `toml:"format" yaml:"format"`
	NoColor bool   `toml:"no_color" yaml:"no_color"`
}

// ParserConfig holds parser settings
type ParserConfig struct {
	Associativity  string `toml:"associativity" yaml:"associativity"`
	LineMode       string `toml:"line_mode" yaml:"line_mode"`
	Duplicates     string `toml:"duplicates" yaml:"duplicates"`
	MaxInputLength int64  `toml:"max_input_length" yaml:"max_input_length"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Source returns the file the configuration was loaded from
func (c *Config) Source() string {
	return c.source
}

// Load loads and validates the configuration at path. The format follows
// the file extension: .yaml and .yml are YAML, everything else TOML.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, mdwerror.Wrap(err, "config file not found: "+path).
			WithCode(mdwerror.CodeConfig).
			WithOperation("config.load").
			WithDetail("path", path)
	}

	var cfg Config
	var err error
	switch detectFormat(path) {
	case FormatYAML:
		err = decodeYAMLFile(path, &cfg)
	default:
		_, err = toml.DecodeFile(path, &cfg)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config "+path).
			WithCode(mdwerror.CodeConfig).
			WithOperation("config.load").
			WithDetail("path", path)
	}

	cfg.source = path
	return finish(&cfg)
}

// LoadFromString parses content in the given format. FormatAuto means TOML.
func LoadFromString(content string, format Format) (*Config, error) {
	var cfg Config
	var err error
	switch format {
	case FormatYAML:
		err = decodeYAML([]byte(content), &cfg)
	default:
		_, err = toml.Decode(content, &cfg)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfig).
			WithOperation("config.load")
	}
	return finish(&cfg)
}

// LoadFromEnv loads the file named by PPI_CONFIG, or the first file found
// in the default locations. Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// DefaultPaths lists the locations searched by LoadFromEnv, in order
func DefaultPaths() []string {
	paths := []string{
		"./ppi.toml",
		"./ppi.yaml",
		"./ppi.yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "ppi", "config.toml"),
			filepath.Join(home, ".config", "ppi", "config.yaml"),
		)
	}
	return paths
}

func finish(cfg *Config) (*Config, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// Log
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	// Parser
	defaults := parser.DefaultOptions()
	if c.Parser.Associativity == "" {
		c.Parser.Associativity = string(defaults.Associativity)
	}
	if c.Parser.LineMode == "" {
		c.Parser.LineMode = string(defaults.LineMode)
	}
	if c.Parser.Duplicates == "" {
		c.Parser.Duplicates = string(defaults.Duplicates)
	}
}

// Validate rejects unknown level, format and parser values
func (c *Config) Validate() error {
	var problems []string

	if _, err := mdwlog.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, "log.level: "+err.Error())
	}
	if _, err := mdwlog.ParseFormat(c.Log.Format); err != nil {
		problems = append(problems, "log.format: "+err.Error())
	}
	if _, err := parser.ParseAssociativity(c.Parser.Associativity); err != nil {
		problems = append(problems, "parser.associativity: "+err.Error())
	}
	if _, err := parser.ParseLineMode(c.Parser.LineMode); err != nil {
		problems = append(problems, "parser.line_mode: "+err.Error())
	}
	if _, err := parser.ParseDuplicatePolicy(c.Parser.Duplicates); err != nil {
		problems = append(problems, "parser.duplicates: "+err.Error())
	}
	if c.Parser.MaxInputLength < 0 {
		problems = append(problems, "parser.max_input_length: must not be negative")
	}

	if len(problems) == 0 {
		return nil
	}

	err := mdwerror.New("invalid configuration: " + strings.Join(problems, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.validate")
	if c.source != "" {
		err.WithDetail("path", c.source)
	}
	return err
}

// ParserOptions converts the parser section. The configuration must have
// passed Validate.
func (c *Config) ParserOptions(logger *mdwlog.Logger) parser.Options {
	assoc, _ := parser.ParseAssociativity(c.Parser.Associativity)
	mode, _ := parser.ParseLineMode(c.Parser.LineMode)
	dup, _ := parser.ParseDuplicatePolicy(c.Parser.Duplicates)

	return parser.Options{
		Associativity:  assoc,
		LineMode:       mode,
		Duplicates:     dup,
		MaxInputLength: c.Parser.MaxInputLength,
		Logger:         logger,
	}
}

// detectFormat determines the configuration format from file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func decodeYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return decodeYAML(data, cfg)
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
