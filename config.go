// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package tlc

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config controls checking, reduction, and logging for a compilation unit.
type Config struct {
	// Strict turns unresolved identifiers into UndefinedName errors. Otherwise an unresolved
	// identifier keeps its current type.
	Strict bool `toml:"strict" yaml:"strict"`
	// LogLevel is a slog level name: debug, info, warn, or error.
	LogLevel string `toml:"log_level" yaml:"log_level"`
	// MaxReduceDepth bounds the nesting of constant-folding reduction.
	MaxReduceDepth int `toml:"max_reduce_depth" yaml:"max_reduce_depth"`

	// Names of the types assigned to literal values.
	IntegerType string `toml:"integer_type" yaml:"integer_type"`
	BooleanType string `toml:"boolean_type" yaml:"boolean_type"`
	FloatType   string `toml:"float_type" yaml:"float_type"`
	StringType  string `toml:"string_type" yaml:"string_type"`
}

// DefaultConfig returns the default configuration. New fills zero fields of its configuration
// from it.
func DefaultConfig() Config {
	return Config{
		LogLevel:       "info",
		MaxReduceDepth: 256,
		IntegerType:    "Integer",
		BooleanType:    "Boolean",
		FloatType:      "Float",
		StringType:     "String",
	}
}

// WithDefaults returns c with each empty field taken from DefaultConfig.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.MaxReduceDepth <= 0 {
		c.MaxReduceDepth = d.MaxReduceDepth
	}
	if c.IntegerType == "" {
		c.IntegerType = d.IntegerType
	}
	if c.BooleanType == "" {
		c.BooleanType = d.BooleanType
	}
	if c.FloatType == "" {
		c.FloatType = d.FloatType
	}
	if c.StringType == "" {
		c.StringType = d.StringType
	}
	return c
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) configuration file. Fields missing from
// the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	switch filepath.Ext(path) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "decode %s", path)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrapf(err, "read %s", path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "decode %s", path)
		}
	default:
		return cfg, errors.Errorf("unsupported config format: %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate checks that the level name parses and the limits and type names are set.
func (c Config) Validate() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return errors.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.MaxReduceDepth <= 0 {
		return errors.Errorf("max_reduce_depth must be positive, got %d", c.MaxReduceDepth)
	}
	for _, name := range []string{c.IntegerType, c.BooleanType, c.FloatType, c.StringType} {
		if name == "" {
			return errors.New("literal type names must not be empty")
		}
	}
	return nil
}

// Level returns the slog level named by LogLevel, or slog.LevelInfo if the name is unknown.
func (c Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
