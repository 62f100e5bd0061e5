// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultFile is looked up in the working directory when no path is given
const DefaultFile = ".elvis.yaml"

// 📚 Config holds the settings that may come from a config file
type Config struct {
	MaxEntries              int
	NoColor                 bool
	SummaryOnly             bool
	AssumeYes               bool
	Revalidate              bool
	LargeOperationThreshold int
	Protected               []string

	location string
}

// 📄 File is the on-disk representation. Every field is optional; unset
// fields keep their default.
type File struct {
	MaxEntries              *int     `json:"max_entries,omitempty" yaml:"max_entries,omitempty" hcl:"max_entries,optional"`
	NoColor                 *bool    `json:"no_color,omitempty" yaml:"no_color,omitempty" hcl:"no_color,optional"`
	SummaryOnly             *bool    `json:"summary_only,omitempty" yaml:"summary_only,omitempty" hcl:"summary_only,optional"`
	AssumeYes               *bool    `json:"assume_yes,omitempty" yaml:"assume_yes,omitempty" hcl:"assume_yes,optional"`
	Revalidate              *bool    `json:"revalidate,omitempty" yaml:"revalidate,omitempty" hcl:"revalidate,optional"`
	LargeOperationThreshold *int     `json:"large_operation_threshold,omitempty" yaml:"large_operation_threshold,omitempty" hcl:"large_operation_threshold,optional"`
	Protected               []string `json:"protected,omitempty" yaml:"protected,omitempty" hcl:"protected,optional"`
}

// 🏭 Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		MaxEntries:              50,
		Revalidate:              true,
		LargeOperationThreshold: 1000,
		Protected:               []string{"**/.git", "**/.git/**"},
	}
}

// Location returns the file the config was loaded from, if any
func (cfg *Config) Location() string {
	return cfg.location
}

// 🔌 Parser decodes one config format
type Parser interface {
	// 📝 Parse decodes data into a File
	Parse(ctx context.Context, data []byte) (*File, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

func hasExt(filename string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename)))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// 🎯 Load reads the config file at path. An empty path looks for DefaultFile
// in dir and falls back to Default when it does not exist.
func Load(ctx context.Context, dir, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)

	if path == "" {
		path = filepath.Join(dir, DefaultFile)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			logger.Debug().Str("path", path).Msg("no config file, using defaults")
			return Default(), nil
		}
	}

	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	file, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	cfg := Default()
	cfg.Merge(file)
	cfg.location = path

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Merge overrides cfg with every field set in f
func (cfg *Config) Merge(f *File) {
	if f == nil {
		return
	}
	if f.MaxEntries != nil {
		cfg.MaxEntries = *f.MaxEntries
	}
	if f.NoColor != nil {
		cfg.NoColor = *f.NoColor
	}
	if f.SummaryOnly != nil {
		cfg.SummaryOnly = *f.SummaryOnly
	}
	if f.AssumeYes != nil {
		cfg.AssumeYes = *f.AssumeYes
	}
	if f.Revalidate != nil {
		cfg.Revalidate = *f.Revalidate
	}
	if f.LargeOperationThreshold != nil {
		cfg.LargeOperationThreshold = *f.LargeOperationThreshold
	}
	if f.Protected != nil {
		cfg.Protected = f.Protected
	}
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.MaxEntries < 1 {
		return errors.Errorf("max_entries must be at least 1, got %d", cfg.MaxEntries)
	}
	if cfg.LargeOperationThreshold < 0 {
		return errors.Errorf("large_operation_threshold must not be negative, got %d", cfg.LargeOperationThreshold)
	}
	for _, pattern := range cfg.Protected {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid protected pattern %q", pattern)
		}
	}
	return nil
}
