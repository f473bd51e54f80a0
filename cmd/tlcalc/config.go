// Copyright 2026 Dolthub, Inc.
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

package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/src-d/go-errors.v1"
	"gopkg.in/yaml.v3"

	"github.com/dolthub/timeline/timeline"
)

const (
	defaultLogLevel   = logrus.InfoLevel
	defaultJoinStyle  = timeline.CrossJoin
	defaultCombinator = "coalesce-left"
)

var ErrInvalidConfig = errors.NewKind("invalid config: %s")

// YAMLConfig holds the settings of a tlcalc config file. Unset fields take
// their defaults through the accessor methods, and flags override them.
type YAMLConfig struct {
	LogLevelStr   *string `yaml:"log_level,omitempty"`
	JoinStyleStr  *string `yaml:"join_style,omitempty"`
	CombinatorStr *string `yaml:"combinator,omitempty"`
	ColorOutput   *bool   `yaml:"color,omitempty"`
	IndentOutput  *bool   `yaml:"indent,omitempty"`
}

// ParseYAMLConfig reads a config and checks its values. Unknown keys are an
// error.
func ParseYAMLConfig(r io.Reader) (*YAMLConfig, error) {
	cfg := &YAMLConfig{}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && err != io.EOF {
		return nil, ErrInvalidConfig.Wrap(err, "cannot parse yaml")
	}

	if cfg.LogLevelStr != nil {
		if _, err := logrus.ParseLevel(*cfg.LogLevelStr); err != nil {
			return nil, ErrInvalidConfig.Wrap(err, "log_level")
		}
	}
	if cfg.JoinStyleStr != nil {
		if _, err := timeline.ParseJoinStyle(*cfg.JoinStyleStr); err != nil {
			return nil, ErrInvalidConfig.Wrap(err, "join_style")
		}
	}
	if cfg.CombinatorStr != nil {
		if _, err := lookupCombinator(*cfg.CombinatorStr); err != nil {
			return nil, ErrInvalidConfig.Wrap(err, "combinator")
		}
	}
	return cfg, nil
}

// loadConfig reads the config at |path|, or returns the defaults when no
// path is given.
func loadConfig(path string) (*YAMLConfig, error) {
	if path == "" {
		return &YAMLConfig{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseYAMLConfig(f)
}

func (cfg *YAMLConfig) LogLevel() logrus.Level {
	if cfg.LogLevelStr == nil {
		return defaultLogLevel
	}
	lvl, err := logrus.ParseLevel(*cfg.LogLevelStr)
	if err != nil {
		return defaultLogLevel
	}
	return lvl
}

func (cfg *YAMLConfig) JoinStyle() timeline.JoinStyle {
	if cfg.JoinStyleStr == nil {
		return defaultJoinStyle
	}
	js, err := timeline.ParseJoinStyle(*cfg.JoinStyleStr)
	if err != nil {
		return defaultJoinStyle
	}
	return js
}

func (cfg *YAMLConfig) Combinator() string {
	if cfg.CombinatorStr == nil {
		return defaultCombinator
	}
	return *cfg.CombinatorStr
}

func (cfg *YAMLConfig) Color() bool {
	return cfg.ColorOutput == nil || *cfg.ColorOutput
}

func (cfg *YAMLConfig) Indent() bool {
	return cfg.IndentOutput != nil && *cfg.IndentOutput
}
