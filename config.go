// Copyright 2020-2021 Dolthub, Inc.
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

package vtl

import (
	"os"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v2"
)

// OverflowPolicy selects how Integer arithmetic handles 64-bit overflow.
// The source specification leaves this unspecified; this engine documents
// and defaults to Saturate.
type OverflowPolicy string

const (
	// OverflowSaturate clamps to math.MaxInt64/math.MinInt64 on overflow.
	OverflowSaturate OverflowPolicy = "saturate"
	// OverflowWrap lets overflow wrap around using Go's native int64
	// semantics.
	OverflowWrap OverflowPolicy = "wrap"
	// OverflowFail raises ErrInvalidArgument on overflow instead of
	// producing a value.
	OverflowFail OverflowPolicy = "fail"
)

// Config holds the Engine's tunable, ambient behavior: the pieces of the
// evaluator's contract the specification leaves to the implementation.
type Config struct {
	// Overflow selects Integer overflow handling for arithmetic operators.
	Overflow OverflowPolicy `yaml:"overflow"`
	// LogLevel is parsed with logrus.ParseLevel; an empty string keeps
	// whatever the standard logger is already configured with.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the Engine's default configuration: saturating
// Integer overflow and the standard logger's current level.
func DefaultConfig() *Config {
	return &Config{Overflow: OverflowSaturate}
}

// LoadConfig reads a YAML configuration file, per the ambient
// configuration format this engine shares with the rest of the corpus.
// Missing fields fall back to DefaultConfig's values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, err
	}
	if cfg.Overflow == "" {
		cfg.Overflow = OverflowSaturate
	}
	return cfg, nil
}

// configureLogger applies cfg.LogLevel to the standard logrus logger and
// publishes cfg.Overflow for the arithmetic operators in package
// expression to read.
func (cfg *Config) configureLogger() {
	globalOverflowPolicy.Store(cfg.Overflow)

	if cfg.LogLevel == "" {
		return
	}
	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("vtl: invalid log_level %q, keeping current level", cfg.LogLevel)
		return
	}
	logrus.SetLevel(lvl)
}

var globalOverflowPolicy atomic.Value

func init() {
	globalOverflowPolicy.Store(OverflowSaturate)
}

// OverflowPolicyInEffect returns the Integer overflow policy the most
// recently constructed Engine configured. Arithmetic operators consult this
// rather than threading a Config through every node.
func OverflowPolicyInEffect() OverflowPolicy {
	return globalOverflowPolicy.Load().(OverflowPolicy)
}
