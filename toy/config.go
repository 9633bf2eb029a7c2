/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package toy

import (
	"encoding/hex"
	"math/rand/v2"
	"os"

	"github.com/fentec-project/gotoy/sample"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config describes a Normal target, e.g. as a benchmark fixture:
//
//	mean: [1, 2, 3]
//	covariance: [2, 2, 2]          # diagonal
//	# covariance: [[2, 0], [0, 2]] # full
//	seed: 42                       # or key: <64 hex characters>
type Config struct {
	Mean       []float64        `yaml:"mean"`
	Covariance CovarianceConfig `yaml:"covariance"`
	Seed       *uint64          `yaml:"seed"`
	Key        string           `yaml:"key"`
}

// CovarianceConfig decodes a YAML covariance: a sequence of numbers
// becomes a Diagonal and a sequence of sequences becomes a Full.
type CovarianceConfig struct {
	Covariance
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *CovarianceConfig) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) == 0 {
		return errors.Wrapf(ErrInvalidArgument,
			"covariance must be a non-empty sequence (line %d)", value.Line)
	}

	switch value.Content[0].Kind {
	case yaml.ScalarNode:
		var diag Diagonal
		if err := value.Decode(&diag); err != nil {
			return errors.Wrap(err, "cannot decode diagonal covariance")
		}
		c.Covariance = diag
	case yaml.SequenceNode:
		var full Full
		if err := value.Decode(&full); err != nil {
			return errors.Wrap(err, "cannot decode covariance matrix")
		}
		c.Covariance = full
	default:
		return errors.Wrapf(ErrInvalidArgument,
			"covariance must hold numbers or rows of numbers (line %d)", value.Line)
	}

	return nil
}

// LoadConfig reads a Config from the YAML file at path.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read config")
	}

	return ParseConfig(b)
}

// ParseConfig decodes a Config from YAML.
func ParseConfig(b []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, errors.Wrap(err, "cannot parse config")
	}

	return cfg, nil
}

// Normal builds the Normal described by c.
func (c *Config) Normal() (*Normal, error) {
	return NewNormal(c.Mean, c.Covariance.Covariance)
}

// Source returns the random source described by c: a keyed salsa20
// source if a key is set, otherwise a PCG source seeded with the seed
// (zero if unset). Setting both is an error.
func (c *Config) Source() (rand.Source, error) {
	if c.Key == "" {
		var seed uint64
		if c.Seed != nil {
			seed = *c.Seed
		}
		return rand.NewPCG(seed, seed), nil
	}
	if c.Seed != nil {
		return nil, errors.Wrap(ErrInvalidArgument, "seed and key are mutually exclusive")
	}

	b, err := hex.DecodeString(c.Key)
	if err != nil || len(b) != 32 {
		return nil, errors.Wrap(ErrInvalidArgument, "key must be 64 hexadecimal characters")
	}
	var key [32]byte
	copy(key[:], b)

	return sample.NewKeyedSource(&key), nil
}
