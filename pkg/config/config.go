// Package config carries the codec configuration. The unknown-key mode has
// no default: consumers state their strictness explicitly.
package config

import (
	"errors"

	"gopkg.in/yaml.v3"
)

// UnknownKeysMode controls how the codec treats top-level JSON keys it does
// not recognize.
type UnknownKeysMode string

const (
	UnknownKeysReject UnknownKeysMode = "reject"
	UnknownKeysIgnore UnknownKeysMode = "ignore"
)

var ErrUnknownKeysMode = errors.New("unknownKeys must be \"reject\" or \"ignore\"")

type Config struct {
	UnknownKeys UnknownKeysMode `yaml:"unknownKeys"`
}

// Load parses a YAML codec configuration and checks it.
func Load(data []byte) (*Config, error) {
	cfg := &Config{}

	err := yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.UnknownKeys {
	case UnknownKeysReject, UnknownKeysIgnore:
		return nil
	default:
		return ErrUnknownKeysMode
	}
}
