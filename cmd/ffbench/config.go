package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// Config is ffbench's parameter set, decoded from JSON and validated exactly
// the way prf/params.go's Params does for the round-function parameters:
// decode, then Validate before anything touches the result.
type Config struct {
	ModulusHex string `json:"modulus_hex"` // 128-bit prime p, hex; "" uses the built-in default
	Sizes      []int  `json:"sizes"`       // vector lengths to benchmark
	Seed       string `json:"seed"`        // seed string expanded via SHAKE256
	OutputHTML string `json:"output_html"`
}

// Validate reports configuration errors before a run does any real work.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config: nil config")
	}
	if len(c.Sizes) == 0 {
		return fmt.Errorf("config: sizes must be non-empty")
	}
	for _, n := range c.Sizes {
		if n <= 0 {
			return fmt.Errorf("config: size %d must be > 0", n)
		}
	}
	if c.Seed == "" {
		return fmt.Errorf("config: seed must be set")
	}
	if c.OutputHTML == "" {
		return fmt.Errorf("config: output_html must be set")
	}
	return nil
}

// LoadConfig decodes and validates a Config from r.
func LoadConfig(r io.Reader) (*Config, error) {
	var c Config
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("ffbench: decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
