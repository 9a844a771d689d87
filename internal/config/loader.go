// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML configuration file at path and returns a validated [Config].
// It is a convenience wrapper around [LoadFromReader].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r on top of [Default] and
// validates the result. An empty document yields the defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}
	if cfg.Output.Suffix == "" {
		errs = append(errs, errors.New("output.suffix must not be empty; the output would overwrite the input"))
	}
	if !cfg.Filter.ByteOrder.IsValid() {
		errs = append(errs, fmt.Errorf("filter.byte_order %q is invalid; valid values: little, big", cfg.Filter.ByteOrder))
	}
	if !cfg.Convolution.Method.IsValid() {
		errs = append(errs, fmt.Errorf("convolution.method %q is invalid; valid values: direct, fft, auto", cfg.Convolution.Method))
	}
	if !cfg.Convolution.Overflow.IsValid() {
		errs = append(errs, fmt.Errorf("convolution.overflow %q is invalid; valid values: wrap, saturate", cfg.Convolution.Overflow))
	}

	// a partial filter triple is almost certainly a typo
	set := 0
	for _, v := range []string{cfg.Filter.Dir, cfg.Filter.Left, cfg.Filter.Right} {
		if v != "" {
			set++
		}
	}
	if set != 0 && set != 3 {
		errs = append(errs, errors.New("filter.dir, filter.left and filter.right must be set together"))
	}

	return errors.Join(errs...)
}
