// SPDX-License-Identifier: EPL-2.0

// Package config provides the YAML configuration schema and loader for the
// sensfilt command.
package config

import (
	"github.com/ik5/sensfilt"
	"github.com/ik5/sensfilt/convolve"
	"github.com/ik5/sensfilt/impulse"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Config is the root configuration structure.
// It is typically loaded from a YAML file using [Load] or [LoadFromReader].
type Config struct {
	LogLevel    LogLevel          `yaml:"log_level"`
	Output      OutputConfig      `yaml:"output"`
	Filter      FilterConfig      `yaml:"filter"`
	Convolution ConvolutionConfig `yaml:"convolution"`
}

// OutputConfig controls how the filtered file is named.
type OutputConfig struct {
	// Suffix is appended to the input's base name.
	Suffix string `yaml:"suffix"`

	// Label is appended after Suffix.
	Label string `yaml:"label"`
}

// FilterConfig locates the impulse responses.
type FilterConfig struct {
	Dir       string            `yaml:"dir"`
	Left      string            `yaml:"left"`
	Right     string            `yaml:"right"`
	ByteOrder impulse.ByteOrder `yaml:"byte_order"`
}

// ConvolutionConfig tunes the convolution engine.
type ConvolutionConfig struct {
	Method   convolve.Method   `yaml:"method"`
	Overflow convolve.Overflow `yaml:"overflow"`
	Parallel bool              `yaml:"parallel"`
}

// Default returns the configuration used when no file is given. Fields a
// YAML file leaves out keep these values.
func Default() *Config {
	return &Config{
		LogLevel: LogInfo,
		Output: OutputConfig{
			Suffix: sensfilt.DefaultSuffix,
		},
		Filter: FilterConfig{
			ByteOrder: impulse.LittleEndian,
		},
		Convolution: ConvolutionConfig{
			Method:   convolve.MethodDirect,
			Overflow: convolve.OverflowWrap,
			Parallel: true,
		},
	}
}
