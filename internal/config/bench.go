package config

import (
	"fmt"

	"github.com/katalvlaran/gridseek/cipher"
)

// Output formats written by the benchmark harness.
const (
	FormatJSON = "json"
	FormatPNG  = "png"
	FormatHTML = "html"
)

// ValidFormats lists all supported report formats.
var ValidFormats = []string{FormatJSON, FormatPNG, FormatHTML}

// BenchConfig configures the comparative benchmark over square grids of
// side MinSize, MinSize+Step, ... up to MaxSize.
type BenchConfig struct {
	MinSize   int      `yaml:"min_size"`
	MaxSize   int      `yaml:"max_size"`
	Step      int      `yaml:"step"`
	Seed      int64    `yaml:"seed"`
	Shift     int      `yaml:"shift"`
	Repeats   int      `yaml:"repeats"` // timed sweeps per size and algorithm
	OutputDir string   `yaml:"output_dir"`
	Formats   []string `yaml:"formats"`
}

// Sizes expands the configured range.
func (c BenchConfig) Sizes() []int {
	var out []int
	for n := c.MinSize; n <= c.MaxSize; n += c.Step {
		out = append(out, n)
	}

	return out
}

// Wants reports whether format is requested.
func (c BenchConfig) Wants(format string) bool {
	for _, f := range c.Formats {
		if f == format {
			return true
		}
	}

	return false
}

// Validate checks ranges and format names.
func (c BenchConfig) Validate() error {
	if c.MinSize <= 0 || c.MaxSize < c.MinSize {
		return fmt.Errorf("invalid bench sizes: min=%d max=%d", c.MinSize, c.MaxSize)
	}
	if c.Step <= 0 {
		return fmt.Errorf("invalid bench step: %d", c.Step)
	}
	if c.Repeats <= 0 {
		return fmt.Errorf("invalid bench repeats: %d", c.Repeats)
	}
	if _, err := cipher.NewCodec(c.Shift); err != nil {
		return fmt.Errorf("invalid bench shift: %w", err)
	}
	for _, f := range c.Formats {
		valid := false
		for _, v := range ValidFormats {
			if f == v {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("invalid bench format: %s (valid: %v)", f, ValidFormats)
		}
	}

	return nil
}
