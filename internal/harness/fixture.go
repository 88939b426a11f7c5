package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridseek/cipher"
	"github.com/katalvlaran/gridseek/locator"
)

// Fixture is the encoded input of a Device: dimensions, shift and the two
// flat, row-major lists of encoded strings.
type Fixture struct {
	Height int      `yaml:"height"`
	Width  int      `yaml:"width"`
	Shift  int      `yaml:"shift"`
	Labels []string `yaml:"labels"`
	Values []string `yaml:"values"`
}

// NewFixture encodes rows with shift, naming cell i (row-major) "l<i>".
func NewFixture(rows [][]float64, shift int) (*Fixture, error) {
	codec, err := cipher.NewCodec(shift)
	if err != nil {
		return nil, err
	}
	f := &Fixture{Height: len(rows), Shift: shift}
	if len(rows) > 0 {
		f.Width = len(rows[0])
	}
	i := 0
	for _, row := range rows {
		if len(row) != f.Width {
			return nil, fmt.Errorf("fixture: row length %d, want %d", len(row), f.Width)
		}
		for _, v := range row {
			f.Labels = append(f.Labels, codec.Encode("l"+strconv.Itoa(i)))
			f.Values = append(f.Values, codec.Encode(strconv.FormatFloat(v, 'f', -1, 64)))
			i++
		}
	}

	return f, nil
}

// LoadFixture reads a YAML fixture.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}

	return &f, nil
}

// Save writes f as YAML.
func (f *Fixture) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create fixture directory: %w", err)
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write fixture: %w", err)
	}

	return nil
}

// Device creates a Device from f and runs both builds.
func (f *Fixture) Device(opts ...locator.Option) (*locator.Device, error) {
	d, err := locator.New(f.Height, f.Width, f.Labels, f.Values, f.Shift, opts...)
	if err != nil {
		return nil, err
	}
	if err := d.BuildLabelMap(); err != nil {
		return nil, err
	}
	if err := d.BuildGrid(); err != nil {
		return nil, err
	}

	return d, nil
}
