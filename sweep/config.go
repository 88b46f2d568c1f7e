package sweep

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/densflow/generator"
)

// ErrInvalidConfig indicates a sweep definition that cannot run.
var ErrInvalidConfig = errors.New("sweep: invalid config")

// Density presets of the interactive driver.
const (
	Low    = 0.125
	Medium = 0.25
	High   = 0.5
)

// Config describes one sweep: networks of From, From+Step, ..., To vertices
// generated at a fixed edge Density.
type Config struct {
	Name              string  `toml:"name"`
	From              int     `toml:"from"`
	To                int     `toml:"to"`
	Step              int     `toml:"step"`
	Density           float64 `toml:"density"`
	MinCapacity       int64   `toml:"min_capacity"`
	MaxCapacity       int64   `toml:"max_capacity"`
	Seed              int64   `toml:"seed"`
	PruneDeadVertices bool    `toml:"prune_dead_vertices"`
}

// DefaultConfig returns the 50..500 step 50 sweep at density p.
func DefaultConfig(name string, p float64) Config {
	return Config{
		Name:        name,
		From:        50,
		To:          500,
		Step:        50,
		Density:     p,
		MinCapacity: generator.DefaultMinCapacity,
		MaxCapacity: generator.DefaultMaxCapacity,
		Seed:        1,
	}
}

// Preset resolves "low", "medium" or "high" to its default sweep.
func Preset(name string) (Config, error) {
	switch strings.ToLower(name) {
	case "low":
		return DefaultConfig("low", Low), nil
	case "medium":
		return DefaultConfig("medium", Medium), nil
	case "high":
		return DefaultConfig("high", High), nil
	}
	return Config{}, fmt.Errorf("unknown density preset %q: %w", name, ErrInvalidConfig)
}

// Sizes lists the vertex counts the sweep visits.
func (c Config) Sizes() []int {
	var sizes []int
	for n := c.From; n <= c.To; n += c.Step {
		sizes = append(sizes, n)
	}
	return sizes
}

// Validate reports ErrInvalidConfig for unusable bounds or capacities.
func (c Config) Validate() error {
	switch {
	case c.From < 2:
		return fmt.Errorf("%s: from=%d < 2: %w", c.Name, c.From, ErrInvalidConfig)
	case c.To < c.From:
		return fmt.Errorf("%s: to=%d < from=%d: %w", c.Name, c.To, c.From, ErrInvalidConfig)
	case c.Step < 1:
		return fmt.Errorf("%s: step=%d < 1: %w", c.Name, c.Step, ErrInvalidConfig)
	case c.To > math.MaxInt-c.Step:
		return fmt.Errorf("%s: to=%d with step=%d overflows int: %w", c.Name, c.To, c.Step, ErrInvalidConfig)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%s: density=%g not in [0,1]: %w", c.Name, c.Density, ErrInvalidConfig)
	case c.MinCapacity < 1 || c.MaxCapacity < c.MinCapacity:
		return fmt.Errorf("%s: capacity range [%d,%d]: %w", c.Name, c.MinCapacity, c.MaxCapacity, ErrInvalidConfig)
	}
	return nil
}

// file is the TOML layout:
//
//	[[sweep]]
//	name = "low"
//	from = 50
//	...
type file struct {
	Sweeps []Config `toml:"sweep"`
}

// LoadConfig reads sweep definitions from a TOML file. Missing capacity
// bounds and seed fall back to DefaultConfig values; every sweep is validated.
func LoadConfig(path string) ([]Config, error) {
	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("sweep: decode %s: %w", path, err)
	}
	return normalize(f.Sweeps)
}

// ParseConfig is LoadConfig for in-memory TOML.
func ParseConfig(data string) ([]Config, error) {
	var f file
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("sweep: decode: %w", err)
	}
	return normalize(f.Sweeps)
}

func normalize(sweeps []Config) ([]Config, error) {
	if len(sweeps) == 0 {
		return nil, fmt.Errorf("no [[sweep]] tables: %w", ErrInvalidConfig)
	}
	for i := range sweeps {
		c := &sweeps[i]
		if c.Name == "" {
			c.Name = fmt.Sprintf("sweep-%d", i+1)
		}
		if c.MinCapacity == 0 && c.MaxCapacity == 0 {
			c.MinCapacity, c.MaxCapacity = generator.DefaultMinCapacity, generator.DefaultMaxCapacity
		}
		if c.Seed == 0 {
			c.Seed = 1
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}
	return sweeps, nil
}
