package sandbox

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Params holds tunable probabilities and ranges for the material rules.
type Params struct {
	FireLifetimeMin int     `yaml:"fire_lifetime_min"`
	FireLifetimeMax int     `yaml:"fire_lifetime_max"`
	IgniteChance    float64 `yaml:"ignite_chance"`
}

// Config controls the sandbox dimensions, seed and starting scene.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Seed   int64  `yaml:"seed"`
	Scene  string `yaml:"scene"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  140,
		Height: 100,
		Seed:   1337,
		Scene:  SceneEmpty,
		Params: Params{
			FireLifetimeMin: 15,
			FireLifetimeMax: 30,
			IgniteChance:    0.3,
		},
	}
}

// normalize repairs values that would break the world invariants.
func (c *Config) normalize() {
	if c.Width <= 0 {
		c.Width = 1
	}
	if c.Height <= 0 {
		c.Height = 1
	}
	if c.Params.FireLifetimeMin < 1 {
		c.Params.FireLifetimeMin = 1
	}
	if c.Params.FireLifetimeMax < c.Params.FireLifetimeMin {
		c.Params.FireLifetimeMax = c.Params.FireLifetimeMin
	}
	c.Params.IgniteChance = clamp01(c.Params.IgniteChance)
}

// ConfigKeys lists the keys understood by FromMap and Apply.
func ConfigKeys() []string {
	return []string{"w", "h", "seed", "scene", "fire_lifetime_min", "fire_lifetime_max", "ignite_chance"}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Apply(cfg)
	return c
}

// Apply overlays flag-style key/value pairs onto c. Unknown keys and
// unparsable values are ignored.
func (c *Config) Apply(cfg map[string]string) {
	if cfg == nil {
		return
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scene"]; ok && v != "" {
		c.Scene = v
	}
	if v, ok := cfg["fire_lifetime_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.FireLifetimeMin = parsed
		}
	}
	if v, ok := cfg["fire_lifetime_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.FireLifetimeMax = parsed
		}
	}
	if c.Params.FireLifetimeMax < c.Params.FireLifetimeMin {
		c.Params.FireLifetimeMax = c.Params.FireLifetimeMin
	}
	if v, ok := cfg["ignite_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.IgniteChance = clamp01(parsed)
		}
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Fields missing from
// the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	if _, ok := scenes[c.Scene]; !ok {
		return c, fmt.Errorf("%s: unknown scene %q", path, c.Scene)
	}
	c.normalize()
	return c, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
