package app

import (
	"flag"
	"strconv"

	"pixelsand/internal/sims/sandbox"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigPath string
	Scene      string
	Width      int
	Height     int
	Scale      int
	TPS        int
	Seed       int64
	PanelWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := sandbox.DefaultConfig()
	return &Config{
		Scene:      def.Scene,
		Width:      def.Width,
		Height:     def.Height,
		Scale:      5,
		TPS:        60,
		Seed:       def.Seed,
		PanelWidth: 200,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML file with sandbox settings")
	fs.StringVar(&c.Scene, "scene", c.Scene, "starting scene")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.PanelWidth, "panel", c.PanelWidth, "side panel width in pixels, 0 to hide")
}

// Sandbox builds the world configuration: the YAML file when one is given,
// otherwise the defaults, with any flags set on fs layered on top.
func (c *Config) Sandbox(fs *flag.FlagSet) (sandbox.Config, error) {
	cfg := sandbox.DefaultConfig()
	if c.ConfigPath != "" {
		loaded, err := sandbox.LoadConfig(c.ConfigPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	overrides := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "w":
			overrides["w"] = strconv.Itoa(c.Width)
		case "h":
			overrides["h"] = strconv.Itoa(c.Height)
		case "seed":
			overrides["seed"] = strconv.FormatInt(c.Seed, 10)
		case "scene":
			overrides["scene"] = c.Scene
		}
	})
	cfg.Apply(overrides)
	return cfg, nil
}
