package main

import (
	"fmt"
	"image/png"
	"log"
	"os"
	"strings"
	"time"

	"github.com/integrii/flaggy"

	"pixelsand/internal/render"
	"pixelsand/internal/sims/sandbox"
	"pixelsand/internal/termui"
)

// EnvOptions holds the flags that choose how the run is driven rather than
// what the world looks like.
type EnvOptions struct {
	interactive bool
	steps       int
	report      int
	tps         int
	noColor     bool
	pngPath     string
	pngScale    int
}

func main() {
	logger := log.New(os.Stdout, "[sand] ", log.LstdFlags|log.Lmicroseconds)

	eo, cfg, err := initOptions()
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	world := sandbox.NewWithConfig(cfg)
	world.Reset(cfg.Seed)

	if eo.interactive {
		console, err := termui.NewConsole(world, eo.tps)
		if err != nil {
			logger.Fatalf("terminal ui: %v", err)
		}
		if err := console.Run(); err != nil {
			logger.Fatalf("terminal ui: %v", err)
		}
		return
	}

	logger.Printf("scene %q %dx%d seed %d, %d steps", cfg.Scene, cfg.Width, cfg.Height, cfg.Seed, eo.steps)
	start := time.Now()
	for step := 1; step <= eo.steps; step++ {
		world.Step()
		if eo.report > 0 && step%eo.report == 0 {
			logger.Printf("step %d: %s", step, censusLine(world))
		}
	}
	logger.Printf("finished %d steps in %v: %s", eo.steps, time.Since(start).Round(time.Millisecond), censusLine(world))

	fmt.Println(termui.NewTextRenderer(!eo.noColor).Render(world, 0, 0))

	if eo.pngPath != "" {
		if err := writePNG(eo.pngPath, world, eo.pngScale); err != nil {
			logger.Fatalf("write png: %v", err)
		}
		logger.Printf("frame written to %s", eo.pngPath)
	}
}

func initOptions() (*EnvOptions, sandbox.Config, error) {
	eo := &EnvOptions{steps: 200, report: 50, tps: 30, pngScale: 4}
	var (
		configPath string
		scene      string
		width      int
		height     int
		seed       int64
		sets       []string
	)

	flaggy.SetName("sand")
	flaggy.SetDescription("falling-sand sandbox for the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&configPath, "c", "config", "YAML file with sandbox settings")
	flaggy.String(&scene, "e", "scene", "Starting scene ["+strings.Join(sandbox.SceneNames(), "|")+"]")
	flaggy.Int(&width, "x", "width", "Width of the grid")
	flaggy.Int(&height, "y", "height", "Height of the grid")
	flaggy.Int64(&seed, "d", "seed", "Random seed")
	flaggy.StringSlice(&sets, "p", "set", "Override a setting as key=value ["+strings.Join(sandbox.ConfigKeys(), "|")+"], repeatable")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start the interactive terminal UI")
	flaggy.Int(&eo.steps, "s", "steps", "Steps to run in headless mode")
	flaggy.Int(&eo.report, "r", "report", "Log a census every N steps, 0 to disable")
	flaggy.Int(&eo.tps, "t", "tps", "Steps per second in interactive mode")
	flaggy.Bool(&eo.noColor, "", "no-color", "Print the final frame with ASCII glyphs")
	flaggy.String(&eo.pngPath, "o", "png", "Write the final frame to a PNG file")
	flaggy.Int(&eo.pngScale, "", "png-scale", "Pixels per cell in the PNG")
	flaggy.Parse()

	cfg := sandbox.DefaultConfig()
	if configPath != "" {
		loaded, err := sandbox.LoadConfig(configPath)
		if err != nil {
			return nil, cfg, err
		}
		cfg = loaded
	}

	overrides, err := parseSets(sets)
	if err != nil {
		return nil, cfg, err
	}
	if width > 0 {
		overrides["w"] = fmt.Sprint(width)
	}
	if height > 0 {
		overrides["h"] = fmt.Sprint(height)
	}
	if seed != 0 {
		overrides["seed"] = fmt.Sprint(seed)
	}
	if scene != "" {
		overrides["scene"] = scene
	}
	cfg.Apply(overrides)

	if !validScene(cfg.Scene) {
		return nil, cfg, fmt.Errorf("unknown scene %q", cfg.Scene)
	}
	return eo, cfg, nil
}

func writePNG(path string, w *sandbox.World, scale int) error {
	size := w.Size()
	img := render.Frame(size.W, size.H, w.Cells(), w.Palette(), scale)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
