//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"pixelsand/internal/app"
	"pixelsand/internal/sims/sandbox"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	worldCfg, err := cfg.Sandbox(flag.CommandLine)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	world := sandbox.NewWithConfig(worldCfg)
	world.Reset(worldCfg.Seed)

	game := app.New(world, cfg.Scale, cfg.PanelWidth, worldCfg.Seed)
	size := world.Size()

	ebiten.SetWindowTitle("pixelsand: " + worldCfg.Scene)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.PanelWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
