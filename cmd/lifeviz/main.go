//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifeviz/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := cfg.NewSim()
	if err != nil {
		log.Fatal(err)
	}
	session, err := app.NewSession(sim, cfg)
	if err != nil {
		log.Fatalf("loading %s: %v", cfg.Pattern, err)
	}
	lc := cfg.Layout()
	if err := lc.Validate(); err != nil {
		log.Fatal(err)
	}

	game := app.New(session, lc)

	ebiten.SetWindowTitle("lifeviz: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
