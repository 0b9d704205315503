// Command lifesim runs a board for a fixed number of generations without a
// display and prints the result in plaintext pattern form.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cheggaaa/pb/v3"

	"lifeviz/internal/app"
	"lifeviz/internal/pattern"
	"lifeviz/internal/render"
	"lifeviz/pkg/core"
	"lifeviz/pkg/layout"
	"lifeviz/pkg/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 100, "generations to simulate")
	frame := flag.String("png", "", "write the final frame to this PNG file")
	quiet := flag.Bool("quiet", false, "hide the progress bar")
	flag.Parse()

	sim, err := cfg.NewSim()
	if err != nil {
		log.Fatal(err)
	}
	session, err := app.NewSession(sim, cfg)
	if err != nil {
		log.Fatalf("loading %s: %v", cfg.Pattern, err)
	}

	var bar *pb.ProgressBar
	if !*quiet {
		bar = pb.New(*steps)
		bar.SetWriter(os.Stderr)
		bar.Start()
	}
	err = run(sim, *steps, func() {
		if bar != nil {
			bar.Increment()
		}
	})
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		log.Fatal(err)
	}

	l, ok := sim.(*life.Life)
	if !ok {
		log.Fatalf("sim %q has no grid to print", sim.Name())
	}
	name := fmt.Sprintf("%s after %d generations (%s)", sim.Name(), l.Generation(), l.Rules().Policy)
	if err := pattern.Format(os.Stdout, name, l.Grid()); err != nil {
		log.Fatal(err)
	}

	if *frame != "" {
		if err := writeFrame(*frame, cfg, session); err != nil {
			log.Fatal(err)
		}
	}
}

// run advances sim by steps generations, calling progress after each one.
func run(sim core.Sim, steps int, progress func()) error {
	for i := 0; i < steps; i++ {
		if err := sim.Step(); err != nil {
			return fmt.Errorf("generation %d: %w", i+1, err)
		}
		progress()
	}
	return nil
}

func writeFrame(path string, cfg *app.Config, session *app.Session) error {
	sim := session.Sim()
	size := sim.Size()
	lc := cfg.Layout()
	// Size the image to show the whole board.
	width := max(2*lc.Margin+size.W*lc.CellSize, 3*lc.Margin+lc.SliderWidth)
	height := 2*lc.Margin + size.H*lc.CellSize
	lay, err := layout.New(lc, width, height, size.H, size.W)
	if err != nil {
		return err
	}
	cv := render.NewImageCanvas(width, height)
	render.DrawFrame(cv, render.Frame{
		Layout:   lay,
		Size:     size,
		Cells:    sim.Cells(),
		Speed:    session.Fraction(),
		Interval: session.Interval(),
		Palette:  render.DefaultPalette(),
	})
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := cv.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
