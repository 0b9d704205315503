package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"lifeviz/internal/app"
	"lifeviz/internal/term"
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.EnableMouse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, screen, session)
	stop()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}

// run drives the terminal app until the user quits. An interrupt is a
// normal exit.
func run(ctx context.Context, screen tcell.Screen, session *app.Session) error {
	err := term.New(screen, session).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
