package app

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"lifeviz/pkg/geom"
	"lifeviz/pkg/layout"
	"lifeviz/pkg/life"
)

func newTestSession(t *testing.T, mutate func(*Config)) (*Session, *life.Life) {
	t.Helper()
	cfg := NewConfig()
	cfg.Rows, cfg.Cols = 12, 12
	if mutate != nil {
		mutate(cfg)
	}
	sim, err := cfg.NewSim()
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	s, err := NewSession(sim, cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s, sim.(*life.Life)
}

func TestSessionStartsEmptyAndPaused(t *testing.T) {
	s, l := newTestSession(t, nil)
	if !l.Grid().Empty() {
		t.Fatal("board not empty at start")
	}
	if s.Playing() {
		t.Fatal("session playing at start")
	}
	if stepped, err := s.Tick(time.Now()); stepped || err != nil {
		t.Fatalf("paused Tick = %v, %v", stepped, err)
	}
}

func TestSessionTickHonorsThrottle(t *testing.T) {
	s, l := newTestSession(t, func(c *Config) { c.Speed = 0 })
	if s.Interval() != 500*time.Millisecond {
		t.Fatalf("interval = %v", s.Interval())
	}
	s.SetPlaying(true)
	now := time.Unix(100, 0)
	if stepped, _ := s.Tick(now); !stepped {
		t.Fatal("first tick after play should step")
	}
	if stepped, _ := s.Tick(now.Add(100 * time.Millisecond)); stepped {
		t.Fatal("stepped before the interval elapsed")
	}
	if stepped, _ := s.Tick(now.Add(10 * time.Second)); !stepped {
		t.Fatal("did not step after a long gap")
	}
	if l.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", l.Generation())
	}
}

func TestSessionStepOnceWhilePaused(t *testing.T) {
	s, l := newTestSession(t, nil)
	s.StepOnce()
	if stepped, err := s.Tick(time.Now()); !stepped || err != nil {
		t.Fatalf("StepOnce Tick = %v, %v", stepped, err)
	}
	if stepped, _ := s.Tick(time.Now()); stepped {
		t.Fatal("StepOnce stepped twice")
	}
	if s.Generation() != 1 || l.Generation() != 1 {
		t.Fatalf("generation = %d", s.Generation())
	}
}

func TestSessionApply(t *testing.T) {
	s, l := newTestSession(t, nil)
	if err := s.Apply(layout.Hit{Action: layout.ActionToggleCell, Cell: geom.Point{X: 3, Y: 2}}); err != nil {
		t.Fatalf("Apply toggle: %v", err)
	}
	if !l.Grid()[2][3] {
		t.Fatal("toggle hit did not flip row 2 col 3")
	}
	s.Apply(layout.Hit{Action: layout.ActionPlay})
	if !s.Playing() {
		t.Fatal("play hit did not start")
	}
	s.Apply(layout.Hit{Action: layout.ActionPause})
	if s.Playing() {
		t.Fatal("pause hit did not stop")
	}
	if err := s.Apply(layout.Hit{Action: layout.ActionUpload}); !errors.Is(err, ErrNoPattern) {
		t.Fatalf("upload without pattern err = %v", err)
	}
	if err := s.Apply(layout.Hit{}); err != nil {
		t.Fatalf("Apply none: %v", err)
	}
}

func TestSessionPatternLoading(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blinker.cells")
	if err := os.WriteFile(path, []byte("!Name: Blinker\nOOO\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, l := newTestSession(t, func(c *Config) { c.Pattern = path })
	if l.Grid().Population() != 3 {
		t.Fatalf("population after load = %d", l.Grid().Population())
	}
	s.Clear()
	if err := s.Apply(layout.Hit{Action: layout.ActionUpload}); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if l.Grid().Population() != 3 {
		t.Fatal("upload did not reload the pattern")
	}

	fsys := fstest.MapFS{"big.cells": {Data: []byte("OOOOOOOOOOOOOOOOOOOO\n")}}
	if err := s.LoadFS(fsys, "big.cells"); err == nil {
		t.Fatal("pattern wider than the board loaded")
	}
}

func TestSessionRandomizeAndSpeed(t *testing.T) {
	s, l := newTestSession(t, func(c *Config) { c.Random = true; c.Seed = 5 })
	if l.Grid().Empty() {
		t.Fatal("random start produced an empty board")
	}
	first := l.Grid().Clone()
	s.Randomize(5)
	if !l.Grid().Equal(first) {
		t.Fatal("Randomize(5) differs from the seeded start")
	}
	s.SetFraction(3)
	if s.Fraction() != 1 || s.Interval() != time.Millisecond {
		t.Fatalf("fraction=%v interval=%v", s.Fraction(), s.Interval())
	}
}

func TestConfigFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-sim", "life-vonneumann", "-rows", "9", "-policy", "bounded", "-set", "density=0.25", "-set", "icon_size=20", "-cell", "12"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sim, err := cfg.NewSim()
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	l := sim.(*life.Life)
	if l.Size().H != 9 || l.Rules().Policy != life.Bounded || l.Rules().Neighborhood != life.VonNeumann {
		t.Fatalf("sim = %+v %+v", l.Size(), l.Rules())
	}
	lc := cfg.Layout()
	if lc.CellSize != 12 || lc.IconSize != 20 {
		t.Fatalf("layout = %+v", lc)
	}
	if err := fs.Parse([]string{"-set", "novalue"}); err == nil {
		t.Fatal("-set without '=' accepted")
	}
	cfg.Sim = "nope"
	if _, err := cfg.NewSim(); err == nil {
		t.Fatal("unknown sim accepted")
	}
}
