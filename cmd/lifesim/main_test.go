package main

import (
	"testing"

	"lifeviz/pkg/life"
)

func TestRunAdvancesGenerations(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.Rows, cfg.Cols = 8, 8
	sim := life.New(cfg)
	sim.Toggle(3, 2)
	sim.Toggle(3, 3)
	sim.Toggle(3, 4)

	calls := 0
	if err := run(sim, 3, func() { calls++ }); err != nil {
		t.Fatalf("run: %v", err)
	}
	if calls != 3 {
		t.Fatalf("progress called %d times, want 3", calls)
	}
	if sim.Generation() != 3 {
		t.Fatalf("generation = %d, want 3", sim.Generation())
	}
	if sim.Grid().Population() != 3 {
		t.Fatalf("blinker population = %d, want 3", sim.Grid().Population())
	}
}

func TestRunZeroSteps(t *testing.T) {
	sim := life.New(life.DefaultConfig())
	if err := run(sim, 0, func() { t.Fatal("progress on zero steps") }); err != nil {
		t.Fatalf("run: %v", err)
	}
	if sim.Generation() != 0 {
		t.Fatalf("generation = %d, want 0", sim.Generation())
	}
}
