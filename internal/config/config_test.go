package config

import (
	"math"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Name != "acetic-acid" {
		t.Errorf("expected acetic-acid, got %s", cfg.Name)
	}
	if cfg.Solver.Method != DefaultSolver {
		t.Errorf("expected solver %s, got %s", DefaultSolver, cfg.Solver.Method)
	}
	if cfg.Solver.Tolerance <= 0 {
		t.Error("tolerance should be positive")
	}
}

func TestPresetsBuild(t *testing.T) {
	tests := []struct {
		name        string
		species     int
		reactions   int
		constraints int
	}{
		{"water", 2, 1, 0},
		{"acetic-acid", 4, 2, 1},
		{"hcl-naoh", 6, 3, 2},
	}

	for _, tt := range tests {
		cfg := Preset(tt.name)
		if cfg == nil {
			t.Fatalf("missing preset %s", tt.name)
		}
		if len(cfg.Species) != tt.species || len(cfg.Reactions) != tt.reactions || len(cfg.Conservation) != tt.constraints {
			t.Errorf("%s: got %d/%d/%d species/reactions/constraints",
				tt.name, len(cfg.Species), len(cfg.Reactions), len(cfg.Conservation))
		}
		sys, species, err := cfg.Build(nil)
		if err != nil {
			t.Fatalf("%s: build failed: %v", tt.name, err)
		}
		if len(sys.Species()) != tt.species {
			t.Errorf("%s: universe has %d species, expected %d", tt.name, len(sys.Species()), tt.species)
		}
		if species["H+"] == nil {
			t.Errorf("%s: no H+ handle", tt.name)
		}
	}
}

func TestPresetNotFound(t *testing.T) {
	if Preset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestPresetIsFresh(t *testing.T) {
	a := Preset("water")
	a.Species[0].Charge = 99
	b := Preset("water")
	if b.Species[0].Charge == 99 {
		t.Error("presets must return fresh copies")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.yaml")
	orig := Preset("acetic-acid")

	if err := Save(path, orig); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Name != orig.Name {
		t.Errorf("name: expected %s, got %s", orig.Name, loaded.Name)
	}
	if len(loaded.Species) != len(orig.Species) || len(loaded.Reactions) != len(orig.Reactions) {
		t.Error("species/reactions not preserved")
	}
	if loaded.Conservation[0].Token != "C2H3O2" || loaded.Conservation[0].Target != 0.5 {
		t.Errorf("conservation not preserved: %+v", loaded.Conservation)
	}
	if math.Abs(loaded.Reactions[0].K-1.8e-5) > 1e-20 {
		t.Errorf("K not preserved: %g", loaded.Reactions[0].K)
	}

	if _, _, err := loaded.Build(nil); err != nil {
		t.Fatalf("loaded config should build: %v", err)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.yaml")
	cfg := Preset("water")
	cfg.Solver = SolverConfig{}
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Solver.Method != DefaultSolver || loaded.Solver.MaxIterations != DefaultMaxIterations {
		t.Errorf("defaults not applied: %+v", loaded.Solver)
	}
}

func TestBuildUndeclaredSpecies(t *testing.T) {
	cfg := Preset("water")
	cfg.Reactions[0].Species["Na+"] = 1

	_, _, err := cfg.Build(nil)
	if err == nil || !strings.Contains(err.Error(), "undeclared species") {
		t.Errorf("expected undeclared species error, got %v", err)
	}
}

func TestBuildDuplicateSpecies(t *testing.T) {
	cfg := Preset("water")
	cfg.Species = append(cfg.Species, cfg.Species[0])

	_, _, err := cfg.Build(nil)
	if err == nil || !strings.Contains(err.Error(), "declared twice") {
		t.Errorf("expected duplicate species error, got %v", err)
	}
}

func TestBuildNoSpecies(t *testing.T) {
	cfg := &Config{Name: "empty"}
	if _, _, err := cfg.Build(nil); err == nil {
		t.Error("expected error for empty config")
	}
}

func TestSolverOptions(t *testing.T) {
	cfg := Preset("water")
	opts := cfg.SolverOptions()
	if opts.MaxIterations != DefaultMaxIterations || opts.Tolerance != DefaultTolerance {
		t.Errorf("unexpected options: %+v", opts)
	}
}
