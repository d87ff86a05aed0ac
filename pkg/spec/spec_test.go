package spec

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleYAML = `name: riverside
site:
  - {x: 0, y: 0}
  - {x: 200, y: 0}
  - {x: 200, y: 150}
  - {x: 0, y: 150}
exclusion:
  - {x: 80, y: 60}
  - {x: 120, y: 60}
  - {x: 120, y: 100}
  - {x: 80, y: 100}
params:
  spacing_min: 60
  spacing_max: 120
  angle_min: 0
  angle_max: 90
  population_size: 24
  generations: 40
  crossover_probability: 0.9
  mutation_probability: 0.2
  eta: 15
  good_block_ratio: 0.75
  fragmented_block_ratio: 0.25
  min_lot_width: 18
  max_lot_width: 36
  target_lot_width: 24
  solver_time_limit: 2.5
  deviation_penalty_weight: 1.5
  setback_distance: 4
  min_rectangularity: 0.7
  max_aspect_ratio: 4.0
  min_lot_area: 1000
  random_seed: 42
`

func writeSample(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("writing sample project: %v", err)
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeSample(t)
	project, err := Load(filepath.Join(dir, "site.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if project.Name != "riverside" {
		t.Errorf("Name = %q, want riverside", project.Name)
	}
	if len(project.Site) != 4 {
		t.Errorf("len(Site) = %d, want 4", len(project.Site))
	}
	if len(project.Exclusion) != 4 {
		t.Errorf("len(Exclusion) = %d, want 4", len(project.Exclusion))
	}
	if project.Site[1].X != 200 {
		t.Errorf("Site[1].X = %v, want 200", project.Site[1].X)
	}
	if project.Params.SpacingMax != 120 {
		t.Errorf("SpacingMax = %v, want 120", project.Params.SpacingMax)
	}
	if project.Params.RandomSeed != 42 {
		t.Errorf("RandomSeed = %v, want 42", project.Params.RandomSeed)
	}
}

func TestLoadProject(t *testing.T) {
	dir := writeSample(t)
	project, err := LoadProject(dir)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if project.Name != "riverside" {
		t.Errorf("Name = %q, want riverside", project.Name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte("site: [not: closed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestSitePolygon(t *testing.T) {
	dir := writeSample(t)
	project, err := LoadProject(dir)
	if err != nil {
		t.Fatal(err)
	}

	site := project.SitePolygon()
	if site.Len() != 4 {
		t.Fatalf("site polygon has %d vertices, want 4", site.Len())
	}
	if area := site.Area(); area != 200*150 {
		t.Errorf("site area = %v, want 30000", area)
	}
	if excl := project.ExclusionPolygon(); excl.Area() != 40*40 {
		t.Errorf("exclusion area = %v, want 1600", excl.Area())
	}
}

func TestExclusionPolygonEmpty(t *testing.T) {
	p := Project{Site: []Point{{0, 0}, {10, 0}, {10, 10}}}
	if !p.ExclusionPolygon().IsEmpty() {
		t.Error("project without exclusion should yield an empty polygon")
	}
}

func TestGridConfigMapping(t *testing.T) {
	dir := writeSample(t)
	project, err := LoadProject(dir)
	if err != nil {
		t.Fatal(err)
	}

	grid := project.Params.GridConfig()
	if grid.SpacingMin != 60 || grid.SpacingMax != 120 {
		t.Errorf("spacing bounds = [%v, %v], want [60, 120]", grid.SpacingMin, grid.SpacingMax)
	}
	if grid.PopulationSize != 24 || grid.Generations != 40 {
		t.Errorf("population/generations = %d/%d, want 24/40", grid.PopulationSize, grid.Generations)
	}
	if grid.Eta != 15 {
		t.Errorf("Eta = %v, want 15", grid.Eta)
	}
	if grid.Seed != 42 {
		t.Errorf("Seed = %v, want 42", grid.Seed)
	}
}

func TestSubdivConfigMapping(t *testing.T) {
	dir := writeSample(t)
	project, err := LoadProject(dir)
	if err != nil {
		t.Fatal(err)
	}

	cfg := project.Params.SubdivConfig()
	if cfg.MinLotWidth != 18 || cfg.MaxLotWidth != 36 || cfg.TargetLotWidth != 24 {
		t.Errorf("lot widths = %v/%v/%v, want 18/36/24", cfg.MinLotWidth, cfg.MaxLotWidth, cfg.TargetLotWidth)
	}
	if want := 2500 * time.Millisecond; cfg.SolverTimeLimit != want {
		t.Errorf("SolverTimeLimit = %v, want %v", cfg.SolverTimeLimit, want)
	}
	if cfg.SetbackDistance != 4 {
		t.Errorf("SetbackDistance = %v, want 4", cfg.SetbackDistance)
	}
}
