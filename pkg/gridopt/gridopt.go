// Package gridopt chooses a grid overlay for a site polygon with a
// multi-objective genetic search. The decision vector is (cell spacing,
// rotation angle); fitness trades usable residential area against the
// count of fragmented cells, and selection is NSGA-II style
// (non-dominated sorting plus crowding distance over the combined
// parent and offspring pool).
package gridopt

import (
	"fmt"
	"math/rand"

	"github.com/zok213/RealEstate-sub001/pkg/geo"
)

// Config holds the search parameters. All fields are required; the
// optimizer performs no defaulting. Angles are in degrees; when
// AngleMin == AngleMax, the angle gene is fixed and only spacing evolves.
type Config struct {
	SpacingMin float64
	SpacingMax float64
	AngleMin   float64
	AngleMax   float64

	PopulationSize int
	Generations    int
	CrossoverProb  float64
	MutationProb   float64
	Eta            float64 // distribution index for SBX crossover and polynomial mutation

	GoodBlockRatio       float64
	FragmentedBlockRatio float64

	Seed    int64
	Workers int // fitness evaluation parallelism; <=0 means GOMAXPROCS
}

// Individual is one member of the population: a decision vector and its
// two fitness values. Area is maximized, Fragments minimized.
type Individual struct {
	Spacing   float64 `json:"spacing"`
	Angle     float64 `json:"angle"`
	Area      float64 `json:"area"`
	Fragments int     `json:"fragments"`

	rank     int
	crowding float64
}

// GenerationBest records the best individual of one generation, kept
// for diagnostics only.
type GenerationBest struct {
	Generation int     `json:"generation"`
	Spacing    float64 `json:"spacing"`
	Angle      float64 `json:"angle"`
	Area       float64 `json:"area"`
	Fragments  int     `json:"fragments"`
}

// Result is the outcome of a run: the chosen grid plus the per-generation
// history.
type Result struct {
	Spacing   float64          `json:"spacing"`
	Angle     float64          `json:"angle"`
	Area      float64          `json:"area"`
	Fragments int              `json:"fragments"`
	History   []GenerationBest `json:"history,omitempty"`
}

// Optimizer runs the grid layout search for one site. Instances are
// self-contained: the RNG is owned by the optimizer and never shared,
// so multiple optimizers may run concurrently.
type Optimizer struct {
	cfg        Config
	site       geo.Polygon
	exclusion  geo.Polygon
	rng        *rand.Rand
	angleFixed bool
}

// New creates an optimizer for the given site and optional exclusion
// polygon (pass an empty polygon for none).
func New(cfg Config, site, exclusion geo.Polygon) (*Optimizer, error) {
	if site.IsEmpty() || site.Area() < 1e-9 {
		return nil, fmt.Errorf("gridopt: site polygon is empty or has no area")
	}
	if cfg.SpacingMin <= 0 || cfg.SpacingMax < cfg.SpacingMin {
		return nil, fmt.Errorf("gridopt: invalid spacing range [%g, %g]", cfg.SpacingMin, cfg.SpacingMax)
	}
	if cfg.AngleMax < cfg.AngleMin {
		return nil, fmt.Errorf("gridopt: invalid angle range [%g, %g]", cfg.AngleMin, cfg.AngleMax)
	}
	if cfg.PopulationSize < 2 {
		return nil, fmt.Errorf("gridopt: population size %d too small", cfg.PopulationSize)
	}
	if cfg.Generations < 1 {
		return nil, fmt.Errorf("gridopt: generations must be positive, got %d", cfg.Generations)
	}
	if cfg.Eta <= 0 {
		return nil, fmt.Errorf("gridopt: eta must be positive, got %g", cfg.Eta)
	}
	return &Optimizer{
		cfg:        cfg,
		site:       site.Clean(),
		exclusion:  exclusion.Clean(),
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		angleFixed: cfg.AngleMax-cfg.AngleMin < 1e-12,
	}, nil
}

// Run executes the full search and returns the best grid found.
func (o *Optimizer) Run() Result {
	pop := o.initPopulation()
	o.evaluateAll(pop)
	pop = o.selectNext(pop, len(pop))

	history := make([]GenerationBest, 0, o.cfg.Generations)
	for gen := 1; gen <= o.cfg.Generations; gen++ {
		offspring := o.makeOffspring(pop)
		o.evaluateAll(offspring)
		pop = o.selectNext(append(pop, offspring...), o.cfg.PopulationSize)

		b := bestOf(pop)
		history = append(history, GenerationBest{
			Generation: gen,
			Spacing:    b.Spacing,
			Angle:      b.Angle,
			Area:       b.Area,
			Fragments:  b.Fragments,
		})
	}

	b := bestOf(pop)
	return Result{
		Spacing:   b.Spacing,
		Angle:     b.Angle,
		Area:      b.Area,
		Fragments: b.Fragments,
		History:   history,
	}
}

// initPopulation draws individuals uniformly from the configured ranges.
func (o *Optimizer) initPopulation() []Individual {
	pop := make([]Individual, o.cfg.PopulationSize)
	for i := range pop {
		pop[i].Spacing = o.uniform(o.cfg.SpacingMin, o.cfg.SpacingMax)
		pop[i].Angle = o.cfg.AngleMin
		if !o.angleFixed {
			pop[i].Angle = o.uniform(o.cfg.AngleMin, o.cfg.AngleMax)
		}
	}
	return pop
}

func (o *Optimizer) uniform(lo, hi float64) float64 {
	return lo + o.rng.Float64()*(hi-lo)
}

// bestOf returns the individual with the highest residential area,
// breaking ties by fewer fragments, then smaller spacing.
func bestOf(pop []Individual) Individual {
	best := pop[0]
	for _, ind := range pop[1:] {
		if ind.Area > best.Area ||
			(ind.Area == best.Area && ind.Fragments < best.Fragments) ||
			(ind.Area == best.Area && ind.Fragments == best.Fragments && ind.Spacing < best.Spacing) {
			best = ind
		}
	}
	return best
}
