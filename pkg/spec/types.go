package spec

import (
	"time"

	"github.com/zok213/RealEstate-sub001/pkg/geo"
	"github.com/zok213/RealEstate-sub001/pkg/gridopt"
	"github.com/zok213/RealEstate-sub001/pkg/subdiv"
)

// Project is the top-level YAML document for one subdivision run: the
// site boundary, an optional exclusion area, and every engine parameter.
type Project struct {
	Name      string  `yaml:"name" json:"name"`
	Site      []Point `yaml:"site" json:"site"`
	Exclusion []Point `yaml:"exclusion,omitempty" json:"exclusion,omitempty"`
	Params    Params  `yaml:"params" json:"params"`
}

// Point is one site ring vertex in meters.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Params carries the full engine configuration. Every field is
// required; the engine applies no hidden defaults, and validation
// rejects incomplete projects before optimization begins.
type Params struct {
	SpacingMin float64 `yaml:"spacing_min" json:"spacing_min"`
	SpacingMax float64 `yaml:"spacing_max" json:"spacing_max"`
	AngleMin   float64 `yaml:"angle_min" json:"angle_min"`
	AngleMax   float64 `yaml:"angle_max" json:"angle_max"`

	PopulationSize       int     `yaml:"population_size" json:"population_size"`
	Generations          int     `yaml:"generations" json:"generations"`
	CrossoverProbability float64 `yaml:"crossover_probability" json:"crossover_probability"`
	MutationProbability  float64 `yaml:"mutation_probability" json:"mutation_probability"`
	Eta                  float64 `yaml:"eta" json:"eta"`

	GoodBlockRatio       float64 `yaml:"good_block_ratio" json:"good_block_ratio"`
	FragmentedBlockRatio float64 `yaml:"fragmented_block_ratio" json:"fragmented_block_ratio"`

	MinLotWidth            float64 `yaml:"min_lot_width" json:"min_lot_width"`
	MaxLotWidth            float64 `yaml:"max_lot_width" json:"max_lot_width"`
	TargetLotWidth         float64 `yaml:"target_lot_width" json:"target_lot_width"`
	SolverTimeLimit        float64 `yaml:"solver_time_limit" json:"solver_time_limit"` // seconds
	DeviationPenaltyWeight float64 `yaml:"deviation_penalty_weight" json:"deviation_penalty_weight"`
	SetbackDistance        float64 `yaml:"setback_distance" json:"setback_distance"`

	MinRectangularity float64 `yaml:"min_rectangularity" json:"min_rectangularity"`
	MaxAspectRatio    float64 `yaml:"max_aspect_ratio" json:"max_aspect_ratio"`
	MinLotArea        float64 `yaml:"min_lot_area" json:"min_lot_area"`

	RandomSeed int64 `yaml:"random_seed" json:"random_seed"`
	Workers    int   `yaml:"workers,omitempty" json:"workers,omitempty"`
}

// SitePolygon returns the site ring as a polygon.
func (p *Project) SitePolygon() geo.Polygon {
	return ringPolygon(p.Site)
}

// ExclusionPolygon returns the exclusion ring as a polygon; empty when
// the project has none.
func (p *Project) ExclusionPolygon() geo.Polygon {
	return ringPolygon(p.Exclusion)
}

func ringPolygon(ring []Point) geo.Polygon {
	pts := make([]geo.Point2D, len(ring))
	for i, v := range ring {
		pts[i] = geo.Pt(v.X, v.Y)
	}
	return geo.Polygon{Vertices: pts}.Clean()
}

// GridConfig maps the project parameters onto the Stage 1 optimizer
// configuration.
func (p Params) GridConfig() gridopt.Config {
	return gridopt.Config{
		SpacingMin:           p.SpacingMin,
		SpacingMax:           p.SpacingMax,
		AngleMin:             p.AngleMin,
		AngleMax:             p.AngleMax,
		PopulationSize:       p.PopulationSize,
		Generations:          p.Generations,
		CrossoverProb:        p.CrossoverProbability,
		MutationProb:         p.MutationProbability,
		Eta:                  p.Eta,
		GoodBlockRatio:       p.GoodBlockRatio,
		FragmentedBlockRatio: p.FragmentedBlockRatio,
		Seed:                 p.RandomSeed,
		Workers:              p.Workers,
	}
}

// SubdivConfig maps the project parameters onto the Stage 2 solver
// configuration.
func (p Params) SubdivConfig() subdiv.Config {
	return subdiv.Config{
		MinLotWidth:            p.MinLotWidth,
		MaxLotWidth:            p.MaxLotWidth,
		TargetLotWidth:         p.TargetLotWidth,
		SolverTimeLimit:        time.Duration(p.SolverTimeLimit * float64(time.Second)),
		DeviationPenaltyWeight: p.DeviationPenaltyWeight,
		SetbackDistance:        p.SetbackDistance,
	}
}
