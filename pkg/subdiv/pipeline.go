package subdiv

import (
	"log"
	"runtime"
	"sync"

	"github.com/zok213/RealEstate-sub001/pkg/geo"
	"github.com/zok213/RealEstate-sub001/pkg/gridopt"
)

// PlanResult is the full output of the two-stage pipeline: the chosen
// grid, the classified blocks with their lots, and aggregate land-use
// totals.
type PlanResult struct {
	Spacing         float64                   `json:"spacing"`
	Angle           float64                   `json:"angle"`
	ResidentialArea float64                   `json:"residential_area"`
	Fragments       int                       `json:"fragments"`
	History         []gridopt.GenerationBest  `json:"history,omitempty"`
	Blocks          []Block                   `json:"blocks"`
	DevelopableArea float64                   `json:"developable_area"`
	ParkArea        float64                   `json:"park_area"`
	LotArea         float64                   `json:"lot_area"`
	LotCount        int                       `json:"lot_count"`
	FallbackCount   int                       `json:"fallback_count"`
}

// Viable reports whether the search found any usable layout at all. An
// all-zero residential area means every candidate grid was empty or
// fragmented; callers must treat that as "no viable layout".
func (r *PlanResult) Viable() bool {
	return r.ResidentialArea > 0
}

// BuildPlan runs the full pipeline: Stage 1 grid search, block
// extraction from the winning grid, then an independent Stage 2 solve
// for each block. Blocks are solved across a bounded worker pool; the
// output order is the deterministic block extraction order.
func BuildPlan(site, exclusion geo.Polygon, grid gridopt.Config, cfg Config) (*PlanResult, error) {
	opt, err := gridopt.New(grid, site, exclusion)
	if err != nil {
		return nil, err
	}
	chosen := opt.Run()

	res := &PlanResult{
		Spacing:         chosen.Spacing,
		Angle:           chosen.Angle,
		ResidentialArea: chosen.Area,
		Fragments:       chosen.Fragments,
		History:         chosen.History,
	}
	res.Blocks = ExtractBlocks(site, exclusion, chosen.Spacing, chosen.Angle, grid.FragmentedBlockRatio)

	fallbacks := make([]bool, len(res.Blocks))
	workers := grid.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(res.Blocks) {
		workers = len(res.Blocks)
	}
	if workers > 1 {
		idx := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range idx {
					fallbacks[i] = Subdivide(&res.Blocks[i], cfg)
				}
			}()
		}
		for i := range res.Blocks {
			idx <- i
		}
		close(idx)
		wg.Wait()
	} else {
		for i := range res.Blocks {
			fallbacks[i] = Subdivide(&res.Blocks[i], cfg)
		}
	}

	for i := range res.Blocks {
		b := &res.Blocks[i]
		switch b.Classification {
		case ClassPark:
			res.ParkArea += b.Area
		case ClassDevelopable:
			res.DevelopableArea += b.Area
		}
		for _, lot := range b.Lots {
			res.LotArea += lot.Area
			res.LotCount++
		}
		if fallbacks[i] {
			res.FallbackCount++
			log.Printf("subdiv: block %s solved by uniform fallback (degraded quality)", b.ID)
		}
	}
	return res, nil
}
