package subdiv

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zok213/RealEstate-sub001/pkg/geo"
	"github.com/zok213/RealEstate-sub001/pkg/slicer"
)

// Config holds the Stage 2 subdivision parameters. All fields are
// required; there is no defaulting.
type Config struct {
	MinLotWidth            float64
	MaxLotWidth            float64
	TargetLotWidth         float64
	SolverTimeLimit        time.Duration // hard cap on one block's solve
	DeviationPenaltyWeight float64
	SetbackDistance        float64
}

// budgetPerMeter scales each block's solver budget with its length;
// SolverTimeLimit caps it.
const budgetPerMeter = 2 * time.Millisecond

// Subdivide fills in the block's lots. Park blocks are left untouched.
// Returns true when the constrained solver produced no feasible widths
// and the uniform-division fallback was used instead.
func Subdivide(b *Block, cfg Config) bool {
	if b.Classification != ClassDevelopable {
		return false
	}
	obb, ok := geo.MinimumOBB(b.Polygon)
	if !ok {
		// Degenerate block geometry: nothing to slice.
		return false
	}
	totalLength := obb.Length

	budget := time.Duration(totalLength) * budgetPerMeter
	if cfg.SolverTimeLimit > 0 && budget > cfg.SolverTimeLimit {
		budget = cfg.SolverTimeLimit
	}
	solver := WidthSolver{
		MinWidth:      cfg.MinLotWidth,
		MaxWidth:      cfg.MaxLotWidth,
		TargetWidth:   cfg.TargetLotWidth,
		PenaltyWeight: cfg.DeviationPenaltyWeight,
		Budget:        budget,
	}

	usedFallback := false
	widths := solver.Solve(totalLength)
	if widths == nil {
		widths = UniformWidths(totalLength, cfg.TargetLotWidth)
		usedFallback = true
	}
	if len(widths) == 0 {
		return usedFallback
	}

	pieces := slicer.Slice(b.Polygon, widths)
	b.Lots = make([]Lot, 0, len(pieces))
	for i, piece := range pieces {
		// Name-based UUIDs keyed on block ID and slice index, so
		// identical inputs reproduce the plan byte for byte.
		lot := Lot{
			ID:      uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s/lot/%d", b.ID, i))).String(),
			Polygon: piece.Polygon,
			Width:   piece.Width,
			Area:    piece.Polygon.Area(),
		}
		if cfg.SetbackDistance > 0 {
			if footprint := geo.Inset(piece.Polygon, cfg.SetbackDistance); !footprint.IsEmpty() {
				lot.Buildable = &footprint
			}
		}
		b.Lots = append(b.Lots, lot)
	}
	return usedFallback
}
