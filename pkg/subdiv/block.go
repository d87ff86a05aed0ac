// Package subdiv partitions the blocks of a chosen grid overlay into
// buildable lots. Blocks are classified by how much of their grid cell
// they retain; developable blocks get an ordered set of lot widths from
// a constrained solver and are sliced along their dominant edge.
package subdiv

import (
	"fmt"

	"github.com/zok213/RealEstate-sub001/pkg/geo"
	"github.com/zok213/RealEstate-sub001/pkg/gridopt"
)

// Classification of a block after grid selection.
type Classification string

const (
	ClassPark        Classification = "park"
	ClassDevelopable Classification = "developable"
)

// parkRatioCutoff: blocks retaining less than this fraction of their
// grid cell stay open space and are never subdivided.
const parkRatioCutoff = 0.6

// Lot is one slice of a developable block. Buildable is the lot shrunk
// inward by the setback distance; nil means the shrink left no area.
type Lot struct {
	ID        string       `json:"id"`
	Polygon   geo.Polygon  `json:"polygon"`
	Width     float64      `json:"width"`
	Area      float64      `json:"area"`
	Buildable *geo.Polygon `json:"buildable,omitempty"`
}

// Block is one grid cell clipped to the site, minus any exclusion.
type Block struct {
	ID             string         `json:"id"`
	Polygon        geo.Polygon    `json:"polygon"`
	Area           float64        `json:"area"`
	QualityRatio   float64        `json:"quality_ratio"`
	Classification Classification `json:"classification"`
	Lots           []Lot          `json:"lots,omitempty"`
}

// ExtractBlocks materializes the blocks of the chosen grid: every cell
// of the (spacing, angle) lattice is clipped to the site and reduced by
// the exclusion polygon. Cells whose retained ratio is at or below
// fragRatio are dropped, matching the fitness evaluation's "too small
// to matter" rule. When an exclusion splits a cell, the largest piece
// carries the block; slivers fall under the fragment threshold.
func ExtractBlocks(site, exclusion geo.Polygon, spacing, angle, fragRatio float64) []Block {
	site = site.Clean()
	if site.IsEmpty() || spacing <= 0 {
		return nil
	}
	exclusion = exclusion.Clean()
	cellArea := spacing * spacing

	var blocks []Block
	for _, cell := range gridopt.GridCells(site, spacing, angle) {
		poly := geo.ClipToConvex(site, cell)
		if poly.IsEmpty() {
			continue
		}
		if !exclusion.IsEmpty() {
			poly = largestPiece(geo.SubtractConvex(poly, exclusion))
			if poly.IsEmpty() {
				continue
			}
		}
		area := poly.Area()
		ratio := area / cellArea
		if ratio <= fragRatio {
			continue
		}

		class := ClassDevelopable
		if ratio < parkRatioCutoff {
			class = ClassPark
		}
		blocks = append(blocks, Block{
			ID:             fmt.Sprintf("block_%03d", len(blocks)),
			Polygon:        poly,
			Area:           area,
			QualityRatio:   ratio,
			Classification: class,
		})
	}
	return blocks
}

func largestPiece(pieces []geo.Polygon) geo.Polygon {
	best := geo.Polygon{}
	bestArea := 0.0
	for _, p := range pieces {
		if a := p.Area(); a > bestArea {
			best, bestArea = p, a
		}
	}
	return best
}
