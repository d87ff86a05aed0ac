package gridopt

import (
	"math"

	"github.com/zok213/RealEstate-sub001/pkg/geo"
)

// GridCells generates the square candidate cells for a grid overlay:
// a regular lattice of side spacing, rotated by angle (degrees) about
// the site centroid. The lattice covers the site's bounding region
// inflated by its own diagonal, so every rotation still covers the
// whole site. Cells are emitted row-major in lattice order.
func GridCells(site geo.Polygon, spacing, angle float64) []geo.Polygon {
	if site.IsEmpty() || spacing <= 0 {
		return nil
	}
	center := site.Centroid()
	minP, maxP := site.BoundingBox()
	diag := minP.Distance(maxP)

	steps := int(math.Ceil(diag / spacing))
	if steps < 1 {
		steps = 1
	}
	rad := angle * math.Pi / 180

	// Cell corners are laid out in the lattice frame (origin at the site
	// centroid), rotated, then translated into world coordinates.
	corner := func(x, y float64) geo.Point2D {
		return geo.Pt(x, y).Rotate(rad).Add(center)
	}

	cells := make([]geo.Polygon, 0, 4*steps*steps)
	for i := -steps; i < steps; i++ {
		for j := -steps; j < steps; j++ {
			x0, y0 := float64(i)*spacing, float64(j)*spacing
			cells = append(cells, geo.NewPolygon(
				corner(x0, y0),
				corner(x0+spacing, y0),
				corner(x0+spacing, y0+spacing),
				corner(x0, y0+spacing),
			))
		}
	}
	return cells
}

// evaluate scores one individual: tile the site with the candidate grid
// and accumulate usable area and fragment count.
func (o *Optimizer) evaluate(ind *Individual) {
	ind.Area, ind.Fragments = ScoreGrid(o.site, o.exclusion, ind.Spacing, ind.Angle,
		o.cfg.GoodBlockRatio, o.cfg.FragmentedBlockRatio)
}

// ScoreGrid computes the two fitness objectives for a grid overlay:
// the total area of cells whose land-covered ratio exceeds goodRatio
// (residential area, maximized) and the count of cells whose ratio
// falls between fragRatio and goodRatio (fragments, minimized). Cells
// below fragRatio are ignored entirely.
func ScoreGrid(site, exclusion geo.Polygon, spacing, angle, goodRatio, fragRatio float64) (float64, int) {
	cellArea := spacing * spacing
	residential := 0.0
	fragments := 0

	for _, cell := range GridCells(site, spacing, angle) {
		area := coveredArea(site, exclusion, cell)
		if area < 1e-9 {
			continue
		}
		ratio := area / cellArea
		if ratio > goodRatio {
			residential += area
		} else if ratio > fragRatio {
			fragments++
		}
	}
	return residential, fragments
}

// coveredArea returns the usable land area of one cell: (cell ∩ site)
// minus the exclusion polygon. When the exclusion splits a cell into
// several pieces only the largest counts, matching what block
// extraction later materializes; scoring all pieces would report
// residential area the subdivision stage never delivers.
func coveredArea(site, exclusion, cell geo.Polygon) float64 {
	block := geo.ClipToConvex(site, cell)
	if block.IsEmpty() {
		return 0
	}
	if exclusion.IsEmpty() {
		return block.Area()
	}
	best := 0.0
	for _, piece := range geo.SubtractConvex(block, exclusion) {
		if a := piece.Area(); a > best {
			best = a
		}
	}
	return best
}
