// Package slicer cuts a block polygon into parallel lots along its
// dominant edge. The block is rotated so the dominant edge lies on the
// X axis, axis-aligned strips of the requested widths are cut, and each
// strip is rotated back and clipped to the original block boundary.
package slicer

import (
	"github.com/zok213/RealEstate-sub001/pkg/geo"
)

// Piece is one slice of a block: the clipped lot polygon plus the strip
// width actually used (requested widths are rescaled to fit the block).
type Piece struct {
	Polygon geo.Polygon
	Width   float64
}

// margin extends strips past the block's perpendicular extent so the
// clip against the boundary is what shapes the lot, not the strip edge.
const margin = 1.0

// Slice partitions the block into parallel strips of the given widths.
// Widths are scaled proportionally so their sum matches the block's
// extent along the dominant edge; strips that clip to nothing or to a
// non-simple ring are dropped. Pieces are returned in order along the
// dominant edge,
// starting from the lower-coordinate end.
//
// When the block has no dominant edge (degenerate OBB), slicing falls
// back to axis-aligned strips over the bounding box.
func Slice(block geo.Polygon, widths []float64) []Piece {
	block = block.Clean()
	if block.IsEmpty() || len(widths) == 0 {
		return nil
	}

	angle := 0.0
	if dir, ok := geo.DominantEdge(block); ok {
		angle = dir.Angle()
	}
	center := block.Centroid()

	// Rotate so the dominant edge is parallel to the X axis.
	aligned := block.Rotate(center, -angle)
	minP, maxP := aligned.BoundingBox()
	extent := maxP.X - minP.X
	if extent < 1e-9 {
		return nil
	}

	total := 0.0
	for _, w := range widths {
		if w <= 0 {
			return nil
		}
		total += w
	}
	scale := extent / total

	pieces := make([]Piece, 0, len(widths))
	cursor := minP.X
	for _, w := range widths {
		sw := w * scale
		strip := geo.NewPolygon(
			geo.Pt(cursor, minP.Y-margin),
			geo.Pt(cursor+sw, minP.Y-margin),
			geo.Pt(cursor+sw, maxP.Y+margin),
			geo.Pt(cursor, maxP.Y+margin),
		)
		cursor += sw

		// Rotate the strip back and clip against the original boundary
		// to absorb boundary irregularities. A strip over a concavity
		// can clip to disjoint parts merged into one non-simple ring;
		// such pieces are discarded rather than passed downstream.
		lot := geo.ClipToConvex(block, strip.Rotate(center, angle))
		if lot.IsEmpty() || !lot.IsSimple() {
			continue
		}
		pieces = append(pieces, Piece{Polygon: lot, Width: sw})
	}
	return pieces
}
