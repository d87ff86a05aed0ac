package geo

import "math"

// ClipToConvex clips the subject polygon to a convex clip polygon using
// the Sutherland-Hodgman algorithm. Returns the intersection polygon.
// The clipper must be convex; the subject may be any simple polygon.
func ClipToConvex(subject, clipper Polygon) Polygon {
	if subject.IsEmpty() || clipper.IsEmpty() {
		return Polygon{}
	}
	clipper = clipper.EnsureCCW()

	output := make([]Point2D, len(subject.Vertices))
	copy(output, subject.Vertices)

	clipN := len(clipper.Vertices)
	for i := 0; i < clipN; i++ {
		if len(output) == 0 {
			return Polygon{}
		}
		edgeStart := clipper.Vertices[i]
		edgeEnd := clipper.Vertices[(i+1)%clipN]
		input := output
		output = make([]Point2D, 0, len(input))

		for j := 0; j < len(input); j++ {
			current := input[j]
			next := input[(j+1)%len(input)]
			curInside := isInsideEdge(current, edgeStart, edgeEnd)
			nextInside := isInsideEdge(next, edgeStart, edgeEnd)

			if curInside && nextInside {
				output = append(output, next)
			} else if curInside && !nextInside {
				if ix, ok := lineIntersection(current, next, edgeStart, edgeEnd); ok {
					output = append(output, ix)
				}
			} else if !curInside && nextInside {
				if ix, ok := lineIntersection(current, next, edgeStart, edgeEnd); ok {
					output = append(output, ix)
				}
				output = append(output, next)
			}
		}
	}
	return Polygon{Vertices: output}.Clean()
}

// SubtractConvex removes a convex hole from the subject polygon and returns
// the remaining pieces. The difference of a polygon and a convex region is
// decomposed edge by edge: piece i is the part of the subject outside the
// hole's i-th edge half-plane and inside the half-planes of edges 0..i-1.
// The pieces are disjoint and together cover subject minus hole exactly.
//
// A non-convex hole is treated as its convex hull.
func SubtractConvex(subject, hole Polygon) []Polygon {
	if subject.IsEmpty() {
		return nil
	}
	if hole.IsEmpty() {
		return []Polygon{subject}
	}
	hull := ConvexHull(hole.Vertices)
	if hull.IsEmpty() {
		return []Polygon{subject}
	}
	hull = hull.EnsureCCW()

	var pieces []Polygon
	remainder := subject
	n := len(hull.Vertices)
	for i := 0; i < n && !remainder.IsEmpty(); i++ {
		edgeStart := hull.Vertices[i]
		edgeEnd := hull.Vertices[(i+1)%n]
		// Outside piece: clip remainder to the outer half-plane of this edge.
		outside := clipHalfPlane(remainder, edgeEnd, edgeStart)
		if !outside.IsEmpty() {
			pieces = append(pieces, outside)
		}
		// Carry the inner part forward for the next edge.
		remainder = clipHalfPlane(remainder, edgeStart, edgeEnd)
	}
	return pieces
}

// clipHalfPlane clips the subject to the half-plane left of the directed
// line from a to b.
func clipHalfPlane(subject Polygon, a, b Point2D) Polygon {
	if subject.IsEmpty() {
		return Polygon{}
	}
	input := subject.Vertices
	output := make([]Point2D, 0, len(input))
	for j := 0; j < len(input); j++ {
		current := input[j]
		next := input[(j+1)%len(input)]
		curInside := isInsideEdge(current, a, b)
		nextInside := isInsideEdge(next, a, b)

		if curInside && nextInside {
			output = append(output, next)
		} else if curInside && !nextInside {
			if ix, ok := lineIntersection(current, next, a, b); ok {
				output = append(output, ix)
			}
		} else if !curInside && nextInside {
			if ix, ok := lineIntersection(current, next, a, b); ok {
				output = append(output, ix)
			}
			output = append(output, next)
		}
	}
	return Polygon{Vertices: output}.Clean()
}

// isInsideEdge returns true if the point is on the inside (left) of the
// directed edge from edgeStart to edgeEnd.
func isInsideEdge(p, edgeStart, edgeEnd Point2D) bool {
	return (edgeEnd.X-edgeStart.X)*(p.Y-edgeStart.Y)-
		(edgeEnd.Y-edgeStart.Y)*(p.X-edgeStart.X) >= 0
}

// lineIntersection returns the intersection point of lines (p1→p2) and (p3→p4).
func lineIntersection(p1, p2, p3, p4 Point2D) (Point2D, bool) {
	d := (p1.X-p2.X)*(p3.Y-p4.Y) - (p1.Y-p2.Y)*(p3.X-p4.X)
	if math.Abs(d) < 1e-12 {
		return Point2D{}, false
	}
	t := ((p1.X-p3.X)*(p3.Y-p4.Y) - (p1.Y-p3.Y)*(p3.X-p4.X)) / d
	return Point2D{
		X: p1.X + t*(p2.X-p1.X),
		Y: p1.Y + t*(p2.Y-p1.Y),
	}, true
}
