package geo

// Inset shrinks the polygon inward by distance d and returns the result.
// Each edge is translated toward the interior by d and adjacent edge
// lines are re-intersected to form the new corners. Returns an empty
// polygon when the shrink collapses the shape (the result flips winding,
// loses area, or degenerates); callers treat that as "no area left",
// not as an error.
func Inset(p Polygon, d float64) Polygon {
	if p.IsEmpty() {
		return Polygon{}
	}
	if d <= 0 {
		return p
	}
	poly := p.EnsureCCW().Clean()
	n := poly.Len()
	if n < 3 {
		return Polygon{}
	}

	// For a CCW ring the interior is to the left of each edge, so the
	// inward normal is the edge direction rotated 90 degrees CCW.
	type line struct {
		a, b Point2D
	}
	lines := make([]line, n)
	for i := 0; i < n; i++ {
		s, e := poly.Edge(i)
		dir := e.Sub(s).Normalize()
		if dir.Length() < 0.5 {
			return Polygon{}
		}
		shift := dir.Perp().Scale(d)
		lines[i] = line{a: s.Add(shift), b: e.Add(shift)}
	}

	out := make([]Point2D, 0, n)
	for i := 0; i < n; i++ {
		prev := lines[(i+n-1)%n]
		cur := lines[i]
		ix, ok := lineIntersection(prev.a, prev.b, cur.a, cur.b)
		if !ok {
			// Parallel adjacent edges: fall back to the shifted vertex.
			ix = cur.a
		}
		out = append(out, ix)
	}

	// A shrink deeper than the inradius reflects the corners through the
	// interior and the ring comes back with every edge reversed (still
	// CCW, still positive area). Each inset edge must keep the direction
	// of the edge it came from.
	for i := 0; i < n; i++ {
		s, e := poly.Edge(i)
		if out[(i+1)%n].Sub(out[i]).Dot(e.Sub(s)) <= 0 {
			return Polygon{}
		}
	}

	result := Polygon{Vertices: out}.Clean()
	if result.IsEmpty() || result.SignedArea() <= 1e-9 {
		return Polygon{}
	}
	// Reject self-intersecting collapse: the inset of a simple polygon
	// can never gain area.
	if result.Area() >= poly.Area() {
		return Polygon{}
	}
	return result
}
