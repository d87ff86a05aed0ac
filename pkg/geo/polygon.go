package geo

import "math"

// Polygon is a closed simple polygon defined by its vertices in order.
// The closing edge from the last vertex back to the first is implicit.
type Polygon struct {
	Vertices []Point2D
}

// NewPolygon creates a polygon from a list of vertices.
func NewPolygon(pts ...Point2D) Polygon {
	return Polygon{Vertices: pts}
}

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.Vertices)
}

// IsEmpty returns true if the polygon has fewer than 3 vertices.
func (p Polygon) IsEmpty() bool {
	return len(p.Vertices) < 3
}

// Edge returns the i-th edge as (start, end). Wraps around.
func (p Polygon) Edge(i int) (Point2D, Point2D) {
	n := len(p.Vertices)
	return p.Vertices[i%n], p.Vertices[(i+1)%n]
}

// SignedArea returns the signed area using the shoelace formula.
// Positive for counterclockwise winding, negative for clockwise.
func (p Polygon) SignedArea() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p.Vertices[i].X * p.Vertices[j].Y
		area -= p.Vertices[j].X * p.Vertices[i].Y
	}
	return area / 2
}

// Area returns the unsigned area of the polygon.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// IsCounterClockwise returns true if vertices are in CCW order.
func (p Polygon) IsCounterClockwise() bool {
	return p.SignedArea() > 0
}

// EnsureCCW returns the polygon with vertices in counterclockwise order.
func (p Polygon) EnsureCCW() Polygon {
	if p.SignedArea() < 0 {
		return p.Reverse()
	}
	return p
}

// Reverse returns the polygon with reversed vertex order.
func (p Polygon) Reverse() Polygon {
	n := len(p.Vertices)
	rev := make([]Point2D, n)
	for i, v := range p.Vertices {
		rev[n-1-i] = v
	}
	return Polygon{Vertices: rev}
}

// Centroid returns the centroid of the polygon.
func (p Polygon) Centroid() Point2D {
	n := len(p.Vertices)
	if n == 0 {
		return Point2D{}
	}
	a := p.SignedArea()
	if n < 3 || math.Abs(a) < 1e-12 {
		// Degenerate: return the vertex average.
		sum := Point2D{}
		for _, v := range p.Vertices {
			sum = sum.Add(v)
		}
		return sum.Scale(1.0 / float64(n))
	}
	cx, cy := 0.0, 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p.Vertices[i].X*p.Vertices[j].Y - p.Vertices[j].X*p.Vertices[i].Y
		cx += (p.Vertices[i].X + p.Vertices[j].X) * cross
		cy += (p.Vertices[i].Y + p.Vertices[j].Y) * cross
	}
	f := 1.0 / (6.0 * a)
	return Point2D{cx * f, cy * f}
}

// BoundingBox returns the axis-aligned bounding box as (min, max).
func (p Polygon) BoundingBox() (Point2D, Point2D) {
	if len(p.Vertices) == 0 {
		return Point2D{}, Point2D{}
	}
	minP := p.Vertices[0]
	maxP := p.Vertices[0]
	for _, v := range p.Vertices[1:] {
		if v.X < minP.X {
			minP.X = v.X
		}
		if v.Y < minP.Y {
			minP.Y = v.Y
		}
		if v.X > maxP.X {
			maxP.X = v.X
		}
		if v.Y > maxP.Y {
			maxP.Y = v.Y
		}
	}
	return minP, maxP
}

// Contains returns true if the point is inside the polygon using ray casting.
func (p Polygon) Contains(pt Point2D) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi := p.Vertices[i]
		vj := p.Vertices[j]
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) &&
			pt.X < (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Perimeter returns the total perimeter length.
func (p Polygon) Perimeter() float64 {
	n := len(p.Vertices)
	if n < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		total += p.Vertices[i].Distance(p.Vertices[j])
	}
	return total
}

// Rotate returns the polygon rotated by angle radians around center.
func (p Polygon) Rotate(center Point2D, angle float64) Polygon {
	out := make([]Point2D, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = v.RotateAround(center, angle)
	}
	return Polygon{Vertices: out}
}

// ExtentAlong projects all vertices onto the given direction and returns
// the (min, max) scalar extents. The direction need not be normalized.
func (p Polygon) ExtentAlong(dir Point2D) (float64, float64) {
	if len(p.Vertices) == 0 {
		return 0, 0
	}
	minS := p.Vertices[0].Dot(dir)
	maxS := minS
	for _, v := range p.Vertices[1:] {
		s := v.Dot(dir)
		if s < minS {
			minS = s
		}
		if s > maxS {
			maxS = s
		}
	}
	return minS, maxS
}

// dedupVertices removes consecutive duplicate vertices (within tol),
// including a duplicated closing vertex.
func dedupVertices(pts []Point2D, tol float64) []Point2D {
	if len(pts) == 0 {
		return nil
	}
	out := make([]Point2D, 0, len(pts))
	for _, v := range pts {
		if len(out) > 0 && out[len(out)-1].Distance(v) < tol {
			continue
		}
		out = append(out, v)
	}
	if len(out) > 1 && out[0].Distance(out[len(out)-1]) < tol {
		out = out[:len(out)-1]
	}
	return out
}

// Clean returns the polygon with consecutive duplicate vertices removed.
// Returns an empty polygon if fewer than 3 distinct vertices remain.
func (p Polygon) Clean() Polygon {
	pts := dedupVertices(p.Vertices, 1e-9)
	if len(pts) < 3 {
		return Polygon{}
	}
	return Polygon{Vertices: pts}
}

// IsSimple reports whether the boundary is a simple ring: no two
// non-adjacent edges touch and no edge doubles back over its neighbor.
// Clipping a shape that a cut splits into disjoint parts yields a
// single ring whose parts are bridged by overlapping collinear edges;
// such rings are not simple.
func (p Polygon) IsSimple() bool {
	n := p.Len()
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a1, a2 := p.Edge(i)
		for j := i + 1; j < n; j++ {
			b1, b2 := p.Edge(j)
			if j == i+1 || (i == 0 && j == n-1) {
				// Adjacent edges share one endpoint; they may not
				// extend collinearly past it in the same direction.
				shared, u, v := a2, a1, b2
				if i == 0 && j == n-1 {
					shared, u, v = a1, a2, b1
				}
				du, dv := u.Sub(shared), v.Sub(shared)
				if math.Abs(du.Cross(dv)) < 1e-9 && du.Dot(dv) > 1e-9 {
					return false
				}
				continue
			}
			if segmentsTouch(a1, a2, b1, b2) {
				return false
			}
		}
	}
	return true
}

// segmentsTouch reports whether the segments p1p2 and q1q2 share any
// point, endpoints and collinear overlap included.
func segmentsTouch(p1, p2, q1, q2 Point2D) bool {
	d := p2.Sub(p1)
	o1 := d.Cross(q1.Sub(p1))
	o2 := d.Cross(q2.Sub(p1))
	e := q2.Sub(q1)
	o3 := e.Cross(p1.Sub(q1))
	o4 := e.Cross(p2.Sub(q1))
	if ((o1 > 1e-12 && o2 < -1e-12) || (o1 < -1e-12 && o2 > 1e-12)) &&
		((o3 > 1e-12 && o4 < -1e-12) || (o3 < -1e-12 && o4 > 1e-12)) {
		return true
	}
	return onSegment(p1, p2, q1) || onSegment(p1, p2, q2) ||
		onSegment(q1, q2, p1) || onSegment(q1, q2, p2)
}

// onSegment reports whether c lies on the segment ab, endpoints
// included.
func onSegment(a, b, c Point2D) bool {
	ab := b.Sub(a)
	ac := c.Sub(a)
	if math.Abs(ab.Cross(ac)) > 1e-9*(1+ab.Length()) {
		return false
	}
	t := ac.Dot(ab)
	return t >= -1e-9 && t <= ab.Dot(ab)+1e-9
}
