package geo

import (
	"math"
	"sort"
)

// OBB is a minimum-area oriented bounding rectangle. Corners are in CCW
// order with the edge Corners[0]→Corners[1] running along the longer side,
// so Width <= Length always holds. Angle is the orientation of the longer
// side in radians.
type OBB struct {
	Corners [4]Point2D
	Width   float64
	Length  float64
	Angle   float64
}

// Area returns the rectangle area.
func (b OBB) Area() float64 {
	return b.Width * b.Length
}

// MinimumOBB computes the minimum-area oriented bounding rectangle of the
// polygon by rotating calipers over its convex hull. Returns ok=false for
// empty or degenerate (zero-area) inputs; callers must check before use.
func MinimumOBB(p Polygon) (OBB, bool) {
	hull := ConvexHull(p.Vertices)
	if hull.Len() < 3 {
		return OBB{}, false
	}

	bestArea := math.Inf(1)
	var bestU, bestV Point2D
	var bestMinS, bestMaxS, bestMinT, bestMaxT float64
	found := false

	n := hull.Len()
	for i := 0; i < n; i++ {
		a := hull.Vertices[i]
		b := hull.Vertices[(i+1)%n]
		u := b.Sub(a)
		if u.Length() < 1e-12 {
			continue
		}
		u = u.Normalize()
		v := u.Perp()

		minS, maxS := hull.ExtentAlong(u)
		minT, maxT := hull.ExtentAlong(v)
		area := (maxS - minS) * (maxT - minT)
		if area < bestArea {
			bestArea = area
			bestU, bestV = u, v
			bestMinS, bestMaxS, bestMinT, bestMaxT = minS, maxS, minT, maxT
			found = true
		}
	}
	if !found || bestArea < 1e-9 {
		return OBB{}, false
	}

	corner := func(s, t float64) Point2D {
		return bestU.Scale(s).Add(bestV.Scale(t))
	}
	w := bestMaxS - bestMinS
	h := bestMaxT - bestMinT

	obb := OBB{}
	if w >= h {
		// Long side along u.
		obb.Corners = [4]Point2D{
			corner(bestMinS, bestMinT),
			corner(bestMaxS, bestMinT),
			corner(bestMaxS, bestMaxT),
			corner(bestMinS, bestMaxT),
		}
		obb.Width, obb.Length = h, w
		obb.Angle = bestU.Angle()
	} else {
		// Long side along v; rotate the corner order so the first edge
		// still runs along the longer side.
		obb.Corners = [4]Point2D{
			corner(bestMaxS, bestMinT),
			corner(bestMaxS, bestMaxT),
			corner(bestMinS, bestMaxT),
			corner(bestMinS, bestMinT),
		}
		obb.Width, obb.Length = w, h
		obb.Angle = bestV.Angle()
	}
	return obb, true
}

// DominantEdge returns the unit vector of the longer of the two OBB edges
// adjacent to the rectangle's first corner. Returns ok=false when the OBB
// cannot be computed or both edges are degenerate.
func DominantEdge(p Polygon) (Point2D, bool) {
	obb, ok := MinimumOBB(p)
	if !ok {
		return Point2D{}, false
	}
	e1 := obb.Corners[1].Sub(obb.Corners[0])
	e2 := obb.Corners[3].Sub(obb.Corners[0])
	if e1.Length() < 1e-12 && e2.Length() < 1e-12 {
		return Point2D{}, false
	}
	if e1.Length() >= e2.Length() {
		return e1.Normalize(), true
	}
	return e2.Normalize(), true
}

// Rectangularity returns area / OBB area: 1.0 for a perfect rectangle,
// lower for irregular shapes. Returns 0 when no OBB exists.
func Rectangularity(p Polygon) float64 {
	obb, ok := MinimumOBB(p)
	if !ok {
		return 0
	}
	return p.Area() / obb.Area()
}

// AspectRatio returns the OBB long edge divided by the short edge.
// Returns +Inf for degenerate shapes.
func AspectRatio(p Polygon) float64 {
	obb, ok := MinimumOBB(p)
	if !ok || obb.Width < 1e-12 {
		return math.Inf(1)
	}
	return obb.Length / obb.Width
}

// ConvexHull returns the convex hull of the points as a CCW polygon,
// using Andrew's monotone chain. Collinear points are dropped.
func ConvexHull(pts []Point2D) Polygon {
	n := len(pts)
	if n < 3 {
		return Polygon{}
	}
	p := make([]Point2D, n)
	copy(p, pts)
	sort.Slice(p, func(i, j int) bool {
		if p[i].X != p[j].X {
			return p[i].X < p[j].X
		}
		return p[i].Y < p[j].Y
	})
	p = dedupVertices(p, 1e-12)
	if len(p) < 3 {
		return Polygon{}
	}

	lower := make([]Point2D, 0, len(p))
	for _, pt := range p {
		for len(lower) >= 2 && turn(lower[len(lower)-2], lower[len(lower)-1], pt) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, pt)
	}
	upper := make([]Point2D, 0, len(p))
	for i := len(p) - 1; i >= 0; i-- {
		pt := p[i]
		for len(upper) >= 2 && turn(upper[len(upper)-2], upper[len(upper)-1], pt) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, pt)
	}

	hull := make([]Point2D, 0, len(lower)+len(upper)-2)
	hull = append(hull, lower[:len(lower)-1]...)
	hull = append(hull, upper[:len(upper)-1]...)
	if len(hull) < 3 {
		return Polygon{}
	}
	return Polygon{Vertices: hull}
}

// turn returns the cross product of (a→b) and (a→c): positive for a left
// (counterclockwise) turn.
func turn(a, b, c Point2D) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}
