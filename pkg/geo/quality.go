package geo

// ShapeQuality is the result of scoring a polygon against lot shape
// thresholds.
type ShapeQuality struct {
	Score          float64 `json:"score"`
	Rectangularity float64 `json:"rectangularity"`
	AspectRatio    float64 `json:"aspect_ratio"`
	Area           float64 `json:"area"`
	Valid          bool    `json:"valid"`
}

// LotClass is the usability classification of a lot polygon.
type LotClass string

const (
	LotCommercial LotClass = "commercial"
	LotGreenSpace LotClass = "green_space"
	LotUnusable   LotClass = "unusable"
)

// AnalyzeShapeQuality scores a polygon for development suitability.
// Score blends rectangularity (70%) and compactness (30%, the inverse
// aspect ratio). Valid requires rectangularity, aspect ratio, and area
// to all clear their thresholds.
func AnalyzeShapeQuality(p Polygon, minRectangularity, maxAspectRatio, minArea float64) ShapeQuality {
	q := ShapeQuality{Area: p.Area()}
	if p.IsEmpty() || q.Area < 1e-9 {
		return q
	}
	obb, ok := MinimumOBB(p)
	if !ok || obb.Width < 1e-12 {
		return q
	}
	q.Rectangularity = q.Area / obb.Area()
	q.AspectRatio = obb.Length / obb.Width
	q.Score = 0.7*q.Rectangularity + 0.3*(1.0/q.AspectRatio)
	q.Valid = q.Rectangularity >= minRectangularity &&
		q.AspectRatio <= maxAspectRatio &&
		q.Area >= minArea
	return q
}

// ClassifyLot maps a shape quality result to a usability class: valid
// shapes are commercial, invalid but sufficiently large shapes are kept
// as green space, and everything below the area threshold is unusable.
func ClassifyLot(q ShapeQuality, minArea float64) LotClass {
	if q.Area < minArea {
		return LotUnusable
	}
	if q.Valid {
		return LotCommercial
	}
	return LotGreenSpace
}
