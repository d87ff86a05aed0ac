package geo

import "testing"

const (
	testMinRectangularity = 0.7
	testMaxAspectRatio    = 4.0
	testMinArea           = 1000.0
)

func TestShapeQualityGoodRectangle(t *testing.T) {
	// 50x40 m rectangle: 2000 m², perfectly rectangular, aspect 1.25.
	rect := NewPolygon(Pt(0, 0), Pt(50, 0), Pt(50, 40), Pt(0, 40))
	q := AnalyzeShapeQuality(rect, testMinRectangularity, testMaxAspectRatio, testMinArea)
	if !approxEqual(q.Rectangularity, 1.0, tolerance) {
		t.Errorf("expected rectangularity 1.0, got %f", q.Rectangularity)
	}
	if !q.Valid {
		t.Error("expected valid shape")
	}
	if q.Score <= 0.8 {
		t.Errorf("expected score > 0.8, got %f", q.Score)
	}
}

func TestShapeQualityTriangle(t *testing.T) {
	// 40 m base, 30 m height: rectangularity 0.5 fails the threshold.
	tri := NewPolygon(Pt(0, 0), Pt(40, 0), Pt(0, 30))
	q := AnalyzeShapeQuality(tri, testMinRectangularity, testMaxAspectRatio, testMinArea)
	if q.Valid {
		t.Error("expected triangle to be invalid")
	}
}

func TestShapeQualityElongatedStrip(t *testing.T) {
	// 200x10 m: aspect ratio 20 fails the threshold.
	strip := NewPolygon(Pt(0, 0), Pt(200, 0), Pt(200, 10), Pt(0, 10))
	q := AnalyzeShapeQuality(strip, testMinRectangularity, testMaxAspectRatio, testMinArea)
	if q.Valid {
		t.Error("expected elongated strip to be invalid")
	}
	if !approxEqual(q.AspectRatio, 20, tolerance) {
		t.Errorf("expected aspect ratio 20, got %f", q.AspectRatio)
	}
}

func TestShapeQualitySmallSquare(t *testing.T) {
	// 10x10 m square: 100 m² fails the 1000 m² minimum.
	sq := NewPolygon(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	q := AnalyzeShapeQuality(sq, testMinRectangularity, testMaxAspectRatio, testMinArea)
	if q.Valid {
		t.Error("expected small square to be invalid under area threshold")
	}
}

func TestShapeQualityDegenerate(t *testing.T) {
	q := AnalyzeShapeQuality(Polygon{}, testMinRectangularity, testMaxAspectRatio, testMinArea)
	if q.Valid || q.Score != 0 {
		t.Errorf("expected zero invalid quality for empty polygon, got %+v", q)
	}
}

func TestClassifyLot(t *testing.T) {
	rect := NewPolygon(Pt(0, 0), Pt(50, 0), Pt(50, 40), Pt(0, 40))
	q := AnalyzeShapeQuality(rect, testMinRectangularity, testMaxAspectRatio, testMinArea)
	if c := ClassifyLot(q, testMinArea); c != LotCommercial {
		t.Errorf("expected commercial, got %s", c)
	}

	// Large but badly shaped: green space.
	tri := NewPolygon(Pt(0, 0), Pt(100, 0), Pt(0, 80))
	q = AnalyzeShapeQuality(tri, testMinRectangularity, testMaxAspectRatio, testMinArea)
	if c := ClassifyLot(q, testMinArea); c != LotGreenSpace {
		t.Errorf("expected green_space, got %s", c)
	}

	// Below minimum area: unusable.
	sq := NewPolygon(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	q = AnalyzeShapeQuality(sq, testMinRectangularity, testMaxAspectRatio, testMinArea)
	if c := ClassifyLot(q, testMinArea); c != LotUnusable {
		t.Errorf("expected unusable, got %s", c)
	}
}
